package downsample

import (
	"math"
	"math/bits"
	"strings"

	"vincit.fi/image-downsampler/common/logger"
)

// Strategy indicates the algorithm to use when downsampling images.
//
// A strategy is a stateless named policy: it computes a single scale
// factor from the source and requested pixel dimensions, and the decode
// pipeline applies that factor as a power of two sample size during
// decode plus a residual fine scale afterwards. Strategies hold no
// state, so they can be shared by any number of goroutines.
type Strategy int

const (
	// CenterInside scales, maintaining the original aspect ratio, so that
	// one of the image's dimensions is exactly equal to the requested size
	// and the other dimension is less than or equal to the requested size.
	// Upscales when the requested size is larger than the source.
	CenterInside Strategy = iota

	// CenterOutside scales, maintaining the original aspect ratio, so that
	// one of the image's dimensions is exactly equal to the requested size
	// and the other dimension is greater than or equal to the requested
	// size. Upscales when the requested size is larger than the source.
	CenterOutside

	// AtLeast downsamples so that the image's smaller dimension is between
	// the requested size and 2x the requested size. Never upscales.
	AtLeast

	// AtMost downsamples so that the image's larger dimension is between
	// 1/2 the requested size and the requested size. Never upscales.
	AtMost

	// None performs no downsampling or scaling.
	None
)

// Default is the strategy used when the caller doesn't select one.
const Default = AtLeast

// ScaleFactor returns a positive scale factor for displaying an image of
// sourceWidth x sourceHeight in requestedWidth x requestedHeight.
//
// For CenterInside and CenterOutside the factor is the multiplier applied
// to the source dimensions. For AtLeast and AtMost it is the power of two
// divisor the decoder should sample with; ScaleMultiplier normalizes the
// two conventions. All dimensions must be positive, the result for zero
// or negative dimensions is undefined.
func (s Strategy) ScaleFactor(sourceWidth int, sourceHeight int, requestedWidth int, requestedHeight int) float64 {
	switch s {
	case CenterInside:
		widthPercentage := float64(requestedWidth) / float64(sourceWidth)
		heightPercentage := float64(requestedHeight) / float64(sourceHeight)
		return math.Min(widthPercentage, heightPercentage)
	case CenterOutside:
		widthPercentage := float64(requestedWidth) / float64(sourceWidth)
		heightPercentage := float64(requestedHeight) / float64(sourceHeight)
		return math.Max(widthPercentage, heightPercentage)
	case AtLeast:
		minIntegerFactor := sourceHeight / requestedHeight
		if widthFactor := sourceWidth / requestedWidth; widthFactor < minIntegerFactor {
			minIntegerFactor = widthFactor
		}
		if minIntegerFactor == 0 {
			return 1
		}
		return float64(highestOneBit(minIntegerFactor))
	case AtMost:
		maxMultiplier := int(math.Ceil(math.Max(
			float64(sourceHeight)/float64(requestedHeight),
			float64(sourceWidth)/float64(requestedWidth))))
		if maxMultiplier <= 1 {
			return 1
		}
		if highestBit := highestOneBit(maxMultiplier); highestBit == maxMultiplier {
			return float64(highestBit)
		} else {
			return float64(highestBit << 1)
		}
	default:
		return 1
	}
}

// ScaleMultiplier returns the factor as a plain multiplier applied to the
// source dimensions. AtLeast and AtMost report a divisor from ScaleFactor,
// for those the multiplier is its inverse.
func (s Strategy) ScaleMultiplier(sourceWidth int, sourceHeight int, requestedWidth int, requestedHeight int) float64 {
	factor := s.ScaleFactor(sourceWidth, sourceHeight, requestedWidth, requestedHeight)
	switch s {
	case AtLeast, AtMost:
		return 1 / factor
	default:
		return factor
	}
}

func (s Strategy) String() string {
	switch s {
	case CenterInside:
		return "center-inside"
	case CenterOutside:
		return "center-outside"
	case AtLeast:
		return "at-least"
	case AtMost:
		return "at-most"
	case None:
		return "none"
	}
	return "unknown"
}

func StringToStrategy(value string) Strategy {
	switch strings.ToLower(value) {
	case "center-inside":
		return CenterInside
	case "center-outside":
		return CenterOutside
	case "at-least":
		return AtLeast
	case "at-most":
		return AtMost
	case "none":
		return None
	case "default", "":
		return Default
	}
	logger.Warn.Printf("Invalid strategy: '%s'. Returning default", value)
	return Default
}

// highestOneBit clears all but the highest set bit of value.
func highestOneBit(value int) int {
	return 1 << (bits.Len(uint(value)) - 1)
}
