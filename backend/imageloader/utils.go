package imageloader

import (
	"image"
	"time"

	"vincit.fi/image-downsampler/common/logger"
)

// ConvertNrgbaToRgba converts an NRGBA image to RGBA with a plain pixel
// copy. JPEG images have no alpha channel, so the premultiplication
// step can be skipped. Other image types pass through unchanged.
func ConvertNrgbaToRgba(i image.Image) image.Image {
	n, ok := i.(*image.NRGBA)
	if !ok {
		return i
	}

	start := time.Now()
	rgba := image.NewRGBA(n.Rect)
	for x := 0; x < n.Rect.Dx(); x++ {
		for y := 0; y < n.Rect.Dy(); y++ {
			nrgbaPixOffset := n.PixOffset(x, y)
			nrgbaStride := n.Pix[nrgbaPixOffset : nrgbaPixOffset+4 : nrgbaPixOffset+4]

			rgbaPixOffset := rgba.PixOffset(x, y)
			rgbaStride := rgba.Pix[rgbaPixOffset : rgbaPixOffset+4 : rgbaPixOffset+4]

			rgbaStride[0] = nrgbaStride[0]
			rgbaStride[1] = nrgbaStride[1]
			rgbaStride[2] = nrgbaStride[2]
			rgbaStride[3] = nrgbaStride[3]
		}
	}
	end := time.Now()

	if logger.IsLogLevel(logger.TRACE) {
		logger.Trace.Printf("Converting from NRGBA to RGBA: %s", end.Sub(start))
	}

	return rgba
}
