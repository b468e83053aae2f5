package apitype

import (
	"fmt"
	"image"
	"math"
)

type Size struct {
	width  int
	height int
}

func SizeOf(width int, height int) Size {
	return Size{width, height}
}

func SizeFromRectangle(rectangle image.Rectangle) Size {
	return Size{
		width:  rectangle.Dx(),
		height: rectangle.Dy(),
	}
}

func (s Size) Width() int {
	return s.width
}

func (s Size) Height() int {
	return s.height
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.width, s.height)
}

// ScaledBy returns the size multiplied by the given factor, rounded to
// the nearest pixel.
func (s Size) ScaledBy(factor float64) Size {
	return Size{
		width:  int(math.Round(float64(s.width) * factor)),
		height: int(math.Round(float64(s.height) * factor)),
	}
}

// ScaleToFit returns the largest width and height that fit inside the
// target size while keeping the source aspect ratio.
func ScaleToFit(sourceWidth int, sourceHeight int, targetWidth int, targetHeight int) (int, int) {
	ratio := float32(sourceWidth) / float32(sourceHeight)
	newWidth := int(float32(targetHeight) * ratio)
	newHeight := targetHeight

	if newWidth > targetWidth {
		newWidth = targetWidth
		newHeight = int(float32(targetWidth) / ratio)
	}
	return newWidth, newHeight
}

func RectangleOfScaledToFit(sourceSize image.Rectangle, targetSize Size) Size {
	width, height := ScaleToFit(sourceSize.Dx(), sourceSize.Dy(), targetSize.Width(), targetSize.Height())
	return SizeOf(width, height)
}
