package apitype

import (
	"github.com/stretchr/testify/assert"
	"image"
	"testing"
)

func TestExifOrientationToAngleAndFlip(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		orientation int
		rotation    float64
		flipped     bool
	}{
		{orientation: 1, rotation: 0, flipped: false},
		{orientation: 2, rotation: 0, flipped: true},
		{orientation: 3, rotation: 180, flipped: false},
		{orientation: 4, rotation: 180, flipped: true},
		{orientation: 5, rotation: 270, flipped: true},
		{orientation: 6, rotation: 270, flipped: false},
		{orientation: 7, rotation: 90, flipped: true},
		{orientation: 8, rotation: 90, flipped: false},
		{orientation: 0, rotation: 0, flipped: false},
		{orientation: 9, rotation: 0, flipped: false},
	}
	for _, tt := range tests {
		rotation, flipped := ExifOrientationToAngleAndFlip(tt.orientation)
		a.Equal(tt.rotation, rotation, "orientation %d", tt.orientation)
		a.Equal(tt.flipped, flipped, "orientation %d", tt.orientation)
	}
}

func TestExifData_SwapsDimensions(t *testing.T) {
	a := assert.New(t)

	for orientation := 1; orientation <= 8; orientation++ {
		angle, flip := ExifOrientationToAngleAndFlip(orientation)
		exifData := &ExifData{orientation: uint8(orientation), rotation: angle, flipped: flip}

		swaps := orientation >= 5
		a.Equal(swaps, exifData.SwapsDimensions(), "orientation %d", orientation)
	}
}

func TestNewInvalidExifData(t *testing.T) {
	a := assert.New(t)

	exifData := NewInvalidExifData()

	a.Equal(uint8(1), exifData.Orientation())
	a.Equal(0.0, exifData.Rotation())
	a.False(exifData.IsFlipped())
	a.False(exifData.SwapsDimensions())
}

func TestExifRotateImage(t *testing.T) {
	a := assert.New(t)

	source := image.NewNRGBA(image.Rect(0, 0, 40, 20))

	t.Run("No rotation keeps dimensions", func(t *testing.T) {
		rotated, err := ExifRotateImage(source, 0, false)
		a.Nil(err)
		a.Equal(40, rotated.Bounds().Dx())
		a.Equal(20, rotated.Bounds().Dy())
	})
	t.Run("90 degrees swaps dimensions", func(t *testing.T) {
		rotated, err := ExifRotateImage(source, 90, false)
		a.Nil(err)
		a.Equal(20, rotated.Bounds().Dx())
		a.Equal(40, rotated.Bounds().Dy())
	})
	t.Run("180 degrees keeps dimensions", func(t *testing.T) {
		rotated, err := ExifRotateImage(source, 180, true)
		a.Nil(err)
		a.Equal(40, rotated.Bounds().Dx())
		a.Equal(20, rotated.Bounds().Dy())
	})
}
