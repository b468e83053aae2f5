package imageloader

import (
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"vincit.fi/image-downsampler/api/apitype"
	"vincit.fi/image-downsampler/backend/downsample"
)

func writeTestJPEG(t *testing.T, dir string, name string, width int, height int) *apitype.ImageFile {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}

	file, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()

	if err := jpeg.Encode(file, img, &jpeg.Options{Quality: 90}); err != nil {
		t.Fatal(err)
	}
	return apitype.NewImageFile(dir, name)
}

func TestLibJPEGImageLoader_LoadImage(t *testing.T) {
	a := assert.New(t)

	dir := t.TempDir()
	horizontal := writeTestJPEG(t, dir, "horizontal.jpg", 400, 200)
	vertical := writeTestJPEG(t, dir, "vertical.jpg", 200, 400)

	loader := NewImageLoader()
	t.Run("Horizontal", func(t *testing.T) {
		img, err := loader.LoadImage(horizontal)

		a.Nil(err)
		a.NotNil(img)

		a.Equal(400, img.Bounds().Dx())
		a.Equal(200, img.Bounds().Dy())
	})
	t.Run("Vertical", func(t *testing.T) {
		img, err := loader.LoadImage(vertical)

		a.Nil(err)
		a.NotNil(img)

		a.Equal(200, img.Bounds().Dx())
		a.Equal(400, img.Bounds().Dy())
	})
	t.Run("Invalid image file", func(t *testing.T) {
		img, err := loader.LoadImage(apitype.GetEmptyImageFile())

		a.NotNil(err)
		a.Nil(img)
	})
	t.Run("Missing file", func(t *testing.T) {
		img, err := loader.LoadImage(apitype.NewImageFile(dir, "no-such.jpg"))

		a.NotNil(err)
		a.Nil(img)
	})
}

func TestLibJPEGImageLoader_LoadImageScaled(t *testing.T) {
	a := assert.New(t)

	dir := t.TempDir()
	source := writeTestJPEG(t, dir, "source.jpg", 800, 400)
	size := apitype.SizeOf(100, 100)

	loader := NewImageLoader()
	tests := []struct {
		name          string
		strategy      downsample.Strategy
		width, height int
	}{
		{name: "CenterInside fits inside the requested box", strategy: downsample.CenterInside, width: 100, height: 50},
		{name: "CenterOutside covers the requested box", strategy: downsample.CenterOutside, width: 200, height: 100},
		{name: "AtLeast keeps the smaller dimension at least requested", strategy: downsample.AtLeast, width: 200, height: 100},
		{name: "AtMost keeps the larger dimension at most requested", strategy: downsample.AtMost, width: 100, height: 50},
		{name: "None keeps the source size", strategy: downsample.None, width: 800, height: 400},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := loader.LoadImageScaled(source, size, tt.strategy)

			a.Nil(err)
			a.NotNil(img)

			a.Equal(tt.width, img.Bounds().Dx())
			a.Equal(tt.height, img.Bounds().Dy())
		})
	}

	t.Run("Invalid image file", func(t *testing.T) {
		img, err := loader.LoadImageScaled(apitype.GetEmptyImageFile(), size, downsample.Default)

		a.NotNil(err)
		a.Nil(img)
	})
}

func TestLibJPEGImageLoader_LoadImageScaled_Upscale(t *testing.T) {
	a := assert.New(t)

	dir := t.TempDir()
	source := writeTestJPEG(t, dir, "small.jpg", 50, 25)
	size := apitype.SizeOf(100, 100)

	loader := NewImageLoader()
	t.Run("CenterInside upscales", func(t *testing.T) {
		img, err := loader.LoadImageScaled(source, size, downsample.CenterInside)

		a.Nil(err)
		a.Equal(100, img.Bounds().Dx())
		a.Equal(50, img.Bounds().Dy())
	})
	t.Run("AtLeast never upscales", func(t *testing.T) {
		img, err := loader.LoadImageScaled(source, size, downsample.AtLeast)

		a.Nil(err)
		a.Equal(50, img.Bounds().Dx())
		a.Equal(25, img.Bounds().Dy())
	})
	t.Run("AtMost never upscales", func(t *testing.T) {
		img, err := loader.LoadImageScaled(source, size, downsample.AtMost)

		a.Nil(err)
		a.Equal(50, img.Bounds().Dx())
		a.Equal(25, img.Bounds().Dy())
	})
}

func TestLibJPEGImageLoader_LoadExifData(t *testing.T) {
	a := assert.New(t)

	dir := t.TempDir()
	source := writeTestJPEG(t, dir, "source.jpg", 100, 100)

	loader := NewImageLoader()
	exifData, err := loader.LoadExifData(source)

	// Generated JPEGs carry no Exif block so the data falls back to the
	// unchanged orientation
	a.Nil(err)
	a.NotNil(exifData)
	a.Equal(uint8(1), exifData.Orientation())
	a.False(exifData.SwapsDimensions())
}
