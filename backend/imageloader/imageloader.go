package imageloader

import (
	"errors"
	"image"
	"io"
	"os"

	"github.com/disintegration/imaging"
	"github.com/pixiv/go-libjpeg/jpeg"

	"vincit.fi/image-downsampler/api"
	"vincit.fi/image-downsampler/api/apitype"
	"vincit.fi/image-downsampler/backend/downsample"
	"vincit.fi/image-downsampler/common/logger"
)

var options = &jpeg.DecoderOptions{}

func NewImageLoader() api.ImageLoader {
	return &LibJPEGImageLoader{}
}

type LibJPEGImageLoader struct {
	api.ImageLoader
}

func (s *LibJPEGImageLoader) LoadImage(imageFile *apitype.ImageFile) (image.Image, error) {
	if !imageFile.IsValid() {
		return nil, errors.New("invalid image file")
	}

	file, err := os.Open(imageFile.Path())
	if err != nil {
		return nil, err
	}
	defer file.Close()

	decoded, err := jpeg.Decode(file, options)
	if err != nil {
		return nil, err
	}

	exifData, _ := apitype.LoadExifData(imageFile)
	rotated, err := apitype.ExifRotateImage(decoded, exifData.Rotation(), exifData.IsFlipped())
	if err != nil {
		return nil, err
	}

	return ConvertNrgbaToRgba(rotated), nil
}

// LoadImageScaled decodes the image to the requested size using the given
// strategy. The strategy's scale factor is split into a power of two
// sample size that libjpeg applies during decode and a residual fine
// scale applied afterwards.
func (s *LibJPEGImageLoader) LoadImageScaled(imageFile *apitype.ImageFile, size apitype.Size, strategy downsample.Strategy) (image.Image, error) {
	if !imageFile.IsValid() {
		return nil, errors.New("invalid image file")
	}

	file, err := os.Open(imageFile.Path())
	if err != nil {
		return nil, err
	}
	defer file.Close()

	config, err := jpeg.DecodeConfig(file)
	if err != nil {
		return nil, err
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	exifData, _ := apitype.LoadExifData(imageFile)

	// The factor is computed against the dimensions the caller will see,
	// so a rotated image uses its post-rotation width and height
	sourceWidth := config.Width
	sourceHeight := config.Height
	if exifData.SwapsDimensions() {
		sourceWidth, sourceHeight = sourceHeight, sourceWidth
	}

	multiplier := strategy.ScaleMultiplier(sourceWidth, sourceHeight, size.Width(), size.Height())
	sampleSize, fineScale := downsample.SplitScaleFactor(multiplier)
	if logger.IsLogLevel(logger.TRACE) {
		logger.Trace.Printf("'%s': %s -> sample size %d, fine scale %.3f",
			imageFile.Path(), strategy.String(), sampleSize, fineScale)
	}

	decoded, err := jpeg.Decode(file, &jpeg.DecoderOptions{
		ScaleTarget: image.Rect(0, 0, config.Width/sampleSize, config.Height/sampleSize),
	})
	if err != nil {
		return nil, err
	}

	// libjpeg only guarantees a decode at least as large as the scale
	// target, the residual is resolved by resizing to the exact size
	targetSize := apitype.SizeOf(config.Width, config.Height).ScaledBy(multiplier)
	decodedBounds := decoded.Bounds()
	if decodedBounds.Dx() != targetSize.Width() || decodedBounds.Dy() != targetSize.Height() {
		decoded = imaging.Resize(decoded, targetSize.Width(), targetSize.Height(), imaging.Linear)
	}

	rotated, err := apitype.ExifRotateImage(decoded, exifData.Rotation(), exifData.IsFlipped())
	if err != nil {
		return nil, err
	}

	return ConvertNrgbaToRgba(rotated), nil
}

func (s *LibJPEGImageLoader) LoadExifData(imageFile *apitype.ImageFile) (*apitype.ExifData, error) {
	return apitype.LoadExifData(imageFile)
}
