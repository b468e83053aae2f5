package apitype

import (
	"image"
	"image/color"
	"os"
	"time"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"

	"vincit.fi/image-downsampler/common/logger"
)

// ExifData holds the orientation related parts of an image's Exif block.
// The rotation is in degrees counter-clockwise, the way imaging.Rotate
// expects it.
type ExifData struct {
	orientation uint8
	rotation    float64
	flipped     bool
	created     time.Time
}

const exifUnchangedOrientation = 1

func (s *ExifData) Orientation() uint8 {
	return s.orientation
}

func (s *ExifData) Rotation() float64 {
	return s.rotation
}

func (s *ExifData) IsFlipped() bool {
	return s.flipped
}

func (s *ExifData) CreatedTime() time.Time {
	return s.created
}

// SwapsDimensions tells whether applying the rotation swaps the image's
// width and height. Needed when computing scale factors from the stored
// dimensions of a rotated image.
func (s *ExifData) SwapsDimensions() bool {
	return s.rotation == left90 || s.rotation == right90
}

func NewInvalidExifData() *ExifData {
	return &ExifData{exifUnchangedOrientation, noRotate, false, time.Unix(0, 0)}
}

func NewExifData(decodedExif *exif.Exif) *ExifData {
	orientation, err := getInt(decodedExif, exif.Orientation)
	if err != nil {
		logger.Warn.Print("Could not resolve orientation ", err)
		orientation = exifUnchangedOrientation
	}
	created, err := getTime(decodedExif, exif.DateTimeOriginal)
	if err != nil {
		logger.Trace.Print("Could not resolve created time ", err)
		created = time.Unix(0, 0)
	}

	angle, flip := ExifOrientationToAngleAndFlip(orientation)
	return &ExifData{
		orientation: uint8(orientation),
		rotation:    angle,
		flipped:     flip,
		created:     created,
	}
}

func LoadExifData(imageFile *ImageFile) (*ExifData, error) {
	fileForExif, err := os.Open(imageFile.Path())
	if err != nil {
		return NewInvalidExifData(), err
	}
	defer fileForExif.Close()

	decodedExif, err := exif.Decode(fileForExif)
	if err != nil {
		logger.Debug.Print("Could not decode Exif data ", err)
		return NewInvalidExifData(), nil
	}
	return NewExifData(decodedExif), nil
}

func getInt(decodedExif *exif.Exif, tagName exif.FieldName) (int, error) {
	if tag, err := decodedExif.Get(tagName); err != nil {
		return 0, err
	} else {
		return tag.Int(0)
	}
}

func getString(decodedExif *exif.Exif, tagName exif.FieldName) (string, error) {
	if tag, err := decodedExif.Get(tagName); err != nil {
		return "", err
	} else {
		return tag.StringVal()
	}
}

func getTime(decodedExif *exif.Exif, tagName exif.FieldName) (time.Time, error) {
	if stringVal, err := getString(decodedExif, tagName); err != nil {
		return time.Unix(0, 0), err
	} else {
		return time.Parse("2006:01:02 15:04:05", stringVal)
	}
}

const (
	noRotate  = 0
	rotate180 = 180
	left90    = 90
	right90   = 270

	noHorizontalFlip = false
	horizontalFlip   = true
)

func ExifOrientationToAngleAndFlip(orientation int) (float64, bool) {
	switch orientation {
	case 1:
		return noRotate, noHorizontalFlip
	case 2:
		return noRotate, horizontalFlip
	case 3:
		return rotate180, noHorizontalFlip
	case 4:
		return rotate180, horizontalFlip
	case 5:
		return right90, horizontalFlip
	case 6:
		return right90, noHorizontalFlip
	case 7:
		return left90, horizontalFlip
	case 8:
		return left90, noHorizontalFlip
	default:
		return noRotate, noHorizontalFlip
	}
}

func ExifRotateImage(loadedImage image.Image, rotation float64, flipped bool) (image.Image, error) {
	if rotation != noRotate {
		loadedImage = imaging.Rotate(loadedImage, rotation, color.Black)
	}
	if flipped {
		return imaging.FlipH(loadedImage), nil
	}
	return loadedImage, nil
}
