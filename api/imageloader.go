package api

import (
	"image"

	"vincit.fi/image-downsampler/api/apitype"
	"vincit.fi/image-downsampler/backend/downsample"
)

type ImageLoader interface {
	LoadImage(*apitype.ImageFile) (image.Image, error)
	LoadImageScaled(*apitype.ImageFile, apitype.Size, downsample.Strategy) (image.Image, error)
	LoadExifData(*apitype.ImageFile) (*apitype.ExifData, error)
}
