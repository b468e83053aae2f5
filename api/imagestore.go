package api

import (
	"image"

	"vincit.fi/image-downsampler/api/apitype"
	"vincit.fi/image-downsampler/backend/downsample"
)

type ImageStore interface {
	Initialize([]*apitype.ImageFile, ProgressReporter)
	GetFull(*apitype.ImageFile) (image.Image, error)
	GetScaled(*apitype.ImageFile, apitype.Size, downsample.Strategy) (image.Image, error)
	GetThumbnail(*apitype.ImageFile) (image.Image, error)
	GetByteSize() uint64
	GetSizeInMB() float64
	Purge()
}
