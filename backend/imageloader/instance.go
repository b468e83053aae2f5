package imageloader

import (
	"errors"
	"image"
	"sync"
	"time"

	"github.com/nfnt/resize"

	"vincit.fi/image-downsampler/api"
	"vincit.fi/image-downsampler/api/apitype"
	"vincit.fi/image-downsampler/backend/downsample"
	"vincit.fi/image-downsampler/common/logger"
)

const (
	thumbnailWidth  = 100
	thumbnailHeight = thumbnailWidth
)

var (
	emptyInstance = Instance{}
	thumbnailSize = apitype.SizeOf(thumbnailWidth, thumbnailHeight)
)

// Instance caches the decoded renditions of a single image: the full
// size image, the most recently requested scaled version and a small
// thumbnail.
type Instance struct {
	imageFile      *apitype.ImageFile
	full           image.Image
	scaled         image.Image
	scaledSize     apitype.Size
	scaledStrategy downsample.Strategy
	thumbnail      image.Image
	imageLoader    api.ImageLoader
	mux            sync.Mutex
}

func NewInstance(imageFile *apitype.ImageFile, imageLoader api.ImageLoader) *Instance {
	return &Instance{
		imageFile:   imageFile,
		imageLoader: imageLoader,
	}
}

func (s *Instance) IsValid() bool {
	return s.imageFile.IsValid()
}

func (s *Instance) GetFull() (image.Image, error) {
	if !s.IsValid() {
		return nil, errors.New("invalid image file")
	}

	s.mux.Lock()
	defer s.mux.Unlock()
	if s.full == nil {
		startTime := time.Now()

		if full, err := s.imageLoader.LoadImage(s.imageFile); err != nil {
			logger.Error.Println("Could not load full image: " + s.imageFile.Path())
			return nil, err
		} else {
			s.full = full
			endTime := time.Now()
			logger.Trace.Printf("'%s': Full loaded in %s", s.imageFile.Path(), endTime.Sub(startTime).String())
			return s.full, nil
		}
	} else {
		logger.Trace.Print("Use cached full image")
		return s.full, nil
	}
}

func (s *Instance) GetScaled(size apitype.Size, strategy downsample.Strategy) (image.Image, error) {
	if !s.IsValid() {
		return nil, errors.New("invalid image file")
	}

	s.mux.Lock()
	defer s.mux.Unlock()
	if s.scaled == nil || s.scaledSize != size || s.scaledStrategy != strategy {
		startTime := time.Now()

		scaled, err := s.imageLoader.LoadImageScaled(s.imageFile, size, strategy)
		if err != nil {
			return nil, err
		}
		s.scaled = scaled
		s.scaledSize = size
		s.scaledStrategy = strategy

		endTime := time.Now()
		logger.Trace.Printf("'%s': Scaled loaded in %s", s.imageFile.Path(), endTime.Sub(startTime).String())
	} else {
		logger.Trace.Print("Use cached scaled image")
	}

	return s.scaled, nil
}

func (s *Instance) GetThumbnail() (image.Image, error) {
	if !s.IsValid() {
		return nil, errors.New("invalid image file")
	}

	s.mux.Lock()
	defer s.mux.Unlock()
	if s.thumbnail == nil {
		startTime := time.Now()

		// Decode close to the thumbnail size, then shrink to fit the box
		loaded, err := s.imageLoader.LoadImageScaled(s.imageFile, thumbnailSize, downsample.AtLeast)
		if err != nil {
			logger.Error.Println("Could not load thumbnail: "+s.imageFile.Path(), err)
			return nil, err
		}
		s.thumbnail = resize.Thumbnail(thumbnailWidth, thumbnailHeight, loaded, resize.Lanczos3)

		endTime := time.Now()
		logger.Trace.Printf("'%s': Thumbnail loaded in %s", s.imageFile.Path(), endTime.Sub(startTime).String())
	} else {
		logger.Trace.Print("Use cached thumbnail")
	}
	return s.thumbnail, nil
}

func (s *Instance) Purge() {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.full = nil
	s.scaled = nil
}

func (s *Instance) GetByteLength() int {
	var byteLength = 0
	byteLength += GetByteLength(s.full)
	byteLength += GetByteLength(s.scaled)
	byteLength += GetByteLength(s.thumbnail)
	return byteLength
}

func GetByteLength(img image.Image) int {
	if img != nil {
		// Approximation using the image size
		const bytesPerPixel = 4
		bounds := img.Bounds()
		return bounds.Dx() * bounds.Dy() * bytesPerPixel
	} else {
		return 0
	}
}
