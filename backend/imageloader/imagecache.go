package imageloader

import (
	"image"
	"sync"
	"time"

	"vincit.fi/image-downsampler/api"
	"vincit.fi/image-downsampler/api/apitype"
	"vincit.fi/image-downsampler/backend/downsample"
	"vincit.fi/image-downsampler/common/logger"
)

type DefaultImageStore struct {
	imageCache  map[string]*Instance
	mux         sync.Mutex
	imageLoader api.ImageLoader

	api.ImageStore
}

func NewImageCache(imageLoader api.ImageLoader) api.ImageStore {
	logger.Debug.Printf("Initialize image cache...")
	imageCache := &DefaultImageStore{
		imageCache:  map[string]*Instance{},
		mux:         sync.Mutex{},
		imageLoader: imageLoader,
	}
	logger.Debug.Printf("Image cache initialized")
	return imageCache
}

func (s *DefaultImageStore) Initialize(imageFiles []*apitype.ImageFile, reporter api.ProgressReporter) {
	s.mux.Lock()
	s.imageCache = map[string]*Instance{}
	s.mux.Unlock()
	go func() {
		numOfImages := len(imageFiles)
		logger.Debug.Printf("Start loading %d image instances in cache...", numOfImages)
		startTime := time.Now()
		reporter.Update("Image cache", 0, numOfImages)
		for i, imageFile := range imageFiles {
			if _, err := s.getImage(imageFile).GetThumbnail(); err != nil {
				reporter.Error("Could not load thumbnail for "+imageFile.Path(), err)
			}
			reporter.Update("Image cache", i+1, numOfImages)
		}
		endTime := time.Now()
		totalTime := endTime.Sub(startTime)
		logger.Debug.Printf("All %d instances loaded in cache in %s", numOfImages, totalTime.String())
	}()
}

func (s *DefaultImageStore) GetFull(imageFile *apitype.ImageFile) (image.Image, error) {
	return s.getImage(imageFile).GetFull()
}

func (s *DefaultImageStore) GetScaled(imageFile *apitype.ImageFile, size apitype.Size, strategy downsample.Strategy) (image.Image, error) {
	return s.getImage(imageFile).GetScaled(size, strategy)
}

func (s *DefaultImageStore) GetThumbnail(imageFile *apitype.ImageFile) (image.Image, error) {
	return s.getImage(imageFile).GetThumbnail()
}

func (s *DefaultImageStore) getImage(imageFile *apitype.ImageFile) *Instance {
	s.mux.Lock()
	defer s.mux.Unlock()
	if !imageFile.IsValid() {
		return &emptyInstance
	}
	if existingInstance, ok := s.imageCache[imageFile.Path()]; ok {
		return existingInstance
	}
	instance := NewInstance(imageFile, s.imageLoader)
	s.imageCache[imageFile.Path()] = instance
	return instance
}

func (s *DefaultImageStore) Purge() {
	s.mux.Lock()
	defer s.mux.Unlock()
	for _, instance := range s.imageCache {
		instance.Purge()
	}
}

func (s *DefaultImageStore) GetByteSize() (byteSize uint64) {
	s.mux.Lock()
	defer s.mux.Unlock()
	for _, instance := range s.imageCache {
		byteSize += uint64(instance.GetByteLength())
	}
	return
}

func (s *DefaultImageStore) GetSizeInMB() (mbSize float64) {
	return float64(s.GetByteSize()) / (1024 * 1024)
}
