package processor

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"time"

	"github.com/pixiv/go-libjpeg/jpeg"

	"vincit.fi/image-downsampler/api"
	"vincit.fi/image-downsampler/api/apitype"
	"vincit.fi/image-downsampler/backend/downsample"
	"vincit.fi/image-downsampler/common/logger"
)

// Processor downsamples every supported image in a directory to the
// requested size and writes the results to a target directory.
type Processor struct {
	imageLoader   api.ImageLoader
	sender        api.Sender
	reporter      api.ProgressReporter
	requestedSize apitype.Size
	strategy      downsample.Strategy
	quality       int
}

func NewProcessor(imageLoader api.ImageLoader, sender api.Sender, requestedSize apitype.Size, strategy downsample.Strategy, quality int) *Processor {
	return &Processor{
		imageLoader:   imageLoader,
		sender:        sender,
		reporter:      api.NewSenderProgressReporter(sender),
		requestedSize: requestedSize,
		strategy:      strategy,
		quality:       quality,
	}
}

func ListImageFiles(dir string) ([]*apitype.ImageFile, error) {
	files, err := ioutil.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	logger.Debug.Printf("Scanning directory '%s'", dir)
	var imageFiles []*apitype.ImageFile
	for _, file := range files {
		if !file.IsDir() && apitype.IsSupportedImageFile(file.Name()) {
			imageFiles = append(imageFiles, apitype.NewImageFile(dir, file.Name()))
		}
	}
	logger.Debug.Printf("Found %d images", len(imageFiles))

	return imageFiles, nil
}

func (s *Processor) ProcessDirectory(sourceDir string, targetDir string) error {
	imageFiles, err := ListImageFiles(sourceDir)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(targetDir, 0755); err != nil {
		return err
	}

	numOfImages := len(imageFiles)
	logger.Info.Printf("Downsampling %d images to %s with strategy '%s'",
		numOfImages, s.requestedSize.String(), s.strategy.String())
	startTime := time.Now()

	s.reporter.Update("Downsample", 0, numOfImages)
	for i, imageFile := range imageFiles {
		targetPath, size, err := s.ProcessImage(imageFile, targetDir)
		if err != nil {
			s.reporter.Error("Could not process "+imageFile.Path(), err)
		} else {
			s.sender.SendCommandToTopic(api.ImageProcessed, &api.ImageProcessedCommand{
				Image:      imageFile,
				TargetPath: targetPath,
				Size:       size,
			})
		}
		s.reporter.Update("Downsample", i+1, numOfImages)
	}

	endTime := time.Now()
	logger.Info.Printf("Processed %d images in %s", numOfImages, endTime.Sub(startTime).String())
	return nil
}

func (s *Processor) ProcessImage(imageFile *apitype.ImageFile, targetDir string) (string, apitype.Size, error) {
	scaled, err := s.imageLoader.LoadImageScaled(imageFile, s.requestedSize, s.strategy)
	if err != nil {
		return "", apitype.Size{}, err
	}

	targetPath := filepath.Join(targetDir, imageFile.FileName())
	targetFile, err := os.Create(targetPath)
	if err != nil {
		return "", apitype.Size{}, err
	}
	defer targetFile.Close()

	if err := jpeg.Encode(targetFile, scaled, &jpeg.EncoderOptions{Quality: s.quality}); err != nil {
		return "", apitype.Size{}, err
	}

	size := apitype.SizeFromRectangle(scaled.Bounds())
	logger.Debug.Printf("'%s': Wrote %s", targetPath, size.String())
	return targetPath, size, nil
}
