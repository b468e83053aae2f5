package main

import (
	"vincit.fi/image-downsampler/api"
	"vincit.fi/image-downsampler/api/apitype"
	"vincit.fi/image-downsampler/backend/downsample"
	"vincit.fi/image-downsampler/backend/imageloader"
	"vincit.fi/image-downsampler/backend/processor"
	"vincit.fi/image-downsampler/common"
	"vincit.fi/image-downsampler/common/event"
	"vincit.fi/image-downsampler/common/logger"
)

const eventBusQueueSize = 1000

func main() {
	params := common.ParseParams()
	logger.Initialize(logger.StringToLogLevel(params.LogLevel()))

	if params.SourcePath() == "" || params.TargetPath() == "" {
		logger.Error.Fatal("Usage: image-downsampler [options] <source-dir> <target-dir>")
	}

	broker := event.InitBus(eventBusQueueSize)
	broker.Subscribe(api.ProcessStatusUpdated, func(command *api.UpdateProgressCommand) {
		logger.Info.Printf("%s: %d/%d", command.Name, command.Current, command.Total)
	})
	broker.Subscribe(api.ImageProcessed, func(command *api.ImageProcessedCommand) {
		logger.Debug.Printf("%s -> '%s' (%s)", command.Image.String(), command.TargetPath, command.Size.String())
	})

	strategy := downsample.StringToStrategy(params.Strategy())
	requestedSize := apitype.SizeOf(params.RequestedWidth(), params.RequestedHeight())

	imageProcessor := processor.NewProcessor(
		imageloader.NewImageLoader(), broker, requestedSize, strategy, params.Quality())
	if err := imageProcessor.ProcessDirectory(params.SourcePath(), params.TargetPath()); err != nil {
		logger.Error.Fatal(err)
	}
}
