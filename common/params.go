package common

import (
	"flag"
)

type Params struct {
	strategy        string
	requestedWidth  int
	requestedHeight int
	quality         int
	logLevel        string
	sourcePath      string
	targetPath      string
}

func NewEmptyParams() *Params {
	return &Params{
		strategy:        "default",
		requestedWidth:  0,
		requestedHeight: 0,
		quality:         0,
		logLevel:        "",
		sourcePath:      "",
		targetPath:      "",
	}
}

func ParseParams() *Params {
	strategy := flag.String("strategy", "default", "Downsample strategy: center-inside, center-outside, at-least, at-most, none")
	width := flag.Int("width", 1920, "Requested width in pixels")
	height := flag.Int("height", 1080, "Requested height in pixels")
	quality := flag.Int("quality", 90, "JPEG quality for written images: 1-100")
	logLevel := flag.String("logLevel", "INFO", "Log level: ERROR, WARN, INFO, DEBUG, TRACE")

	flag.Parse()
	sourcePath := flag.Arg(0)
	targetPath := flag.Arg(1)

	return &Params{
		strategy:        *strategy,
		requestedWidth:  *width,
		requestedHeight: *height,
		quality:         *quality,
		logLevel:        *logLevel,
		sourcePath:      sourcePath,
		targetPath:      targetPath,
	}
}

func (s *Params) Strategy() string {
	return s.strategy
}

func (s *Params) RequestedWidth() int {
	return s.requestedWidth
}

func (s *Params) RequestedHeight() int {
	return s.requestedHeight
}

func (s *Params) Quality() int {
	return s.quality
}

func (s *Params) LogLevel() string {
	return s.logLevel
}

func (s *Params) SourcePath() string {
	return s.sourcePath
}

func (s *Params) TargetPath() string {
	return s.targetPath
}
