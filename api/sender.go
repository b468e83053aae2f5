package api

import "vincit.fi/image-downsampler/api/apitype"

type Topic string

const (
	ProcessStatusUpdated = Topic("PROCESS_STATUS_UPDATED")
	ImageProcessed       = Topic("IMAGE_PROCESSED")
	ShowError            = Topic("SHOW_ERROR")
)

type Sender interface {
	SendToTopic(topic Topic)
	SendCommandToTopic(topic Topic, command apitype.Command)
	SendError(message string, err error)
}

type ErrorCommand struct {
	Message string
}

type UpdateProgressCommand struct {
	Name    string
	Current int
	Total   int
}

type ImageProcessedCommand struct {
	Image      *apitype.ImageFile
	TargetPath string
	Size       apitype.Size
}
