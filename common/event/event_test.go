package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"vincit.fi/image-downsampler/api"
)

func TestBroker_SendToTopic(t *testing.T) {
	a := assert.New(t)

	broker := InitBus(10)
	received := make(chan bool, 1)
	broker.Subscribe(api.ImageProcessed, func() {
		received <- true
	})

	broker.SendToTopic(api.ImageProcessed)

	select {
	case ok := <-received:
		a.True(ok)
	case <-time.After(time.Second):
		t.Fatal("Message not received")
	}
}

func TestBroker_SendCommandToTopic(t *testing.T) {
	a := assert.New(t)

	broker := InitBus(10)
	received := make(chan *api.UpdateProgressCommand, 1)
	broker.Subscribe(api.ProcessStatusUpdated, func(command *api.UpdateProgressCommand) {
		received <- command
	})

	broker.SendCommandToTopic(api.ProcessStatusUpdated, &api.UpdateProgressCommand{
		Name:    "Downsample",
		Current: 1,
		Total:   10,
	})

	select {
	case command := <-received:
		a.Equal("Downsample", command.Name)
		a.Equal(1, command.Current)
		a.Equal(10, command.Total)
	case <-time.After(time.Second):
		t.Fatal("Command not received")
	}
}

func TestBroker_SendError(t *testing.T) {
	a := assert.New(t)

	broker := InitBus(10)
	received := make(chan *api.ErrorCommand, 1)
	broker.Subscribe(api.ShowError, func(command *api.ErrorCommand) {
		received <- command
	})

	broker.SendError("Could not process image", nil)

	select {
	case command := <-received:
		a.Equal("Could not process image", command.Message)
	case <-time.After(time.Second):
		t.Fatal("Error not received")
	}
}
