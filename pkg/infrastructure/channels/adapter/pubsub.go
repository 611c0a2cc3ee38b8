package adapter

import (
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/mateusmacedo/go-airline/pkg/application"
	watermillAdapter "github.com/mateusmacedo/go-airline/pkg/infrastructure/watermill/adapter"
)

// Config for the in-memory transport.
type Config struct {
	OutputChannelBuffer int64
	// BlockPublishUntilSubscriberAck makes Publish wait for the handlers.
	BlockPublishUntilSubscriberAck bool
}

// NewGoChannelPubSub builds an in-process pub/sub; the returned value is both
// the publisher and the subscriber.
func NewGoChannelPubSub(cfg Config, logger application.AppLogger) *gochannel.GoChannel {
	return gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer:            cfg.OutputChannelBuffer,
		BlockPublishUntilSubscriberAck: cfg.BlockPublishUntilSubscriberAck,
	}, watermillAdapter.NewWatermillLoggerAdapter(logger))
}
