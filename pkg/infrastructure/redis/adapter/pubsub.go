package adapter

import (
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/redis/go-redis/v9"

	"github.com/mateusmacedo/go-airline/pkg/application"
	watermillAdapter "github.com/mateusmacedo/go-airline/pkg/infrastructure/watermill/adapter"
)

type StreamConfig struct {
	ConsumerGroup string
	Consumer      string
}

// NewRedisStreamPubSub builds a redis streams publisher and subscriber sharing one client.
func NewRedisStreamPubSub(client redis.UniversalClient, cfg StreamConfig, logger application.AppLogger) (*redisstream.Publisher, *redisstream.Subscriber, error) {
	wmLogger := watermillAdapter.NewWatermillLoggerAdapter(logger)

	publisher, err := redisstream.NewPublisher(redisstream.PublisherConfig{
		Client: client,
	}, wmLogger)
	if err != nil {
		return nil, nil, err
	}

	subscriber, err := redisstream.NewSubscriber(redisstream.SubscriberConfig{
		Client:        client,
		ConsumerGroup: cfg.ConsumerGroup,
		Consumer:      cfg.Consumer,
	}, wmLogger)
	if err != nil {
		_ = publisher.Close()
		return nil, nil, err
	}

	return publisher, subscriber, nil
}
