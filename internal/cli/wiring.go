package cli

import (
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.uber.org/multierr"

	"github.com/mateusmacedo/go-airline/internal/airline/application"
	"github.com/mateusmacedo/go-airline/internal/airline/domain"
	"github.com/mateusmacedo/go-airline/internal/config"
	pkgApp "github.com/mateusmacedo/go-airline/pkg/application"
	pkgDomain "github.com/mateusmacedo/go-airline/pkg/domain"
	pkgInfra "github.com/mateusmacedo/go-airline/pkg/infrastructure"
	channelsAdapter "github.com/mateusmacedo/go-airline/pkg/infrastructure/channels/adapter"
	kafkaAdapter "github.com/mateusmacedo/go-airline/pkg/infrastructure/kafka/adapter"
	redisAdapter "github.com/mateusmacedo/go-airline/pkg/infrastructure/redis/adapter"
	watermillAdapter "github.com/mateusmacedo/go-airline/pkg/infrastructure/watermill/adapter"
)

type buses struct {
	commandBus application.BookTicketCommandBus
	queryBus   application.TicketClassesQueryBus
	eventBus   application.TicketBookedEventBus
	closers    []func() error
}

// Close releases everything in reverse creation order.
func (b *buses) Close() error {
	var errs error
	for i := len(b.closers) - 1; i >= 0; i-- {
		errs = multierr.Append(errs, b.closers[i]())
	}
	b.closers = nil
	return errs
}

func (b *buses) onClose(fn func() error) {
	b.closers = append(b.closers, fn)
}

// newBuses builds the buses for the configured transport. Queries are always
// answered in process; broker transports also publish them.
func newBuses(cfg config.Config, logger pkgApp.AppLogger) (*buses, error) {
	b := &buses{}

	var (
		publisher  message.Publisher
		subscriber message.Subscriber
	)

	switch cfg.Transport {
	case config.TransportMemory:
		b.commandBus = pkgInfra.NewSimpleCommandBus[pkgDomain.Command[application.BookTicketData], application.BookTicketData](logger)
		b.eventBus = pkgInfra.NewSimpleEventBus[pkgDomain.Event[application.TicketBookedData], application.TicketBookedData](logger)
		b.queryBus = pkgInfra.NewSimpleQueryBus[pkgDomain.Query[struct{}], struct{}, []domain.TicketClass](logger)
		return b, nil

	case config.TransportChannels:
		pubSub := channelsAdapter.NewGoChannelPubSub(channelsAdapter.Config{
			BlockPublishUntilSubscriberAck: true,
		}, logger)
		b.onClose(pubSub.Close)
		publisher, subscriber = pubSub, pubSub

	case config.TransportRedis:
		client := redisAdapter.NewRedisClient(redisAdapter.ClientConfig{Addr: cfg.RedisAddr})
		b.onClose(client.Close)

		pub, sub, err := redisAdapter.NewRedisStreamPubSub(client, redisAdapter.StreamConfig{
			ConsumerGroup: cfg.ConsumerGroup,
			Consumer:      cfg.AppName + "-" + pkgInfra.GenerateUUID(),
		}, logger)
		if err != nil {
			return nil, multierr.Append(fmt.Errorf("redis transport: %w", err), b.Close())
		}
		b.onClose(pub.Close)
		b.onClose(sub.Close)
		publisher, subscriber = pub, sub

	case config.TransportKafka:
		pub, sub, err := kafkaAdapter.NewKafkaPubSub(kafkaAdapter.Config{
			Brokers:       cfg.KafkaBrokers,
			ConsumerGroup: cfg.ConsumerGroup,
			ClientID:      cfg.AppName,
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("kafka transport: %w", err)
		}
		b.onClose(pub.Close)
		b.onClose(sub.Close)
		publisher, subscriber = pub, sub

	default:
		return nil, fmt.Errorf("%w: %q", config.ErrInvalidTransport, cfg.Transport)
	}

	commandBus := watermillAdapter.NewWatermillCommandBus[pkgDomain.Command[application.BookTicketData], application.BookTicketData](publisher, subscriber, logger)
	eventBus := watermillAdapter.NewWatermillEventBus[pkgDomain.Event[application.TicketBookedData], application.TicketBookedData](publisher, subscriber, logger)
	b.onClose(commandBus.Close)
	b.onClose(eventBus.Close)
	b.commandBus, b.eventBus = commandBus, eventBus
	b.queryBus = watermillAdapter.NewWatermillQueryBus[pkgDomain.Query[struct{}], struct{}, []domain.TicketClass](publisher, logger)

	return b, nil
}
