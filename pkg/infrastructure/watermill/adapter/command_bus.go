package adapter

import (
	"context"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/mateusmacedo/go-airline/pkg/application"
	"github.com/mateusmacedo/go-airline/pkg/domain"
	"github.com/mateusmacedo/go-airline/pkg/infrastructure"
)

// WatermillCommandBus dispatches commands asynchronously: Dispatch returns once
// the message is published and the handler runs on the subscriber side.
type WatermillCommandBus[C domain.Command[T], T any] struct {
	publisher  message.Publisher
	subscriber message.Subscriber
	handlers   map[string]application.CommandHandler[C, T]
	mu         sync.RWMutex
	logger     application.AppLogger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewWatermillCommandBus[C domain.Command[T], T any](publisher message.Publisher, subscriber message.Subscriber, logger application.AppLogger) *WatermillCommandBus[C, T] {
	ctx, cancel := context.WithCancel(context.Background())
	return &WatermillCommandBus[C, T]{
		publisher:  publisher,
		subscriber: subscriber,
		handlers:   make(map[string]application.CommandHandler[C, T]),
		logger:     logger,
		ctx:        ctx,
		cancel:     cancel,
	}
}

func (bus *WatermillCommandBus[C, T]) RegisterHandler(commandName string, handler application.CommandHandler[C, T]) {
	bus.mu.Lock()
	_, replaced := bus.handlers[commandName]
	bus.handlers[commandName] = handler
	bus.mu.Unlock()

	if replaced {
		return
	}

	messages, err := bus.subscriber.Subscribe(bus.ctx, commandName)
	if err != nil {
		application.LogError(bus.ctx, bus.logger, "error subscribing to command", err, map[string]interface{}{
			"command_name": commandName,
		})
		return
	}

	bus.wg.Add(1)
	go func() {
		defer bus.wg.Done()
		for msg := range messages {
			bus.handleMessage(commandName, msg)
		}
	}()
}

func (bus *WatermillCommandBus[C, T]) handleMessage(commandName string, msg *message.Message) {
	ctx := msg.Context()
	if requestID := msg.Metadata.Get(requestIDMetadataKey); requestID != "" {
		ctx = application.WithRequestID(ctx, requestID)
	}

	payload, err := application.UnmarshalPayload[T](msg.Payload)
	if err != nil {
		application.LogError(ctx, bus.logger, "error unmarshalling command payload", err, map[string]interface{}{
			"command_name": commandName,
			"message_uuid": msg.UUID,
		})
		msg.Nack()
		return
	}

	typedCommand, ok := infrastructure.NewNamedCommand(commandName, payload).(C)
	if !ok {
		application.LogError(ctx, bus.logger, "error asserting command type", nil, map[string]interface{}{
			"command_name": commandName,
		})
		msg.Nack()
		return
	}

	bus.mu.RLock()
	handler := bus.handlers[commandName]
	bus.mu.RUnlock()

	if err := handler.Handle(ctx, typedCommand); err != nil {
		application.LogError(ctx, bus.logger, "error handling command", err, map[string]interface{}{
			"command_name": commandName,
			"message_uuid": msg.UUID,
		})
		msg.Nack()
		return
	}

	application.LogDebug(ctx, bus.logger, "command handled", map[string]interface{}{
		"command_name": commandName,
		"message_uuid": msg.UUID,
	})
	msg.Ack()
}

func (bus *WatermillCommandBus[C, T]) Dispatch(ctx context.Context, command C) error {
	commandName := command.CommandName()

	payload, err := application.MarshalPayload(command.Payload())
	if err != nil {
		application.LogError(ctx, bus.logger, "error marshalling command payload", err, map[string]interface{}{
			"command_name": commandName,
		})
		return err
	}

	msg := newMessage(ctx, payload)
	if err := bus.publisher.Publish(commandName, msg); err != nil {
		application.LogError(ctx, bus.logger, "error publishing command", err, map[string]interface{}{
			"command_name": commandName,
		})
		return err
	}

	application.LogDebug(ctx, bus.logger, "command dispatched", map[string]interface{}{
		"command_name": commandName,
		"message_uuid": msg.UUID,
	})
	return nil
}

func (bus *WatermillCommandBus[C, T]) Close() error {
	bus.cancel()
	bus.wg.Wait()
	return nil
}
