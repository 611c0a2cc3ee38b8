package infrastructure

import (
	"context"
	"sync"

	"go.uber.org/multierr"

	"github.com/mateusmacedo/go-airline/pkg/application"
	"github.com/mateusmacedo/go-airline/pkg/domain"
)

// simpleEventBus fans an event out to its handlers in parallel and waits for all of them.
type simpleEventBus[E domain.Event[T], T any] struct {
	handlers map[string][]application.EventHandler[E, T]
	mu       sync.RWMutex
	logger   application.AppLogger
}

func NewSimpleEventBus[E domain.Event[T], T any](logger application.AppLogger) application.EventBus[E, T] {
	return &simpleEventBus[E, T]{
		handlers: make(map[string][]application.EventHandler[E, T]),
		logger:   logger,
	}
}

func (bus *simpleEventBus[E, T]) RegisterHandler(eventName string, handler application.EventHandler[E, T]) {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	bus.handlers[eventName] = append(bus.handlers[eventName], handler)
}

// Publish returns nil when no handler is registered for the event.
func (bus *simpleEventBus[E, T]) Publish(ctx context.Context, event E) error {
	eventName := event.EventName()

	bus.mu.RLock()
	handlers := append([]application.EventHandler[E, T](nil), bus.handlers[eventName]...)
	bus.mu.RUnlock()

	if len(handlers) == 0 {
		application.LogDebug(ctx, bus.logger, "no handler registered for event", map[string]interface{}{
			"event_name": eventName,
		})
		return nil
	}

	var (
		wg   sync.WaitGroup
		errM sync.Mutex
		errs error
	)
	done := make(chan struct{})

	for _, handler := range handlers {
		wg.Add(1)
		go func(h application.EventHandler[E, T]) {
			defer wg.Done()
			if err := h.Handle(ctx, event); err != nil {
				errM.Lock()
				errs = multierr.Append(errs, err)
				errM.Unlock()
			}
		}(handler)
	}

	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-ctx.Done():
		application.LogError(ctx, bus.logger, "error publishing event", ctx.Err(), map[string]interface{}{
			"event_name": eventName,
		})
		return ctx.Err()
	case <-done:
	}

	if errs != nil {
		application.LogError(ctx, bus.logger, "error handling event", errs, map[string]interface{}{
			"event_name": eventName,
			"failures":   len(multierr.Errors(errs)),
		})
		return errs
	}

	application.LogDebug(ctx, bus.logger, "event published", map[string]interface{}{
		"event_name": eventName,
		"handlers":   len(handlers),
	})
	return nil
}
