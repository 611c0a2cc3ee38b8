package adapter

import (
	"context"
	"fmt"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/mateusmacedo/go-airline/pkg/application"
	"github.com/mateusmacedo/go-airline/pkg/domain"
)

// QueryNameMetadataKey is set on every published query message.
const QueryNameMetadataKey = "query_name"

// WatermillQueryBus answers queries in process and publishes a copy of each
// one to the topic named after the query, so other services can observe reads.
type WatermillQueryBus[Q domain.Query[D], D any, R any] struct {
	publisher message.Publisher
	handlers  map[string]application.QueryHandler[Q, D, R]
	mu        sync.RWMutex
	logger    application.AppLogger
}

func NewWatermillQueryBus[Q domain.Query[D], D any, R any](publisher message.Publisher, logger application.AppLogger) *WatermillQueryBus[Q, D, R] {
	return &WatermillQueryBus[Q, D, R]{
		publisher: publisher,
		handlers:  make(map[string]application.QueryHandler[Q, D, R]),
		logger:    logger,
	}
}

func (bus *WatermillQueryBus[Q, D, R]) RegisterHandler(queryName string, handler application.QueryHandler[Q, D, R]) {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	bus.handlers[queryName] = handler
}

// Dispatch fails without publishing when no handler is registered. A failed
// publish does not prevent the query from being answered.
func (bus *WatermillQueryBus[Q, D, R]) Dispatch(ctx context.Context, query Q) (R, error) {
	queryName := query.QueryName()

	bus.mu.RLock()
	handler, found := bus.handlers[queryName]
	bus.mu.RUnlock()

	var zero R
	if !found {
		return zero, fmt.Errorf("query %s: %w", queryName, application.ErrHandlerNotFound)
	}

	payload, err := application.MarshalPayload(query.Payload())
	if err != nil {
		return zero, err
	}

	msg := newMessage(ctx, payload)
	msg.Metadata.Set(QueryNameMetadataKey, queryName)
	if err := bus.publisher.Publish(queryName, msg); err != nil {
		application.LogError(ctx, bus.logger, "error publishing query", err, map[string]interface{}{
			"query_name": queryName,
		})
	}

	return handler.Handle(ctx, query)
}
