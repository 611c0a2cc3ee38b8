package adapter

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mateusmacedo/go-airline/pkg/application"
	"github.com/mateusmacedo/go-airline/pkg/domain"
	zapAdapter "github.com/mateusmacedo/go-airline/pkg/infrastructure/zaplogger/adapter"
)

type seatsQuery struct{ class string }

func (q seatsQuery) QueryName() string { return "ListSeats" }
func (q seatsQuery) Payload() string   { return q.class }

func seatsHandler() application.QueryHandler[domain.Query[string], string, []string] {
	return queryHandlerFunc(func(_ context.Context, q domain.Query[string]) ([]string, error) {
		return []string{q.Payload() + "-1A", q.Payload() + "-1B"}, nil
	})
}

type queryHandlerFunc func(ctx context.Context, q domain.Query[string]) ([]string, error)

func (f queryHandlerFunc) Handle(ctx context.Context, q domain.Query[string]) ([]string, error) {
	return f(ctx, q)
}

func TestWatermillQueryBusAnswersAndPublishes(t *testing.T) {
	pubSub := newPubSub(t)
	messages, err := pubSub.Subscribe(context.Background(), "ListSeats")
	require.NoError(t, err)

	bus := NewWatermillQueryBus[domain.Query[string], string, []string](pubSub, zapAdapter.NewNopAppLogger())
	bus.RegisterHandler("ListSeats", seatsHandler())

	ctx := application.WithRequestID(context.Background(), "req-3")
	seats, err := bus.Dispatch(ctx, seatsQuery{class: "Economy"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Economy-1A", "Economy-1B"}, seats)

	select {
	case msg := <-messages:
		assert.Equal(t, "ListSeats", msg.Metadata.Get(QueryNameMetadataKey))
		assert.Equal(t, "req-3", msg.Metadata.Get(requestIDMetadataKey))
		assert.JSONEq(t, `"Economy"`, string(msg.Payload))
		msg.Ack()
	case <-time.After(2 * time.Second):
		t.Fatal("query was not published")
	}
}

func TestWatermillQueryBusUnknownQuery(t *testing.T) {
	bus := NewWatermillQueryBus[domain.Query[string], string, []string](failingPublisher{err: errors.New("unused")}, zapAdapter.NewNopAppLogger())

	_, err := bus.Dispatch(context.Background(), seatsQuery{class: "Economy"})
	assert.ErrorIs(t, err, application.ErrHandlerNotFound)
}

func TestWatermillQueryBusAnswersWhenPublishFails(t *testing.T) {
	bus := NewWatermillQueryBus[domain.Query[string], string, []string](failingPublisher{err: errors.New("broker down")}, zapAdapter.NewNopAppLogger())
	bus.RegisterHandler("ListSeats", seatsHandler())

	seats, err := bus.Dispatch(context.Background(), seatsQuery{class: "Business"})
	require.NoError(t, err)
	assert.Len(t, seats, 2)
}
