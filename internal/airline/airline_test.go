package airline

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/mateusmacedo/go-airline/internal/airline/application"
	"github.com/mateusmacedo/go-airline/internal/airline/domain"
	"github.com/mateusmacedo/go-airline/internal/airline/infrastructure"
	pkgApp "github.com/mateusmacedo/go-airline/pkg/application"
	pkgDomain "github.com/mateusmacedo/go-airline/pkg/domain"
	pkgInfra "github.com/mateusmacedo/go-airline/pkg/infrastructure"
	zapAdapter "github.com/mateusmacedo/go-airline/pkg/infrastructure/zaplogger/adapter"
)

func newTestSlice(out *bytes.Buffer, logger pkgApp.AppLogger) *AirlineSlice {
	return NewAirlineSlice(
		pkgInfra.NewSimpleCommandBus[pkgDomain.Command[application.BookTicketData], application.BookTicketData](logger),
		pkgInfra.NewSimpleQueryBus[pkgDomain.Query[struct{}], struct{}, []domain.TicketClass](logger),
		pkgInfra.NewSimpleEventBus[pkgDomain.Event[application.TicketBookedData], application.TicketBookedData](logger),
		infrastructure.NewWriterConsole(out, logger),
		pkgInfra.NewUUIDGenerator(),
		logger,
	)
}

func TestGetInstanceReturnsSameInstance(t *testing.T) {
	first := GetInstance()
	second := GetInstance()

	assert.Same(t, first, second)
	assert.NotEmpty(t, first.ID())
	assert.False(t, first.CreatedAt().IsZero())
}

func TestGetInstanceConcurrentFirstCallers(t *testing.T) {
	const callers = 64
	results := make([]*AirlineSystem, callers)

	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			results[i] = GetInstance()
		}(i)
	}
	close(start)
	wg.Wait()

	for _, got := range results {
		assert.Same(t, results[0], got)
	}
}

func TestRunDemoTranscript(t *testing.T) {
	var out bytes.Buffer
	slice := newTestSlice(&out, zapAdapter.NewNopAppLogger())

	slice.RunDemo(context.Background())

	expected := "Booking Economy Class Ticket\n" +
		"Legacy system reserved an economy ticket.\n" +
		"Booking Business Class Ticket\n" +
		"Booking Economy Class Ticket\n" +
		"Legacy system reserved an economy ticket.\n"
	assert.Equal(t, expected, out.String())
}

func TestRunDemoPublishesTicketBookedEvents(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	var out bytes.Buffer
	slice := newTestSlice(&out, zapAdapter.NewFromZap(zap.New(core)))

	slice.RunDemo(context.Background())

	// Business booked through the facade, then Economy through the command.
	assert.Equal(t, 1, logs.FilterMessage("ticket booked without reservation").Len())
	assert.Equal(t, 1, logs.FilterMessage("ticket booked event received").Len())
	require.Equal(t, 1, logs.FilterMessage("airline system ready").Len())
	assert.Equal(t, GetInstance().ID(), logs.FilterMessage("airline system ready").All()[0].ContextMap()["airline_system_id"])
}

func TestSliceFacadeOutcomes(t *testing.T) {
	cases := []struct {
		classType string
		want      string
	}{
		{"Economy", domain.EconomyBookedMessage + "\n" + domain.LegacyEconomyReservedMessage + "\n"},
		{"Business", domain.BusinessBookedMessage + "\n"},
		{"first-class", domain.InvalidTicketTypeMessage + "\n"},
	}

	for _, c := range cases {
		t.Run(c.classType, func(t *testing.T) {
			var out bytes.Buffer
			slice := newTestSlice(&out, zapAdapter.NewNopAppLogger())

			slice.Facade().BookTicket(context.Background(), c.classType)

			assert.Equal(t, c.want, out.String())
		})
	}
}
