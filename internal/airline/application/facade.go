package application

import (
	"context"
	"time"

	"github.com/mateusmacedo/go-airline/internal/airline/domain"
	pkgApp "github.com/mateusmacedo/go-airline/pkg/application"
	pkgDomain "github.com/mateusmacedo/go-airline/pkg/domain"
)

// BookingFacade books a ticket end to end: factory, ticket, reservation.
type BookingFacade struct {
	factory      *domain.TicketFactory
	reservations domain.ReservationSystem
	console      domain.Console
	eventBus     TicketBookedEventBus
	idGenerator  pkgDomain.IDGenerator[string]
	logger       pkgApp.AppLogger
}

func NewBookingFacade(
	factory *domain.TicketFactory,
	reservations domain.ReservationSystem,
	console domain.Console,
	eventBus TicketBookedEventBus,
	idGenerator pkgDomain.IDGenerator[string],
	logger pkgApp.AppLogger,
) *BookingFacade {
	return &BookingFacade{
		factory:      factory,
		reservations: reservations,
		console:      console,
		eventBus:     eventBus,
		idGenerator:  idGenerator,
		logger:       logger,
	}
}

// BookTicket reports every outcome on the console, including an unknown
// class, and never returns an error. The reservation step runs for every
// recognised class even if the reservation system cannot serve it.
func (f *BookingFacade) BookTicket(ctx context.Context, classType string) {
	ticket, ok := f.factory.CreateTicket(classType)
	if !ok {
		f.console.Print(ctx, domain.InvalidTicketTypeMessage)
		pkgApp.LogInfo(ctx, f.logger, "invalid ticket type", map[string]interface{}{"class_type": classType})
		return
	}

	ticket.Book(ctx)

	reserved := f.reservations.Supports(classType)
	f.reservations.Reserve(ctx, classType)

	data := TicketBookedData{
		BookingID: f.idGenerator(),
		Class:     ticket.Class(),
		ClassType: classType,
		Reserved:  reserved,
		BookedAt:  time.Now().UTC(),
	}

	pkgApp.LogInfo(ctx, f.logger, "ticket booked", map[string]interface{}{
		"booking_id": data.BookingID,
		"class":      data.Class,
		"reserved":   data.Reserved,
	})

	if err := f.eventBus.Publish(ctx, NewTicketBookedEvent(data)); err != nil {
		pkgApp.LogError(ctx, f.logger, "error publishing ticket booked event", err, map[string]interface{}{
			"booking_id": data.BookingID,
		})
	}
}
