package application

import (
	"context"

	"github.com/mateusmacedo/go-airline/internal/airline/domain"
	pkgApp "github.com/mateusmacedo/go-airline/pkg/application"
	pkgDomain "github.com/mateusmacedo/go-airline/pkg/domain"
)

type bookTicketHandler struct {
	facade *BookingFacade
	logger pkgApp.AppLogger
}

func (h *bookTicketHandler) Handle(ctx context.Context, command pkgDomain.Command[BookTicketData]) error {
	if ctx.Err() != nil {
		pkgApp.LogError(ctx, h.logger, "context cancelled", ctx.Err(), nil)
		return ctx.Err()
	}

	data := command.Payload()
	pkgApp.LogDebug(ctx, h.logger, "executing booking command", map[string]interface{}{"class_type": data.ClassType})
	NewBookingCommand(h.facade, data.ClassType).Execute(ctx)
	return nil
}

func NewBookTicketHandler(facade *BookingFacade, logger pkgApp.AppLogger) BookTicketCommandHandler {
	return &bookTicketHandler{
		facade: facade,
		logger: logger,
	}
}

type listTicketClassesHandler struct {
	logger pkgApp.AppLogger
}

func (h *listTicketClassesHandler) Handle(ctx context.Context, _ pkgDomain.Query[struct{}]) ([]domain.TicketClass, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	classes := domain.SupportedClasses()
	pkgApp.LogDebug(ctx, h.logger, "ticket classes listed", map[string]interface{}{"count": len(classes)})
	return classes, nil
}

func NewListTicketClassesHandler(logger pkgApp.AppLogger) TicketClassesQueryHandler {
	return &listTicketClassesHandler{logger: logger}
}

type ticketBookedEventHandler struct {
	logger pkgApp.AppLogger
}

func (h *ticketBookedEventHandler) Handle(ctx context.Context, event pkgDomain.Event[TicketBookedData]) error {
	if ctx.Err() != nil {
		pkgApp.LogError(ctx, h.logger, "context cancelled", ctx.Err(), nil)
		return ctx.Err()
	}

	data := event.Payload()
	fields := map[string]interface{}{
		"event_name": event.EventName(),
		"booking_id": data.BookingID,
		"class":      data.Class,
		"reserved":   data.Reserved,
	}
	if !data.Reserved {
		pkgApp.LogInfo(ctx, h.logger, "ticket booked without reservation", fields)
		return nil
	}

	pkgApp.LogInfo(ctx, h.logger, "ticket booked event received", fields)
	return nil
}

func NewTicketBookedEventHandler(logger pkgApp.AppLogger) TicketBookedEventHandler {
	return &ticketBookedEventHandler{logger: logger}
}
