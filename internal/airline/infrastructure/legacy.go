package infrastructure

import (
	"context"

	"github.com/mateusmacedo/go-airline/internal/airline/domain"
	"github.com/mateusmacedo/go-airline/pkg/application"
)

// LegacyBookingSystem only knows how to reserve economy seats.
type LegacyBookingSystem struct {
	console domain.Console
}

func NewLegacyBookingSystem(console domain.Console) *LegacyBookingSystem {
	return &LegacyBookingSystem{console: console}
}

func (s *LegacyBookingSystem) ReserveEconomy(ctx context.Context) {
	s.console.Print(ctx, domain.LegacyEconomyReservedMessage)
}

// LegacyBookingAdapter exposes the legacy system as a domain.ReservationSystem.
// Classes missing from operations are ignored without any console output.
type LegacyBookingAdapter struct {
	operations map[domain.TicketClass]func(ctx context.Context)
	logger     application.AppLogger
}

func NewLegacyBookingAdapter(legacy *LegacyBookingSystem, logger application.AppLogger) *LegacyBookingAdapter {
	return &LegacyBookingAdapter{
		operations: map[domain.TicketClass]func(ctx context.Context){
			domain.Economy: legacy.ReserveEconomy,
		},
		logger: logger,
	}
}

func (a *LegacyBookingAdapter) Reserve(ctx context.Context, classType string) {
	operation, ok := a.operation(classType)
	if !ok {
		// TODO: route Business reservations once the legacy system exposes a call for them.
		application.LogDebug(ctx, a.logger, "reservation not supported by legacy system", map[string]interface{}{
			"class_type": classType,
		})
		return
	}

	operation(ctx)
}

func (a *LegacyBookingAdapter) Supports(classType string) bool {
	_, ok := a.operation(classType)
	return ok
}

func (a *LegacyBookingAdapter) operation(classType string) (func(ctx context.Context), bool) {
	class, ok := domain.ParseTicketClass(classType)
	if !ok {
		return nil, false
	}
	operation, ok := a.operations[class]
	return operation, ok
}

var _ domain.ReservationSystem = (*LegacyBookingAdapter)(nil)
