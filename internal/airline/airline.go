package airline

import (
	"context"

	"github.com/go-chi/chi/v5"

	"github.com/mateusmacedo/go-airline/internal/airline/application"
	"github.com/mateusmacedo/go-airline/internal/airline/domain"
	"github.com/mateusmacedo/go-airline/internal/airline/infrastructure"
	pkgApp "github.com/mateusmacedo/go-airline/pkg/application"
	pkgDomain "github.com/mateusmacedo/go-airline/pkg/domain"
)

type AirlineSlice struct {
	console     domain.Console
	factory     *domain.TicketFactory
	facade      *application.BookingFacade
	logger      pkgApp.AppLogger
	httpHandler *infrastructure.AirlineHTTPHandler
}

func NewAirlineSlice(
	commandBus application.BookTicketCommandBus,
	queryBus application.TicketClassesQueryBus,
	eventBus application.TicketBookedEventBus,
	console domain.Console,
	idGenerator pkgDomain.IDGenerator[string],
	logger pkgApp.AppLogger,
) *AirlineSlice {
	factory := domain.NewTicketFactory(console)
	reservations := infrastructure.NewLegacyBookingAdapter(infrastructure.NewLegacyBookingSystem(console), logger)
	facade := application.NewBookingFacade(factory, reservations, console, eventBus, idGenerator, logger)

	commandBus.RegisterHandler(application.BookTicketCommandName, application.NewBookTicketHandler(facade, logger))
	queryBus.RegisterHandler(application.ListTicketClassesQueryName, application.NewListTicketClassesHandler(logger))
	eventBus.RegisterHandler(application.TicketBookedEventName, application.NewTicketBookedEventHandler(logger))

	httpHandler := infrastructure.NewAirlineHTTPHandler(commandBus, queryBus, facade, GetInstance().ID(), logger)

	return &AirlineSlice{
		console:     console,
		factory:     factory,
		facade:      facade,
		logger:      logger,
		httpHandler: httpHandler,
	}
}

func (s *AirlineSlice) Facade() *application.BookingFacade {
	return s.facade
}

func (s *AirlineSlice) Factory() *domain.TicketFactory {
	return s.factory
}

func (s *AirlineSlice) RegisterRoutes(router chi.Router) {
	s.httpHandler.RegisterRoutes(router)
}

// RunDemo walks through every component once, in a fixed order.
func (s *AirlineSlice) RunDemo(ctx context.Context) {
	system := GetInstance()
	pkgApp.LogInfo(ctx, s.logger, "airline system ready", map[string]interface{}{
		"airline_system_id": system.ID(),
		"created_at":        system.CreatedAt(),
	})

	if ticket, ok := s.factory.CreateTicket(string(domain.Economy)); ok {
		ticket.Book(ctx)
	}

	reservations := infrastructure.NewLegacyBookingAdapter(infrastructure.NewLegacyBookingSystem(s.console), s.logger)
	reservations.Reserve(ctx, string(domain.Economy))

	s.facade.BookTicket(ctx, string(domain.Business))

	var command application.Command = application.NewBookingCommand(s.facade, string(domain.Economy))
	command.Execute(ctx)
}
