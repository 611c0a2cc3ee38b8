package application

import (
	airlineDomain "github.com/mateusmacedo/go-airline/internal/airline/domain"
	pkgApp "github.com/mateusmacedo/go-airline/pkg/application"
	pkgDomain "github.com/mateusmacedo/go-airline/pkg/domain"
)

type (
	BookTicketCommandBus     = pkgApp.CommandBus[pkgDomain.Command[BookTicketData], BookTicketData]
	BookTicketCommandHandler = pkgApp.CommandHandler[pkgDomain.Command[BookTicketData], BookTicketData]

	TicketClassesQueryBus     = pkgApp.QueryBus[pkgDomain.Query[struct{}], struct{}, []airlineDomain.TicketClass]
	TicketClassesQueryHandler = pkgApp.QueryHandler[pkgDomain.Query[struct{}], struct{}, []airlineDomain.TicketClass]

	TicketBookedEventBus     = pkgApp.EventBus[pkgDomain.Event[TicketBookedData], TicketBookedData]
	TicketBookedEventHandler = pkgApp.EventHandler[pkgDomain.Event[TicketBookedData], TicketBookedData]
)
