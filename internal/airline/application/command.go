package application

import (
	"context"

	"github.com/mateusmacedo/go-airline/pkg/domain"
)

const BookTicketCommandName = "BookTicket"

// BookTicketData carries the requested class label as typed by the customer.
type BookTicketData struct {
	ClassType string `json:"classType"`
}

// Command is an operation captured for later invocation.
type Command interface {
	Execute(ctx context.Context)
}

// BookingCommand defers facade.BookTicket(classType). Every Execute runs the
// full booking pipeline again.
type BookingCommand struct {
	facade    *BookingFacade
	classType string
}

func NewBookingCommand(facade *BookingFacade, classType string) *BookingCommand {
	return &BookingCommand{facade: facade, classType: classType}
}

func (c *BookingCommand) Execute(ctx context.Context) {
	c.facade.BookTicket(ctx, c.classType)
}

func (c *BookingCommand) CommandName() string {
	return BookTicketCommandName
}

func (c *BookingCommand) Payload() BookTicketData {
	return BookTicketData{ClassType: c.classType}
}

var (
	_ Command                        = (*BookingCommand)(nil)
	_ domain.Command[BookTicketData] = (*BookingCommand)(nil)
)
