package domain

import (
	"context"
	"strings"
)

// TicketClass is the closed set of bookable classes.
type TicketClass string

const (
	Economy  TicketClass = "Economy"
	Business TicketClass = "Business"
)

const (
	EconomyBookedMessage         = "Booking Economy Class Ticket"
	BusinessBookedMessage        = "Booking Business Class Ticket"
	InvalidTicketTypeMessage     = "Invalid ticket type"
	LegacyEconomyReservedMessage = "Legacy system reserved an economy ticket."
)

// SupportedClasses lists every TicketClass in a stable order.
func SupportedClasses() []TicketClass {
	return []TicketClass{Economy, Business}
}

// ParseTicketClass matches label against the supported classes ignoring case.
func ParseTicketClass(label string) (TicketClass, bool) {
	for _, class := range SupportedClasses() {
		if strings.EqualFold(label, string(class)) {
			return class, true
		}
	}
	return "", false
}

// Console receives the human-readable lines produced while booking.
type Console interface {
	Print(ctx context.Context, line string)
}

type Ticket interface {
	Class() TicketClass
	Book(ctx context.Context)
}

type economyTicket struct {
	console Console
}

func (economyTicket) Class() TicketClass { return Economy }

func (t economyTicket) Book(ctx context.Context) {
	t.console.Print(ctx, EconomyBookedMessage)
}

type businessTicket struct {
	console Console
}

func (businessTicket) Class() TicketClass { return Business }

func (t businessTicket) Book(ctx context.Context) {
	t.console.Print(ctx, BusinessBookedMessage)
}
