package application

import (
	"time"

	airlineDomain "github.com/mateusmacedo/go-airline/internal/airline/domain"
	"github.com/mateusmacedo/go-airline/pkg/domain"
)

const TicketBookedEventName = "TicketBooked"

// TicketBookedData describes a completed booking. Reserved is false when the
// reservation system silently ignored the class.
type TicketBookedData struct {
	BookingID string                    `json:"bookingId"`
	Class     airlineDomain.TicketClass `json:"class"`
	ClassType string                    `json:"classType"`
	Reserved  bool                      `json:"reserved"`
	BookedAt  time.Time                 `json:"bookedAt"`
}

type ticketBookedEvent struct {
	data TicketBookedData
}

func (e ticketBookedEvent) EventName() string {
	return TicketBookedEventName
}

func (e ticketBookedEvent) Payload() TicketBookedData {
	return e.data
}

func NewTicketBookedEvent(data TicketBookedData) domain.Event[TicketBookedData] {
	return ticketBookedEvent{data: data}
}
