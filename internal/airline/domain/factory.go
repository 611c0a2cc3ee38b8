package domain

type TicketFactory struct {
	console Console
}

func NewTicketFactory(console Console) *TicketFactory {
	return &TicketFactory{console: console}
}

// CreateTicket returns false for any label that is not a supported class.
func (f *TicketFactory) CreateTicket(classType string) (Ticket, bool) {
	class, ok := ParseTicketClass(classType)
	if !ok {
		return nil, false
	}

	switch class {
	case Economy:
		return economyTicket{console: f.console}, true
	case Business:
		return businessTicket{console: f.console}, true
	}
	return nil, false
}
