package application

import (
	"github.com/mateusmacedo/go-airline/pkg/domain"
)

const ListTicketClassesQueryName = "ListTicketClasses"

type listTicketClassesQuery struct{}

func (q listTicketClassesQuery) QueryName() string {
	return ListTicketClassesQueryName
}

func (q listTicketClassesQuery) Payload() struct{} {
	return struct{}{}
}

func NewListTicketClassesQuery() domain.Query[struct{}] {
	return listTicketClassesQuery{}
}
