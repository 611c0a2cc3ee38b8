package infrastructure

import (
	"github.com/google/uuid"

	"github.com/mateusmacedo/go-airline/pkg/domain"
)

func GenerateUUID() string {
	return uuid.New().String()
}

func NewUUIDGenerator() domain.IDGenerator[string] {
	return GenerateUUID
}

type namedCommand[T any] struct {
	commandName string
	payload     T
}

func (c *namedCommand[T]) CommandName() string { return c.commandName }
func (c *namedCommand[T]) Payload() T          { return c.payload }

// NewNamedCommand rebuilds a command received from a transport.
func NewNamedCommand[T any](commandName string, payload T) domain.Command[T] {
	return &namedCommand[T]{commandName: commandName, payload: payload}
}

type namedEvent[T any] struct {
	eventName string
	payload   T
}

func (e *namedEvent[T]) EventName() string { return e.eventName }
func (e *namedEvent[T]) Payload() T        { return e.payload }

// NewNamedEvent rebuilds an event received from a transport.
func NewNamedEvent[T any](eventName string, payload T) domain.Event[T] {
	return &namedEvent[T]{eventName: eventName, payload: payload}
}
