package domain

// Command is a named request to change state, carrying a typed payload.
type Command[T any] interface {
	CommandName() string
	Payload() T
}
