package domain

// Event is a named fact that already happened, carrying a typed payload.
type Event[T any] interface {
	EventName() string
	Payload() T
}
