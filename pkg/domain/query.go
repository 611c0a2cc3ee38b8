package domain

// Query is a named read request. Queries without input use struct{} as payload.
type Query[T any] interface {
	QueryName() string
	Payload() T
}
