package domain

// IDGenerator produces identifiers for new aggregates and messages.
type IDGenerator[T comparable] func() T
