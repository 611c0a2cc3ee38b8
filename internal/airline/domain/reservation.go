package domain

import "context"

// ReservationSystem reserves a seat for a ticket class. Reserve has no
// outcome; Supports tells whether a class actually reaches the backing system.
type ReservationSystem interface {
	Reserve(ctx context.Context, classType string)
	Supports(classType string) bool
}
