package airline

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// AirlineSystem is the process-wide registry. It is created on first use and never torn down.
type AirlineSystem struct {
	id        string
	createdAt time.Time
}

var (
	instance     *AirlineSystem
	instanceOnce sync.Once
)

// GetInstance is safe for concurrent use; every caller gets the same pointer.
func GetInstance() *AirlineSystem {
	instanceOnce.Do(func() {
		instance = &AirlineSystem{
			id:        uuid.NewString(),
			createdAt: time.Now().UTC(),
		}
	})
	return instance
}

func (s *AirlineSystem) ID() string {
	return s.id
}

func (s *AirlineSystem) CreatedAt() time.Time {
	return s.createdAt
}
