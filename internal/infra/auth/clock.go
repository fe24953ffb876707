package auth

import (
	"time"

	"notekeeper/internal/domain/service"
)

// NewSystemClock returns the wall clock in UTC.
func NewSystemClock() service.Clock {
	return service.ClockFunc(func() time.Time {
		return time.Now().UTC()
	})
}
