package utils

import "github.com/google/uuid"

// NewRequestID returns a time-ordered identifier attached to every
// outbound backend request as X-Request-Id, so one login attempt can be
// correlated across client logs and backend logs. Falls back to a v4
// UUID if the v7 clock source misbehaves.
func NewRequestID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
