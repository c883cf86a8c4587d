package domain

import (
	"time"

	"github.com/google/uuid"
)

// NewID returns a random identifier for a new entity.
func NewID() string { return uuid.NewString() }

// Now returns the current wall-clock time in UTC.
func Now() time.Time { return time.Now().UTC() }
