package health

import "context"

// Pinger checks storage availability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Counter reports how many records the storage holds.
type Counter interface {
	Counts() (prompts, collections int)
}
