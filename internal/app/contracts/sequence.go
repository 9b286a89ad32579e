package contracts

import "context"

// CounterRepository increments one durable counter and returns the new value.
// The increment must be atomic across processes.
type CounterRepository interface {
	IncrementAndGet(ctx context.Context, key string) (int64, error)
}

// SequenceService issues formatted period-scoped identifiers such as
// CLM-202608-00042.
type SequenceService interface {
	Next(ctx context.Context, prefix string) (string, error)
}
