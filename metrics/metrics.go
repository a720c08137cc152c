package metrics

import (
	"context"
	"time"
)

// Counts represents the current size of the catalog.
type Counts struct {
	// Authors is the number of stored authors
	Authors int64 `json:"authors"`

	// Books is the number of stored books
	Books int64 `json:"books"`

	// Timestamp when the counts were collected
	Timestamp time.Time `json:"timestamp"`
}

// Collector defines the interface for collecting catalog metrics.
type Collector interface {
	// Collect gathers current record counts from the store
	Collect(ctx context.Context) (Counts, error)
}
