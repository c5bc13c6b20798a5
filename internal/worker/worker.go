package worker

import (
	"context"
)

// Worker is a long running stream consumer
type Worker interface {
	// Start blocks until the worker is stopped or ctx is done
	Start(ctx context.Context) error

	// Stop signals Start to return; safe to call more than once
	Stop() error

	Name() string
}
