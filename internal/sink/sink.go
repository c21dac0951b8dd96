// Package sink consumes finished activity streams. The simulator core stays
// free of I/O; everything that persists or exports events lives here.
package sink

import (
	"context"

	"edpulse/internal/domain"
)

// EventSink accepts the completed ordered event stream for bulk persistence.
// Implementations report failures wrapping domain.ErrPersistence; the core
// propagates them unchanged and never retries, retry policy belongs to the
// caller.
type EventSink interface {
	Write(ctx context.Context, events []domain.ActivityEvent) error
}
