package revalidate

import "context"

// Channel is the pub/sub channel carrying the "record listing is stale"
// signal. Consumers holding cached listing results must recompute on the
// next read after receiving it.
const Channel = "record_listing:stale"

//go:generate mockery --name Signal
type Signal interface {
	// Invalidate emits a single staleness notification for the record
	// listing. It carries no payload beyond the event itself.
	Invalidate(ctx context.Context) error
}
