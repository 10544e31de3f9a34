package browse

import (
	"context"

	"records-srv/internal/record"
	"records-srv/pkg/paginator"
	"records-srv/pkg/sentinel"
)

// OnPage receives each fetched page in arrival order.
type OnPage func(out record.ListOutput)

// Loader drives incremental loading: it owns the next-page cursor, arms a
// sentinel observation per cursor value, and fetches at most one page at a
// time. A trigger that fires while a fetch is in flight is ignored rather
// than queued.
type Loader struct {
	uc     record.UseCase
	onPage OnPage

	next     *int64
	handle   *sentinel.Handle
	inFlight bool
	closed   bool
}

// NewLoader returns a loader positioned at the first page. The initial page
// is fetched by the first sentinel fire like every later one.
func NewLoader(uc record.UseCase, onPage OnPage) *Loader {
	return &Loader{
		uc:     uc,
		onPage: onPage,
		next:   paginator.At(0),
	}
}

// Sync (re)arms the sentinel at the given target position. It must be called
// after every render pass that moves the sentinel or changes the next-page
// cursor: the previous observation is torn down and a fresh callback closure
// bound to the current cursor is armed, so a stale closure can never fire.
// Once the cursor is terminal the loader stays disarmed.
func (ld *Loader) Sync(ctx context.Context, target int64) {
	if ld.handle != nil {
		ld.handle.Cancel()
		ld.handle = nil
	}

	if ld.closed || ld.next == nil {
		return
	}

	offset := *ld.next
	ld.handle = sentinel.Arm(target, sentinel.DefaultProximity, func() {
		ld.load(ctx, offset)
	})
}

// Observe forwards the current viewport edge position to the armed sentinel.
func (ld *Loader) Observe(edge int64) {
	if ld.handle == nil {
		return
	}
	ld.handle.Observe(edge)
}

// Pending reports whether a page fetch is in flight.
func (ld *Loader) Pending() bool {
	return ld.inFlight
}

// Next returns the current next-page cursor; nil means exhausted.
func (ld *Loader) Next() *int64 {
	return ld.next
}

// Close tears the loader down. No page fetch starts after Close.
func (ld *Loader) Close() {
	ld.closed = true
	if ld.handle != nil {
		ld.handle.Cancel()
		ld.handle = nil
	}
}

func (ld *Loader) load(ctx context.Context, offset int64) {
	if ld.inFlight || ld.closed {
		return
	}
	ld.inFlight = true
	defer func() { ld.inFlight = false }()

	out, err := ld.uc.List(ctx, record.ListInput{Offset: paginator.At(offset)})
	if err != nil {
		// Keep the cursor; the next fresh zone entry retries the same page.
		return
	}

	ld.next = out.NextOffset
	if ld.onPage != nil {
		ld.onPage(out)
	}
}
