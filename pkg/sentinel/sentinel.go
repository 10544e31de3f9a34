// Package sentinel implements a proximity-crossing detector over a stream of
// scroll positions. A sentinel marks a fixed target position; when the
// observed viewport edge comes within the proximity zone of that target the
// armed callback fires exactly once, and it cannot fire again until the edge
// has left the zone and entered it afresh.
package sentinel

// DefaultProximity is the default size of the proximity zone, in the same
// units as the observed positions.
const DefaultProximity = 50

// Callback is invoked synchronously inside the Observe turn that crossed
// into the proximity zone.
type Callback func()

// Handle is an armed observation. All methods must be called from a single
// goroutine; the detector follows a cooperative, event-driven model and
// never invokes the callback concurrently.
type Handle struct {
	target    int64
	proximity int64
	fn        Callback
	inside    bool
	cancelled bool
}

// Arm starts observing the target position with the given proximity zone and
// callback. A proximity of zero or less falls back to DefaultProximity.
func Arm(target, proximity int64, fn Callback) *Handle {
	if proximity <= 0 {
		proximity = DefaultProximity
	}
	return &Handle{
		target:    target,
		proximity: proximity,
		fn:        fn,
	}
}

// Observe feeds the current viewport edge position to the detector. On the
// transition from outside to inside the proximity zone the callback fires
// once; staying inside the zone does not re-fire. Leaving the zone re-arms
// the detector for the next entry.
func (h *Handle) Observe(edge int64) {
	if h.cancelled {
		return
	}

	inside := edge+h.proximity >= h.target
	entered := inside && !h.inside
	h.inside = inside

	if entered && h.fn != nil {
		h.fn()
	}
}

// Cancel tears the observation down. No callback fires after Cancel returns,
// regardless of subsequent Observe calls.
func (h *Handle) Cancel() {
	h.cancelled = true
	h.fn = nil
}

// Cancelled reports whether the observation has been torn down.
func (h *Handle) Cancelled() bool {
	return h.cancelled
}
