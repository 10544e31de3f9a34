// Package browse holds the client-side controllers of the listing: the
// search input controller that turns keystrokes into navigable query state,
// and the incremental loader that fetches the next page when the view
// scrolls near its sentinel. Both follow a cooperative, single-goroutine
// scheduling model; callbacks run synchronously inside the update turn.
package browse

import "net/url"

// Navigate is invoked with the updated query parameters whenever the search
// input changes the query state.
type Navigate func(values url.Values)

// SearchInput coalesces a stream of raw input values into the `q` query
// parameter. Updates are applied in arrival order; last write wins.
type SearchInput struct {
	values      url.Values
	navigate    Navigate
	outstanding int
}

// NewSearchInput returns a controller seeded with the current query
// parameters. The initial values are copied; the caller keeps ownership.
func NewSearchInput(initial url.Values, navigate Navigate) *SearchInput {
	values := url.Values{}
	for k, vs := range initial {
		values[k] = append([]string(nil), vs...)
	}

	return &SearchInput{
		values:   values,
		navigate: navigate,
	}
}

// Set applies one input value change. A nil value means the input is still
// uninitialized and nothing happens. An empty string clears the search
// parameter; anything else sets it literally, untrimmed.
func (s *SearchInput) Set(value *string) {
	if value == nil {
		return
	}

	if *value == "" {
		s.values.Del("q")
	} else {
		s.values.Set("q", *value)
	}

	s.outstanding++
	if s.navigate != nil {
		s.navigate(s.snapshot())
	}
}

// Settle marks one triggered recomputation as finished. The host calls it
// when the navigation resolves; Pending turns false once every outstanding
// update has settled.
func (s *SearchInput) Settle() {
	if s.outstanding > 0 {
		s.outstanding--
	}
}

// Pending reports whether a triggered recomputation is still in flight. It
// exists for presentation (a spinner), not correctness gating.
func (s *SearchInput) Pending() bool {
	return s.outstanding > 0
}

// Values returns the current query state.
func (s *SearchInput) Values() url.Values {
	return s.snapshot()
}

func (s *SearchInput) snapshot() url.Values {
	values := url.Values{}
	for k, vs := range s.values {
		values[k] = append([]string(nil), vs...)
	}
	return values
}
