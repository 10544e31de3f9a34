package browse

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"records-srv/internal/model"
	"records-srv/internal/record"
	"records-srv/pkg/paginator"
)

// fakeListing serves pages out of a fixed slice and records every offset it
// was asked for.
type fakeListing struct {
	records []model.Record
	offsets []int64
	listErr error

	// onList, when set, runs inside List before returning, letting tests
	// simulate re-entrant triggers while a request is in flight.
	onList func()
}

func (f *fakeListing) List(ctx context.Context, ip record.ListInput) (record.ListOutput, error) {
	if f.listErr != nil {
		return record.ListOutput{}, f.listErr
	}
	if ip.Offset == nil {
		return record.ListOutput{Records: []model.Record{}}, nil
	}

	f.offsets = append(f.offsets, *ip.Offset)
	if f.onList != nil {
		f.onList()
	}

	recs := paginator.Window(f.records, *ip.Offset, paginator.PageSize)
	return record.ListOutput{
		Records:    recs,
		NextOffset: paginator.Next(*ip.Offset, len(recs)),
	}, nil
}

func (f *fakeListing) Delete(ctx context.Context, id int64) error {
	return nil
}

func fakeRecords(n int) []model.Record {
	res := make([]model.Record, 0, n)
	for i := 1; i <= n; i++ {
		res = append(res, model.Record{ID: int64(i), Name: fmt.Sprintf("Person %d", i)})
	}
	return res
}

func TestLoader_LoadsPagesUntilExhausted(t *testing.T) {
	ctx := context.Background()
	listing := &fakeListing{records: fakeRecords(45)}

	var pages []record.ListOutput
	ld := NewLoader(listing, func(out record.ListOutput) {
		pages = append(pages, out)
	})

	// Each render pass re-syncs the sentinel at the bottom of the list and
	// the viewport scrolls into it.
	for i := 0; ld.Next() != nil && i < 10; i++ {
		target := int64(len(pages)) * 1000
		ld.Sync(ctx, target)
		ld.Observe(target - 800) // outside the zone
		ld.Observe(target - 10)  // entering fires the load
	}

	if len(pages) != 3 {
		t.Fatalf("loaded %d pages, want 3", len(pages))
	}
	if listing.offsets[0] != 0 || listing.offsets[1] != 20 || listing.offsets[2] != 40 {
		t.Errorf("requested offsets = %v, want [0 20 40]", listing.offsets)
	}
	if ld.Next() != nil {
		t.Errorf("Next() = %d after exhaustion, want nil", *ld.Next())
	}

	// A further sync/observe cycle must not fetch anything.
	ld.Sync(ctx, 9000)
	ld.Observe(9000)
	if len(listing.offsets) != 3 {
		t.Errorf("fetch happened past the terminal cursor: offsets = %v", listing.offsets)
	}
}

func TestLoader_AtMostOneInFlight(t *testing.T) {
	ctx := context.Background()
	listing := &fakeListing{records: fakeRecords(45)}

	ld := NewLoader(listing, nil)
	ld.Sync(ctx, 1000)

	// While the first request is being served, the viewport jitters across
	// the zone boundary; the re-entrant trigger must be ignored.
	listing.onList = func() {
		listing.onList = nil
		if !ld.Pending() {
			t.Error("Pending() = false inside an in-flight request")
		}
		ld.Observe(0)
		ld.Observe(990)
	}

	ld.Observe(990)

	if len(listing.offsets) != 1 {
		t.Errorf("requested offsets = %v, want exactly one request", listing.offsets)
	}
	if ld.Pending() {
		t.Error("Pending() = true after the request settled")
	}
}

func TestLoader_SyncBindsFreshCallback(t *testing.T) {
	ctx := context.Background()
	listing := &fakeListing{records: fakeRecords(45)}

	ld := NewLoader(listing, nil)

	ld.Sync(ctx, 1000)
	old := ld.handle

	// First page loads; cursor moves to 20.
	ld.Observe(990)

	// Re-sync for the new cursor then poke the stale handle directly: it
	// has been cancelled and must not fire the old closure.
	ld.Sync(ctx, 2000)
	old.Observe(990)

	if len(listing.offsets) != 1 {
		t.Fatalf("requested offsets = %v, stale observation must not fetch", listing.offsets)
	}

	// The fresh handle requests the new offset.
	ld.Observe(1990)
	if len(listing.offsets) != 2 || listing.offsets[1] != 20 {
		t.Errorf("requested offsets = %v, want [0 20]", listing.offsets)
	}
}

func TestLoader_ErrorKeepsCursorForRetry(t *testing.T) {
	ctx := context.Background()
	listing := &fakeListing{records: fakeRecords(45)}

	ld := NewLoader(listing, nil)
	ld.Sync(ctx, 1000)

	listing.listErr = errors.New("store unreachable")
	ld.Observe(990)

	if ld.Next() == nil || *ld.Next() != 0 {
		t.Fatalf("Next() = %v after failed fetch, want 0", ld.Next())
	}

	// Leaving and re-entering the zone retries the same page.
	listing.listErr = nil
	ld.Observe(0)
	ld.Observe(990)

	if len(listing.offsets) != 1 || listing.offsets[0] != 0 {
		t.Errorf("requested offsets = %v, want [0]", listing.offsets)
	}
	if ld.Next() == nil || *ld.Next() != 20 {
		t.Errorf("Next() = %v after retry, want 20", ld.Next())
	}
}

func TestLoader_Close(t *testing.T) {
	ctx := context.Background()
	listing := &fakeListing{records: fakeRecords(45)}

	ld := NewLoader(listing, nil)
	ld.Sync(ctx, 1000)
	ld.Close()

	ld.Observe(990)
	ld.Sync(ctx, 1000)
	ld.Observe(990)

	if len(listing.offsets) != 0 {
		t.Errorf("requested offsets = %v after Close, want none", listing.offsets)
	}
}
