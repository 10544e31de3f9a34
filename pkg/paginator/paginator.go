package paginator

const (
	// PageSize is the fixed number of records returned per page.
	PageSize = 20
	// SearchLimit is the maximum number of records a search may return.
	SearchLimit = 1000
)

// Cursor is an offset-based pagination cursor. A nil Offset means there is
// no further page to fetch, which is distinct from an Offset of zero
// (the first page).
type Cursor struct {
	Offset *int64 `json:"offset"`
}

// First returns a cursor pointing at the first page.
func First() Cursor {
	return Cursor{Offset: At(0)}
}

// Terminal returns the cursor that marks an exhausted collection.
func Terminal() Cursor {
	return Cursor{}
}

// At returns a pointer to the given offset, for building cursors inline.
func At(offset int64) *int64 {
	return &offset
}

// Done reports whether the cursor marks the end of the collection.
func (c Cursor) Done() bool {
	return c.Offset == nil
}

// Next computes the offset of the page after a read of count records
// starting at offset. A page holding at least PageSize records advances the
// cursor by PageSize; a short page means the collection is exhausted and
// nil is returned. A store that hands back more rows than requested still
// advances normally.
func Next(offset int64, count int) *int64 {
	if count >= PageSize {
		return At(offset + PageSize)
	}
	return nil
}
