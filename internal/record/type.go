package record

import "records-srv/internal/model"

// ListInput selects the listing mode for a single request. A non-empty
// SearchTerm always wins: the whole collection is searched and Offset is
// ignored. With an empty SearchTerm, a nil Offset is the terminal "no
// further page" state and a non-nil Offset reads one fixed-size page.
type ListInput struct {
	SearchTerm string
	Offset     *int64
}

// ListOutput is one page (or search result set) in store-natural order.
// NextOffset is nil when there is nothing further to fetch: always in search
// mode, and in pagination mode once the page came back short.
type ListOutput struct {
	Records    []model.Record
	NextOffset *int64
}
