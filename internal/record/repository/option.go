package repository

// SearchOptions contains options for a substring search over record names.
// The match is case-insensitive and runs across the entire collection in
// store-natural order.
type SearchOptions struct {
	Term  string
	Limit int64
}

// PageOptions contains options for reading one page in store-natural order.
type PageOptions struct {
	Offset int64
	Limit  int64
}
