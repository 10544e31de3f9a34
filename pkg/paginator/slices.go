package paginator

// Window returns the sub-slice of limit items starting at offset, clamped to
// the bounds of the slice. An offset at or past the end yields an empty
// slice, not an error.
func Window[T any](slice []T, offset, limit int64) []T {
	total := int64(len(slice))

	if offset < 0 {
		offset = 0
	}
	if offset >= total {
		return []T{}
	}

	end := offset + limit
	if end > total {
		end = total
	}

	return slice[offset:end]
}
