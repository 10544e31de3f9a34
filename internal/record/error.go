package record

import "errors"

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrInvalidOffset  = errors.New("offset must be a non-negative integer")
)
