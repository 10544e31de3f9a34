package repository

import (
	"context"
	"errors"

	"records-srv/internal/model"
)

// ErrNotFound is returned when the requested record does not exist or has
// already been deleted.
var ErrNotFound = errors.New("not found")

//go:generate mockery --name Repository
type Repository interface {
	Search(ctx context.Context, opts SearchOptions) ([]model.Record, error)
	Page(ctx context.Context, opts PageOptions) ([]model.Record, error)
	Delete(ctx context.Context, id int64) error
}
