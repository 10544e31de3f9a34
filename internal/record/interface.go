package record

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, ip ListInput) (ListOutput, error)
	Delete(ctx context.Context, id int64) error
}
