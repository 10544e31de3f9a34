package usecase

import (
	"context"

	"records-srv/internal/model"
	"records-srv/internal/record"
	"records-srv/internal/record/repository"
	"records-srv/pkg/paginator"
)

// List runs one listing request. Mode precedence:
//  1. a non-empty search term searches the whole collection and ignores the
//     offset entirely; search results never paginate further,
//  2. a nil offset is the terminal state and returns an empty result,
//  3. otherwise exactly one page is read from the offset.
func (uc *usecase) List(ctx context.Context, ip record.ListInput) (record.ListOutput, error) {
	if ip.SearchTerm != "" {
		recs, err := uc.repo.Search(ctx, repository.SearchOptions{
			Term:  ip.SearchTerm,
			Limit: paginator.SearchLimit,
		})
		if err != nil {
			uc.l.Errorf(ctx, "internal.record.usecase.List.Search: %v", err)
			return record.ListOutput{}, err
		}

		return record.ListOutput{Records: recs}, nil
	}

	if ip.Offset == nil {
		return record.ListOutput{Records: []model.Record{}}, nil
	}

	if *ip.Offset < 0 {
		return record.ListOutput{}, record.ErrInvalidOffset
	}

	recs, err := uc.repo.Page(ctx, repository.PageOptions{
		Offset: *ip.Offset,
		Limit:  paginator.PageSize,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.record.usecase.List.Page: %v", err)
		return record.ListOutput{}, err
	}

	return record.ListOutput{
		Records:    recs,
		NextOffset: paginator.Next(*ip.Offset, len(recs)),
	}, nil
}

// Delete removes the record and emits one staleness signal on success. A
// failed delete emits nothing, so caches holding still-valid data are not
// discarded over a write that never happened.
func (uc *usecase) Delete(ctx context.Context, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		if err == repository.ErrNotFound {
			return record.ErrRecordNotFound
		}
		uc.l.Errorf(ctx, "internal.record.usecase.Delete: %v", err)
		return err
	}

	if err := uc.signal.Invalidate(ctx); err != nil {
		// The record is gone; consumers that miss the signal fall back to
		// their own refresh policy. Do not fail the delete over it.
		uc.l.Warnf(ctx, "internal.record.usecase.Delete.Invalidate: %v", err)
	}

	return nil
}
