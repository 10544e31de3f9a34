package postgres

import (
	"context"
	"database/sql"

	"records-srv/internal/model"
	"records-srv/internal/record/repository"

	"github.com/friendsofgo/errors"
)

func (r *implRepository) Search(ctx context.Context, opts repository.SearchOptions) ([]model.Record, error) {
	rows, err := r.db.QueryContext(ctx, querySearch, escapeLike(opts.Term), opts.Limit)
	if err != nil {
		r.l.Errorf(ctx, "internal.record.repository.postgres.Search.Query: %v", err)
		return nil, errors.Wrap(err, "search records")
	}
	defer rows.Close()

	return r.scanRecords(ctx, rows)
}

func (r *implRepository) Page(ctx context.Context, opts repository.PageOptions) ([]model.Record, error) {
	rows, err := r.db.QueryContext(ctx, queryPage, opts.Limit, opts.Offset)
	if err != nil {
		r.l.Errorf(ctx, "internal.record.repository.postgres.Page.Query: %v", err)
		return nil, errors.Wrap(err, "page records")
	}
	defer rows.Close()

	return r.scanRecords(ctx, rows)
}

func (r *implRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, queryDelete, id, r.clock())
	if err != nil {
		r.l.Errorf(ctx, "internal.record.repository.postgres.Delete.Exec: %v", err)
		return errors.Wrap(err, "delete record")
	}

	rows, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "internal.record.repository.postgres.Delete.RowsAffected: %v", err)
		return errors.Wrap(err, "delete record")
	}

	if rows == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *implRepository) scanRecords(ctx context.Context, rows *sql.Rows) ([]model.Record, error) {
	res := make([]model.Record, 0)
	for rows.Next() {
		var rec model.Record
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Username, &rec.Email, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			r.l.Errorf(ctx, "internal.record.repository.postgres.scanRecords.Scan: %v", err)
			return nil, errors.Wrap(err, "scan record")
		}
		res = append(res, rec)
	}

	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "internal.record.repository.postgres.scanRecords.Rows: %v", err)
		return nil, errors.Wrap(err, "iterate records")
	}

	return res, nil
}
