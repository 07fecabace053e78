package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"
)

// All executes the query and returns all matching rows.
func (q *QueryBuilder[T]) All(ctx context.Context) ([]T, error) {
	var results []T
	err := WithRetry(ctx, func() error {
		results = results[:0]
		sel := q.applySelect(q.idb.NewSelect().Model(&results))
		return sel.Scan(ctx)
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// First executes the query and returns the first matching row,
// or (nil, nil) when no row matches.
func (q *QueryBuilder[T]) First(ctx context.Context) (*T, error) {
	var result T
	err := WithRetry(ctx, func() error {
		sel := q.applySelect(q.idb.NewSelect().Model(&result)).Limit(1)
		return sel.Scan(ctx)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

// Count returns the number of matching rows.
func (q *QueryBuilder[T]) Count(ctx context.Context) (int, error) {
	var count int
	err := WithRetry(ctx, func() error {
		var model T
		sel := q.idb.NewSelect().Model(&model)
		sel = applyWheresSelect(sel, q.wheres)
		for _, j := range q.joins {
			sel = sel.Join(j.sql, j.args...)
		}
		var err error
		count, err = sel.Count(ctx)
		return err
	})
	return count, err
}

// Exists reports whether any row matches.
func (q *QueryBuilder[T]) Exists(ctx context.Context) (bool, error) {
	var exists bool
	err := WithRetry(ctx, func() error {
		var model T
		sel := applyWheresSelect(q.idb.NewSelect().Model(&model), q.wheres)
		var err error
		exists, err = sel.Exists(ctx)
		return err
	})
	return exists, err
}

// Insert inserts the model and returns it with database defaults filled in.
func (q *QueryBuilder[T]) Insert(ctx context.Context, model *T) (*T, error) {
	err := WithRetry(ctx, func() error {
		_, err := q.idb.NewInsert().Model(model).Returning("*").Exec(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return model, nil
}

// Update applies the given column/value pairs to all matching rows and
// returns the number of rows affected.
func (q *QueryBuilder[T]) Update(ctx context.Context, updates map[string]any) (int64, error) {
	var affected int64
	err := WithRetry(ctx, func() error {
		var model T
		upd := q.idb.NewUpdate().Model(&model)
		for col, val := range updates {
			upd = upd.Set("? = ?", bun.Ident(col), val)
		}
		upd = applyWheresUpdate(upd, q.wheres)
		res, err := upd.Exec(ctx)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	return affected, err
}

// Delete removes all matching rows and returns the number of rows affected.
func (q *QueryBuilder[T]) Delete(ctx context.Context) (int64, error) {
	var affected int64
	err := WithRetry(ctx, func() error {
		var model T
		del := applyWheresDelete(q.idb.NewDelete().Model(&model), q.wheres)
		res, err := del.Exec(ctx)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	return affected, err
}
