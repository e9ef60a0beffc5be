package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

type Repos struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repos { return &Repos{db: db} }

// getOne runs a single-row query. A missing row is not an error: it yields nil.
func getOne[T any](ctx context.Context, db *sqlx.DB, query string, args ...any) (*T, error) {
	var out T
	err := db.GetContext(ctx, &out, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// selectIn loads the rows whose id is in ids. Duplicated ids yield one row.
func selectIn[T any](ctx context.Context, db *sqlx.DB, query string, ids []int64) ([]T, error) {
	out := []T{}
	if len(ids) == 0 {
		return out, nil
	}
	q, args, err := sqlx.In(query, ids)
	if err != nil {
		return nil, err
	}
	err = db.SelectContext(ctx, &out, db.Rebind(q), args...)
	return out, err
}
