package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Builder returns a squirrel statement builder using $n placeholders.
func Builder() squirrel.StatementBuilderType {
	return psql
}

// Get runs a single-row query and scans it into a T.
func Get[T any](ctx context.Context, q Querier, b squirrel.Sqlizer) (T, error) {
	var dst T
	sql, args, err := b.ToSql()
	if err != nil {
		return dst, fmt.Errorf("build query: %w", err)
	}
	err = pgxscan.Get(ctx, q, &dst, sql, args...)
	return dst, err
}

// Select runs a query and scans every row into a []T.
func Select[T any](ctx context.Context, q Querier, b squirrel.Sqlizer) ([]T, error) {
	var dst []T
	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	if err := pgxscan.Select(ctx, q, &dst, sql, args...); err != nil {
		return nil, err
	}
	return dst, nil
}

// Exec runs a statement and returns the number of affected rows.
func Exec(ctx context.Context, q Querier, b squirrel.Sqlizer) (int64, error) {
	sql, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}
	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Count runs a SELECT count(*) style query and returns the scalar.
func Count(ctx context.Context, q Querier, b squirrel.Sqlizer) (int64, error) {
	sql, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}
	var n int64
	if err := q.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
