package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"edpulse/internal/infra"
)

// fakeSQL satisfies infra.SQLExecutor with canned result sets keyed by the
// sqlinline constant, so handlers can be exercised without a live database.
type fakeSQL struct {
	rows map[string][][]any
}

func (f *fakeSQL) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (f *fakeSQL) QueryRow(_ context.Context, query string, _ ...any) pgx.Row {
	rows, ok := f.rows[query]
	if !ok || len(rows) == 0 {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return fakeRow{values: rows[0]}
}

func (f *fakeSQL) Query(_ context.Context, query string, _ ...any) (pgx.Rows, error) {
	rows, ok := f.rows[query]
	if !ok {
		return nil, fmt.Errorf("unexpected query: %s", query)
	}
	return &fakeRows{values: rows}, nil
}

var _ infra.SQLExecutor = (*fakeSQL)(nil)

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return scanInto(r.values, dest)
}

type fakeRows struct {
	values [][]any
	idx    int
}

func (r *fakeRows) Next() bool {
	if r.idx >= len(r.values) {
		return false
	}
	r.idx++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	if r.idx == 0 || r.idx > len(r.values) {
		return pgx.ErrNoRows
	}
	return scanInto(r.values[r.idx-1], dest)
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

var _ pgx.Rows = (*fakeRows)(nil)

func scanInto(values []any, dest []any) error {
	if len(values) != len(dest) {
		return fmt.Errorf("scan expects %d values, got %d destinations", len(values), len(dest))
	}
	for i, v := range values {
		switch d := dest[i].(type) {
		case *int64:
			*d = v.(int64)
		case *int:
			*d = v.(int)
		case *float64:
			*d = v.(float64)
		case *string:
			*d = v.(string)
		case *time.Time:
			*d = v.(time.Time)
		case *bool:
			*d = v.(bool)
		default:
			return fmt.Errorf("unsupported scan destination %T", dest[i])
		}
	}
	return nil
}
