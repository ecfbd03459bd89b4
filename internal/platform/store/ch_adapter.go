package store

import (
	"context"
	"fmt"

	"creditclear/internal/platform/store/ch"
)

// chClient is the part of *ch.CH the adapter drives
type chClient interface {
	Insert(ctx context.Context, table string, rows [][]any) error
	Query(ctx context.Context, sql string, args ...any) (ch.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) error
	Ping(ctx context.Context) error
	Close() error
}

// chAdapter narrows Insert to row batches and Query to store.Rows, the rest passes through
type chAdapter struct {
	chClient
}

var (
	_ Clickhouse = chAdapter{}
	_ Pinger     = chAdapter{}
)

func newCHAdapter(c chClient) Clickhouse { return chAdapter{c} }

func (a chAdapter) Insert(ctx context.Context, table string, data any) error {
	switch v := data.(type) {
	case [][]any:
		return a.chClient.Insert(ctx, table, v)
	case []any:
		return a.chClient.Insert(ctx, table, [][]any{v})
	default:
		return fmt.Errorf("store: clickhouse insert into %s wants [][]any, got %T", table, data)
	}
}

func (a chAdapter) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	r, err := a.chClient.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return chRows{r}, nil
}

// chRows drops the Close error, store.Rows.Close has none
type chRows struct{ ch.Rows }

func (r chRows) Close() { _ = r.Rows.Close() }
