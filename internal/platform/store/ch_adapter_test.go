package store

import (
	"context"
	"errors"
	"testing"

	"creditclear/internal/platform/store/ch"
)

type fakeCH struct {
	table   string
	rows    [][]any
	pingErr error
	closed  bool
}

func (f *fakeCH) Insert(_ context.Context, table string, rows [][]any) error {
	f.table, f.rows = table, rows
	return nil
}

func (f *fakeCH) Query(context.Context, string, ...any) (ch.Rows, error) {
	return nil, errors.New("no rows")
}

func (f *fakeCH) Exec(context.Context, string, ...any) error { return nil }
func (f *fakeCH) Ping(context.Context) error               { return f.pingErr }
func (f *fakeCH) Close() error                             { f.closed = true; return nil }

func TestCHAdapter_InsertShape(t *testing.T) {
	t.Parallel()

	f := &fakeCH{}
	a := newCHAdapter(f)

	if err := a.Insert(context.Background(), "prediction_events", [][]any{{"x", 1}}); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if f.table != "prediction_events" || len(f.rows) != 1 {
		t.Fatalf("insert not forwarded: %+v", f)
	}
	if err := a.Insert(context.Background(), "prediction_events", []any{"y", 2}); err != nil || len(f.rows) != 1 || f.rows[0][0] != "y" {
		t.Fatalf("single row not wrapped: %v %+v", err, f.rows)
	}
	if err := a.Insert(context.Background(), "t", []string{"nope"}); err == nil {
		t.Fatalf("expected shape error")
	}
}

func TestCHAdapter_QueryErrorAndClose(t *testing.T) {
	t.Parallel()

	f := &fakeCH{}
	a := newCHAdapter(f)
	if _, err := a.Query(context.Background(), "SELECT 1"); err == nil {
		t.Fatalf("expected query error")
	}
	if err := a.Close(); err != nil || !f.closed {
		t.Fatalf("Close not forwarded")
	}
}

func TestGuard_CH_PingError(t *testing.T) {
	t.Parallel()

	s := &Store{CH: newCHAdapter(&fakeCH{pingErr: errors.New("down")})}
	if err := s.Guard(context.Background()); err == nil {
		t.Fatalf("expected ch ping error")
	}

	s = &Store{CH: newCHAdapter(&fakeCH{})}
	if err := s.Guard(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
