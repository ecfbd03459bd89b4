package store

import (
	"context"
	"errors"
	"testing"

	"creditclear/internal/platform/store/pg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recTracer struct{ evs []pg.QueryEvent }

func (r *recTracer) OnQuery(_ context.Context, ev pg.QueryEvent) { r.evs = append(r.evs, ev) }

type scanFunc func(...any) error

func (f scanFunc) Scan(dst ...any) error { return f(dst...) }

// pgxRows embeds the interface so only the used methods need bodies
type pgxRows struct {
	pgx.Rows
	fields []pgconn.FieldDescription
}

func (r pgxRows) FieldDescriptions() []pgconn.FieldDescription { return r.fields }

type fakePgx struct {
	err  error
	scan error
	rows pgx.Rows
}

func (f fakePgx) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag("INSERT 0 1"), f.err
}

func (f fakePgx) Query(context.Context, string, ...any) (pgx.Rows, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

func (f fakePgx) QueryRow(context.Context, string, ...any) pgx.Row {
	return scanFunc(func(...any) error { return f.scan })
}

func TestTraced_EmitsPerStatement(t *testing.T) {
	tr := &recTracer{}
	q := traced{q: fakePgx{}, tracer: tr, slowMs: -1}
	ctx := context.Background()

	tag, err := q.Exec(ctx, "insert into predictions values ($1)", 1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, tag.RowsAffected())

	require.Len(t, tr.evs, 1)
	assert.Equal(t, "insert into predictions values ($1)", tr.evs[0].SQL)
	assert.Equal(t, []any{1}, tr.evs[0].Args)
	assert.False(t, tr.evs[0].Slow, "negative threshold never marks slow")

	// a zero threshold marks everything slow
	q.slowMs = 0
	_, _ = q.Exec(ctx, "select 1")
	assert.True(t, tr.evs[1].Slow)
}

func TestTraced_QueryRowReportsScanError(t *testing.T) {
	tr := &recTracer{}
	boom := errors.New("no rows")
	q := traced{q: fakePgx{scan: boom}, tracer: tr}

	r := q.QueryRow(context.Background(), "select 1")
	assert.Empty(t, tr.evs, "emit waits for Scan")

	var one int
	assert.ErrorIs(t, r.Scan(&one), boom)
	require.Len(t, tr.evs, 1)
	assert.ErrorIs(t, tr.evs[0].Err, boom)
}

func TestTraced_QueryAndColumns(t *testing.T) {
	tr := &recTracer{}
	boom := errors.New("bad sql")
	_, err := traced{q: fakePgx{err: boom}, tracer: tr}.Query(context.Background(), "selec")
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, tr.evs[0].Err, boom)

	rs, err := traced{q: fakePgx{rows: pgxRows{fields: []pgconn.FieldDescription{{Name: "category"}, {Name: "n"}}}}}.
		Query(context.Background(), "select category, n")
	require.NoError(t, err)
	assert.Equal(t, []string{"category", "n"}, rs.Columns())
}

// fakeTx records whether runTx committed or rolled back
type fakeTx struct {
	pgx.Tx
	committed, rolledBack bool
}

func (f *fakeTx) Commit(context.Context) error   { f.committed = true; return nil }
func (f *fakeTx) Rollback(context.Context) error { f.rolledBack = true; return nil }

func TestRunTx_CommitOrRollback(t *testing.T) {
	ctx := context.Background()

	tx := &fakeTx{}
	require.NoError(t, runTx(ctx, tx, traced{q: fakePgx{}}, func(RowQuerier) error { return nil }))
	assert.True(t, tx.committed)
	assert.False(t, tx.rolledBack)

	tx = &fakeTx{}
	boom := errors.New("boom")
	assert.ErrorIs(t, runTx(ctx, tx, traced{q: fakePgx{}}, func(RowQuerier) error { return boom }), boom)
	assert.True(t, tx.rolledBack)
	assert.False(t, tx.committed)
}
