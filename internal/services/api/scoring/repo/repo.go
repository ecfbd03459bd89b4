// Package repo provides postgres and clickhouse access for scoring
package repo

import (
	"context"
	_ "embed"
	"time"

	"creditclear/internal/modkit/repokit"
	"creditclear/internal/platform/store"
	pstrings "creditclear/internal/platform/strings"

	"github.com/google/uuid"
)

//go:embed schema.sql
var schemaSQL string

// Repo is the minimal persistence surface for recorded predictions
type Repo interface {
	Migrate(ctx context.Context) error
	Insert(ctx context.Context, rows ...Prediction) error
	Recent(ctx context.Context, partnerID string, limit int) ([]Prediction, error)
	Get(ctx context.Context, id uuid.UUID) (Prediction, error)
}

// Prediction is one row of the predictions table
// Probabilities and Features hold raw json
type Prediction struct {
	ID            uuid.UUID
	PartnerID     string
	Source        string
	Category      string
	Score         float64
	Confidence    float64
	Probabilities []byte
	Features      []byte
	BatchID       uuid.NullUUID
	CreatedAt     time.Time
}

type (
	// PG is a binder that can bind the repo to a Queryer or TxRunner
	PG struct{}
	// queries implements the Repo interface
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder that can bind the repo to a Queryer or TxRunner
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) Migrate(ctx context.Context) error {
	_, err := r.q.Exec(ctx, schemaSQL)
	return err
}

func (r *queries) Insert(ctx context.Context, rows ...Prediction) error {
	const sql = `
insert into predictions (id, partner_id, source, category, score, confidence, probabilities, features, batch_id)
values ($1, $2, $3, $4, $5, $6, $7::jsonb, $8::jsonb, $9)
`
	for _, p := range rows {
		feats := p.Features
		if len(feats) == 0 {
			feats = []byte("{}")
		}
		if err := store.ExecOne(ctx, r.q, sql, p.ID, pstrings.SQLNull(p.PartnerID), p.Source, p.Category, p.Score, p.Confidence, p.Probabilities, feats, p.BatchID); err != nil {
			return err
		}
	}
	return nil
}

const selectPrediction = `
select id, coalesce(partner_id, ''), source, category, score, confidence, probabilities, features, batch_id, created_at
from predictions
`

func scanPrediction(row store.Row) (Prediction, error) {
	var p Prediction
	err := row.Scan(&p.ID, &p.PartnerID, &p.Source, &p.Category, &p.Score, &p.Confidence,
		&p.Probabilities, &p.Features, &p.BatchID, &p.CreatedAt)
	return p, err
}

func (r *queries) Recent(ctx context.Context, partnerID string, limit int) ([]Prediction, error) {
	return store.Many(ctx, r.q, scanPrediction, selectPrediction+`
where ($1::text = '' or partner_id = $1)
order by created_at desc
limit $2`, partnerID, limit)
}

// Get returns perr.ErrNotFound when no row has the id
func (r *queries) Get(ctx context.Context, id uuid.UUID) (Prediction, error) {
	return store.One(ctx, r.q, scanPrediction, selectPrediction+`where id = $1`, id)
}
