package service

import (
	"context"
	"encoding/json"

	"creditclear/internal/core/schema"
	"creditclear/internal/core/scoring"
	"creditclear/internal/modkit/repokit"
	perr "creditclear/internal/platform/errors"
	"creditclear/internal/services/api/scoring/domain"
	"creditclear/internal/services/api/scoring/repo"

	"github.com/google/uuid"
)

type scored struct {
	id  uuid.UUID
	rec schema.Record
	res scoring.Result
}

// save records predictions on every enabled backend
// failures are logged and never reach the caller
func (s *Svc) save(ctx context.Context, src domain.Source, batchID uuid.UUID, items ...scored) {
	if !s.record || len(items) == 0 {
		return
	}
	now := s.now().UTC()
	log := s.log.With().Str("source", string(src)).Int("predictions", len(items)).Logger()

	if s.db != nil {
		rows := make([]repo.Prediction, 0, len(items))
		for _, it := range items {
			rows = append(rows, predictionRow(src, batchID, it))
		}
		insert := func(q repokit.Queryer) error { return s.binder.Bind(q).Insert(ctx, rows...) }
		err := repokit.WithTx(ctx, s.db, insert)
		if perr.Retryable(err) {
			log.Debug().Err(err).Msg("retrying prediction insert")
			err = repokit.WithTx(ctx, s.db, insert)
		}
		if err != nil {
			log.Warn().Err(err).Msg("recording predictions failed")
		}
	}

	if s.events != nil {
		evs := make([]repo.Event, 0, len(items))
		for _, it := range items {
			evs = append(evs, repo.Event{
				PredictionID: it.id,
				Source:       string(src),
				Category:     string(it.res.Category),
				Score:        it.res.Score,
				CreatedAt:    now,
			})
		}
		if err := s.events.Append(ctx, evs...); err != nil {
			log.Warn().Err(err).Msg("recording prediction events failed")
		}
	}
}

func predictionRow(src domain.Source, batchID uuid.UUID, it scored) repo.Prediction {
	probs, _ := json.Marshal(it.res.Probabilities)
	feats, _ := json.Marshal(it.rec.Raw())
	p := repo.Prediction{
		ID:            it.id,
		PartnerID:     it.rec.PartnerID(),
		Source:        string(src),
		Category:      string(it.res.Category),
		Score:         it.res.Score,
		Confidence:    it.res.Confidence,
		Probabilities: probs,
		Features:      feats,
	}
	if batchID != uuid.Nil {
		p.BatchID = uuid.NullUUID{UUID: batchID, Valid: true}
	}
	return p
}
