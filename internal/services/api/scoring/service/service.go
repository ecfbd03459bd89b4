// Package service contains scoring workflows
package service

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand/v2"
	"time"

	"creditclear/internal/adapters/textgen"
	"creditclear/internal/core/batch"
	"creditclear/internal/core/features"
	"creditclear/internal/core/schema"
	"creditclear/internal/core/scoring"
	"creditclear/internal/core/whatif"
	"creditclear/internal/modkit/repokit"
	perr "creditclear/internal/platform/errors"
	"creditclear/internal/platform/store"
	"creditclear/internal/services/api/scoring/domain"
	"creditclear/internal/services/api/scoring/repo"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RetrainMessage is the acknowledgement returned by Retrain
const RetrainMessage = "Model retraining completed successfully!"

// Defaults for history and stats queries
const (
	DefaultHistoryLimit = 50
	DefaultStatsDays    = 30
)

// Service defines the scoring service contract
type Service interface {
	domain.ServicePort
}

// Config wires a Svc
// DB and Events are optional, leaving them nil disables history and stats
type Config struct {
	Registry *features.Registry
	Engine   *scoring.Engine
	Text     *textgen.Guard
	Log      zerolog.Logger
	Workers  int
	// WatchList overrides the what-if drivers, empty keeps the default
	WatchList []string

	DB     repokit.TxRunner
	Binder repokit.Binder[repo.Repo]
	Events *repo.Events
	// Record writes every scored prediction to the enabled backends
	Record bool
}

// Svc implements the scoring service
type Svc struct {
	reg    *features.Registry
	val    *schema.Validator
	eng    *scoring.Engine
	ingest *batch.Ingestor
	cmp    *whatif.Comparator
	text   *textgen.Guard
	log    zerolog.Logger

	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	events *repo.Events
	record bool

	now func() time.Time
}

// New constructs a scoring service, nil Registry and Engine fall back to defaults
func New(c Config) *Svc {
	if c.Registry == nil {
		c.Registry = features.Default()
	}
	if c.Engine == nil {
		c.Engine = scoring.New()
	}
	if c.Text == nil {
		c.Text = textgen.NewGuard(nil, 0, c.Log)
	}
	if c.DB != nil && c.Binder == nil {
		panic("scoring.Service requires a Repo binder when a TxRunner is set")
	}
	val := schema.NewValidator(c.Registry)
	s := &Svc{
		reg:    c.Registry,
		val:    val,
		eng:    c.Engine,
		ingest: batch.New(val, c.Engine, batch.WithWorkers(c.Workers), batch.WithLogger(c.Log)),
		cmp:    whatif.New(c.Engine, cmpOpts(c.WatchList)...),
		text:   c.Text,
		log:    c.Log,
		binder: c.Binder,
		db:     c.DB,
		events: c.Events,
		record: c.Record,
		now:    time.Now,
	}
	if c.DB != nil {
		s.Repo = c.Binder.Bind(c.DB)
	}
	return s
}

func cmpOpts(watch []string) []whatif.Option {
	if len(watch) == 0 {
		return nil
	}
	return []whatif.Option{whatif.WithWatchList(watch...)}
}

// Migrate applies the postgres schema and clickhouse DDL for whichever backends are set
func Migrate(ctx context.Context, db repokit.TxRunner, ch store.Clickhouse) error {
	if db != nil {
		if err := repo.NewPG().Bind(db).Migrate(ctx); err != nil {
			return perr.FromPostgres(err, "migrate predictions")
		}
	}
	if ch != nil {
		if err := repo.NewEvents(ch).Migrate(ctx); err != nil {
			return perr.Wrap(err, perr.ErrorCodeDB, "migrate prediction events")
		}
	}
	return nil
}

// Features lists every feature in registry order
func (s *Svc) Features(context.Context) ([]features.Definition, error) {
	return s.reg.List(), nil
}

// Groups lists display groups in first seen order
func (s *Svc) Groups(context.Context) ([]domain.FeatureGroup, error) {
	out := make([]domain.FeatureGroup, 0, len(s.reg.Groups()))
	for _, g := range s.reg.Groups() {
		out = append(out, domain.FeatureGroup{Name: g, Features: s.reg.InGroup(g)})
	}
	return out, nil
}

// Feature returns one definition or NotFound
func (s *Svc) Feature(_ context.Context, name string) (features.Definition, error) {
	return s.reg.ByName(name)
}

// Template returns the batch CSV header line
func (s *Svc) Template(context.Context) (string, error) {
	return features.TemplateHeader(s.reg) + "\n", nil
}

// Sample draws a synthetic record, identical seeds give identical records
func (s *Svc) Sample(_ context.Context, seed uint64) (map[string]any, error) {
	return features.Sample(s.reg, rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))), nil
}

// ExplainFeature asks the text service about one feature
func (s *Svc) ExplainFeature(ctx context.Context, name string) (domain.FeatureExplanation, error) {
	if _, err := s.reg.ByName(name); err != nil {
		return domain.FeatureExplanation{}, err
	}
	text, ok := s.text.Explain(ctx, textgen.Request{Kind: textgen.KindFeature, FeatureName: name})
	return domain.FeatureExplanation{Feature: name, Explanation: text, Generated: ok}, nil
}

// Predict validates and scores one record
func (s *Svc) Predict(ctx context.Context, in domain.PredictInput) (domain.PredictOutput, error) {
	rec, err := s.val.Validate(in.Features)
	if err != nil {
		return domain.PredictOutput{}, err
	}
	res := s.eng.Score(rec)
	id := uuid.New()
	out := domain.PredictOutput{
		PredictionID:  id.String(),
		PartnerID:     rec.PartnerID(),
		Category:      res.Category,
		Probabilities: res.Probabilities,
		Explanation:   res.Explanation,
		Score:         res.Score,
		Confidence:    res.Confidence,
		Contributions: res.Contributions,
		Model:         s.eng.ModelInfo(),
	}
	if in.Narrate {
		out.Narrative, _ = s.text.Explain(ctx, predictionRequest(rec, res))
	}
	s.save(ctx, domain.SourceSingle, uuid.Nil, scored{id: id, rec: rec, res: res})
	return out, nil
}

// PredictBatch scores every CSV row, skipping invalid rows
func (s *Svc) PredictBatch(ctx context.Context, csv string) (domain.BatchOutput, error) {
	rep, err := s.ingest.Ingest(ctx, csv)
	if err != nil {
		return domain.BatchOutput{}, err
	}
	batchID := uuid.New()
	out := domain.BatchOutput{
		BatchID:        batchID.String(),
		Rows:           rep.Rows,
		Scored:         len(rep.Outcomes),
		Results:        make([]domain.BatchRow, 0, len(rep.Outcomes)),
		Skipped:        rep.Skipped,
		UnknownColumns: rep.Unknown,
	}
	items := make([]scored, 0, len(rep.Outcomes))
	for _, o := range rep.Outcomes {
		id := uuid.New()
		out.Results = append(out.Results, domain.BatchRow{Row: o.Row, PredictionID: id.String(), PartnerID: o.PartnerID, Result: o.Result})
		items = append(items, scored{id: id, rec: o.Record, res: o.Result})
	}
	s.log.Info().Str("batch_id", out.BatchID).Int("rows", out.Rows).Int("scored", out.Scored).Int("skipped", len(out.Skipped)).Msg("batch scored")
	s.save(ctx, domain.SourceBatch, batchID, items...)
	return out, nil
}

// WhatIf validates both records then compares them
func (s *Svc) WhatIf(ctx context.Context, in domain.WhatIfInput) (domain.WhatIfOutput, error) {
	base, mod, err := s.validatePair(in.Baseline, in.Modified, "baseline.", "modified.")
	if err != nil {
		return domain.WhatIfOutput{}, err
	}
	d := s.cmp.Compare(base, mod)
	s.save(ctx, domain.SourceWhatIf, uuid.Nil, scored{id: uuid.New(), rec: mod, res: d.Modified})
	return domain.WhatIfOutput{Delta: d, Improved: d.Improved()}, nil
}

// CompareScenarios scores two scenarios and asks for a comparative narrative
func (s *Svc) CompareScenarios(ctx context.Context, in domain.CompareInput) (domain.CompareOutput, error) {
	a, b, err := s.validatePair(in.ScenarioA, in.ScenarioB, "scenario_a.", "scenario_b.")
	if err != nil {
		return domain.CompareOutput{}, err
	}
	out := domain.CompareOutput{ScenarioA: s.eng.Score(a), ScenarioB: s.eng.Score(b), Stronger: "tie"}
	switch {
	case out.ScenarioA.Score > out.ScenarioB.Score:
		out.Stronger = "A"
	case out.ScenarioB.Score > out.ScenarioA.Score:
		out.Stronger = "B"
	}
	out.Analysis, out.Generated = s.text.Explain(ctx, textgen.Request{
		Kind:      textgen.KindScenario,
		ScenarioA: a.Map(),
		ScenarioB: b.Map(),
	})
	s.save(ctx, domain.SourceCompare, uuid.Nil,
		scored{id: uuid.New(), rec: a, res: out.ScenarioA},
		scored{id: uuid.New(), rec: b, res: out.ScenarioB},
	)
	return out, nil
}

// Retrain acknowledges a retrain request, the heuristic has nothing to fit
func (s *Svc) Retrain(ctx context.Context) (domain.RetrainOutput, error) {
	s.log.Info().Msg("retrain requested")
	return domain.RetrainOutput{Success: true, Message: RetrainMessage}, nil
}

// ModelInfo returns the scorer model card
func (s *Svc) ModelInfo(context.Context) (scoring.ModelInfo, error) {
	return s.eng.ModelInfo(), nil
}

// History lists recorded predictions newest first
func (s *Svc) History(ctx context.Context, in domain.HistoryInput) ([]domain.HistoryRow, error) {
	if s.Repo == nil {
		return nil, perr.Unavailablef("prediction history is disabled")
	}
	limit := in.Limit
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	rows, err := s.Repo.Recent(ctx, in.PartnerID, limit)
	if err != nil {
		return nil, perr.FromPostgres(err, "load predictions")
	}
	out := make([]domain.HistoryRow, 0, len(rows))
	for _, r := range rows {
		h, err := historyRow(r)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, nil
}

// Prediction loads one recorded prediction by id
func (s *Svc) Prediction(ctx context.Context, id string) (domain.HistoryRow, error) {
	pid, err := uuid.Parse(id)
	if err != nil {
		return domain.HistoryRow{}, perr.WithField(perr.InvalidArgf("prediction id must be a uuid"), "id")
	}
	if s.Repo == nil {
		return domain.HistoryRow{}, perr.Unavailablef("prediction history is disabled")
	}
	row, err := s.Repo.Get(ctx, pid)
	if errors.Is(err, perr.ErrNotFound) {
		return domain.HistoryRow{}, perr.NotFoundf("prediction %s not found", id)
	}
	if err != nil {
		return domain.HistoryRow{}, perr.FromPostgres(err, "load prediction")
	}
	return historyRow(row)
}

func historyRow(r repo.Prediction) (domain.HistoryRow, error) {
	h := domain.HistoryRow{
		ID:         r.ID.String(),
		PartnerID:  r.PartnerID,
		Source:     domain.Source(r.Source),
		Category:   scoring.Category(r.Category),
		Score:      r.Score,
		Confidence: r.Confidence,
		CreatedAt:  r.CreatedAt,
	}
	if r.BatchID.Valid {
		h.BatchID = r.BatchID.UUID.String()
	}
	if err := json.Unmarshal(r.Probabilities, &h.Probabilities); err != nil {
		return h, perr.Wrapf(err, perr.ErrorCodeDB, "decode probabilities of %s", h.ID)
	}
	if len(r.Features) > 0 {
		if err := json.Unmarshal(r.Features, &h.Features); err != nil {
			return h, perr.Wrapf(err, perr.ErrorCodeDB, "decode features of %s", h.ID)
		}
	}
	return h, nil
}

// CategoryStats counts recorded predictions per band over the last days
func (s *Svc) CategoryStats(ctx context.Context, in domain.CategoryStatsInput) ([]domain.CategoryCount, error) {
	if s.events == nil {
		return nil, perr.Unavailablef("prediction analytics are disabled")
	}
	days := in.Days
	if days <= 0 {
		days = DefaultStatsDays
	}
	since := s.now().Add(-time.Duration(days) * 24 * time.Hour)
	rows, err := s.events.CategoryCounts(ctx, since)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDB, "count prediction events")
	}
	out := make([]domain.CategoryCount, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.CategoryCount{Category: scoring.Category(r.Category), Count: r.Count})
	}
	return out, nil
}

// validatePair validates both records and merges their field errors under prefixes
func (s *Svc) validatePair(a, b schema.RawRecord, pa, pb string) (schema.Record, schema.Record, error) {
	ra, errA := s.val.Validate(a)
	rb, errB := s.val.Validate(b)
	if errA == nil && errB == nil {
		return ra, rb, nil
	}
	var fields []schema.FieldError
	for _, p := range []struct {
		err    error
		prefix string
	}{{errA, pa}, {errB, pb}} {
		if p.err == nil {
			continue
		}
		var ve *schema.ValidationError
		if !errors.As(p.err, &ve) {
			return schema.Record{}, schema.Record{}, p.err
		}
		for _, f := range ve.Fields {
			fields = append(fields, schema.FieldError{Field: p.prefix + f.Field, Reason: f.Reason})
		}
	}
	return schema.Record{}, schema.Record{}, &schema.ValidationError{Fields: fields}
}

func predictionRequest(rec schema.Record, res scoring.Result) textgen.Request {
	probs := make(map[string]float64, len(res.Probabilities))
	for c, p := range res.Probabilities {
		probs[string(c)] = p
	}
	return textgen.Request{
		Kind:          textgen.KindPrediction,
		FeatureValues: rec.Map(),
		Prediction:    string(res.Category),
		Probabilities: probs,
	}
}
