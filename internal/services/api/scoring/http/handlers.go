// Package http provides http transport for scoring
package http

import (
	"io"
	"math/rand/v2"
	"mime"
	stdhttp "net/http"
	"strconv"

	"creditclear/internal/core/features"
	"creditclear/internal/modkit/httpkit"
	perr "creditclear/internal/platform/errors"
	"creditclear/internal/platform/net/middleware"
	"creditclear/internal/services/api/scoring/domain"
	svc "creditclear/internal/services/api/scoring/service"
)

// DefaultMaxBatchBytes caps batch bodies when no limit is configured
const DefaultMaxBatchBytes int64 = 8 << 20

// Limits bound the batch endpoint
type Limits struct {
	// MaxBatchBytes caps one batch body, <= 0 means DefaultMaxBatchBytes
	MaxBatchBytes int64
	// BatchSlots caps concurrent batch requests, <= 0 disables the cap
	BatchSlots int
}

// Register mounts scoring endpoints on the given router
func Register(r httpkit.Router, s svc.Service, lim Limits) {
	if lim.MaxBatchBytes <= 0 {
		lim.MaxBatchBytes = DefaultMaxBatchBytes
	}
	h := &handlers{svc: s, maxBatch: lim.MaxBatchBytes}

	// feature catalog
	httpkit.Get(r, "/features", h.features)
	httpkit.Get(r, "/features/groups", h.groups)
	httpkit.Get(r, "/features/sample", h.sample)
	httpkit.Get(r, "/features/{name}", h.feature)
	httpkit.Get(r, "/features/{name}/explanation", h.explainFeature)
	httpkit.Get(r, "/template", h.template)

	// scoring
	httpkit.PostJSON[domain.PredictInput](r, "/predict", h.predict)
	r.Group(func(g httpkit.Router) {
		if lim.BatchSlots > 0 {
			g.Use(middleware.Throttle(lim.BatchSlots))
		}
		httpkit.Post(g, "/batch", h.batch)
	})
	httpkit.PostJSON[domain.WhatIfInput](r, "/whatif", h.whatIf)
	httpkit.PostJSON[domain.CompareInput](r, "/compare", h.compare)

	// model card
	httpkit.Get(r, "/model", h.model)
	httpkit.Post(r, "/retrain", h.retrain)

	// recorded predictions
	httpkit.Get(r, "/predictions", h.history)
	httpkit.Get(r, "/predictions/{id}", h.prediction)
	httpkit.Get(r, "/stats/categories", h.categoryStats)
}

type handlers struct {
	svc      svc.Service
	maxBatch int64
}

// swagger:route GET /scoring/features Scoring scoringFeatures
// @Summary List features
// @Description Every feature in registry order with type, group, options and bounds
// @Tags Scoring
// @Produce json
// @Success 200 {array} features.Definition "ok"
// @Router /scoring/features [get]
func (h *handlers) features(r *stdhttp.Request) (any, error) {
	return h.svc.Features(r.Context())
}

// swagger:route GET /scoring/features/groups Scoring scoringFeatureGroups
// @Summary List feature groups
// @Tags Scoring
// @Produce json
// @Success 200 {array} domain.FeatureGroup "ok"
// @Router /scoring/features/groups [get]
func (h *handlers) groups(r *stdhttp.Request) (any, error) {
	return h.svc.Groups(r.Context())
}

// swagger:route GET /scoring/features/sample Scoring scoringSample
// @Summary Draw a sample record
// @Description Synthetic record within every feature's bounds, identical seeds give identical records
// @Tags Scoring
// @Produce json
// @Param seed query int false "Seed, random when omitted"
// @Success 200 {object} map[string]any "ok"
// @Failure 422 {object} httpkit.Envelope "bad seed"
// @Router /scoring/features/sample [get]
func (h *handlers) sample(r *stdhttp.Request) (any, error) {
	var seed uint64
	if raw := r.URL.Query().Get("seed"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, perr.WithField(perr.InvalidArgf("seed must be a non negative integer"), "seed")
		}
		seed = v
	} else {
		seed = rand.Uint64()
	}
	return h.svc.Sample(r.Context(), seed)
}

// swagger:route GET /scoring/features/{name} Scoring scoringFeature
// @Summary Get one feature
// @Tags Scoring
// @Produce json
// @Param name path string true "Feature name"
// @Success 200 {object} features.Definition "ok"
// @Failure 404 {object} httpkit.Envelope "unknown feature"
// @Router /scoring/features/{name} [get]
func (h *handlers) feature(r *stdhttp.Request) (any, error) {
	return h.svc.Feature(r.Context(), httpkit.Param(r, "name"))
}

// swagger:route GET /scoring/features/{name}/explanation Scoring scoringExplainFeature
// @Summary Explain one feature
// @Description Generated prose about the feature, or a fixed fallback when text generation is unavailable
// @Tags Scoring
// @Produce json
// @Param name path string true "Feature name"
// @Success 200 {object} domain.FeatureExplanation "ok"
// @Failure 404 {object} httpkit.Envelope "unknown feature"
// @Router /scoring/features/{name}/explanation [get]
func (h *handlers) explainFeature(r *stdhttp.Request) (any, error) {
	return h.svc.ExplainFeature(r.Context(), httpkit.Param(r, "name"))
}

// swagger:route GET /scoring/template Scoring scoringTemplate
// @Summary Download the batch template
// @Tags Scoring
// @Produce text/csv
// @Success 200 {string} string "csv header line"
// @Router /scoring/template [get]
func (h *handlers) template(r *stdhttp.Request) (any, error) {
	tpl, err := h.svc.Template(r.Context())
	if err != nil {
		return nil, err
	}
	return httpkit.Attachment(features.TemplateFilename, "text/csv; charset=utf-8", []byte(tpl)), nil
}

// swagger:route POST /scoring/predict Scoring scoringPredict
// @Summary Score one partner
// @Tags Scoring
// @Accept json
// @Produce json
// @Param payload body domain.PredictInput true "Record"
// @Success 200 {object} domain.PredictOutput "ok"
// @Failure 400 {object} httpkit.Envelope "invalid record"
// @Router /scoring/predict [post]
func (h *handlers) predict(r *stdhttp.Request, in domain.PredictInput) (any, error) {
	return h.svc.Predict(r.Context(), in)
}

// swagger:route POST /scoring/batch Scoring scoringBatch
// @Summary Score a CSV batch
// @Description Accepts a raw text/csv body or JSON {"csv": "..."}; invalid rows are skipped, not fatal
// @Tags Scoring
// @Accept text/csv
// @Accept json
// @Produce json
// @Param payload body domain.BatchInput true "CSV"
// @Success 200 {object} domain.BatchOutput "ok"
// @Failure 422 {object} httpkit.Envelope "missing header or rows, or body too large"
// @Failure 429 {string} string "too many concurrent batches"
// @Router /scoring/batch [post]
func (h *handlers) batch(r *stdhttp.Request) (any, error) {
	csv, err := h.readBatch(r)
	if err != nil {
		return nil, err
	}
	return h.svc.PredictBatch(r.Context(), csv)
}

func (h *handlers) readBatch(r *stdhttp.Request) (string, error) {
	mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mt == "application/json" {
		in, err := httpkit.BindJSON[domain.BatchInput](r, h.maxBatch)
		if err != nil {
			return "", err
		}
		return in.CSV, nil
	}
	defer func() { _ = r.Body.Close() }()
	body, err := io.ReadAll(io.LimitReader(r.Body, h.maxBatch+1))
	if err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeInvalidArgument, "read batch body")
	}
	if int64(len(body)) > h.maxBatch {
		return "", perr.InvalidArgf("batch body exceeds %d bytes", h.maxBatch)
	}
	return string(body), nil
}

// swagger:route POST /scoring/whatif Scoring scoringWhatIf
// @Summary Compare a record against an edited copy
// @Tags Scoring
// @Accept json
// @Produce json
// @Param payload body domain.WhatIfInput true "Baseline and modified records"
// @Success 200 {object} domain.WhatIfOutput "ok"
// @Failure 400 {object} httpkit.Envelope "invalid record"
// @Router /scoring/whatif [post]
func (h *handlers) whatIf(r *stdhttp.Request, in domain.WhatIfInput) (any, error) {
	return h.svc.WhatIf(r.Context(), in)
}

// swagger:route POST /scoring/compare Scoring scoringCompare
// @Summary Compare two partner scenarios
// @Tags Scoring
// @Accept json
// @Produce json
// @Param payload body domain.CompareInput true "Scenarios"
// @Success 200 {object} domain.CompareOutput "ok"
// @Failure 400 {object} httpkit.Envelope "invalid record"
// @Router /scoring/compare [post]
func (h *handlers) compare(r *stdhttp.Request, in domain.CompareInput) (any, error) {
	return h.svc.CompareScenarios(r.Context(), in)
}

// swagger:route GET /scoring/model Scoring scoringModel
// @Summary Model card
// @Tags Scoring
// @Produce json
// @Success 200 {object} scoring.ModelInfo "ok"
// @Router /scoring/model [get]
func (h *handlers) model(r *stdhttp.Request) (any, error) {
	return h.svc.ModelInfo(r.Context())
}

// swagger:route POST /scoring/retrain Scoring scoringRetrain
// @Summary Retrain the model
// @Tags Scoring
// @Produce json
// @Success 200 {object} domain.RetrainOutput "ok"
// @Router /scoring/retrain [post]
func (h *handlers) retrain(r *stdhttp.Request) (any, error) {
	return h.svc.Retrain(r.Context())
}

// swagger:route GET /scoring/predictions Scoring scoringHistory
// @Summary Recently recorded predictions
// @Tags Scoring
// @Produce json
// @Param partner_id query string false "Partner filter"
// @Param limit query int false "Max rows, default 50"
// @Success 200 {array} domain.HistoryRow "ok"
// @Failure 503 {object} httpkit.Envelope "history disabled"
// @Router /scoring/predictions [get]
func (h *handlers) history(r *stdhttp.Request) (any, error) {
	q := r.URL.Query()
	in := domain.HistoryInput{PartnerID: q.Get("partner_id")}
	if raw := q.Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, perr.WithField(perr.InvalidArgf("limit must be an integer"), "limit")
		}
		in.Limit = v
	}
	if err := httpkit.Validate(in); err != nil {
		return nil, err
	}
	return h.svc.History(r.Context(), in)
}

// swagger:route GET /scoring/predictions/{id} Scoring scoringPrediction
// @Summary One recorded prediction
// @Tags Scoring
// @Produce json
// @Param id path string true "Prediction id"
// @Success 200 {object} domain.HistoryRow "ok"
// @Failure 404 {object} httpkit.Envelope "unknown prediction"
// @Failure 422 {object} httpkit.Envelope "id is not a uuid"
// @Failure 503 {object} httpkit.Envelope "history disabled"
// @Router /scoring/predictions/{id} [get]
func (h *handlers) prediction(r *stdhttp.Request) (any, error) {
	return h.svc.Prediction(r.Context(), httpkit.Param(r, "id"))
}

// swagger:route GET /scoring/stats/categories Scoring scoringCategoryStats
// @Summary Predictions per category
// @Tags Scoring
// @Produce json
// @Param days query int false "Window in days, default 30"
// @Success 200 {array} domain.CategoryCount "ok"
// @Failure 503 {object} httpkit.Envelope "analytics disabled"
// @Router /scoring/stats/categories [get]
func (h *handlers) categoryStats(r *stdhttp.Request) (any, error) {
	var in domain.CategoryStatsInput
	if raw := r.URL.Query().Get("days"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, perr.WithField(perr.InvalidArgf("days must be an integer"), "days")
		}
		in.Days = v
	}
	if err := httpkit.Validate(in); err != nil {
		return nil, err
	}
	return h.svc.CategoryStats(r.Context(), in)
}
