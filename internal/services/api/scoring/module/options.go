package module

import (
	"time"

	"creditclear/internal/adapters/textgen"
	"creditclear/internal/platform/config"
)

// Options tune the scoring service
type Options struct {
	// Workers bounds batch row parallelism, zero means GOMAXPROCS
	Workers int
	// MaxBatchBytes caps batch bodies, zero means the http default
	MaxBatchBytes int64
	// BatchSlots caps concurrent batch requests, zero disables the cap
	BatchSlots int
	// Record writes predictions to postgres and clickhouse when they are enabled
	Record bool
	// StatementTimeout caps each statement of a recording transaction, zero leaves the server default
	StatementTimeout time.Duration
	// WatchList names the what-if drivers, empty keeps the default
	WatchList []string
	// TextTimeout bounds one text generation call
	TextTimeout time.Duration
	// Generator produces prose, nil serves the fixed fallbacks
	Generator textgen.Generator
}

// FromConfig reads CORE_SCORING_* keys, cfg should be the root view
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("CORE_SCORING_")
	return Options{
		Workers:       c.MayInt("WORKERS", 0),
		MaxBatchBytes: int64(c.MayInt("MAX_BATCH_BYTES", 8<<20)),
		BatchSlots:    c.MayInt("BATCH_SLOTS", 4),
		Record:        c.MayBool("RECORD", true),
		TextTimeout:   c.MayDuration("TEXT_TIMEOUT", 10*time.Second),
		WatchList:     c.MayCSV("WATCH_LIST", nil),

		StatementTimeout: c.MayDuration("STATEMENT_TIMEOUT", 5*time.Second),
	}
}
