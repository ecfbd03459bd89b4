package repo

import (
	"context"
	"time"

	"creditclear/internal/platform/store"

	"github.com/google/uuid"
)

// EventsTable is the clickhouse table prediction events land in
const EventsTable = "prediction_events"

const eventsDDL = `
CREATE TABLE IF NOT EXISTS prediction_events (
  event_id      UUID,
  prediction_id UUID,
  source        LowCardinality(String),
  category      LowCardinality(String),
  score         Float64,
  created_at    DateTime64(3, 'UTC')
) ENGINE = MergeTree
PARTITION BY toYYYYMM(created_at)
ORDER BY (created_at, category)
`

// Event is one append only analytics row
type Event struct {
	PredictionID uuid.UUID
	Source       string
	Category     string
	Score        float64
	CreatedAt    time.Time
}

// CategoryCount is a grouped count from the events table
type CategoryCount struct {
	Category string
	Count    uint64
}

// Events writes and aggregates prediction events in clickhouse
type Events struct {
	ch store.Clickhouse
}

// NewEvents wraps a clickhouse seam, ch must not be nil
func NewEvents(ch store.Clickhouse) *Events {
	if ch == nil {
		panic("scoring.Events requires a non nil Clickhouse")
	}
	return &Events{ch: ch}
}

// Migrate creates the events table when missing
func (e *Events) Migrate(ctx context.Context) error {
	return e.ch.Exec(ctx, eventsDDL)
}

// Append writes events in one batch
func (e *Events) Append(ctx context.Context, evs ...Event) error {
	if len(evs) == 0 {
		return nil
	}
	rows := make([][]any, 0, len(evs))
	for _, ev := range evs {
		at := ev.CreatedAt
		if at.IsZero() {
			at = time.Now()
		}
		rows = append(rows, []any{uuid.New(), ev.PredictionID, ev.Source, ev.Category, ev.Score, at.UTC()})
	}
	return e.ch.Insert(ctx, EventsTable, rows)
}

// CategoryCounts returns per category totals for events at or after since
func (e *Events) CategoryCounts(ctx context.Context, since time.Time) ([]CategoryCount, error) {
	const sql = `
SELECT category, count() AS n
FROM prediction_events
WHERE created_at >= ?
GROUP BY category
ORDER BY n DESC, category ASC
`
	rows, err := e.ch.Query(ctx, sql, since.UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []CategoryCount
	for rows.Next() {
		var c CategoryCount
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
