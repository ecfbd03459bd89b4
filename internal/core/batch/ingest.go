// Package batch scores delimited partner rows, dropping invalid rows without failing the batch
package batch

import (
	"context"
	"errors"
	"runtime"
	"strings"
	"unicode"

	"creditclear/internal/core/features"
	"creditclear/internal/core/schema"
	"creditclear/internal/core/scoring"
	perr "creditclear/internal/platform/errors"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrStructural is returned when the text has no header or no data rows
var ErrStructural = perr.New(perr.ErrorCodeInvalidArgument, "csv must contain a header and at least one data row")

// Outcome is one scored row
// Row is the 1 based line number among non blank lines, the header being line 1
type Outcome struct {
	Row       int            `json:"row"`
	PartnerID string         `json:"partner_id,omitempty"`
	Result    scoring.Result `json:"result"`
	Record    schema.Record  `json:"-"`
}

// Rejection is a dropped row with its field reasons
type Rejection struct {
	Row    int                 `json:"row"`
	Fields []schema.FieldError `json:"fields"`
}

// Report is the ordered outcome of one Ingest call
type Report struct {
	Rows     int         `json:"rows"`
	Outcomes []Outcome   `json:"outcomes"`
	Skipped  []Rejection `json:"skipped,omitempty"`
	Columns  []string    `json:"columns"`
	Unknown  []string    `json:"unknown_columns,omitempty"`
}

// Option configures an Ingestor
type Option func(*Ingestor)

// WithWorkers bounds row parallelism, n <= 0 means GOMAXPROCS
func WithWorkers(n int) Option {
	return func(i *Ingestor) { i.workers = n }
}

// WithLogger sets the logger rejected rows are reported to
func WithLogger(l zerolog.Logger) Option {
	return func(i *Ingestor) { i.log = l }
}

// Ingestor validates and scores CSV rows
// it holds no per call state and is safe for concurrent use
type Ingestor struct {
	val     *schema.Validator
	eng     *scoring.Engine
	reg     *features.Registry
	workers int
	log     zerolog.Logger
}

// New builds an ingestor over a validator and engine sharing one registry
func New(val *schema.Validator, eng *scoring.Engine, opts ...Option) *Ingestor {
	i := &Ingestor{
		val: val,
		eng: eng,
		reg: val.Registry(),
		log: zerolog.Nop(),
	}
	for _, o := range opts {
		o(i)
	}
	if i.workers <= 0 {
		i.workers = runtime.GOMAXPROCS(0)
	}
	return i
}

// Ingest parses text and scores every data row
// a structural problem fails the call, a bad row is logged and skipped
func (in *Ingestor) Ingest(ctx context.Context, text string) (Report, error) {
	lines := splitLines(text)
	if len(lines) < 2 {
		return Report{}, ErrStructural
	}

	header := parseHeader(lines[0])
	rows := lines[1:]
	rep := Report{Rows: len(rows), Columns: header}
	for _, h := range header {
		if h != "" && !in.reg.Has(h) {
			rep.Unknown = append(rep.Unknown, h)
		}
	}

	type slot struct {
		out *Outcome
		rej *Rejection
	}
	slots := make([]slot, len(rows))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(in.workers)
	for i, line := range rows {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rowNum := i + 2
			rec, err := in.val.Validate(in.rowRecord(header, line))
			if err != nil {
				fields := fieldErrors(err)
				in.log.Warn().
					Int("row", rowNum).
					Interface("fields", fields).
					Msg("batch row rejected")
				slots[i].rej = &Rejection{Row: rowNum, Fields: fields}
				return nil
			}
			slots[i].out = &Outcome{
				Row:       rowNum,
				PartnerID: rec.PartnerID(),
				Result:    in.eng.Score(rec),
				Record:    rec,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, perr.Wrap(err, perr.ErrorCodeUnavailable, "batch cancelled")
	}

	rep.Outcomes = make([]Outcome, 0, len(rows))
	for _, s := range slots {
		switch {
		case s.out != nil:
			rep.Outcomes = append(rep.Outcomes, *s.out)
		case s.rej != nil:
			rep.Skipped = append(rep.Skipped, *s.rej)
		}
	}
	in.log.Debug().
		Int("rows", rep.Rows).
		Int("scored", len(rep.Outcomes)).
		Int("skipped", len(rep.Skipped)).
		Msg("batch ingested")
	return rep, nil
}

// rowRecord zips one line onto the header, pre typing numeric and boolean columns
// values past the header are ignored, header columns past the values stay absent
func (in *Ingestor) rowRecord(header []string, line string) schema.RawRecord {
	values := strings.Split(line, ",")
	raw := make(schema.RawRecord, len(header))
	for idx, key := range header {
		if key == "" || idx >= len(values) {
			continue
		}
		cell := strings.TrimSpace(values[idx])
		typ, known := in.reg.TypeOf(key)
		switch {
		case !known || typ == features.Identifier || typ == features.Categorical:
			raw[key] = schema.Text(cell)
		case typ == features.Numeric, typ == features.Boolean:
			v, err := in.val.Coerce(key, schema.Text(cell))
			if err != nil {
				raw[key] = schema.Text(cell)
				continue
			}
			raw[key] = v
		}
	}
	return raw
}

func fieldErrors(err error) []schema.FieldError {
	var ve *schema.ValidationError
	if errors.As(err, &ve) {
		return ve.Fields
	}
	return []schema.FieldError{{Reason: err.Error()}}
}

func splitLines(text string) []string {
	var out []string
	for l := range strings.SplitSeq(text, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}

// parseHeader splits on commas and normalizes each name so spreadsheet exports map cleanly
// format characters such as a BOM are stripped, then NFKC folds lookalike forms
func parseHeader(line string) []string {
	clean := transform.Chain(runes.Remove(runes.In(unicode.Cf)), norm.NFKC)
	cols := strings.Split(line, ",")
	for i, c := range cols {
		s, _, err := transform.String(clean, c)
		if err != nil {
			s = c
		}
		cols[i] = strings.TrimSpace(s)
	}
	return cols
}
