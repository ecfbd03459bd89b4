// Package module wires scoring into the API using modkit
package module

import (
	"creditclear/internal/adapters/textgen"
	"creditclear/internal/modkit"
	"creditclear/internal/modkit/httpkit"
	"creditclear/internal/modkit/repokit"
	scoringhttp "creditclear/internal/services/api/scoring/http"
	scoringrepo "creditclear/internal/services/api/scoring/repo"
	scoringsvc "creditclear/internal/services/api/scoring/service"
)

// New builds the scoring module, postgres and clickhouse in deps are optional
func New(deps modkit.Deps, o Options, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("scoring"), modkit.WithPrefix("/scoring")}, opts...)...)

	log := *deps.Named(b.Name)
	c := scoringsvc.Config{
		Text:      textgen.NewGuard(o.Generator, o.TextTimeout, log),
		Log:       log,
		Workers:   o.Workers,
		Record:    o.Record,
		WatchList: o.WatchList,
	}
	if deps.PG != nil {
		c.DB = deps.PG
		if o.StatementTimeout > 0 {
			c.DB = repokit.WithBeginHooks(deps.PG, repokit.StatementTimeout(o.StatementTimeout))
		}
		c.Binder = scoringrepo.NewPG()
	}
	if deps.CH != nil {
		c.Events = scoringrepo.NewEvents(deps.CH)
	}
	svc := scoringsvc.New(c)

	lim := scoringhttp.Limits{MaxBatchBytes: o.MaxBatchBytes, BatchSlots: o.BatchSlots}
	return modkit.NewModule(b, func(r httpkit.Router) {
		scoringhttp.Register(r, svc, lim)
	}, Ports{Service: svc})
}
