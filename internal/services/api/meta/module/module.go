// Package module wires the meta endpoints into the API
package module

import (
	"time"

	"creditclear/internal/core/version"
	"creditclear/internal/modkit"
	"creditclear/internal/modkit/httpkit"

	metahttp "creditclear/internal/services/api/meta/http"
)

// Ports are the ports meta consumes from other modules
type Ports struct {
	Model metahttp.ModelPort
}

// New builds the meta module, hand it the scoring model port with modkit.WithPorts
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("meta"), modkit.WithPrefix("/meta")}, opts...)...)

	d := metahttp.Deps{ServiceName: version.Service, StartedAt: time.Now()}
	if p, ok := b.Ports.(Ports); ok {
		d.Model = p.Model
	}
	if p, ok := deps.PG.(metahttp.Pinger); ok {
		d.PG = p
	}
	if p, ok := deps.CH.(metahttp.Pinger); ok {
		d.CH = p
	}
	return modkit.NewModule(b, func(r httpkit.Router) { metahttp.Register(r, d) }, nil)
}
