package modkit

import (
	"creditclear/internal/modkit/httpkit"
	"creditclear/internal/modkit/module"
	pstrings "creditclear/internal/platform/strings"
)

// Module is re-exported so modules only need modkit
type Module = module.Module

// Mounted is a Module made of a Built config, the module's routes and its exported ports
type Mounted struct {
	b      Built
	routes func(httpkit.Router)
	ports  any
}

var _ Module = (*Mounted)(nil)

// NewModule panics when b has no name or prefix
func NewModule(b Built, routes func(httpkit.Router), ports any) *Mounted {
	b.Name = pstrings.MustString(b.Name, "module name")
	b.Prefix = pstrings.MustPrefix(b.Prefix)
	return &Mounted{b: b, routes: routes, ports: ports}
}

func (m *Mounted) Name() string   { return m.b.Name }
func (m *Mounted) Prefix() string { return m.b.Prefix }
func (m *Mounted) Ports() any     { return m.ports }

// MountRoutes mounts the module under its prefix with its middleware
func (m *Mounted) MountRoutes(r httpkit.Router) {
	r.Route(m.b.Prefix, func(sub httpkit.Router) {
		if len(m.b.Mw) > 0 {
			sub.Use(m.b.Mw...)
		}
		if m.routes != nil {
			m.routes(sub)
		}
		for _, fn := range m.b.Extra {
			fn(sub)
		}
	})
}
