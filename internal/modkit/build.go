package modkit

import (
	"net/http"

	"creditclear/internal/modkit/httpkit"
)

// Built is the result of applying options over a module's defaults
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler
	// Ports are consumed ports handed in through WithPorts
	Ports  any
	Extra  []func(httpkit.Router)
}

// Build applies opts in order, later options win
func Build(opts ...Option) Built {
	var b Built
	for _, o := range opts {
		o(&b)
	}
	return b
}
