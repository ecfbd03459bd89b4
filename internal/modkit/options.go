package modkit

import (
	"net/http"

	"creditclear/internal/modkit/httpkit"
)

// Option tweaks how a module is built
type Option func(*Built)

// WithName overrides the module name used for logs and the port registry
func WithName(name string) Option {
	return func(b *Built) { b.Name = name }
}

// WithPrefix overrides the mount prefix
func WithPrefix(prefix string) Option {
	return func(b *Built) { b.Prefix = prefix }
}

// WithMiddlewares appends module scoped middleware
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(b *Built) { b.Mw = append(b.Mw, mw...) }
}

// WithPorts hands a module the ports it consumes from other modules
func WithPorts[T any](p T) Option {
	return func(b *Built) { b.Ports = p }
}

// WithRegister adds routes after the module's own
func WithRegister(fn func(httpkit.Router)) Option {
	return func(b *Built) { b.Extra = append(b.Extra, fn) }
}
