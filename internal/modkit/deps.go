// Package modkit builds API modules from shared deps and options
package modkit

import (
	"creditclear/internal/modkit/repokit"
	"creditclear/internal/platform/config"
	"creditclear/internal/platform/logger"
	"creditclear/internal/platform/store"
)

// Deps are the shared dependencies handed to every module
// PG and CH are nil when the backend is disabled
type Deps struct {
	Log *logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner
	CH  store.Clickhouse
}

// Named returns a component logger off Log, or off the global logger when Log is nil
func (d Deps) Named(component string) *logger.Logger {
	if d.Log == nil {
		return logger.Named(component)
	}
	l := d.Log.With().Str("component", component).Logger()
	return &l
}
