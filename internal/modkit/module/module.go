// Package module is the contract every API module satisfies plus a small port registry
package module

import (
	phttp "creditclear/internal/platform/net/http"
)

// Module is mounted once under the versioned API router
type Module interface {
	Name() string
	MountRoutes(r phttp.Router)
	// Ports returns the module's exported port struct, may be nil
	Ports() any
}
