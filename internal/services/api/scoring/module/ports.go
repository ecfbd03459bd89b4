package module

import (
	"creditclear/internal/services/api/scoring/domain"
)

// Ports exposes the service port for cross module lookups
type Ports struct {
	Service domain.ServicePort
}
