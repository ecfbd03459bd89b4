package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"creditclear/internal/platform/net/middleware"
)

// StackOptions tune the shared middleware stack
type StackOptions struct {
	// CORSOrigins lists allowed origins, empty allows none
	CORSOrigins []string
	// Timeout bounds one request, zero means 30s
	Timeout time.Duration
	// Slow marks access log lines at warn level, zero means 500ms
	Slow time.Duration
}

// CommonStack is Stack with every default
func CommonStack() []func(http.Handler) http.Handler {
	return Stack(StackOptions{})
}

// Stack is the middleware every /api/v1 request runs through, outermost first
func Stack(o StackOptions) []func(http.Handler) http.Handler {
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	if o.Slow <= 0 {
		o.Slow = 500 * time.Millisecond
	}
	return []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.AccessLog(middleware.AccessLogOptions{Slow: o.Slow}),
		middleware.RecoverJSON,
		middleware.NoCache(),
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins, MaxAge: 10 * time.Minute}),
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat("/health"),
		middleware.StripSlashes(),
		middleware.Timeout(o.Timeout),
	}
}
