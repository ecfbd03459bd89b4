package store

import "creditclear/internal/platform/logger"

// Option adjusts a Store before any backend is dialed
type Option func(*Store) error

// WithLogger replaces the default "store" component logger, the pg tracer logs through it
func WithLogger(l logger.Logger) Option {
	return func(s *Store) error { s.Log = l; return nil }
}
