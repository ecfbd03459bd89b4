// Package config reads prefixed environment settings, logging bad values
package config

import (
	"strconv"
	"strings"
	"time"

	"creditclear/internal/platform/config/raw"
	"creditclear/internal/platform/logger"
)

// Conf is a prefixed view over the environment, e.g. New().Prefix("CORE_API_")
type Conf struct{ env raw.Conf }

// New returns the root view
func New() Conf { return Conf{env: raw.New()} }

// Prefix returns a child view, prefixes chain
func (c Conf) Prefix(p string) Conf { return Conf{env: c.env.Prefix(p)} }

// Key returns the full variable name for k
func (c Conf) Key(k string) string { return c.env.Key(k) }

// MustString panics through the logger when key is blank
func (c Conf) MustString(key string) string {
	v, ok := c.env.Lookup(key)
	if !ok {
		logger.Get().Panic().Str("key", c.Key(key)).Msg("missing required env")
	}
	return v
}

// MustDuration panics through the logger when key is blank or not a duration
func (c Conf) MustDuration(key string) time.Duration {
	s := c.MustString(key)
	d, err := time.ParseDuration(s)
	if err != nil {
		logger.Get().Panic().Str("key", c.Key(key)).Str("value", s).Msg("invalid duration")
	}
	return d
}

// may parses key, blank gives def and a bad value logs a warning and gives def
func may[T any](c Conf, key string, def T, kind string, parse func(string) (T, error)) T {
	s, ok := c.env.Lookup(key)
	if !ok {
		return def
	}
	v, err := parse(s)
	if err != nil {
		logger.Get().Warn().Str("key", c.Key(key)).Str("value", s).Interface("default", def).
			Msgf("invalid %s, using default", kind)
		return def
	}
	return v
}

// MayString returns the trimmed value or def
func (c Conf) MayString(key, def string) string { return c.env.Get(key, def) }

func (c Conf) MayInt(key string, def int) int {
	return may(c, key, def, "int", strconv.Atoi)
}

func (c Conf) MayFloat64(key string, def float64) float64 {
	return may(c, key, def, "float", func(s string) (float64, error) { return strconv.ParseFloat(s, 64) })
}

func (c Conf) MayBool(key string, def bool) bool {
	return may(c, key, def, "bool", strconv.ParseBool)
}

func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	return may(c, key, def, "duration", time.ParseDuration)
}

// MayCSV splits a comma list dropping blanks, def when nothing is left
func (c Conf) MayCSV(key string, def []string) []string {
	var out []string
	for _, p := range strings.Split(c.env.Get(key, ""), ",") {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
