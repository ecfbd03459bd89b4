package config

import (
	"bytes"
	"testing"
	"time"

	"creditclear/internal/platform/logger"
	"creditclear/internal/platform/testkit"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestPrefixChains(t *testing.T) {
	c := New().Prefix("CORE_").Prefix("SCORING_")
	assert.Equal(t, "CORE_SCORING_WORKERS", c.Key("WORKERS"))

	t.Setenv("CORE_SCORING_WORKERS", " 6 ")
	assert.Equal(t, 6, c.MayInt("WORKERS", 0))
	assert.Equal(t, 0, New().MayInt("WORKERS", 0))
}

func TestMay(t *testing.T) {
	c := New().Prefix("T_")
	t.Setenv("T_ADDR", " :8080 ")
	t.Setenv("T_RECORD", "false")
	t.Setenv("T_TEMPERATURE", "0.7")
	t.Setenv("T_TIMEOUT", "250ms")

	assert.Equal(t, ":8080", c.MayString("ADDR", ":4000"))
	assert.Equal(t, ":4000", c.MayString("MISSING", ":4000"))
	assert.False(t, c.MayBool("RECORD", true))
	assert.InDelta(t, 0.7, c.MayFloat64("TEMPERATURE", 0.4), 1e-9)
	assert.Equal(t, 250*time.Millisecond, c.MayDuration("TIMEOUT", time.Second))
}

func TestMay_BadValueWarnsAndDefaults(t *testing.T) {
	var buf bytes.Buffer
	testkit.Swap(t, logger.Get(), zerolog.New(&buf))

	c := New().Prefix("T_")
	t.Setenv("T_WORKERS", "many")
	t.Setenv("T_TIMEOUT", "soon")

	assert.Equal(t, 4, c.MayInt("WORKERS", 4))
	assert.Equal(t, time.Second, c.MayDuration("TIMEOUT", time.Second))
	assert.Contains(t, buf.String(), `"key":"T_WORKERS"`)
	assert.Contains(t, buf.String(), "invalid duration, using default")
}

func TestMayCSV(t *testing.T) {
	c := New().Prefix("T_")
	def := []string{"http://localhost:3000"}

	t.Setenv("T_ORIGINS", " https://a.example, ,https://b.example ,")
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, c.MayCSV("ORIGINS", def))

	t.Setenv("T_ORIGINS", " , ")
	assert.Equal(t, def, c.MayCSV("ORIGINS", def))
}

func TestMust(t *testing.T) {
	c := New().Prefix("T_")
	t.Setenv("T_KEY", "abc")
	t.Setenv("T_GRACE", "3s")
	t.Setenv("T_BAD", "x")

	assert.Equal(t, "abc", c.MustString("KEY"))
	assert.Equal(t, 3*time.Second, c.MustDuration("GRACE"))
	testkit.MustPanic(t, func() { c.MustString("MISSING") })
	testkit.MustPanic(t, func() { c.MustDuration("BAD") })
}
