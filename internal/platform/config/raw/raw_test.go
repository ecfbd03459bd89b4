package raw

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrefixAndGet(t *testing.T) {
	c := New().Prefix("LOG_")
	assert.Equal(t, "LOG_LEVEL", c.Key("LEVEL"))
	assert.Equal(t, "LOG_X_Y", c.Prefix("X_").Key("Y"))

	t.Setenv("LOG_LEVEL", "  info ")
	t.Setenv("LOG_FORMAT", "   ")
	assert.Equal(t, "info", c.Get("LEVEL", "debug"))
	assert.Equal(t, "console", c.Get("FORMAT", "console"))
	_, ok := c.Lookup("FORMAT")
	assert.False(t, ok)
}

func TestGetBool(t *testing.T) {
	c := New().Prefix("B_")
	for v, want := range map[string]bool{"1": true, "TRUE": true, "yes": true, "0": false, "false": false, "maybe": true} {
		t.Setenv("B_V", v)
		assert.Equal(t, want, c.GetBool("V", true), v)
	}
	assert.False(t, c.GetBool("MISSING", false))
}

func TestGetInt(t *testing.T) {
	c := New().Prefix("I_")
	for v, want := range map[string]int{"10": 10, " 0 ": 0, "-3": 7, "1e3": 7, "": 7} {
		t.Setenv("I_V", v)
		assert.Equal(t, want, c.GetInt("V", 7), v)
	}
}
