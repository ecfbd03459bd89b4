package testkit

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var workers = 4

func TestSwap(t *testing.T) {
	t.Run("inner", func(t *testing.T) {
		Swap(t, &workers, 1)
		assert.Equal(t, 1, workers)
	})
	assert.Equal(t, 4, workers)
}

func TestMustPanic(t *testing.T) {
	MustPanic(t, func() { panic("boom") })
	MustPanic(t, func() { panic(nil) })
}

func TestSerial(t *testing.T) {
	var (
		mu      sync.Mutex
		running int
		maxSeen int
	)
	for _, name := range []string{"a", "b", "c"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			Serial(t)
			mu.Lock()
			running++
			maxSeen = max(maxSeen, running)
			mu.Unlock()
			time.Sleep(5 * time.Millisecond)
			mu.Lock()
			running--
			mu.Unlock()
		})
	}
	t.Cleanup(func() { assert.Equal(t, 1, maxSeen) })
}

func TestNoLeaks(t *testing.T) {
	NoLeaks(t)
	done := make(chan struct{})
	go func() { close(done) }()
	<-done
}
