// Package testkit holds small helpers shared by package tests
package testkit

import (
	"sync"
	"testing"

	"go.uber.org/goleak"
)

var serial sync.Mutex

// Swap points target at v for the rest of the test
func Swap[T any](t testing.TB, target *T, v T) {
	t.Helper()
	orig := *target
	*target = v
	t.Cleanup(func() { *target = orig })
}

// Serial holds a process wide lock until the test ends, for tests that swap globals
func Serial(t testing.TB) {
	t.Helper()
	serial.Lock()
	t.Cleanup(serial.Unlock)
}

// MustPanic fails t unless fn panics
func MustPanic(t testing.TB, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	fn()
}

// NoLeaks fails t when goroutines started during the test outlive it
func NoLeaks(t testing.TB) {
	t.Helper()
	opt := goleak.IgnoreCurrent()
	t.Cleanup(func() { goleak.VerifyNone(t, opt) })
}
