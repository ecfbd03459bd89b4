package module

import (
	"context"
	"sync"
	"testing"

	phttp "creditclear/internal/platform/net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type modelCard interface{ ModelInfo(context.Context) (string, error) }

type card struct{}

func (card) ModelInfo(context.Context) (string, error) { return "Weighted Heuristic", nil }

type stubPorts struct {
	Model   modelCard
	private modelCard
}

type stub struct {
	name  string
	ports any
}

func (s stub) Name() string            { return s.name }
func (s stub) MountRoutes(phttp.Router) {}
func (s stub) Ports() any              { return s.ports }

func TestPortsOf(t *testing.T) {
	cases := []struct {
		name  string
		ports any
		ok    bool
	}{
		{"nil", nil, false},
		{"direct", card{}, true},
		{"exported field", stubPorts{Model: card{}}, true},
		{"unexported only", stubPorts{private: card{}}, false},
		{"not a struct", 42, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := PortsOf[modelCard](stub{name: "scoring", ports: tc.ports})
			require.Equal(t, tc.ok, ok)
			if ok {
				algo, err := got.ModelInfo(context.Background())
				require.NoError(t, err)
				assert.Equal(t, "Weighted Heuristic", algo)
			}
		})
	}
}

func TestMustPortsOf(t *testing.T) {
	assert.NotNil(t, MustPortsOf[modelCard](stub{ports: stubPorts{Model: card{}}}))

	defer func() {
		msg, _ := recover().(string)
		assert.Contains(t, msg, "module meta")
		assert.Contains(t, msg, "modelCard")
	}()
	MustPortsOf[modelCard](stub{name: "meta"})
	t.Fatal("expected panic")
}

func TestRegistry(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Register("scoring", stubPorts{Model: card{}})
	p, ok := PortsAs[stubPorts]("scoring")
	require.True(t, ok)
	assert.NotNil(t, p.Model)

	_, ok = PortsAs[int]("scoring")
	assert.False(t, ok)
	_, ok = PortsAs[stubPorts]("meta")
	assert.False(t, ok)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			Register("meta", 1)
			_, _ = PortsAs[int]("meta")
		}()
	}
	wg.Wait()

	Reset()
	_, ok = PortsAs[stubPorts]("scoring")
	assert.False(t, ok)
}
