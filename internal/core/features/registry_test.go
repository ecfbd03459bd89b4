package features

import (
	"math/rand/v2"
	"strings"
	"testing"

	perr "creditclear/internal/platform/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_PanicsOnInvalidTables(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		defs []Definition
	}{
		{"duplicate name", []Definition{
			{Name: "a", Type: Numeric},
			{Name: "a", Type: Boolean},
		}},
		{"empty name", []Definition{{Name: "", Type: Numeric}}},
		{"padded name", []Definition{{Name: " a", Type: Numeric}}},
		{"unknown type", []Definition{{Name: "a", Type: "text"}}},
		{"categorical without options", []Definition{{Name: "a", Type: Categorical}}},
		{"categorical repeated option", []Definition{{Name: "a", Type: Categorical, Options: []string{"x", "x"}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Panics(t, func() { New(tc.defs...) })
		})
	}
}

func TestRegistry_ListKeepsOrderAndIsACopy(t *testing.T) {
	t.Parallel()

	r := New(
		Definition{Name: "b", Type: Numeric, Group: "g1"},
		Definition{Name: "a", Type: Categorical, Group: "g2", Options: []string{"x"}},
	)
	list := r.List()
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].Name)
	assert.Equal(t, "a", list[1].Name)

	list[0].Name = "mutated"
	list[1].Options[0] = "mutated"
	assert.Equal(t, []string{"b", "a"}, r.Names())
	d, _ := r.ByName("a")
	assert.Equal(t, []string{"x"}, d.Options)
}

func TestRegistry_ByName(t *testing.T) {
	t.Parallel()

	r := New(Definition{Name: "age", Type: Numeric, Group: "g"})

	d, err := r.ByName("age")
	require.NoError(t, err)
	assert.Equal(t, Numeric, d.Type)

	_, err = r.ByName("nope")
	require.Error(t, err)
	assert.True(t, perr.IsCode(err, perr.ErrorCodeNotFound))
}

func TestRegistry_GroupsFirstSeenOrder(t *testing.T) {
	t.Parallel()

	r := New(
		Definition{Name: "a", Type: Numeric, Group: "Money"},
		Definition{Name: "b", Type: Numeric, Group: "People"},
		Definition{Name: "c", Type: Numeric, Group: "Money"},
		Definition{Name: "d", Type: Boolean, Group: "Apps"},
	)
	assert.Equal(t, []string{"Money", "People", "Apps"}, r.Groups())
	assert.Len(t, r.InGroup("Money"), 2)
	assert.Len(t, r.OfType(Boolean), 1)
}

func TestDefault_Catalog(t *testing.T) {
	t.Parallel()

	r := Default()
	assert.Same(t, r, Default())
	assert.Equal(t, PartnerID, r.Names()[0])
	assert.Equal(t, []string{
		GroupIdentity, GroupDemographics, GroupPlatform, GroupPerformance, GroupFinancial, GroupEngagement,
	}, r.Groups())

	for _, name := range []string{
		"monthly_earnings", "avg_rating", "cancellation_rate", "credit_score",
		"income_volatility", "late_arrivals", "savings_rate", "credit_utilization",
	} {
		typ, ok := r.TypeOf(name)
		require.True(t, ok, name)
		assert.Equal(t, Numeric, typ, name)
	}
	typ, _ := r.TypeOf("has_credit")
	assert.Equal(t, Boolean, typ)
	assert.Len(t, r.OfType(Categorical), 5)
}

func TestTemplateHeader(t *testing.T) {
	t.Parallel()

	r := Default()
	h := TemplateHeader(r)
	assert.NotContains(t, h, "\n")
	assert.Equal(t, r.Names(), strings.Split(h, ","))
}

func TestSample_WithinBoundsAndDeterministic(t *testing.T) {
	t.Parallel()

	r := Default()
	a := Sample(r, rand.New(rand.NewPCG(7, 11)))
	b := Sample(r, rand.New(rand.NewPCG(7, 11)))
	assert.Equal(t, a, b)

	for _, d := range r.List() {
		v, ok := a[d.Name]
		require.True(t, ok, d.Name)
		switch d.Type {
		case Numeric:
			f := v.(float64)
			assert.GreaterOrEqual(t, f, d.Bounds.Min, d.Name)
			assert.LessOrEqual(t, f, d.Bounds.Max, d.Name)
		case Categorical:
			assert.True(t, d.HasOption(v.(string)), d.Name)
		case Boolean:
			assert.IsType(t, true, v)
		case Identifier:
			assert.True(t, strings.HasPrefix(v.(string), "partner_"))
		}
	}
}
