package version

import "testing"

func TestInfoDefaults(t *testing.T) {
	bi := Info()
	if bi.Service != "creditclear-api" || bi.Version != "dev" {
		t.Fatalf("unexpected defaults: %+v", bi)
	}
	if got := bi.String(); got != "creditclear-api dev (none, unknown)" {
		t.Fatalf("String() = %q", got)
	}
}
