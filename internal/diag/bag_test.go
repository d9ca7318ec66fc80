package diag_test

import (
	"math"
	"testing"

	"venti/internal/diag"
	"venti/internal/source"
)

func fillBag(t *testing.T, n int) *diag.Bag {
	t.Helper()
	bag := diag.NewBag(n)
	for i := 0; i < n; i++ {
		if !bag.Add(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     diag.SynUnexpectedToken,
			Message:  "x",
			Primary:  source.Span{Start: uint32(i), End: uint32(i) + 1},
		}) {
			t.Fatalf("bag refused diagnostic %d of %d", i, n)
		}
	}
	return bag
}

func TestMergeGrowsLimit(t *testing.T) {
	a := fillBag(t, 2)
	b := fillBag(t, 3)

	a.Merge(b)
	if a.Len() != 5 {
		t.Fatalf("merged length = %d, want 5", a.Len())
	}
	if a.Cap() != 5 {
		t.Errorf("merged limit = %d, want 5", a.Cap())
	}
}

func TestMergeLimitSaturates(t *testing.T) {
	// Totals past the uint16 ceiling clamp there; the limit never moves
	// below its current value.
	a := fillBag(t, 40000)
	b := fillBag(t, 40000)

	a.Merge(b)
	if a.Len() != 80000 {
		t.Fatalf("merged length = %d, want 80000", a.Len())
	}
	if a.Cap() != math.MaxUint16 {
		t.Errorf("merged limit = %d, want %d", a.Cap(), math.MaxUint16)
	}
}
