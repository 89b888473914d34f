package mediaquery

import (
	"errors"
	"strings"
	"testing"
)

func testBreakpoints() map[string]int {
	return map[string]int{"sm": 0, "md": 768, "lg": 1024}
}

func mustRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := New(testBreakpoints())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return r
}

func TestSortedNames(t *testing.T) {
	r := mustRegistry(t)

	got := r.SortedNames()
	want := []string{"sm", "md", "lg"}
	if len(got) != len(want) {
		t.Fatalf("SortedNames() length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SortedNames()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	// Mutating the returned slice must not affect the registry.
	got[0] = "mutated"
	if r.SortedNames()[0] != "sm" {
		t.Error("SortedNames() returned a live reference to internal state")
	}
}

func TestSortedNamesStrictlyAscending(t *testing.T) {
	r, err := New(map[string]int{
		"e": 1440, "a": 0, "c": 768, "b": 480, "d": 1024,
	})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	names := r.SortedNames()
	if len(names) != 5 {
		t.Fatalf("expected 5 names, got %d", len(names))
	}
	for i := 1; i < len(names); i++ {
		prev, _ := r.Width(names[i-1])
		cur, _ := r.Width(names[i])
		if prev >= cur {
			t.Errorf("widths not strictly ascending at %d: %d >= %d", i, prev, cur)
		}
	}
}

func TestLargest(t *testing.T) {
	r := mustRegistry(t)
	if got := r.Largest(); got != "lg" {
		t.Errorf("Largest() = %q, want %q", got, "lg")
	}
}

func TestWidth(t *testing.T) {
	r := mustRegistry(t)

	if w, ok := r.Width("md"); !ok || w != 768 {
		t.Errorf("Width(md) = %d, %v, want 768, true", w, ok)
	}
	if _, ok := r.Width("xxl"); ok {
		t.Error("Width(xxl) should report false for an unknown name")
	}
}

func TestNewRejectsEmptySet(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrEmptySet) {
		t.Errorf("New(nil) error = %v, want ErrEmptySet", err)
	}
}

func TestNewRejectsNegativeWidth(t *testing.T) {
	_, err := New(map[string]int{"sm": -1})
	if !errors.Is(err, ErrNegativeWidth) {
		t.Errorf("error = %v, want ErrNegativeWidth", err)
	}
}

func TestNewRejectsDuplicateWidths(t *testing.T) {
	_, err := New(map[string]int{"a": 768, "b": 768})
	if !errors.Is(err, ErrDuplicateWidth) {
		t.Errorf("error = %v, want ErrDuplicateWidth", err)
	}
}

func TestSingleBreakpointSet(t *testing.T) {
	r, err := New(map[string]int{"only": 0})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if r.Largest() != "only" {
		t.Errorf("Largest() = %q, want %q", r.Largest(), "only")
	}

	// at(only) has no next breakpoint, so it is open-ended.
	cond, err := r.Condition(At("only"))
	if err != nil {
		t.Fatalf("Condition(at(only)) failed: %v", err)
	}
	if cond != "(min-width:0px)" {
		t.Errorf("Condition(at(only)) = %q, want %q", cond, "(min-width:0px)")
	}

	// No between pairs exist, and greaterThan is unrepresentable.
	if _, err := r.Condition(GreaterThan("only")); !errors.Is(err, ErrUnbounded) {
		t.Errorf("Condition(greaterThan(only)) error = %v, want ErrUnbounded", err)
	}
}

func TestUnknownBreakpointSuggestion(t *testing.T) {
	r := mustRegistry(t)

	_, err := r.Condition(LessThan("mdd"))
	if !errors.Is(err, ErrUnknownBreakpoint) {
		t.Fatalf("error = %v, want ErrUnknownBreakpoint", err)
	}
	if got := err.Error(); !strings.Contains(got, `"md"`) {
		t.Errorf("error %q should suggest the closest known name md", got)
	}
}

func TestConstructionIdempotence(t *testing.T) {
	a := mustRegistry(t)
	b := mustRegistry(t)

	for kind, table := range a.conditions {
		for key, cond := range table {
			if other := b.conditions[kind][key]; other != cond {
				t.Errorf("condition %s/%s differs between constructions: %q vs %q", kind, key, cond, other)
			}
		}
	}

	ar, br := a.RuleSets(), b.RuleSets()
	if len(ar) != len(br) {
		t.Fatalf("rule counts differ: %d vs %d", len(ar), len(br))
	}
	for i := range ar {
		if ar[i] != br[i] {
			t.Errorf("rule %d differs: %+v vs %+v", i, ar[i], br[i])
		}
	}
}
