package mediaquery

import (
	"strings"
	"testing"
)

func TestRuleSetsNegationLaw(t *testing.T) {
	r := mustRegistry(t)

	for _, rule := range r.RuleSets() {
		if !strings.HasPrefix(rule.Conditions, "not all and ") {
			t.Errorf("rule %q conditions %q missing negation prefix", rule.ClassName, rule.Conditions)
			continue
		}
		cond := strings.TrimPrefix(rule.Conditions, "not all and ")

		// Recover the directive from the class name and check the body is
		// exactly the negated compiled condition.
		d, ok := directiveFromClass(rule.ClassName)
		if !ok {
			t.Errorf("could not parse class name %q", rule.ClassName)
			continue
		}
		compiled, err := r.Condition(d)
		if err != nil {
			t.Errorf("Condition(%s) failed: %v", d, err)
			continue
		}
		if cond != compiled {
			t.Errorf("rule %q body = %q, want negation of %q", rule.ClassName, rule.Conditions, compiled)
		}
	}
}

func TestRuleSetsCount(t *testing.T) {
	r := mustRegistry(t)

	// n=3: at=3, lessThan=3, greaterThan=2, greaterThanOrEqual=3, between=3.
	want := 14
	if got := len(r.RuleSets()); got != want {
		t.Errorf("RuleSets() has %d entries, want %d", got, want)
	}
}

func TestRuleSetsDeterministicOrder(t *testing.T) {
	a := mustRegistry(t).RuleSets()
	b := mustRegistry(t).RuleSets()

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("rule order differs at %d: %+v vs %+v", i, a[i], b[i])
		}
	}

	want := []string{
		"mb-at-sm", "mb-at-md", "mb-at-lg",
		"mb-lessThan-sm", "mb-lessThan-md", "mb-lessThan-lg",
		"mb-greaterThan-sm", "mb-greaterThan-md",
		"mb-greaterThanOrEqual-sm", "mb-greaterThanOrEqual-md", "mb-greaterThanOrEqual-lg",
		"mb-between-sm-md", "mb-between-sm-lg", "mb-between-md-lg",
	}
	for i, rule := range a {
		if rule.ClassName != want[i] {
			t.Errorf("rule %d class = %q, want %q", i, rule.ClassName, want[i])
		}
	}
}

func TestRuleSetsCustomPrefix(t *testing.T) {
	r, err := NewWithOptions(testBreakpoints(), Options{ClassPrefix: "hide-"})
	if err != nil {
		t.Fatalf("NewWithOptions() failed: %v", err)
	}
	for _, rule := range r.RuleSets() {
		if !strings.HasPrefix(rule.ClassName, "hide-") {
			t.Errorf("class %q missing custom prefix", rule.ClassName)
		}
	}
}

// directiveFromClass reverses the ClassName encoding for test verification.
func directiveFromClass(class string) (Directive, bool) {
	rest, ok := strings.CutPrefix(class, DefaultClassPrefix)
	if !ok {
		return Directive{}, false
	}
	kind, key, ok := strings.Cut(rest, "-")
	if !ok {
		return Directive{}, false
	}
	switch Kind(kind) {
	case KindAt:
		return At(key), true
	case KindLessThan:
		return LessThan(key), true
	case KindGreaterThan:
		return GreaterThan(key), true
	case KindGreaterThanOrEqual:
		return GreaterThanOrEqual(key), true
	case KindBetween:
		lower, upper, ok := strings.Cut(key, "-")
		if !ok {
			return Directive{}, false
		}
		return Between(lower, upper), true
	}
	return Directive{}, false
}
