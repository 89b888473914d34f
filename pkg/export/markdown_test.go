package export

import (
	"strings"
	"testing"
)

func TestMarkdown(t *testing.T) {
	reg := testRegistry(t)
	md := Markdown(reg)

	for _, want := range []string{
		"| sm | 0px | [0, 768) |",
		"| md | 768px | [768, 1024) |",
		"| lg | 1024px | [1024, ∞) |",
		"`lessThan(lg)` | `(max-width:1023px)`",
		"`.mb-at-sm`",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}

	// One query row per compiled query.
	if got := strings.Count(md, "| `"); got < len(reg.Queries())+len(reg.RuleSets()) {
		t.Errorf("markdown has %d table rows, want at least %d", got, len(reg.Queries())+len(reg.RuleSets()))
	}
}
