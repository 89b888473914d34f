package export

import (
	"fmt"
	"strings"

	"github.com/Dicklesworthstone/mediaband/pkg/mediaquery"
)

// Markdown renders a human-readable cheat sheet of the registry: the sorted
// breakpoint table, every compiled query, and the exported hide-rule classes.
func Markdown(reg *mediaquery.Registry) string {
	var b strings.Builder

	b.WriteString("# Breakpoints\n\n")
	b.WriteString("| Name | Width | Band |\n|---|---|---|\n")
	names := reg.SortedNames()
	for i, name := range names {
		w, _ := reg.Width(name)
		band := fmt.Sprintf("[%d, ∞)", w)
		if i+1 < len(names) {
			next, _ := reg.Width(names[i+1])
			band = fmt.Sprintf("[%d, %d)", w, next)
		}
		fmt.Fprintf(&b, "| %s | %dpx | %s |\n", name, w, band)
	}

	b.WriteString("\n# Compiled queries\n\n")
	b.WriteString("| Directive | Condition |\n|---|---|\n")
	for _, q := range reg.Queries() {
		fmt.Fprintf(&b, "| `%s` | `%s` |\n", q.Directive(), q.Conditions)
	}

	b.WriteString("\n# Hide-rule classes\n\n")
	b.WriteString("Attach a class to show its element only inside the directive's range.\n\n")
	b.WriteString("| Class | Hidden when |\n|---|---|\n")
	for _, rule := range reg.RuleSets() {
		fmt.Fprintf(&b, "| `.%s` | `%s` |\n", rule.ClassName, rule.Conditions)
	}
	return b.String()
}
