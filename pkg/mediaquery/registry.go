package mediaquery

import (
	"fmt"
	"sort"

	"github.com/sahilm/fuzzy"
)

// DefaultClassPrefix is prepended to generated hide-rule class names.
const DefaultClassPrefix = "mb-"

// Options configures Registry construction.
type Options struct {
	// ClassPrefix is prepended to every rule-set class name.
	ClassPrefix string
}

// DefaultOptions returns the standard construction options.
func DefaultOptions() Options {
	return Options{ClassPrefix: DefaultClassPrefix}
}

// Registry holds a breakpoint set and every media-query condition derivable
// from it. All fields are populated by New and never mutated afterwards, so a
// Registry may be shared and read concurrently without locking.
type Registry struct {
	widths map[string]int
	sorted []string       // names ascending by width
	pos    map[string]int // name -> index in sorted

	classPrefix string
	conditions  map[Kind]map[string]string // kind -> operand key -> condition
	queries     []CompiledQuery
	rules       []Rule
}

// New builds a Registry from a mapping of breakpoint name to pixel width.
// Every representable (kind, operand) combination is compiled here, once;
// all later reads are lookups.
func New(breakpoints map[string]int) (*Registry, error) {
	return NewWithOptions(breakpoints, DefaultOptions())
}

// NewWithOptions is New with explicit construction options.
func NewWithOptions(breakpoints map[string]int, opts Options) (*Registry, error) {
	if len(breakpoints) == 0 {
		return nil, ErrEmptySet
	}
	if opts.ClassPrefix == "" {
		opts.ClassPrefix = DefaultClassPrefix
	}

	r := &Registry{
		classPrefix: opts.ClassPrefix,
		widths:      make(map[string]int, len(breakpoints)),
		sorted:      make([]string, 0, len(breakpoints)),
		pos:         make(map[string]int, len(breakpoints)),
	}

	byWidth := make(map[int]string, len(breakpoints))
	for name, width := range breakpoints {
		if width < 0 {
			return nil, fmt.Errorf("%w: %q has width %d", ErrNegativeWidth, name, width)
		}
		if other, ok := byWidth[width]; ok {
			return nil, fmt.Errorf("%w: %q and %q are both %dpx", ErrDuplicateWidth, other, name, width)
		}
		byWidth[width] = name
		r.widths[name] = width
		r.sorted = append(r.sorted, name)
	}

	sort.Slice(r.sorted, func(i, j int) bool {
		return r.widths[r.sorted[i]] < r.widths[r.sorted[j]]
	})
	for i, name := range r.sorted {
		r.pos[name] = i
	}

	r.compileAll()
	r.buildRules()
	return r, nil
}

// Len returns the number of breakpoints in the set.
func (r *Registry) Len() int {
	return len(r.sorted)
}

// SortedNames returns the breakpoint names ascending by width.
func (r *Registry) SortedNames() []string {
	out := make([]string, len(r.sorted))
	copy(out, r.sorted)
	return out
}

// Largest returns the name of the widest breakpoint.
func (r *Registry) Largest() string {
	return r.sorted[len(r.sorted)-1]
}

// Width returns the pixel width of the named breakpoint.
func (r *Registry) Width(name string) (int, bool) {
	w, ok := r.widths[name]
	return w, ok
}

// Widths returns a copy of the full name-to-width mapping.
func (r *Registry) Widths() map[string]int {
	out := make(map[string]int, len(r.widths))
	for name, w := range r.widths {
		out[name] = w
	}
	return out
}

// AtConditions returns the compiled condition for every at directive, keyed
// by breakpoint name. Consumers use this for simplified per-breakpoint APIs.
func (r *Registry) AtConditions() map[string]string {
	src := r.conditions[KindAt]
	out := make(map[string]string, len(src))
	for key, cond := range src {
		out[key] = cond
	}
	return out
}

// next returns the breakpoint immediately above name, or "" for the largest.
func (r *Registry) next(name string) string {
	i := r.pos[name]
	if i+1 >= len(r.sorted) {
		return ""
	}
	return r.sorted[i+1]
}

// resolve checks that name exists and returns its width. Unknown names get a
// fuzzy did-you-mean hint since they are almost always typos of real names.
func (r *Registry) resolve(name string) (int, error) {
	if w, ok := r.widths[name]; ok {
		return w, nil
	}
	if hint := r.closest(name); hint != "" {
		return 0, fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownBreakpoint, name, hint)
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownBreakpoint, name)
}

// closest returns the best fuzzy match for name among the known breakpoints,
// or "" when nothing matches at all.
func (r *Registry) closest(name string) string {
	matches := fuzzy.Find(name, r.sorted)
	if len(matches) == 0 {
		return ""
	}
	return r.sorted[matches[0].Index]
}
