package mediaquery

import "fmt"

// Condition returns the canonical CSS media-query condition for the
// directive, e.g. "(min-width:768px) and (max-width:1023px)". The result is
// a precompiled lookup; compiling the same directive twice always yields
// byte-identical strings.
func (r *Registry) Condition(d Directive) (string, error) {
	norm, err := r.normalize(d)
	if err != nil {
		return "", err
	}
	cond, ok := r.conditions[norm.kind][norm.Key()]
	if !ok {
		// normalize admits only enumerated combinations, so a miss here
		// would mean the tables and the validator disagree.
		return "", fmt.Errorf("%w: %s was not enumerated", ErrInvalidDirective, d)
	}
	return cond, nil
}

// normalize validates the directive's shape and operands and rewrites at to
// the kind that owns its band: between(b, next(b)) when a next breakpoint
// exists, greaterThanOrEqual(b) otherwise. Compilation and render admission
// both go through here so the two paths agree on semantics.
func (r *Registry) normalize(d Directive) (Directive, error) {
	if !d.kind.IsValid() {
		return Directive{}, fmt.Errorf("%w: exactly one of at, lessThan, greaterThan, greaterThanOrEqual, between must be set", ErrInvalidDirective)
	}
	for _, name := range d.Operands() {
		if _, err := r.resolve(name); err != nil {
			return Directive{}, fmt.Errorf("%s: %w", d, err)
		}
	}
	switch d.kind {
	case KindAt:
		if next := r.next(d.lower); next != "" {
			return Between(d.lower, next), nil
		}
		return GreaterThanOrEqual(d.lower), nil
	case KindGreaterThan:
		if r.next(d.lower) == "" {
			return Directive{}, fmt.Errorf("%w %q: greaterThan(%s) has no finite lower bound", ErrUnbounded, d.lower, d.lower)
		}
	case KindBetween:
		if r.pos[d.lower] >= r.pos[d.upper] {
			return Directive{}, fmt.Errorf("%w: %q must be narrower than %q", ErrBadRange, d.lower, d.upper)
		}
	}
	return d, nil
}

// compileAll fills the per-kind condition tables for every representable
// (kind, operand) combination. Runs once, at construction.
func (r *Registry) compileAll() {
	r.conditions = make(map[Kind]map[string]string, len(kindOrder))
	for _, kind := range kindOrder {
		r.conditions[kind] = make(map[string]string)
	}

	for i, name := range r.sorted {
		width := r.widths[name]
		r.conditions[KindLessThan][name] = maxWidth(width)
		r.conditions[KindGreaterThanOrEqual][name] = minWidth(width)
		if i+1 < len(r.sorted) {
			// greaterThan(b) starts where the next band starts.
			r.conditions[KindGreaterThan][name] = minWidth(r.widths[r.sorted[i+1]])
		}
		for j := i + 1; j < len(r.sorted); j++ {
			upper := r.sorted[j]
			key := name + "-" + upper
			r.conditions[KindBetween][key] = betweenWidths(width, r.widths[upper])
		}
	}

	// at normalizes to between(b, next(b)), or greaterThanOrEqual(b) for the
	// largest breakpoint, and must compile identically to its target.
	for i, name := range r.sorted {
		if i+1 < len(r.sorted) {
			r.conditions[KindAt][name] = r.conditions[KindBetween][name+"-"+r.sorted[i+1]]
		} else {
			r.conditions[KindAt][name] = r.conditions[KindGreaterThanOrEqual][name]
		}
	}
}

func minWidth(px int) string {
	return fmt.Sprintf("(min-width:%dpx)", px)
}

func maxWidth(px int) string {
	// Exclusive upper bound: the breakpoint's own width never matches.
	return fmt.Sprintf("(max-width:%dpx)", px-1)
}

func betweenWidths(from, to int) string {
	return minWidth(from) + " and " + maxWidth(to)
}
