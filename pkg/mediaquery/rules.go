package mediaquery

// Rule is one exported hide-rule entry: a class name encoding (kind, operand
// key) and the negated media condition under which an element carrying the
// class must be hidden.
type Rule struct {
	// ClassName is prefix + kind + "-" + operand key, e.g. "mb-between-sm-lg".
	ClassName string

	// Conditions is the negation of the directive's compiled condition,
	// "not all and <condition>". It matches exactly the widths outside the
	// directive's visible range, so consumers attach the class and never
	// negate anything themselves.
	Conditions string
}

// CompiledQuery is one enumerated (kind, operand) combination together with
// its compiled condition.
type CompiledQuery struct {
	Kind       Kind     `json:"kind"`
	Operands   []string `json:"operands"`
	Key        string   `json:"key"`
	Conditions string   `json:"conditions"`
}

// Directive reconstructs the directive this query was compiled from.
func (q CompiledQuery) Directive() Directive {
	if q.Kind == KindBetween {
		return Between(q.Operands[0], q.Operands[1])
	}
	return Directive{kind: q.Kind, lower: q.Operands[0]}
}

// RuleSets returns one Rule per compiled query across all five kinds. The
// order is deterministic for a given breakpoint set: kinds in canonical
// order, single operands ascending by width, between pairs by (lower, upper)
// position.
func (r *Registry) RuleSets() []Rule {
	out := make([]Rule, len(r.rules))
	copy(out, r.rules)
	return out
}

// ClassName returns the exported hide-rule class for the directive, without
// normalization: at(b) keeps its own class even though its condition matches
// the normalized form.
func (r *Registry) ClassName(d Directive) (string, error) {
	if _, err := r.Condition(d); err != nil {
		return "", err
	}
	return r.classPrefix + string(d.kind) + "-" + d.Key(), nil
}

// Queries returns every compiled query in the same deterministic order as
// RuleSets.
func (r *Registry) Queries() []CompiledQuery {
	out := make([]CompiledQuery, len(r.queries))
	copy(out, r.queries)
	return out
}

// buildRules precomputes the exported query and rule lists. Runs once, at
// construction, after compileAll.
func (r *Registry) buildRules() {
	for _, kind := range kindOrder {
		for _, d := range r.enumerate(kind) {
			key := d.Key()
			cond := r.conditions[kind][key]
			r.queries = append(r.queries, CompiledQuery{
				Kind:       kind,
				Operands:   d.Operands(),
				Key:        key,
				Conditions: cond,
			})
			r.rules = append(r.rules, Rule{
				ClassName:  r.classPrefix + string(kind) + "-" + key,
				Conditions: "not all and " + cond,
			})
		}
	}
}

// enumerate returns every representable directive of the given kind in the
// deterministic export order described on RuleSets.
func (r *Registry) enumerate(kind Kind) []Directive {
	var out []Directive
	switch kind {
	case KindBetween:
		for i, lower := range r.sorted {
			for _, upper := range r.sorted[i+1:] {
				out = append(out, Between(lower, upper))
			}
		}
	case KindGreaterThan:
		// The largest breakpoint has nothing above it.
		for _, name := range r.sorted[:len(r.sorted)-1] {
			out = append(out, GreaterThan(name))
		}
	default:
		for _, name := range r.sorted {
			out = append(out, Directive{kind: kind, lower: name})
		}
	}
	return out
}
