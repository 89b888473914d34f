// Package mediaquery computes CSS media-query conditions from a named set of
// pixel-width breakpoints. A Registry is built once from the breakpoint
// definitions and precompiles every representable query; after construction
// it is immutable and safe for concurrent readers.
package mediaquery

import "fmt"

// Kind identifies which range a Directive matches relative to its breakpoints.
type Kind string

const (
	// KindAt matches exactly the band owned by a breakpoint: from its width
	// up to (but not including) the next breakpoint, or open-ended for the
	// largest breakpoint.
	KindAt Kind = "at"

	// KindLessThan matches widths strictly below a breakpoint.
	KindLessThan Kind = "lessThan"

	// KindGreaterThan matches widths at or above the breakpoint that follows
	// the named one. It is not representable for the largest breakpoint.
	KindGreaterThan Kind = "greaterThan"

	// KindGreaterThanOrEqual matches widths at or above a breakpoint.
	KindGreaterThanOrEqual Kind = "greaterThanOrEqual"

	// KindBetween matches widths in [lower, upper), both named breakpoints,
	// lower preceding upper in ascending width order.
	KindBetween Kind = "between"
)

// IsValid returns true if the kind is a recognized value
func (k Kind) IsValid() bool {
	switch k {
	case KindAt, KindLessThan, KindGreaterThan, KindGreaterThanOrEqual, KindBetween:
		return true
	}
	return false
}

// Directive is a request to match a sub-range of viewport widths, expressed
// relative to named breakpoints. The zero value carries no kind and is
// rejected wherever a directive is consumed; use the constructors.
type Directive struct {
	kind  Kind
	lower string
	upper string // between only
}

// At matches exactly the band owned by name.
func At(name string) Directive {
	return Directive{kind: KindAt, lower: name}
}

// LessThan matches widths strictly below name's width.
func LessThan(name string) Directive {
	return Directive{kind: KindLessThan, lower: name}
}

// GreaterThan matches widths at or above the breakpoint following name.
func GreaterThan(name string) Directive {
	return Directive{kind: KindGreaterThan, lower: name}
}

// GreaterThanOrEqual matches widths at or above name's width.
func GreaterThanOrEqual(name string) Directive {
	return Directive{kind: KindGreaterThanOrEqual, lower: name}
}

// Between matches widths in [lower, upper). The lower breakpoint must precede
// the upper one in ascending width order.
func Between(lower, upper string) Directive {
	return Directive{kind: KindBetween, lower: lower, upper: upper}
}

// Kind returns the directive's kind. The zero Directive reports an empty,
// invalid kind.
func (d Directive) Kind() Kind {
	return d.kind
}

// Operands returns the breakpoint names the directive references, in order.
func (d Directive) Operands() []string {
	if d.kind == KindBetween {
		return []string{d.lower, d.upper}
	}
	return []string{d.lower}
}

// Key returns the normalized operand key used to index compiled conditions:
// the breakpoint name, or "lower-upper" for between.
func (d Directive) Key() string {
	if d.kind == KindBetween {
		return d.lower + "-" + d.upper
	}
	return d.lower
}

// String renders the directive for error messages and logs.
func (d Directive) String() string {
	if !d.kind.IsValid() {
		return "invalid()"
	}
	if d.kind == KindBetween {
		return fmt.Sprintf("%s(%s, %s)", d.kind, d.lower, d.upper)
	}
	return fmt.Sprintf("%s(%s)", d.kind, d.lower)
}

// kindOrder fixes the iteration order over kinds wherever deterministic
// output matters (rule export, JSON dumps).
var kindOrder = []Kind{KindAt, KindLessThan, KindGreaterThan, KindGreaterThanOrEqual, KindBetween}

// Kinds returns every directive kind in the canonical iteration order.
func Kinds() []Kind {
	out := make([]Kind, len(kindOrder))
	copy(out, kindOrder)
	return out
}
