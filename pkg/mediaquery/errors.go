package mediaquery

import "errors"

// Errors reported by Registry construction and query paths. All are
// deterministic configuration errors; none are transient.
var (
	// ErrEmptySet is returned when a Registry is constructed with no
	// breakpoints.
	ErrEmptySet = errors.New("breakpoint set is empty")

	// ErrNegativeWidth is returned for a breakpoint with a width below zero.
	ErrNegativeWidth = errors.New("breakpoint width must be >= 0")

	// ErrDuplicateWidth is returned when two breakpoints share a width.
	// Band ownership would be ambiguous, so construction rejects the set.
	ErrDuplicateWidth = errors.New("duplicate breakpoint width")

	// ErrUnknownBreakpoint is returned when a directive references a name
	// absent from the breakpoint set.
	ErrUnknownBreakpoint = errors.New("unknown breakpoint")

	// ErrUnbounded is returned for greaterThan on the largest breakpoint:
	// no breakpoint above it exists to derive a minimum width from.
	ErrUnbounded = errors.New("no breakpoint above")

	// ErrInvalidDirective is returned for a directive with no kind (the
	// zero value) or an unrecognized kind.
	ErrInvalidDirective = errors.New("invalid directive")

	// ErrBadRange is returned for a between directive whose lower breakpoint
	// does not precede its upper breakpoint in ascending width order.
	ErrBadRange = errors.New("between operands out of order")

	// ErrNoRenderWidths is returned when ShouldRender is called with an
	// empty list of candidate render widths.
	ErrNoRenderWidths = errors.New("no render widths given")
)
