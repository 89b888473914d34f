package mediaquery

import "fmt"

// ShouldRender reports whether the directive could match any of the widths a
// renderer will actually render at. renderable is the fixed list of
// breakpoint names the host pre-renders for; a false result means every
// candidate width falls outside the directive's range, so emitting markup
// for it would produce content that is always hidden.
//
// The directive is normalized exactly as in Condition, so both paths agree
// on what at means. ShouldRender holds no state and is safe to call
// concurrently and repeatedly.
func (r *Registry) ShouldRender(d Directive, renderable []string) (bool, error) {
	if len(renderable) == 0 {
		return false, ErrNoRenderWidths
	}

	min, max, err := r.widthBounds(renderable)
	if err != nil {
		return false, err
	}

	norm, err := r.normalize(d)
	if err != nil {
		return false, err
	}

	switch norm.kind {
	case KindLessThan:
		// Something below the threshold must be renderable.
		return min < r.widths[norm.lower], nil
	case KindGreaterThan:
		return max >= r.widths[r.next(norm.lower)], nil
	case KindGreaterThanOrEqual:
		return max >= r.widths[norm.lower], nil
	case KindBetween:
		from, to := r.widths[norm.lower], r.widths[norm.upper]
		// Admit unless the renderable range lies entirely outside [from, to).
		return !(max < from || min >= to), nil
	}
	// normalize rewrites at and rejects everything unrecognized.
	return false, fmt.Errorf("%w: %s", ErrInvalidDirective, d)
}

// MatchesWidth reports whether the directive's range contains the given
// viewport width in pixels. This is the numeric equivalent of the compiled
// CSS condition and goes through the same normalization.
func (r *Registry) MatchesWidth(d Directive, width int) (bool, error) {
	norm, err := r.normalize(d)
	if err != nil {
		return false, err
	}
	switch norm.kind {
	case KindLessThan:
		return width < r.widths[norm.lower], nil
	case KindGreaterThan:
		return width >= r.widths[r.next(norm.lower)], nil
	case KindGreaterThanOrEqual:
		return width >= r.widths[norm.lower], nil
	case KindBetween:
		return width >= r.widths[norm.lower] && width < r.widths[norm.upper], nil
	}
	return false, fmt.Errorf("%w: %s", ErrInvalidDirective, d)
}

// widthBounds resolves names to widths and returns the narrowest and widest.
func (r *Registry) widthBounds(names []string) (min, max int, err error) {
	for i, name := range names {
		w, err := r.resolve(name)
		if err != nil {
			return 0, 0, fmt.Errorf("render widths: %w", err)
		}
		if i == 0 || w < min {
			min = w
		}
		if i == 0 || w > max {
			max = w
		}
	}
	return min, max, nil
}
