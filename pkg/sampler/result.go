package sampler

// Result is the tagged outcome of a single Observe call. It is either
// pending (nothing closed), a single closed bar, or a closed bar followed
// by synthetic empty bars for the calendar periods a silent gap spanned.
// The distinction is deliberate, call sites must not treat a gap-filled
// result as an ungapped one.
type Result[P Price[P]] struct {
	closed *Bar[P]
	gap    []Bar[P]
}

// Pending reports whether the observation closed nothing.
func (r Result[P]) Pending() bool {
	return r.closed == nil
}

// Single returns the closed bar when exactly one period closed with no
// gap behind it.
func (r Result[P]) Single() (Bar[P], bool) {
	if r.closed == nil || len(r.gap) != 0 {
		return Bar[P]{}, false
	}
	return *r.closed, true
}

// WithGapFill returns the closed bar and the synthetic empty bars that
// follow it, in chronological order. It reports false when there was no
// gap to fill.
func (r Result[P]) WithGapFill() (Bar[P], []Bar[P], bool) {
	if r.closed == nil || len(r.gap) == 0 {
		return Bar[P]{}, nil, false
	}
	return *r.closed, r.gap, true
}

// Bars returns every emitted bar in chronological order, the closed
// period first. Concatenating Bars across calls yields a contiguous,
// gapless series.
func (r Result[P]) Bars() []Bar[P] {
	if r.closed == nil {
		return nil
	}
	out := make([]Bar[P], 0, 1+len(r.gap))
	out = append(out, *r.closed)
	out = append(out, r.gap...)
	return out
}
