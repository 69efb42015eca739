package hex

import "math"

// FracCoord is a fractional axial position, as produced by inverting the
// layout for an arbitrary plane point.
type FracCoord struct {
	Q, R float64
}

// S returns the derived cube component.
func (f FracCoord) S() float64 {
	return -(f.Q + f.R)
}

// Round returns the lattice coordinate of the cell containing f.
//
// q, r and s are rounded independently (half away from zero). The component
// with the largest rounding error is then rebuilt from the other two so that
// q+r+s == 0. Comparisons are strict: q is rebuilt only when its error exceeds
// both others, r only when it exceeds s, otherwise s is the one dropped.
func (f FracCoord) Round() Coord {
	s := f.S()

	rq := math.Round(f.Q)
	rr := math.Round(f.R)
	rs := math.Round(s)

	dq := math.Abs(f.Q - rq)
	dr := math.Abs(f.R - rr)
	ds := math.Abs(s - rs)

	if dq > dr && dq > ds {
		rq = -(rr + rs)
	} else if dr > ds {
		rr = -(rq + rs)
	}

	return Coord{Q: int(rq), R: int(rr)}
}
