package hex

import "fmt"

// CoordinateRestrainedGroup returns every coordinate with q in [qMin,qMax],
// r in [rMin,rMax] and s in [sMin,sMax]. Iteration is q outer, r inner.
func CoordinateRestrainedGroup(qMin, qMax, rMin, rMax, sMin, sMax int) []Coord {
	var result []Coord
	for q := qMin; q <= qMax; q++ {
		for r := rMin; r <= rMax; r++ {
			s := -(q + r)
			if s < sMin || s > sMax {
				continue
			}
			result = append(result, Coord{q, r})
		}
	}
	return result
}

// SymmetricGroup is CoordinateRestrainedGroup with each range centred on zero.
func SymmetricGroup(qMax, rMax, sMax int) []Coord {
	return CoordinateRestrainedGroup(-qMax, qMax, -rMax, rMax, -sMax, sMax)
}

// Disk returns all coordinates within radius of the origin, in the same
// order as SymmetricGroup(radius, radius, radius).
func Disk(radius int) []Coord {
	if radius < 0 {
		return nil
	}
	result := make([]Coord, 0, 1+3*radius*(radius+1))
	for q := -radius; q <= radius; q++ {
		for r := max(-radius, -q-radius); r <= min(radius, -q+radius); r++ {
			result = append(result, Coord{q, r})
		}
	}
	return result
}

// Ring returns the coordinates at exactly distance k from center, walking
// clockwise from center + Directions[4]*k. Ring(c, 0) is [c].
func Ring(center Coord, k int) []Coord {
	if k < 0 {
		return nil
	}
	if k == 0 {
		return []Coord{center}
	}
	result := make([]Coord, 0, 6*k)
	cur := center.Add(Directions[4].Scale(k))
	for side := 0; side < 6; side++ {
		for step := 0; step < k; step++ {
			result = append(result, cur)
			cur = cur.Add(Directions[side])
		}
	}
	return result
}

// Center returns the integer mean of coords. coords must not be empty.
func Center(coords []Coord) (Coord, error) {
	if len(coords) == 0 {
		return Coord{}, ErrEmptyGroup
	}
	var sum Coord
	for _, c := range coords {
		sum = sum.Add(c)
	}
	center, err := sum.Div(len(coords))
	if err != nil {
		return Coord{}, fmt.Errorf("center of %d coordinates: %w", len(coords), err)
	}
	return center, nil
}
