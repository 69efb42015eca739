// Package hex implements axial hex coordinates for a pointy-top grid.
//
// A coordinate stores q and r only. The third cube component s = -(q+r) is
// always derived, so q+r+s == 0 holds for every value of Coord.
package hex

import "fmt"

// Coord is an axial hex coordinate. It is comparable and used directly as a map key.
type Coord struct {
	Q int
	R int
}

// Directions are the six neighbour offsets, clockwise starting east
// (with +Y up in world space). Corner k of a cell sits between
// directions k and k+1, see EdgeCorners.
var Directions = [6]Coord{
	{1, 0}, {0, 1}, {-1, 1}, {-1, 0}, {0, -1}, {1, -1},
}

// New returns the coordinate (q, r).
func New(q, r int) Coord {
	return Coord{Q: q, R: r}
}

// S returns the derived cube component.
func (c Coord) S() int {
	return -(c.Q + c.R)
}

// Add returns c + o.
func (c Coord) Add(o Coord) Coord { return Coord{c.Q + o.Q, c.R + o.R} }

// Sub returns c - o.
func (c Coord) Sub(o Coord) Coord { return Coord{c.Q - o.Q, c.R - o.R} }

// Neg returns -c.
func (c Coord) Neg() Coord { return Coord{-c.Q, -c.R} }

// Scale multiplies c by k.
func (c Coord) Scale(k int) Coord { return Coord{c.Q * k, c.R * k} }

// Div divides both components by k, truncating toward zero.
func (c Coord) Div(k int) (Coord, error) {
	if k <= 0 {
		return Coord{}, fmt.Errorf("%w: got %d", ErrNonPositiveDivisor, k)
	}
	return Coord{c.Q / k, c.R / k}, nil
}

// Length returns the number of steps from the origin.
// |q|+|r|+|s| is always even, so the division is exact.
func (c Coord) Length() int {
	return (abs(c.Q) + abs(c.R) + abs(c.S())) / 2
}

// DistanceTo returns the hex distance between c and o.
func (c Coord) DistanceTo(o Coord) int {
	return c.Sub(o).Length()
}

// Neighbor returns the adjacent coordinate in direction dir (taken mod 6).
func (c Coord) Neighbor(dir int) Coord {
	return c.Add(Directions[((dir%6)+6)%6])
}

// Neighbors returns the six adjacent coordinates in Directions order.
func (c Coord) Neighbors() [6]Coord {
	var result [6]Coord
	for i, d := range Directions {
		result[i] = c.Add(d)
	}
	return result
}

// String returns "(q,r)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Q, c.R)
}

// EdgeCorners returns the corner indices bounding the edge shared with the
// neighbour in direction dir.
func EdgeCorners(dir int) (int, int) {
	dir = ((dir % 6) + 6) % 6
	return (dir + 5) % 6, dir
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
