package hex

import (
	"fmt"
	"math"

	hmath "github.com/Faultbox/hexmap/pkg/math"
)

var sqrt3 = math.Sqrt(3)

// Layout is the world geometry of a pointy-top grid where q points right and
// r points down-right. Size is the length of one hex side in world units.
type Layout struct {
	Size float32
}

// NewLayout returns a layout for the given side length.
func NewLayout(size float32) (Layout, error) {
	if !(size > 0) {
		return Layout{}, fmt.Errorf("%w: got %v", ErrNonPositiveSize, size)
	}
	return Layout{Size: size}, nil
}

// Center returns the world position of the centre of c.
func (l Layout) Center(c Coord) hmath.Vec2 {
	size := float64(l.Size)
	x := size * sqrt3 * (float64(c.Q) + float64(c.R)/2)
	y := size * -1.5 * float64(c.R)
	return hmath.Vec2{X: float32(x), Y: float32(y)}
}

// CornerOffset returns corner k relative to the cell centre.
// Corner 0 is bottom-right, the rest follow clockwise; the 30° phase keeps
// the hexagon pointy-top.
func (l Layout) CornerOffset(k int) hmath.Vec2 {
	angle := (60*float64(k) + 30) * math.Pi / 180
	size := float64(l.Size)
	return hmath.Vec2{
		X: float32(size * math.Cos(angle)),
		Y: float32(-size * math.Sin(angle)),
	}
}

// CornerOffsets returns all six corner offsets.
func (l Layout) CornerOffsets() [6]hmath.Vec2 {
	var offsets [6]hmath.Vec2
	for k := range offsets {
		offsets[k] = l.CornerOffset(k)
	}
	return offsets
}

// Corner returns the world position of corner k around center.
func (l Layout) Corner(center hmath.Vec2, k int) hmath.Vec2 {
	return center.Add(l.CornerOffset(k))
}

// FracAt inverts Center for an arbitrary point in grid-local space.
func (l Layout) FracAt(p hmath.Vec2) FracCoord {
	size := float64(l.Size)
	x, y := float64(p.X), float64(p.Y)
	return FracCoord{
		Q: (x*sqrt3/3 + y/3) / size,
		R: (-y * 2 / 3) / size,
	}
}

// CoordAt returns the cell containing p.
func (l Layout) CoordAt(p hmath.Vec2) Coord {
	return l.FracAt(p).Round()
}
