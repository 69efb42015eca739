// Package picking maps plane points and camera rays back to hex cells.
package picking

import (
	"github.com/Faultbox/hexmap/pkg/hex"
	hmath "github.com/Faultbox/hexmap/pkg/math"
)

// PointToHex returns the cell containing p, where p is already in the
// grid's local space and gridSize is the side length of one hex.
func PointToHex(p hmath.Vec2, gridSize float32) (hex.Coord, error) {
	layout, err := hex.NewLayout(gridSize)
	if err != nil {
		return hex.Coord{}, err
	}
	return layout.CoordAt(p), nil
}

// Layout places a grid in world space: cell (0,0) is centred on Origin.
type Layout struct {
	GridSize float32
	Origin   hmath.Vec2
}

// ToLocal converts a world point into grid-local space.
func (l Layout) ToLocal(world hmath.Vec2) hmath.Vec2 {
	return world.Sub(l.Origin)
}

// WorldToHex returns the cell under a world-space point.
func (l Layout) WorldToHex(world hmath.Vec2) (hex.Coord, error) {
	return PointToHex(l.ToLocal(world), l.GridSize)
}

// HexToWorld returns the world-space centre of c.
func (l Layout) HexToWorld(c hex.Coord) (hmath.Vec2, error) {
	layout, err := hex.NewLayout(l.GridSize)
	if err != nil {
		return hmath.Vec2{}, err
	}
	return layout.Center(c).Add(l.Origin), nil
}

// RayToHex intersects ray with the grid plane z = 0 and returns the cell hit.
// ok is false when the ray runs parallel to the plane or points away from it.
func (l Layout) RayToHex(ray Ray) (c hex.Coord, ok bool, err error) {
	p, ok := ray.IntersectPlaneZ(0)
	if !ok {
		return hex.Coord{}, false, nil
	}
	c, err = l.WorldToHex(p)
	if err != nil {
		return hex.Coord{}, false, err
	}
	return c, true, nil
}
