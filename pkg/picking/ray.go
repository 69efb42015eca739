package picking

import (
	"math"

	hmath "github.com/Faultbox/hexmap/pkg/math"
)

// parallelEpsilon is the smallest |Direction.Z| treated as crossing the plane.
const parallelEpsilon = 1e-3

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    hmath.Vec3
	Direction hmath.Vec3 // Normalized direction
}

// NewRay returns the ray from origin through target.
func NewRay(origin, target hmath.Vec3) Ray {
	dir := target.Sub(origin)
	length := float32(math.Sqrt(float64(dir.X*dir.X + dir.Y*dir.Y + dir.Z*dir.Z)))
	if length > 0 {
		dir = dir.Scale(1 / length)
	}
	return Ray{Origin: origin, Direction: dir}
}

// At returns Origin + t*Direction.
func (r Ray) At(t float32) hmath.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// IntersectPlaneZ intersects the ray with the horizontal plane Z = planeZ
// the grid lies on. Returns the (X, Y) hit point and whether it is valid.
func (r Ray) IntersectPlaneZ(planeZ float32) (hmath.Vec2, bool) {
	// Solve: Origin.Z + t * Direction.Z = planeZ
	if math.Abs(float64(r.Direction.Z)) < parallelEpsilon {
		return hmath.Vec2{}, false
	}

	t := (planeZ - r.Origin.Z) / r.Direction.Z
	if t < 0 {
		return hmath.Vec2{}, false // Intersection behind ray origin
	}
	return r.At(t).XY(), true
}

// IntersectBounds tests the ray against an axis-aligned box using the slab
// method. Returns the entry distance, or the exit distance when the ray
// starts inside the box.
func (r Ray) IntersectBounds(boxMin, boxMax hmath.Vec3) (t float32, hit bool) {
	tmin := float32(-math.MaxFloat32)
	tmax := float32(math.MaxFloat32)

	origin := [3]float32{r.Origin.X, r.Origin.Y, r.Origin.Z}
	dir := [3]float32{r.Direction.X, r.Direction.Y, r.Direction.Z}
	lo := [3]float32{boxMin.X, boxMin.Y, boxMin.Z}
	hi := [3]float32{boxMax.X, boxMax.Y, boxMax.Z}

	for axis := 0; axis < 3; axis++ {
		if dir[axis] == 0 {
			if origin[axis] < lo[axis] || origin[axis] > hi[axis] {
				return 0, false
			}
			continue
		}
		t1 := (lo[axis] - origin[axis]) / dir[axis]
		t2 := (hi[axis] - origin[axis]) / dir[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}
