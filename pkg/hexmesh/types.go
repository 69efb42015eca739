// Package hexmesh triangulates a hex grid into vertex, index and UV buffers.
//
// Every cell becomes a fan of six triangles around its centre. Two policies
// exist. Unwelded meshes give each cell its own block of seven vertices and
// seven atlas UVs, so a single cell can be retextured by patching its block.
// Welded meshes share corner vertices between touching cells and carry plain
// (0, 0) UVs; they are smaller but can only be rebuilt.
package hexmesh

import (
	"fmt"
	"strings"

	"github.com/Faultbox/hexmap/pkg/hex"
	hmath "github.com/Faultbox/hexmap/pkg/math"
)

// Mesh errors. All of them wrap hex.ErrPrecondition.
var (
	ErrMissingAtlas    = fmt.Errorf("%w: unwelded mesh needs an atlas", hex.ErrPrecondition)
	ErrPatchWelded     = fmt.Errorf("%w: welded meshes have no per-cell UV block", hex.ErrPrecondition)
	ErrStaleMesh       = fmt.Errorf("%w: mesh buffers do not match grid", hex.ErrPrecondition)
	ErrUnknownPolicy   = fmt.Errorf("%w: unknown mesh policy", hex.ErrPrecondition)
	ErrTooManyVertices = fmt.Errorf("%w: vertex count exceeds 32-bit index range", hex.ErrPrecondition)
)

// VerticesPerCell is the size of an unwelded cell block: centre plus six corners.
const VerticesPerCell = 7

// TrianglesPerCell is the number of fan triangles per cell.
const TrianglesPerCell = 6

// Policy selects how corner vertices are shared between cells.
type Policy int

const (
	// Unwelded duplicates corners so each cell owns a contiguous block.
	Unwelded Policy = iota
	// Welded reuses a corner vertex wherever touching cells meet.
	Welded
)

func (p Policy) String() string {
	switch p {
	case Unwelded:
		return "unwelded"
	case Welded:
		return "welded"
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy converts "unwelded" or "welded" (case-insensitive) to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "unwelded", "":
		return Unwelded, nil
	case "welded":
		return Welded, nil
	}
	return Unwelded, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

// Bounds holds the axis-aligned bounding box of a mesh.
type Bounds struct {
	Min hmath.Vec3
	Max hmath.Vec3
}

// Size returns Max - Min.
func (b Bounds) Size() hmath.Vec3 {
	return b.Max.Sub(b.Min)
}

func (b *Bounds) extend(p hmath.Vec3) {
	b.Min = b.Min.Min(p)
	b.Max = b.Max.Max(p)
}

// Mesh holds the buffers of a triangulated grid, ready for upload.
// Triangles holds three vertex indices per triangle. UVs parallels Vertices.
//
// Meshes are treated as immutable values: patch operations return a new
// Mesh sharing geometry with the old one.
type Mesh struct {
	Vertices  []hmath.Vec3
	Triangles []uint32
	UVs       []hmath.Vec2
	Policy    Policy
	GridSize  float32
	Bounds    Bounds
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Triangles) / 3
}

// CellOutline returns the six corner positions of the cell at insertion
// position p, in corner order. It reads the fan triangles, so it works for
// both policies.
func (m *Mesh) CellOutline(p int) [6]hmath.Vec3 {
	var out [6]hmath.Vec3
	first := p * TrianglesPerCell * 3
	for k := range out {
		out[k] = m.Vertices[m.Triangles[first+3*k+1]]
	}
	return out
}

// CellCount returns the number of cells the mesh was built from.
func (m *Mesh) CellCount() int {
	return m.TriangleCount() / TrianglesPerCell
}

// CellBlock returns the vertex range [start, end) owned by the cell at
// insertion position p of an unwelded mesh.
func CellBlock(p int) (start, end int) {
	return VerticesPerCell * p, VerticesPerCell*p + VerticesPerCell
}
