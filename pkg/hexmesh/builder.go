package hexmesh

import (
	"fmt"
	"math"

	"github.com/Faultbox/hexmap/pkg/hex"
	"github.com/Faultbox/hexmap/pkg/hexgrid"
	hmath "github.com/Faultbox/hexmap/pkg/math"
	"github.com/Faultbox/hexmap/pkg/tileset"
)

// Builder triangulates grids with a fixed cell size and policy.
type Builder struct {
	layout hex.Layout
	policy Policy
}

// NewBuilder returns a builder for cells whose side is gridSize world units.
func NewBuilder(gridSize float32, policy Policy) (*Builder, error) {
	layout, err := hex.NewLayout(gridSize)
	if err != nil {
		return nil, err
	}
	if policy != Unwelded && policy != Welded {
		return nil, fmt.Errorf("%w: %v", ErrUnknownPolicy, policy)
	}
	return &Builder{layout: layout, policy: policy}, nil
}

// Policy returns the builder's triangulation policy.
func (b *Builder) Policy() Policy {
	return b.policy
}

// Layout returns the cell geometry used by the builder.
func (b *Builder) Layout() hex.Layout {
	return b.layout
}

// Build triangulates grid. Unwelded builds need atlas to cover every tile
// index in the grid; welded builds ignore it.
func (b *Builder) Build(grid *hexgrid.Grid, atlas *tileset.Atlas) (*Mesh, error) {
	if int64(grid.Len())*VerticesPerCell > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d cells", ErrTooManyVertices, grid.Len())
	}
	if b.policy == Welded {
		return b.buildWelded(grid), nil
	}
	if atlas == nil {
		return nil, ErrMissingAtlas
	}
	return b.buildUnwelded(grid, atlas)
}

// Build triangulates grid with the unwelded atlas policy.
func Build(grid *hexgrid.Grid, atlas *tileset.Atlas, gridSize float32) (*Mesh, error) {
	b, err := NewBuilder(gridSize, Unwelded)
	if err != nil {
		return nil, err
	}
	return b.Build(grid, atlas)
}

func (b *Builder) newMesh(cells int) *Mesh {
	return &Mesh{
		Vertices:  make([]hmath.Vec3, 0, cells*VerticesPerCell),
		Triangles: make([]uint32, 0, cells*TrianglesPerCell*3),
		UVs:       make([]hmath.Vec2, 0, cells*VerticesPerCell),
		Policy:    b.policy,
		GridSize:  b.layout.Size,
		Bounds: Bounds{
			Min: hmath.Vec3{X: math.MaxFloat32, Y: math.MaxFloat32},
			Max: hmath.Vec3{X: -math.MaxFloat32, Y: -math.MaxFloat32},
		},
	}
}

func (b *Builder) buildUnwelded(grid *hexgrid.Grid, atlas *tileset.Atlas) (*Mesh, error) {
	m := b.newMesh(grid.Len())
	corners := b.layout.CornerOffsets()

	for i, n := 0, grid.Len(); i < n; i++ {
		cell := grid.At(i)
		uvs, err := atlas.UVs(cell.TileIndex)
		if err != nil {
			return nil, fmt.Errorf("cell %v: %w", cell.Position, err)
		}

		center := b.layout.Center(cell.Position)
		base := uint32(len(m.Vertices))

		m.Vertices = append(m.Vertices, center.XY0())
		for _, off := range corners {
			p := center.Add(off).XY0()
			m.Vertices = append(m.Vertices, p)
			m.Bounds.extend(p)
		}
		m.UVs = append(m.UVs, uvs[:]...)

		for k := uint32(0); k < TrianglesPerCell; k++ {
			m.Triangles = append(m.Triangles, base, base+1+k, base+1+(k+1)%TrianglesPerCell)
		}
	}
	m.finishBounds()
	return m, nil
}

// cornerKey identifies a corner by the three cells meeting there: the sum of
// their coordinates. Center is linear in q and r, so equal keys mean equal
// world positions without any float comparison.
type cornerKey hex.Coord

func cornerKeyOf(c hex.Coord, k int) cornerKey {
	sum := c.Scale(3).Add(hex.Directions[k]).Add(hex.Directions[(k+1)%6])
	return cornerKey(sum)
}

func (b *Builder) buildWelded(grid *hexgrid.Grid) *Mesh {
	m := b.newMesh(grid.Len())
	corners := b.layout.CornerOffsets()
	shared := make(map[cornerKey]uint32, grid.Len()*2)

	for i, n := 0, grid.Len(); i < n; i++ {
		pos := grid.At(i).Position
		center := b.layout.Center(pos)

		centerIdx := uint32(len(m.Vertices))
		m.Vertices = append(m.Vertices, center.XY0())
		m.UVs = append(m.UVs, hmath.Vec2{})

		var ring [6]uint32
		for k, off := range corners {
			key := cornerKeyOf(pos, k)
			idx, ok := shared[key]
			if !ok {
				idx = uint32(len(m.Vertices))
				p := center.Add(off).XY0()
				m.Vertices = append(m.Vertices, p)
				m.UVs = append(m.UVs, hmath.Vec2{})
				m.Bounds.extend(p)
				shared[key] = idx
			}
			ring[k] = idx
		}

		for k := 0; k < TrianglesPerCell; k++ {
			m.Triangles = append(m.Triangles, centerIdx, ring[k], ring[(k+1)%6])
		}
	}
	m.finishBounds()
	return m
}

// finishBounds collapses the sentinel bounds of an empty mesh to zero.
func (m *Mesh) finishBounds() {
	if len(m.Vertices) == 0 {
		m.Bounds = Bounds{}
	}
}
