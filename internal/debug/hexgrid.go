// Package debug provides debug visualization for hex meshes.
package debug

import (
	"image/color"

	"github.com/Faultbox/hexmap/pkg/hexmesh"
)

// HexGridRenderer generates debug geometry for a built mesh.
type HexGridRenderer struct {
	mesh *hexmesh.Mesh
}

// NewHexGridRenderer creates a renderer for mesh.
func NewHexGridRenderer(mesh *hexmesh.Mesh) *HexGridRenderer {
	if mesh == nil {
		return nil
	}
	return &HexGridRenderer{mesh: mesh}
}

// LineVertex is a coloured vertex for line and overlay rendering.
type LineVertex struct {
	X, Y, Z float32 // Position
	R, G, B float32 // Color
}

// GenerateGridLines returns one vertex pair per cell edge, lifted to height.
func (h *HexGridRenderer) GenerateGridLines(c color.Color, height float32) []LineVertex {
	if h == nil {
		return nil
	}
	r, g, b := rgb(c)

	points := hexmesh.GridLines(h.mesh)
	vertices := make([]LineVertex, len(points))
	for i, p := range points {
		vertices[i] = LineVertex{p.X, p.Y, p.Z + height, r, g, b}
	}
	return vertices
}

// GenerateTileOverlay returns the mesh triangles coloured by tile, three
// vertices per triangle. tiles[p] is the tile of the cell at insertion
// position p; palette is indexed by tile modulo its length.
func (h *HexGridRenderer) GenerateTileOverlay(tiles []int, palette []color.Color, height float32) []LineVertex {
	if h == nil || len(palette) == 0 {
		return nil
	}

	cells := min(h.mesh.CellCount(), len(tiles))
	vertices := make([]LineVertex, 0, cells*hexmesh.TrianglesPerCell*3)
	for p := 0; p < cells; p++ {
		r, g, b := rgb(palette[tiles[p]%len(palette)])
		first := p * hexmesh.TrianglesPerCell * 3
		for _, idx := range h.mesh.Triangles[first : first+hexmesh.TrianglesPerCell*3] {
			v := h.mesh.Vertices[idx]
			vertices = append(vertices, LineVertex{v.X, v.Y, v.Z + height, r, g, b})
		}
	}
	return vertices
}

func rgb(c color.Color) (r, g, b float32) {
	cr, cg, cb, _ := c.RGBA()
	return float32(cr) / 0xffff, float32(cg) / 0xffff, float32(cb) / 0xffff
}
