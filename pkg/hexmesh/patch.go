package hexmesh

import (
	"fmt"
	"slices"

	"github.com/Faultbox/hexmap/pkg/hex"
	"github.com/Faultbox/hexmap/pkg/hexgrid"
	hmath "github.com/Faultbox/hexmap/pkg/math"
	"github.com/Faultbox/hexmap/pkg/tileset"
)

// PatchTileUV returns a copy of mesh whose UV block for the cell at coord
// reflects that cell's current tile index. Vertices and Triangles are shared
// with mesh; UVs are copied, so mesh itself is left untouched.
//
// Only unwelded meshes built from grid (same cells, same order) can be patched.
func PatchTileUV(mesh *Mesh, grid *hexgrid.Grid, coord hex.Coord, atlas *tileset.Atlas) (*Mesh, error) {
	if err := checkPatchable(mesh, grid, atlas); err != nil {
		return nil, err
	}

	p, ok := grid.IndexOf(coord)
	if !ok {
		return nil, fmt.Errorf("%w: %v", hexgrid.ErrCellNotFound, coord)
	}
	uvs, err := atlas.UVs(grid.At(p).TileIndex)
	if err != nil {
		return nil, fmt.Errorf("cell %v: %w", coord, err)
	}

	patched := *mesh
	patched.UVs = slices.Clone(mesh.UVs)
	start, end := CellBlock(p)
	copy(patched.UVs[start:end], uvs[:])
	return &patched, nil
}

// RefreshUVs recomputes every UV block of an unwelded mesh from grid, for
// when several tile indices changed at once. Geometry is shared with mesh.
// Welded meshes only carry plain UVs, so they are returned as a copy.
func RefreshUVs(mesh *Mesh, grid *hexgrid.Grid, atlas *tileset.Atlas) (*Mesh, error) {
	if mesh.Policy == Welded {
		refreshed := *mesh
		refreshed.UVs = slices.Clone(mesh.UVs)
		return &refreshed, nil
	}
	if err := checkPatchable(mesh, grid, atlas); err != nil {
		return nil, err
	}

	refreshed := *mesh
	refreshed.UVs = make([]hmath.Vec2, 0, len(mesh.UVs))
	for i, n := 0, grid.Len(); i < n; i++ {
		cell := grid.At(i)
		uvs, err := atlas.UVs(cell.TileIndex)
		if err != nil {
			return nil, fmt.Errorf("cell %v: %w", cell.Position, err)
		}
		refreshed.UVs = append(refreshed.UVs, uvs[:]...)
	}
	return &refreshed, nil
}

func checkPatchable(mesh *Mesh, grid *hexgrid.Grid, atlas *tileset.Atlas) error {
	if mesh.Policy == Welded {
		return ErrPatchWelded
	}
	if atlas == nil {
		return ErrMissingAtlas
	}
	want := VerticesPerCell * grid.Len()
	if len(mesh.UVs) != want || len(mesh.Vertices) != want {
		return fmt.Errorf("%w: %d UVs for %d cells", ErrStaleMesh, len(mesh.UVs), grid.Len())
	}
	return nil
}
