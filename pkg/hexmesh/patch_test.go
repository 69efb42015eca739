package hexmesh

import (
	"errors"
	"testing"

	"github.com/Faultbox/hexmap/pkg/hex"
	"github.com/Faultbox/hexmap/pkg/hexgrid"
	hmath "github.com/Faultbox/hexmap/pkg/math"
)

func TestPatchTileUV_ChangesOnlyTargetBlock(t *testing.T) {
	atlas := mustAtlas(t, 4, 2)
	grid := mustGrid(t, hex.Disk(2), 8)
	mesh, err := Build(grid, atlas, 1)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	before := append([]hmath.Vec2(nil), mesh.UVs...)

	target := hex.New(-1, 2)
	cell, _ := grid.Get(target)
	newTile := (cell.TileIndex + 3) % 8
	if err := grid.SetTileIndex(target, newTile); err != nil {
		t.Fatalf("SetTileIndex failed: %v", err)
	}

	patched, err := PatchTileUV(mesh, grid, target, atlas)
	if err != nil {
		t.Fatalf("PatchTileUV failed: %v", err)
	}

	p, _ := grid.IndexOf(target)
	start, end := CellBlock(p)
	want, _ := atlas.UVs(newTile)

	changed := 0
	for i := range patched.UVs {
		if i >= start && i < end {
			if patched.UVs[i] != want[i-start] {
				t.Errorf("uv %d: expected %v, got %v", i, want[i-start], patched.UVs[i])
			}
		} else if patched.UVs[i] != before[i] {
			t.Errorf("uv %d outside target block changed", i)
		}
		if patched.UVs[i] != before[i] {
			changed++
		}
	}
	if changed == 0 || changed > 7 {
		t.Errorf("expected 1..7 changed UVs, got %d", changed)
	}

	for i := range mesh.UVs {
		if mesh.UVs[i] != before[i] {
			t.Fatalf("original mesh UV %d modified", i)
		}
	}
	if &patched.Vertices[0] != &mesh.Vertices[0] {
		t.Error("expected patched mesh to share vertex buffer")
	}
}

func TestPatchTileUV_MatchesRebuild(t *testing.T) {
	atlas := mustAtlas(t, 3, 3)
	grid := mustGrid(t, hex.Disk(1), 9)
	mesh, err := Build(grid, atlas, 1)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if err := grid.SetTileIndex(hex.New(0, 0), 8); err != nil {
		t.Fatalf("SetTileIndex failed: %v", err)
	}
	patched, err := PatchTileUV(mesh, grid, hex.New(0, 0), atlas)
	if err != nil {
		t.Fatalf("PatchTileUV failed: %v", err)
	}
	rebuilt, err := Build(grid, atlas, 1)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	for i := range rebuilt.UVs {
		if patched.UVs[i] != rebuilt.UVs[i] {
			t.Errorf("uv %d: patch %v differs from rebuild %v", i, patched.UVs[i], rebuilt.UVs[i])
		}
	}
}

func TestPatchTileUV_Errors(t *testing.T) {
	atlas := mustAtlas(t, 4, 2)
	grid := mustGrid(t, hex.Disk(1), 8)
	mesh, err := Build(grid, atlas, 1)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	welder, _ := NewBuilder(1, Welded)
	welded, err := welder.Build(grid, nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	bigger := mustGrid(t, hex.Disk(2), 8)

	tests := []struct {
		name    string
		mesh    *Mesh
		grid    *hexgrid.Grid
		coord   hex.Coord
		wantErr error
	}{
		{"welded", welded, grid, hex.New(0, 0), ErrPatchWelded},
		{"absent cell", mesh, grid, hex.New(5, 0), hexgrid.ErrCellNotFound},
		{"stale mesh", mesh, bigger, hex.New(0, 0), ErrStaleMesh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PatchTileUV(tt.mesh, tt.grid, tt.coord, atlas)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
			if !errors.Is(err, hex.ErrPrecondition) {
				t.Error("expected error to wrap hex.ErrPrecondition")
			}
		})
	}

	if _, err := PatchTileUV(mesh, grid, hex.New(0, 0), nil); !errors.Is(err, ErrMissingAtlas) {
		t.Errorf("expected ErrMissingAtlas, got %v", err)
	}
}

func TestRefreshUVs(t *testing.T) {
	atlas := mustAtlas(t, 4, 2)
	grid := mustGrid(t, hex.Disk(2), 8)
	mesh, err := Build(grid, atlas, 1)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	for _, c := range grid.Coords() {
		if err := grid.SetTileIndex(c, 7); err != nil {
			t.Fatalf("SetTileIndex failed: %v", err)
		}
	}
	refreshed, err := RefreshUVs(mesh, grid, atlas)
	if err != nil {
		t.Fatalf("RefreshUVs failed: %v", err)
	}

	want, _ := atlas.UVs(7)
	for i, uv := range refreshed.UVs {
		if uv != want[i%VerticesPerCell] {
			t.Fatalf("uv %d: expected %v, got %v", i, want[i%VerticesPerCell], uv)
		}
	}
	if refreshed.VertexCount() != mesh.VertexCount() {
		t.Errorf("geometry changed: %d vs %d vertices", refreshed.VertexCount(), mesh.VertexCount())
	}
}

func TestRefreshUVs_Welded(t *testing.T) {
	grid := mustGrid(t, hex.Disk(1), 1)
	b, _ := NewBuilder(1, Welded)
	mesh, err := b.Build(grid, nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	refreshed, err := RefreshUVs(mesh, grid, nil)
	if err != nil {
		t.Fatalf("RefreshUVs failed: %v", err)
	}
	if len(refreshed.UVs) != len(mesh.UVs) {
		t.Errorf("expected %d UVs, got %d", len(mesh.UVs), len(refreshed.UVs))
	}
}
