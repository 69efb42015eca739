package hexmesh

import hmath "github.com/Faultbox/hexmap/pkg/math"

// GridLines returns the cell outlines of mesh as segment endpoint pairs:
// element 2i and 2i+1 are the ends of segment i. Edges shared by welded cells
// are emitted once.
func GridLines(mesh *Mesh) []hmath.Vec3 {
	type edge struct{ a, b uint32 }
	seen := make(map[edge]bool)

	lines := make([]hmath.Vec3, 0, len(mesh.Triangles)*2/3)
	for t := 0; t+2 < len(mesh.Triangles); t += 3 {
		a, b := mesh.Triangles[t+1], mesh.Triangles[t+2]
		key := edge{min(a, b), max(a, b)}
		if seen[key] {
			continue
		}
		seen[key] = true
		lines = append(lines, mesh.Vertices[a], mesh.Vertices[b])
	}
	return lines
}
