package mesh

// SubdividedPlane describes a square plane cut into (Subdivisions+1)^2 quads.
// Zero subdivisions is a single quad.
type SubdividedPlane struct {
	Subdivisions uint32
	Size         float32
}

// Mesh generates the plane's grid: Subdivisions+2 vertices along each edge.
//
// Returns:
//   - *GridMesh: the generated mesh
//   - error: any error from Generate
func (p SubdividedPlane) Mesh() (*GridMesh, error) {
	n := int(p.Subdivisions) + 2
	return Generate(n, n, p.Size)
}
