package mesh

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	// ErrInvalidDimension is returned when a grid has fewer than two rows or columns.
	ErrInvalidDimension = errors.New("mesh: grid needs at least 2 rows and 2 columns")

	// ErrBufferMismatch is returned when generated buffer lengths disagree with the grid dimensions.
	ErrBufferMismatch = errors.New("mesh: buffer length mismatch")
)

var up = mgl32.Vec3{0, 1, 0}

// GridMesh is a flat, triangulated grid in the XZ plane centered on the origin.
// Positions, Normals and UVs are index-aligned; every three Indices form one triangle.
// A GridMesh is not modified after Generate returns it.
type GridMesh struct {
	Rows int
	Cols int
	Size float32

	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	UVs       []mgl32.Vec2
	Indices   []uint32
}

// Generate tessellates a size x size plane into rows x cols vertices.
// Vertices are emitted row by row (x varies fastest). Each grid cell yields two triangles wound
// so that their front face points toward +Y.
//
// Parameters:
//   - rows: vertex count along Z, at least 2
//   - cols: vertex count along X, at least 2
//   - size: edge length of the plane in world units
//
// Returns:
//   - *GridMesh: the generated mesh
//   - error: ErrInvalidDimension if rows or cols is below 2
func Generate(rows, cols int, size float32) (*GridMesh, error) {
	if rows < 2 || cols < 2 {
		return nil, fmt.Errorf("%w: rows=%d cols=%d", ErrInvalidDimension, rows, cols)
	}

	vertexCount := rows * cols
	indexCount := (rows - 1) * (cols - 1) * 6
	m := &GridMesh{
		Rows:      rows,
		Cols:      cols,
		Size:      size,
		Positions: make([]mgl32.Vec3, 0, vertexCount),
		Normals:   make([]mgl32.Vec3, 0, vertexCount),
		UVs:       make([]mgl32.Vec2, 0, vertexCount),
		Indices:   make([]uint32, 0, indexCount),
	}

	for y := 0; y < rows; y++ {
		ty := float32(y) / float32(rows-1)
		for x := 0; x < cols; x++ {
			tx := float32(x) / float32(cols-1)
			m.Positions = append(m.Positions, mgl32.Vec3{(-0.5 + tx) * size, 0, (-0.5 + ty) * size})
			m.Normals = append(m.Normals, up)
			m.UVs = append(m.UVs, mgl32.Vec2{tx, 1 - ty})
		}
	}

	stride := uint32(cols)
	for y := 0; y < rows-1; y++ {
		for x := 0; x < cols-1; x++ {
			quad := uint32(y*cols + x)
			m.Indices = append(m.Indices,
				quad+stride+1, quad+1, quad+stride,
				quad, quad+stride, quad+1,
			)
		}
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// VertexCount returns the number of vertices in the mesh.
//
// Returns:
//   - int: the vertex count
func (m *GridMesh) VertexCount() int {
	return len(m.Positions)
}

// TriangleCount returns the number of triangles in the mesh.
//
// Returns:
//   - int: the triangle count
func (m *GridMesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Validate checks that the buffer lengths match the grid dimensions and every index is in range.
//
// Returns:
//   - error: an error wrapping ErrBufferMismatch, or nil
func (m *GridMesh) Validate() error {
	vertexCount := m.Rows * m.Cols
	indexCount := (m.Rows - 1) * (m.Cols - 1) * 6
	switch {
	case len(m.Positions) != vertexCount:
		return fmt.Errorf("%w: %d positions, want %d", ErrBufferMismatch, len(m.Positions), vertexCount)
	case len(m.Normals) != vertexCount:
		return fmt.Errorf("%w: %d normals, want %d", ErrBufferMismatch, len(m.Normals), vertexCount)
	case len(m.UVs) != vertexCount:
		return fmt.Errorf("%w: %d uvs, want %d", ErrBufferMismatch, len(m.UVs), vertexCount)
	case len(m.Indices) != indexCount:
		return fmt.Errorf("%w: %d indices, want %d", ErrBufferMismatch, len(m.Indices), indexCount)
	}
	for i, idx := range m.Indices {
		if int(idx) >= vertexCount {
			return fmt.Errorf("%w: index %d at %d is out of range", ErrBufferMismatch, idx, i)
		}
	}
	return nil
}

// Triangle returns the vertex indices of the i-th triangle.
//
// Parameters:
//   - i: triangle number, 0 <= i < TriangleCount()
//
// Returns:
//   - [3]uint32: the three vertex indices in winding order
func (m *GridMesh) Triangle(i int) [3]uint32 {
	return [3]uint32{m.Indices[i*3], m.Indices[i*3+1], m.Indices[i*3+2]}
}

// FaceNormal returns the unit normal of the i-th triangle implied by its winding order.
//
// Parameters:
//   - i: triangle number, 0 <= i < TriangleCount()
//
// Returns:
//   - mgl32.Vec3: the face normal
func (m *GridMesh) FaceNormal(i int) mgl32.Vec3 {
	tri := m.Triangle(i)
	a, b, c := m.Positions[tri[0]], m.Positions[tri[1]], m.Positions[tri[2]]
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}

// Bounds returns the axis-aligned bounding box of the mesh positions.
//
// Returns:
//   - mgl32.Vec3: the minimum corner
//   - mgl32.Vec3: the maximum corner
func (m *GridMesh) Bounds() (mgl32.Vec3, mgl32.Vec3) {
	if len(m.Positions) == 0 {
		return mgl32.Vec3{}, mgl32.Vec3{}
	}
	lo, hi := m.Positions[0], m.Positions[0]
	for _, p := range m.Positions[1:] {
		for i := range 3 {
			lo[i] = min(lo[i], p[i])
			hi[i] = max(hi[i], p[i])
		}
	}
	return lo, hi
}
