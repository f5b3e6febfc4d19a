package mesh

import (
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
)

// GPUVertexSize is the byte size of one interleaved GPUVertex.
const GPUVertexSize = 64

// Vertex attribute shader locations used by VertexBufferLayout.
const (
	LocationPosition = 0
	LocationNormal   = 1
	LocationTexCoord = 2
	LocationColor    = 3
	LocationTangent  = 4
)

// GPUVertex is the GPU-aligned representation of a single grid vertex.
// Size: 64 bytes (std430 aligned, no padding required).
type GPUVertex struct {
	Position [3]float32 // offset  0: vertex position in model space (12 bytes)
	Normal   [3]float32 // offset 12: vertex normal for lighting (12 bytes)
	TexCoord [2]float32 // offset 24: UV texture coordinate (8 bytes)
	Color    [4]float32 // offset 32: per-vertex RGBA color (16 bytes)
	Tangent  [4]float32 // offset 48: tangent vector (xyz) + handedness (w) (16 bytes)
}

// Size returns the size of the GPUVertex struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUVertex) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUVertex struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 64-byte buffer ready for GPU upload.
func (g *GPUVertex) Marshal() []byte {
	buf := make([]byte, GPUVertexSize)
	g.put(buf)
	return buf
}

// put writes the vertex into buf, which must hold at least GPUVertexSize bytes.
func (g *GPUVertex) put(buf []byte) {
	fields := [...]float32{
		g.Position[0], g.Position[1], g.Position[2],
		g.Normal[0], g.Normal[1], g.Normal[2],
		g.TexCoord[0], g.TexCoord[1],
		g.Color[0], g.Color[1], g.Color[2], g.Color[3],
		g.Tangent[0], g.Tangent[1], g.Tangent[2], g.Tangent[3],
	}
	for i, f := range fields {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
}

// Vertices interleaves the mesh into GPU vertices. Grid vertices are white with a +X tangent.
//
// Returns:
//   - []GPUVertex: one vertex per position
func (m *GridMesh) Vertices() []GPUVertex {
	out := make([]GPUVertex, len(m.Positions))
	for i := range m.Positions {
		out[i] = GPUVertex{
			Position: m.Positions[i],
			Normal:   m.Normals[i],
			TexCoord: m.UVs[i],
			Color:    [4]float32{1, 1, 1, 1},
			Tangent:  [4]float32{1, 0, 0, 1},
		}
	}
	return out
}

// VertexBytes serializes the interleaved vertex buffer, little-endian.
//
// Returns:
//   - []byte: VertexCount()*GPUVertexSize bytes
func (m *GridMesh) VertexBytes() []byte {
	vertices := m.Vertices()
	buf := make([]byte, len(vertices)*GPUVertexSize)
	for i := range vertices {
		vertices[i].put(buf[i*GPUVertexSize:])
	}
	return buf
}

// IndexBytes serializes the index buffer as little-endian uint32 values.
//
// Returns:
//   - []byte: len(Indices)*4 bytes
func (m *GridMesh) IndexBytes() []byte {
	buf := make([]byte, len(m.Indices)*4)
	for i, idx := range m.Indices {
		binary.LittleEndian.PutUint32(buf[i*4:], idx)
	}
	return buf
}

// IndexFormat is the index format matching IndexBytes.
const IndexFormat = wgpu.IndexFormatUint32

// VertexBufferLayout describes the GPUVertex layout for a render pipeline.
//
// Returns:
//   - wgpu.VertexBufferLayout: the per-vertex layout with five attributes
func VertexBufferLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: GPUVertexSize,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: LocationPosition},
			{Format: wgpu.VertexFormatFloat32x3, Offset: 12, ShaderLocation: LocationNormal},
			{Format: wgpu.VertexFormatFloat32x2, Offset: 24, ShaderLocation: LocationTexCoord},
			{Format: wgpu.VertexFormatFloat32x4, Offset: 32, ShaderLocation: LocationColor},
			{Format: wgpu.VertexFormatFloat32x4, Offset: 48, ShaderLocation: LocationTangent},
		},
	}
}

// PrimitiveState returns the rasterizer state grid meshes are wound for: triangle lists with
// counter-clockwise front faces and back-face culling.
//
// Returns:
//   - wgpu.PrimitiveState: the primitive state
func PrimitiveState() wgpu.PrimitiveState {
	return wgpu.PrimitiveState{
		Topology:  wgpu.PrimitiveTopologyTriangleList,
		FrontFace: wgpu.FrontFaceCCW,
		CullMode:  wgpu.CullModeBack,
	}
}
