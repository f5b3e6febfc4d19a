package mesh

import (
	"errors"
	"fmt"
)

// ErrNilMesh is returned by Upload when there is no mesh to hand over.
var ErrNilMesh = errors.New("mesh: nil mesh")

// Buffers is the serialized form of a GridMesh handed to a Sink.
type Buffers struct {
	Name        string
	Vertices    []byte
	Indices     []byte
	VertexCount int
	IndexCount  int
}

// Sink accepts serialized mesh buffers, typically the host's GPU upload path.
type Sink interface {
	// Upload receives one mesh's vertex and index buffers.
	//
	// Parameters:
	//   - buffers: the serialized mesh
	//
	// Returns:
	//   - error: an error if the sink rejects the buffers
	Upload(buffers Buffers) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(buffers Buffers) error

// Upload calls f(buffers).
func (f SinkFunc) Upload(buffers Buffers) error {
	return f(buffers)
}

// Upload validates m and hands its serialized buffers to sink.
//
// Parameters:
//   - sink: the destination
//   - name: a label for the mesh, passed through to the sink
//   - m: the mesh to upload
//
// Returns:
//   - error: ErrNilMesh, a validation error wrapping ErrBufferMismatch, or the sink's error
func Upload(sink Sink, name string, m *GridMesh) error {
	if m == nil {
		return fmt.Errorf("upload %q: %w", name, ErrNilMesh)
	}
	if err := m.Validate(); err != nil {
		return fmt.Errorf("upload %q: %w", name, err)
	}
	err := sink.Upload(Buffers{
		Name:        name,
		Vertices:    m.VertexBytes(),
		Indices:     m.IndexBytes(),
		VertexCount: m.VertexCount(),
		IndexCount:  len(m.Indices),
	})
	if err != nil {
		return fmt.Errorf("upload %q: %w", name, err)
	}
	return nil
}
