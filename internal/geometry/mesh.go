// Package geometry builds interleaved vertex and index buffers for rooms, walls,
// doorways, windows and the skybox.
package geometry

import "github.com/go-gl/mathgl/mgl64"

// Vertex layout offsets. Every vertex occupies VertexSize floats.
const (
	PositionOffset = 0 // 0, 1, 2
	NormalOffset   = 3 // 3, 4, 5
	ColorOffset    = 6 // 6, 7, 8
	UVOffset       = 9 // 9, 10
	VertexSize     = 11
)

// Mesh is a triangle list: Indices holds one triangle per three entries and
// references vertices in Vertices.
type Mesh struct {
	Vertices []float64
	Indices  []uint32
}

// VertexCount returns the number of vertices in the mesh.
func (m Mesh) VertexCount() int {
	return len(m.Vertices) / VertexSize
}

// TriangleCount returns the number of triangles in the mesh.
func (m Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty reports whether the mesh holds no vertices.
func (m Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// Positions returns the position component of every vertex.
func (m Mesh) Positions() []mgl64.Vec3 {
	return m.component(PositionOffset)
}

// Normals returns the normal component of every vertex.
func (m Mesh) Normals() []mgl64.Vec3 {
	return m.component(NormalOffset)
}

func (m Mesh) component(offset int) []mgl64.Vec3 {
	result := make([]mgl64.Vec3, 0, m.VertexCount())
	for i := 0; i+VertexSize <= len(m.Vertices); i += VertexSize {
		result = append(result, mgl64.Vec3{
			m.Vertices[i+offset],
			m.Vertices[i+offset+1],
			m.Vertices[i+offset+2],
		})
	}
	return result
}

// Translate returns a copy of the mesh with every position shifted by offset.
func (m Mesh) Translate(offset mgl64.Vec3) Mesh {
	out := Mesh{
		Vertices: make([]float64, len(m.Vertices)),
		Indices:  make([]uint32, len(m.Indices)),
	}
	copy(out.Vertices, m.Vertices)
	copy(out.Indices, m.Indices)
	for i := 0; i+VertexSize <= len(out.Vertices); i += VertexSize {
		out.Vertices[i+PositionOffset] += offset[0]
		out.Vertices[i+PositionOffset+1] += offset[1]
		out.Vertices[i+PositionOffset+2] += offset[2]
	}
	return out
}

// MakeQuad emits four vertices in the given order and the two triangles
// (0,1,2) and (0,2,3) covering them.
func MakeQuad(positions, normals, colors [4]mgl64.Vec3, uvs [4]mgl64.Vec2) Mesh {
	vertices := make([]float64, 0, 4*VertexSize)
	for i := 0; i < 4; i++ {
		vertices = append(vertices, positions[i][:]...)
		vertices = append(vertices, normals[i][:]...)
		vertices = append(vertices, colors[i][:]...)
		vertices = append(vertices, uvs[i][:]...)
	}
	return Mesh{
		Vertices: vertices,
		Indices:  []uint32{0, 1, 2, 0, 2, 3},
	}
}

// Join concatenates meshes into one buffer pair. Indices of part k are shifted
// by the number of vertices emitted before it, so for parts of equal size chunk
// k moves by k times the vertices per chunk.
func Join(parts ...Mesh) Mesh {
	vertexTotal, indexTotal := 0, 0
	for _, p := range parts {
		vertexTotal += len(p.Vertices)
		indexTotal += len(p.Indices)
	}

	out := Mesh{
		Vertices: make([]float64, 0, vertexTotal),
		Indices:  make([]uint32, 0, indexTotal),
	}
	for _, p := range parts {
		base := uint32(out.VertexCount())
		out.Vertices = append(out.Vertices, p.Vertices...)
		for _, idx := range p.Indices {
			out.Indices = append(out.Indices, idx+base)
		}
	}
	return out
}

// face builds a single-coloured quad with one normal shared by all corners.
func face(corners [4]mgl64.Vec3, normal mgl64.Vec3, uvs [4]mgl64.Vec2) Mesh {
	black := mgl64.Vec3{}
	return MakeQuad(
		corners,
		[4]mgl64.Vec3{normal, normal, normal, normal},
		[4]mgl64.Vec3{black, black, black, black},
		uvs,
	)
}

// fullUV maps a face onto the whole texture.
var fullUV = [4]mgl64.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
