package geometry

import "github.com/go-gl/mathgl/mgl32"

// Attribute layout for position data: three tightly packed floats per vertex.
const (
	PositionComponents = 3
	PositionStride     = PositionComponents * 4
)

// Mesh is an indexed triangle mesh holding tightly packed position data.
type Mesh struct {
	Vertices []float32 // x, y, z per vertex
	Indices  []uint32
}

// Corners of the centred unit quad in normalised device coordinates.
var quadCorners = [4]mgl32.Vec3{
	{0.5, 0.5, 0},   // top right
	{0.5, -0.5, 0},  // bottom right
	{-0.5, -0.5, 0}, // bottom left
	{-0.5, 0.5, 0},  // top left
}

// UnitQuad returns the centred unit quad as two triangles sharing the
// diagonal between the bottom-right and top-left corners.
func UnitQuad() Mesh {
	vertices := make([]float32, 0, len(quadCorners)*PositionComponents)
	for _, c := range quadCorners {
		vertices = append(vertices, c.X(), c.Y(), c.Z())
	}

	return Mesh{
		Vertices: vertices,
		Indices: []uint32{
			0, 1, 3, // first triangle
			1, 2, 3, // second triangle
		},
	}
}

// VertexBytes returns the size of the vertex data in bytes.
func (m Mesh) VertexBytes() int { return len(m.Vertices) * 4 }

// IndexBytes returns the size of the index data in bytes.
func (m Mesh) IndexBytes() int { return len(m.Indices) * 4 }

// IndexCount returns the number of indices as the draw-call element count.
func (m Mesh) IndexCount() int32 { return int32(len(m.Indices)) }
