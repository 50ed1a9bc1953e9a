package quad

import (
	_ "embed"

	"cr1ms0nh3ad/internal/geometry"
	"cr1ms0nh3ad/internal/graphics"
	renderer "cr1ms0nh3ad/internal/graphics/renderer"
	"cr1ms0nh3ad/internal/profiling"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// Shader sources are embedded so the binary reads no files at runtime.

//go:embed quad.vert
var vertexSource string

//go:embed quad.frag
var fragmentSource string

// Quad renders the centred unit quad as two indexed triangles
type Quad struct {
	shader *graphics.Shader
	mesh   geometry.Mesh
	vao    uint32
	vbo    uint32
	ebo    uint32
}

// NewQuad creates a new quad renderable
func NewQuad() *Quad {
	return &Quad{mesh: geometry.UnitQuad()}
}

// Init compiles the shader and uploads the quad geometry
func (q *Quad) Init() error {
	q.shader = graphics.NewShaderFromSource(vertexSource, fragmentSource)
	q.setupQuadVAO()
	return nil
}

// Render draws the quad
func (q *Quad) Render(_ renderer.RenderContext) {
	func() {
		defer profiling.Track("renderer.renderQuad")()
		q.renderQuad()
	}()
}

// Dispose cleans up OpenGL resources
func (q *Quad) Dispose() {
	if q.vao != 0 {
		gl.DeleteVertexArrays(1, &q.vao)
	}
	if q.vbo != 0 {
		gl.DeleteBuffers(1, &q.vbo)
	}
	if q.ebo != 0 {
		gl.DeleteBuffers(1, &q.ebo)
	}
	if q.shader != nil {
		q.shader.Delete()
	}
}

func (q *Quad) setupQuadVAO() {
	gl.GenVertexArrays(1, &q.vao)
	gl.GenBuffers(1, &q.vbo)
	gl.GenBuffers(1, &q.ebo)

	gl.BindVertexArray(q.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, q.vbo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, q.ebo)

	gl.BufferData(gl.ARRAY_BUFFER, q.mesh.VertexBytes(), gl.Ptr(q.mesh.Vertices), gl.STATIC_DRAW)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, q.mesh.IndexBytes(), gl.Ptr(q.mesh.Indices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, geometry.PositionComponents, gl.FLOAT, false, geometry.PositionStride, 0)

	// The element binding stays captured in the VAO; the array binding does not
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

func (q *Quad) renderQuad() {
	q.shader.Use()
	gl.BindVertexArray(q.vao)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, q.ebo)
	gl.DrawElements(gl.TRIANGLES, q.mesh.IndexCount(), gl.UNSIGNED_INT, nil)
}
