package renderer

import (
	"cr1ms0nh3ad/internal/config"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	clearColor  mgl32.Vec4
}

// NewRenderer creates a renderer for the given settings and renderables.
// Wire-frame mode is applied once and stays in effect for the whole run.
func NewRenderer(cfg config.Settings, rs ...Renderable) (*Renderer, error) {
	if cfg.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	}

	r := &Renderer{
		renderables: rs,
		clearColor:  cfg.ClearColor,
	}

	// Initialize all renderables
	for _, renderable := range rs {
		if err := renderable.Init(); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Render clears the colour buffer and draws all renderables
func (r *Renderer) Render(ctx RenderContext) {
	c := r.clearColor
	gl.ClearColor(c.X(), c.Y(), c.Z(), c.W())
	gl.Clear(gl.COLOR_BUFFER_BIT)

	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}
