package platform

import (
	"fmt"

	"cr1ms0nh3ad/internal/config"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window owns the GLFW window and the GL context bound to it. The context
// belongs to the thread that created the window for its entire lifetime.
type Window struct {
	glfw *glfw.Window
}

// NewWindow creates the application window with a core-profile 3.3 context,
// makes the context current and resolves the driver entry points. The caller
// is expected to have initialised GLFW and locked the OS thread.
func NewWindow(cfg config.Settings) (*Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}
	win.MakeContextCurrent()

	// Resolve OpenGL function pointers through the GLFW loader
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	w := &Window{glfw: win}
	w.OnFramebufferResize(nil)

	return w, nil
}

// OnFramebufferResize registers fn to run after the viewport has been
// updated for a framebuffer resize. The handler is a closure, so callers
// can capture whatever state they need. A nil fn keeps just the viewport
// update.
func (w *Window) OnFramebufferResize(fn func(width, height int)) {
	w.glfw.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
		if fn != nil {
			fn(width, height)
		}
	})
}

// Handle exposes the underlying GLFW window for callback registration.
func (w *Window) Handle() *glfw.Window { return w.glfw }

// ShouldClose reports whether the window has been asked to close.
func (w *Window) ShouldClose() bool { return w.glfw.ShouldClose() }

// SetShouldClose sets the window's close flag.
func (w *Window) SetShouldClose(v bool) { w.glfw.SetShouldClose(v) }

// FramebufferSize returns the current framebuffer size in pixels.
func (w *Window) FramebufferSize() (int, int) { return w.glfw.GetFramebufferSize() }

// SwapBuffers presents the back buffer. This is the only blocking call in
// the frame; it may wait for vertical sync depending on driver defaults.
func (w *Window) SwapBuffers() { w.glfw.SwapBuffers() }

// Destroy releases the window. The GL objects it owns die with the context.
func (w *Window) Destroy() { w.glfw.Destroy() }
