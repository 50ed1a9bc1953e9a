package game

import (
	"log"
	"time"

	renderer "cr1ms0nh3ad/internal/graphics/renderer"
	"cr1ms0nh3ad/internal/input"
	"cr1ms0nh3ad/internal/platform"
	"cr1ms0nh3ad/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// App drives the frame loop: input poll, clear and draw, present, events.
type App struct {
	window       *platform.Window
	inputManager *input.InputManager
	renderer     *renderer.Renderer

	fpsLimiter *FPSLimiter
	lastTime   time.Time
}

// NewApp wires the window, input manager and renderer into a frame driver
func NewApp(window *platform.Window, im *input.InputManager, r *renderer.Renderer) *App {
	return &App{
		window:       window,
		inputManager: im,
		renderer:     r,
		fpsLimiter:   NewFPSLimiter(),
		lastTime:     time.Now(),
	}
}

// Run loops until the window is asked to close, either by the quit key or
// by the window manager.
func (a *App) Run() {
	for !a.window.ShouldClose() {
		a.tick()
	}
}

func (a *App) tick() {
	profiling.ResetFrame()
	start := time.Now()
	dt := start.Sub(a.lastTime).Seconds()
	a.lastTime = start

	// Quit is level-triggered: Backspace held in any frame requests close
	if a.inputManager.IsActive(input.ActionQuit) {
		a.window.SetShouldClose(true)
	}

	width, height := a.window.FramebufferSize()
	a.renderer.Render(renderer.RenderContext{Width: width, Height: height, DT: dt})

	// Present and pump events (drives the framebuffer-resize callback)
	func() { defer profiling.Track("glfw.SwapBuffers")(); a.window.SwapBuffers() }()
	func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

	a.inputManager.PostUpdate() // Clear "JustPressed" flags

	// Swap time is excluded: it legitimately blocks for vsync
	work := time.Since(start) - profiling.SumWithPrefix("glfw.")
	if work > 16*time.Millisecond {
		log.Printf("Slow frame: %v. Top tasks: %s", work, profiling.TopN(3))
	}

	a.fpsLimiter.Wait()
}
