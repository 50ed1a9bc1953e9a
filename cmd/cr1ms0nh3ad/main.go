package main

import (
	"fmt"
	"os"
	"runtime"

	"cr1ms0nh3ad/internal/config"
	"cr1ms0nh3ad/internal/game"
	"cr1ms0nh3ad/internal/graphics/renderables/quad"
	renderer "cr1ms0nh3ad/internal/graphics/renderer"
	"cr1ms0nh3ad/internal/input"
	"cr1ms0nh3ad/internal/platform"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() { runtime.LockOSThread() }

func main() {
	os.Exit(run())
}

func run() int {
	if err := glfw.Init(); err != nil {
		fmt.Println("failed to initialize GLFW:", err)
		return -1
	}
	defer glfw.Terminate()

	cfg := config.Default()

	window, err := platform.NewWindow(cfg)
	if err != nil {
		fmt.Println(err)
		return -1
	}

	inputManager := input.NewInputManager()
	inputManager.SetKeyCallback(window.Handle())

	r, err := renderer.NewRenderer(cfg, quad.NewQuad())
	if err != nil {
		fmt.Println(err)
		return -1
	}
	defer r.Dispose()

	game.NewApp(window, inputManager, r).Run()
	return 0
}
