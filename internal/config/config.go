package config

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// Settings is the immutable window and render configuration for a run.
// It is built once in the command and handed to the bootstrapper and
// renderer; nothing mutates it afterwards.
type Settings struct {
	Width  int
	Height int
	Title  string

	ClearColor mgl32.Vec4
	Wireframe  bool
}

// Default returns the settings for the wire-frame quad build.
func Default() Settings {
	return Settings{
		Width:      1024,
		Height:     1024,
		Title:      "cr1ms0nh3ad",
		ClearColor: mgl32.Vec4{0.0, 0.0, 0.0, 1.0},
		Wireframe:  true,
	}
}

// ClearOnly returns the settings for the colour-only build, which clears
// to pink every frame and draws nothing.
func ClearOnly() Settings {
	return Settings{
		Width:      1024,
		Height:     1024,
		Title:      "cr1ms0nh3ad",
		ClearColor: mgl32.Vec4{1.0, 0.325, 0.7, 1.0},
		Wireframe:  false,
	}
}

// FPSSettings holds the frame cap configuration
type FPSSettings struct {
	mu    sync.RWMutex
	limit int
}

var globalFPSSettings = &FPSSettings{
	limit: 0, // uncapped; pacing is left to the driver's swap interval
}

// GetFPSLimit returns the current frame cap (0 = uncapped)
func GetFPSLimit() int {
	globalFPSSettings.mu.RLock()
	defer globalFPSSettings.mu.RUnlock()
	return globalFPSSettings.limit
}

// SetFPSLimit sets the frame cap
func SetFPSLimit(limit int) {
	globalFPSSettings.mu.Lock()
	defer globalFPSSettings.mu.Unlock()

	// Clamp to reasonable values
	if limit < 0 {
		limit = 0
	}
	if limit > 500 {
		limit = 500
	}

	globalFPSSettings.limit = limit
}
