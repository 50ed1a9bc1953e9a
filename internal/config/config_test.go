package config

import "testing"

func TestDefaultSettings(t *testing.T) {
	cfg := Default()

	if cfg.Width != 1024 || cfg.Height != 1024 {
		t.Errorf("expected 1024x1024 window, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Title != "cr1ms0nh3ad" {
		t.Errorf("expected title %q, got %q", "cr1ms0nh3ad", cfg.Title)
	}
	if !cfg.Wireframe {
		t.Error("default build should render in wire-frame mode")
	}

	expected := [4]float32{0, 0, 0, 1}
	for i, v := range expected {
		if cfg.ClearColor[i] != v {
			t.Errorf("clear colour component %d: expected %v, got %v", i, v, cfg.ClearColor[i])
		}
	}
}

func TestClearOnlySettings(t *testing.T) {
	cfg := ClearOnly()

	if cfg.Wireframe {
		t.Error("colour-only build should not enable wire-frame mode")
	}

	expected := [4]float32{1.0, 0.325, 0.7, 1.0}
	for i, v := range expected {
		if cfg.ClearColor[i] != v {
			t.Errorf("clear colour component %d: expected %v, got %v", i, v, cfg.ClearColor[i])
		}
	}
}

func TestFPSLimitClamping(t *testing.T) {
	defer SetFPSLimit(0)

	SetFPSLimit(-10)
	if got := GetFPSLimit(); got != 0 {
		t.Errorf("negative limit should clamp to 0, got %d", got)
	}

	SetFPSLimit(120)
	if got := GetFPSLimit(); got != 120 {
		t.Errorf("expected limit 120, got %d", got)
	}

	SetFPSLimit(10000)
	if got := GetFPSLimit(); got != 500 {
		t.Errorf("oversized limit should clamp to 500, got %d", got)
	}
}
