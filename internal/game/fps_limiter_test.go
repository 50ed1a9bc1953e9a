package game

import (
	"testing"
	"time"

	"cr1ms0nh3ad/internal/config"
)

func TestWaitUncappedReturnsImmediately(t *testing.T) {
	config.SetFPSLimit(0)
	limiter := NewFPSLimiter()

	start := time.Now()
	for i := 0; i < 100; i++ {
		limiter.Wait()
	}
	if elapsed := time.Since(start); elapsed > 50*time.Millisecond {
		t.Errorf("uncapped Wait should not block, 100 calls took %v", elapsed)
	}
}

func TestWaitPacesFrames(t *testing.T) {
	config.SetFPSLimit(250) // 4ms frame budget
	defer config.SetFPSLimit(0)

	limiter := NewFPSLimiter()

	start := time.Now()
	limiter.Wait()
	limiter.Wait()
	limiter.Wait()

	// Three paced frames take at least two full budgets even with timer slack
	if elapsed := time.Since(start); elapsed < 8*time.Millisecond {
		t.Errorf("three capped waits finished too fast: %v", elapsed)
	}
}
