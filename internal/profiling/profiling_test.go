package profiling

import (
	"strings"
	"testing"
	"time"
)

func TestTrackAccumulates(t *testing.T) {
	ResetFrame()

	stop := Track("test.op")
	time.Sleep(time.Millisecond)
	stop()

	ss := Snapshot()
	if ss["test.op"] < time.Millisecond {
		t.Errorf("tracked duration should be at least 1ms, got %v", ss["test.op"])
	}

	// A second span under the same name adds to the total
	before := ss["test.op"]
	stop = Track("test.op")
	stop()
	if Snapshot()["test.op"] < before {
		t.Error("repeated tracking should accumulate, not overwrite")
	}
}

func TestResetFrameClears(t *testing.T) {
	Track("test.op")()
	ResetFrame()

	if len(Snapshot()) != 0 {
		t.Errorf("expected empty totals after reset, got %v", Snapshot())
	}
}

func TestSumWithPrefix(t *testing.T) {
	ResetFrame()
	defer ResetFrame()

	stop := Track("glfw.SwapBuffers")
	time.Sleep(time.Millisecond)
	stop()
	stop = Track("glfw.PollEvents")
	time.Sleep(time.Millisecond)
	stop()
	Track("renderer.renderQuad")()

	total := SumWithPrefix("glfw.")
	if total < 2*time.Millisecond {
		t.Errorf("glfw. prefix sum should cover both spans, got %v", total)
	}
	if SumWithPrefix("nothing.") != 0 {
		t.Error("unmatched prefix should sum to zero")
	}
}

func TestTopNFormat(t *testing.T) {
	ResetFrame()
	defer ResetFrame()

	if TopN(3) != "" {
		t.Errorf("TopN on an empty frame should be empty, got %q", TopN(3))
	}

	stop := Track("slow.op")
	time.Sleep(2 * time.Millisecond)
	stop()
	Track("fast.op")()

	out := TopN(1)
	if !strings.HasPrefix(out, "slow.op:") {
		t.Errorf("TopN(1) should lead with the slowest entry, got %q", out)
	}
	if !strings.HasSuffix(out, "ms") {
		t.Errorf("TopN entries should be millisecond-formatted, got %q", out)
	}
}
