package profiling

import (
	"strings"
	"testing"
	"time"
)

func record(name string, d time.Duration) {
	mu.Lock()
	frameTotals[name] += d
	mu.Unlock()
}

func TestTrackAccumulates(t *testing.T) {
	ResetFrame()
	stop := Track("test.Op")
	stop()
	stop = Track("test.Op")
	stop()

	if _, ok := Snapshot()["test.Op"]; !ok {
		t.Fatalf("Expected test.Op in snapshot, got %v", Snapshot())
	}
}

func TestResetFrameKeepsLastFrame(t *testing.T) {
	ResetFrame()
	record("a", 2*time.Millisecond)
	ResetFrame()

	if len(Snapshot()) != 0 {
		t.Errorf("Expected empty current frame, got %v", Snapshot())
	}
	if got := LastFrame()["a"]; got != 2*time.Millisecond {
		t.Errorf("Expected 2ms in last frame, got %v", got)
	}
}

func TestTopN(t *testing.T) {
	ResetFrame()
	record("slow", 4200*time.Microsecond)
	record("fast", 300*time.Microsecond)
	record("mid", 2*time.Millisecond)

	if got, want := TopNCurrentFrame(2), "slow:4.2ms, mid:2ms"; got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
	ResetFrame()
	if got := TopN(10); strings.Count(got, ",") != 2 {
		t.Errorf("Expected three entries, got %q", got)
	}
	if got := TopNCurrentFrame(3); got != "" {
		t.Errorf("Expected empty string, got %q", got)
	}
}
