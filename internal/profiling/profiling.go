package profiling

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Per-frame CPU timings, summed by name.

var (
	mu          sync.Mutex
	frameTotals = make(map[string]time.Duration)
	lastFrame   = make(map[string]time.Duration)
)

// Track returns a stop function that records the elapsed time under the given name.
// Usage: defer profiling.Track("world.Tick")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		frameTotals[name] += d
		mu.Unlock()
	}
}

// ResetFrame closes the current frame and starts a new one. Call at the
// start of each frame; the closed frame stays readable through LastFrame.
func ResetFrame() {
	mu.Lock()
	lastFrame, frameTotals = frameTotals, lastFrame
	for k := range frameTotals {
		delete(frameTotals, k)
	}
	mu.Unlock()
}

// Snapshot returns a copy of the totals of the frame in progress.
func Snapshot() map[string]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	return copyTotals(frameTotals)
}

// LastFrame returns a copy of the totals of the previous frame.
func LastFrame() map[string]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	return copyTotals(lastFrame)
}

func copyTotals(src map[string]time.Duration) map[string]time.Duration {
	out := make(map[string]time.Duration, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

// TopN formats the n slowest entries of the previous frame.
// Example: "graphics.Render:4.2ms, world.Tick:0.3ms"
func TopN(n int) string {
	return format(LastFrame(), n)
}

// TopNCurrentFrame is TopN over the frame in progress.
func TopNCurrentFrame(n int) string {
	return format(Snapshot(), n)
}

func format(ss map[string]time.Duration, n int) string {
	type pair struct {
		name string
		dur  time.Duration
	}
	list := make([]pair, 0, len(ss))
	for k, v := range ss {
		list = append(list, pair{name: k, dur: v})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].dur != list[j].dur {
			return list[i].dur > list[j].dur
		}
		return list[i].name < list[j].name
	})
	if n > len(list) {
		n = len(list)
	}
	parts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		parts = append(parts, list[i].name+":"+formatMs(list[i].dur))
	}
	return strings.Join(parts, ", ")
}

// formatMs keeps one decimal and drops a trailing ".0".
func formatMs(d time.Duration) string {
	ms := float64(d.Microseconds()) / 1000.0
	s := strconv.FormatFloat(ms, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0") + "ms"
}
