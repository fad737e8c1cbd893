package audio

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

// levelTap wraps a beep.Streamer and records the last N samples into a ring
// buffer so the renderer can make hearts pulse with the song.
type levelTap struct {
	Source    beep.Streamer
	buffer    [][2]float64
	nextIndex int
	filled    bool
	mu        sync.RWMutex
}

func newLevelTap(src beep.Streamer, ringSize int) *levelTap {
	return &levelTap{
		Source: src,
		buffer: make([][2]float64, ringSize),
	}
}

func (t *levelTap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)
	if n > 0 {
		t.mu.Lock()
		for i := 0; i < n; i++ {
			t.buffer[t.nextIndex] = samples[i]
			t.nextIndex++
			if t.nextIndex >= len(t.buffer) {
				t.nextIndex = 0
				t.filled = true
			}
		}
		t.mu.Unlock()
	}
	return n, ok
}

func (t *levelTap) Err() error { return t.Source.Err() }

// level returns a compressed RMS of the last n mono samples, in [0, 1].
func (t *levelTap) level(n int) float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	avail := t.nextIndex
	if t.filled {
		avail = len(t.buffer)
	}
	if n > avail {
		n = avail
	}
	if n == 0 {
		return 0
	}

	var sumSquares float64
	idx := t.nextIndex - 1
	for i := 0; i < n; i++ {
		if idx < 0 {
			idx = len(t.buffer) - 1
		}
		mono := (t.buffer[idx][0] + t.buffer[idx][1]) * 0.5
		sumSquares += mono * mono
		idx--
	}

	rms := math.Sqrt(sumSquares / float64(n))
	return math.Min(1, math.Pow(rms, 0.3))
}
