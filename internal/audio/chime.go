package audio

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// Chime notes, ascending: A5, D6, F#6.
var chimeNotes = []float64{880, 1174.66, 1479.98}

const chimeGain = 0.3

// tone is a sine note with a linear decay to silence over d.
func tone(rate beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	total := rate.N(d)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for n < len(samples) && pos < total {
			env := 1 - float64(pos)/float64(total)
			v := math.Sin(2*math.Pi*freq*float64(pos)/float64(rate)) * env * chimeGain
			samples[n][0], samples[n][1] = v, v
			n++
			pos++
		}
		return n, true
	})
}

// chime plays the acceptance notes back to back.
func chime(rate beep.SampleRate, note time.Duration) beep.Streamer {
	parts := make([]beep.Streamer, len(chimeNotes))
	for i, f := range chimeNotes {
		parts[i] = tone(rate, f, note)
	}
	return beep.Seq(parts...)
}
