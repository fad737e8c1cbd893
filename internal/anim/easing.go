// Package anim holds the presentation-side timing and colour math shared by
// the window and terminal front-ends. All functions take a progress value
// t ∈ [0, 1] unless noted.
//
// Reference: https://easings.net/
package anim

import "math"

// EaseOutCubic starts fast and settles slowly.
// f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

const (
	backC1 = 1.70158
	backC3 = backC1 + 1
)

// EaseOutBack overshoots the target slightly before settling.
// f(t) = 1 + c3(t-1)³ + c1(t-1)²
func EaseOutBack(t float64) float64 {
	u := t - 1
	return 1 + backC3*u*u*u + backC1*u*u
}

// Lerp interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Pulse oscillates in [0, 1] with the given period in seconds, starting at 1.
func Pulse(seconds, period float64) float64 {
	return 0.5 + 0.5*math.Cos(2*math.Pi*seconds/period)
}

// Bounce returns a vertical lift in [0, 1] that snaps up and falls back once
// per period, like a ball bouncing in place.
func Bounce(seconds, period float64) float64 {
	phase := math.Mod(seconds, period) / period
	return math.Abs(math.Sin(math.Pi * phase))
}
