package anim

import "math"

// Float-up keyframes: a heart rises linearly while spinning a full turn,
// fading in over the first tenth of the loop and out over the last.
const (
	fadeIn  = 0.1
	fadeOut = 0.9
)

// Pose is a heart's state at one instant of its loop.
type Pose struct {
	// Progress is the loop phase in [0, 1).
	Progress float64
	// Rotation in radians.
	Rotation float64
	Opacity  float64
}

// FloatUp returns the pose of a heart elapsed seconds after the batch was
// shown. The heart is invisible (false) until its delay has passed, then
// loops every period seconds.
func FloatUp(elapsed, delay, period float64) (Pose, bool) {
	t := elapsed - delay
	if t < 0 || period <= 0 {
		return Pose{}, false
	}
	phase := math.Mod(t, period) / period

	var opacity float64
	switch {
	case phase < fadeIn:
		opacity = phase / fadeIn
	case phase <= fadeOut:
		opacity = 1
	default:
		opacity = (1 - phase) / (1 - fadeOut)
	}

	return Pose{
		Progress: phase,
		Rotation: phase * 2 * math.Pi,
		Opacity:  Clamp01(opacity),
	}, true
}

// Glide tracks a short eased move between two points.
type Glide struct {
	FromX, FromY float64
	ToX, ToY     float64
	Elapsed      float64
	Duration     float64
}

// Retarget starts a new move from the current position.
func (g *Glide) Retarget(x, y float64) {
	g.FromX, g.FromY = g.Position()
	g.ToX, g.ToY = x, y
	g.Elapsed = 0
}

// Jump places the glide at (x, y) with no motion.
func (g *Glide) Jump(x, y float64) {
	g.FromX, g.FromY = x, y
	g.ToX, g.ToY = x, y
	g.Elapsed = g.Duration
}

func (g *Glide) Advance(dt float64) {
	g.Elapsed += dt
}

// Position is the current, possibly overshooting, point.
func (g *Glide) Position() (float64, float64) {
	if g.Duration <= 0 || g.Elapsed >= g.Duration {
		return g.ToX, g.ToY
	}
	if g.Elapsed <= 0 {
		return g.FromX, g.FromY
	}
	t := EaseOutBack(Clamp01(g.Elapsed / g.Duration))
	return Lerp(g.FromX, g.ToX, t), Lerp(g.FromY, g.ToY, t)
}
