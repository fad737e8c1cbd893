package game

import (
	"github.com/iburimskiy/valentine/internal/config"
	"github.com/iburimskiy/valentine/internal/prompt"
)

// Rect is an axis-aligned screen rectangle.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y int) bool {
	fx, fy := float64(x), float64(y)
	return fx >= r.X && fx < r.X+r.W && fy >= r.Y && fy < r.Y+r.H
}

func (r Rect) CenterX() float64 { return r.X + r.W/2 }
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// layout places the card and its controls for a viewport.
type layout struct {
	width, height int
}

func (l layout) card() Rect {
	return Rect{
		X: float64(l.width-config.CardWidth) / 2,
		Y: float64(l.height-config.CardHeight) / 2,
		W: config.CardWidth,
		H: config.CardHeight,
	}
}

// picture is the square stand-in for the photo at the top of the card.
func (l layout) picture() Rect {
	c := l.card()
	size := 200.0
	return Rect{X: c.CenterX() - size/2, Y: c.Y + config.CardPadding, W: size, H: size}
}

// buttonRow is the vertical position shared by Yes and the inline No.
func (l layout) buttonRow() float64 {
	c := l.card()
	return c.Y + c.H - config.CardPadding - config.YesButtonHeight - config.ButtonShadow
}

func (l layout) yes() Rect {
	c := l.card()
	total := float64(config.YesButtonWidth + config.ButtonGap + config.NoButtonWidth)
	return Rect{
		X: c.CenterX() - total/2,
		Y: l.buttonRow(),
		W: config.YesButtonWidth,
		H: config.YesButtonHeight,
	}
}

// noInline is the decline control's natural spot, right of Yes.
func (l layout) noInline() Rect {
	y := l.yes()
	return Rect{
		X: y.X + y.W + config.ButtonGap,
		Y: y.Y,
		W: config.NoButtonWidth,
		H: config.NoButtonHeight,
	}
}

// no is where the decline control is hit-tested: inline until the first
// evade, then anchored to the viewport by percentage. On small windows the
// control is pulled back so it is never clipped at the right or bottom edge.
func (l layout) no(ev prompt.Evasive) Rect {
	if !ev.Triggered || ev.Mode != prompt.Fixed {
		return l.noInline()
	}
	maxX := float64(l.width - config.NoButtonWidth)
	maxY := float64(l.height - config.NoButtonHeight - config.ButtonShadow)
	return Rect{
		X: max(0, min(ev.Left/100*float64(l.width), maxX)),
		Y: max(0, min(ev.Top/100*float64(l.height), maxY)),
		W: config.NoButtonWidth,
		H: config.NoButtonHeight,
	}
}

// askAgain is the small reset link at the bottom of the success card.
func (l layout) askAgain() Rect {
	c := l.card()
	w, h := 140.0, 24.0
	return Rect{X: c.CenterX() - w/2, Y: c.Y + c.H - config.CardPadding - h, W: w, H: h}
}
