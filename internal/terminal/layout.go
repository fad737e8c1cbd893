package terminal

import (
	"unicode/utf8"

	"github.com/iburimskiy/valentine/internal/prompt"
)

const (
	cardWidth  = 48
	cardHeight = 15
)

// box is a rectangle of terminal cells.
type box struct {
	X, Y, W, H int
}

func (b box) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// grid places the card and its controls for a width×height terminal.
type grid struct {
	width, height int
	yesLabel      string
	noLabel       string
	linkLabel     string
}

func (g grid) card() box {
	w := min(cardWidth, g.width)
	h := min(cardHeight, g.height)
	return box{X: (g.width - w) / 2, Y: (g.height - h) / 2, W: w, H: h}
}

func (g grid) buttonRow() int {
	c := g.card()
	return c.Y + c.H - 3
}

func (g grid) yes() box {
	c := g.card()
	yw := utf8.RuneCountInString(g.yesLabel)
	nw := utf8.RuneCountInString(g.noLabel)
	total := yw + 3 + nw
	return box{X: c.X + (c.W-total)/2, Y: g.buttonRow(), W: yw, H: 1}
}

func (g grid) noInline() box {
	y := g.yes()
	return box{X: y.X + y.W + 3, Y: y.Y, W: utf8.RuneCountInString(g.noLabel), H: 1}
}

// no maps the viewport percentages of a fixed control onto cells, keeping
// the whole label on screen.
func (g grid) no(ev prompt.Evasive) box {
	if !ev.Triggered || ev.Mode != prompt.Fixed {
		return g.noInline()
	}
	w := utf8.RuneCountInString(g.noLabel)
	return box{
		X: max(0, min(int(ev.Left/100*float64(g.width)), g.width-w)),
		Y: max(0, min(int(ev.Top/100*float64(g.height)), g.height-1)),
		W: w,
		H: 1,
	}
}

func (g grid) askAgain() box {
	c := g.card()
	w := utf8.RuneCountInString(g.linkLabel)
	return box{X: c.X + (c.W-w)/2, Y: c.Y + c.H - 2, W: w, H: 1}
}
