package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/valentine/internal/anim"
	"github.com/iburimskiy/valentine/internal/config"
	"github.com/iburimskiy/valentine/internal/prompt"
)

var (
	rose50    = color.RGBA{R: 255, G: 241, B: 242, A: 255}
	rose100   = color.RGBA{R: 255, G: 228, B: 230, A: 255}
	rose200   = color.RGBA{R: 254, G: 205, B: 211, A: 255}
	rose400   = color.RGBA{R: 251, G: 113, B: 133, A: 255}
	rose500   = color.RGBA{R: 244, G: 63, B: 94, A: 255}
	rose600   = color.RGBA{R: 225, G: 29, B: 72, A: 255}
	rose700   = color.RGBA{R: 190, G: 18, B: 60, A: 255}
	slate200  = color.RGBA{R: 226, G: 232, B: 240, A: 255}
	slate300  = color.RGBA{R: 203, G: 213, B: 225, A: 255}
	slate400  = color.RGBA{R: 148, G: 163, B: 184, A: 255}
	slate500  = color.RGBA{R: 100, G: 116, B: 139, A: 255}
	yellow500 = color.RGBA{R: 234, G: 179, B: 8, A: 255}
	cardFill  = color.RGBA{R: 255, G: 252, B: 252, A: 255}
)

func (g *Game) drawBackground(screen *ebiten.Image) {
	screen.Fill(rose50)

	// one pulsing heart top-left, one bouncing bottom-right
	pulse := 0.5 + 0.5*anim.Pulse(g.clock, 2)
	fillHeart(screen, 10+24, 10+24, 48, 0, anim.Fade(rose200, pulse))

	lift := anim.Bounce(g.clock, 1) * 16
	fillHeart(screen, float64(g.width)-10-32, float64(g.height)-20-32-lift, 64, 0, rose200)
}

func (g *Game) drawCard(screen *ebiten.Image) Rect {
	c := g.layout().card()
	// bottom border
	drawRoundRect(screen, Rect{X: c.X, Y: c.Y + 8, W: c.W, H: c.H}, 32, rose100)
	drawRoundRect(screen, c, 32, cardFill)
	return c
}

func (g *Game) drawPrompting(screen *ebiten.Image, v prompt.View) {
	l := g.layout()
	c := g.drawCard(screen)
	words := g.settings.Copy

	// picture stand-in: glowing frame with a beating heart
	pic := l.picture()
	glow := 0.25 + 0.15*anim.Pulse(g.clock, 2)
	drawRoundRect(screen, Rect{X: pic.X - 4, Y: pic.Y - 4, W: pic.W + 8, H: pic.H + 8}, 18, anim.Fade(frameGlow(g.clock), glow))
	drawRoundRect(screen, pic, 14, rose100)
	beat := 1 + 0.08*anim.Pulse(g.clock, 0.8)
	fillHeart(screen, pic.CenterX(), pic.CenterY(), 120*beat, 0, rose400)

	textY := pic.Y + pic.H + 40
	width := c.W - 2*config.CardPadding
	drawCentered(screen, words.Question, fitFace(words.Question, g.faces.title, width), c.CenterX(), textY, rose600)
	drawCentered(screen, words.Plea, fitFace(words.Plea, g.faces.body, width), c.CenterX(), textY+36, rose400)

	yes := l.yes()
	drawButton(screen, yes, rose500, rose700)
	drawCentered(screen, words.Yes, g.faces.button, yes.CenterX()-10, yes.CenterY(), color.White)
	fillHeart(screen, yes.X+yes.W-34, yes.CenterY(), 18, 0, color.White)

	// the decline control is drawn last so it floats above everything
	no := l.noInline()
	if v.Evasive.Triggered {
		x, y := g.glide.Position()
		no = Rect{X: x, Y: y, W: no.W, H: no.H}
	}
	fill := slate200
	if g.hover {
		fill = slate300
	}
	drawButton(screen, no, fill, slate300)
	drawCentered(screen, words.No, g.faces.button, no.CenterX(), no.CenterY(), slate500)
}

// frameGlow drifts the picture frame's glow between pink and rose.
func frameGlow(seconds float64) color.RGBA {
	return anim.HSV(330+15*anim.Pulse(seconds, 4), 0.7, 0.93)
}

// slideIn is how far below its resting place the success content sits,
// elapsed seconds into the celebration.
func slideIn(elapsed float64) float64 {
	t := anim.Clamp01(elapsed / config.SlideInDuration.Seconds())
	return (1 - anim.EaseOutCubic(t)) * config.SlideInDistance
}

func (g *Game) drawCelebrating(screen *ebiten.Image) {
	l := g.layout()
	c := g.drawCard(screen)
	words := g.settings.Copy

	pic := l.picture()
	pic.Y += slideIn(g.elapsed().Seconds())
	cx, cy, r := pic.CenterX(), pic.CenterY(), pic.W/2

	// party popper, sparkle, star above the picture
	bounce := anim.Bounce(g.clock, 1) * 8
	twinkle := 0.5 + 0.5*anim.Pulse(g.clock, 2)
	vector.DrawFilledCircle(screen, float32(cx-36), float32(pic.Y-14-bounce), 7, yellow500, true)
	drawSparkle(screen, cx, pic.Y-14, 9, anim.Fade(rose400, twinkle))
	drawSparkle(screen, cx+36, pic.Y-14-bounce, 8, rose400)

	vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(r), rose100, true)
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(r-8), rose50, true)
	beat := 1 + 0.1*anim.Pulse(g.clock, 0.6)
	fillHeart(screen, cx, cy, 110*beat, 0, rose500)

	textY := pic.Y + pic.H + 40
	width := c.W - 2*config.CardPadding
	drawCentered(screen, words.SuccessTitle, fitFace(words.SuccessTitle, g.faces.title, width), c.CenterX(), textY, rose600)
	drawCentered(screen, words.Quote, fitFace(words.Quote, g.faces.quote, width), c.CenterX(), textY+38, rose400)

	pill := Rect{X: c.CenterX() - 150, Y: textY + 64, W: 300, H: 30}
	drawRoundRect(screen, pill, 15, rose100)
	drawCentered(screen, words.Pending, fitFace(words.Pending, g.faces.small, pill.W-24), pill.CenterX(), pill.CenterY(), rose600)

	link := l.askAgain()
	linkColor := slate400
	if x, y := ebiten.CursorPosition(); link.Contains(x, y) {
		linkColor = rose500
	}
	drawCentered(screen, words.AskAgain, g.faces.small, link.CenterX(), link.CenterY(), linkColor)
	vector.StrokeLine(screen, float32(link.X+20), float32(link.Y+link.H-4), float32(link.X+link.W-20), float32(link.Y+link.H-4), 1, linkColor, true)

	if g.sound != nil {
		hint := "M: pick a song"
		if song := g.sound.Song(); song != "" {
			hint = "M: change song"
		}
		drawCentered(screen, hint, g.faces.small, float64(g.width)/2, float64(g.height)-14, slate400)
	}
}

func (g *Game) drawHearts(screen *ebiten.Image, hearts []prompt.Particle) {
	elapsed := g.elapsed().Seconds()
	level := g.sound.Level()
	for _, p := range hearts {
		s, ok := placeHeart(p, elapsed, g.width, g.height, level)
		if !ok || s.Opacity <= 0 {
			continue
		}
		fillHeart(screen, s.CX, s.CY, s.Size, s.Rotation, anim.Fade(g.palette.color(p.ID), s.Opacity))
	}
}

// drawButton draws a pill-shaped button with a solid drop shadow.
func drawButton(screen *ebiten.Image, r Rect, fill, shadow color.Color) {
	drawRoundRect(screen, Rect{X: r.X, Y: r.Y + config.ButtonShadow, W: r.W, H: r.H}, r.H/2, shadow)
	drawRoundRect(screen, r, r.H/2, fill)
}

// drawRoundRect fills r with corners of the given radius.
func drawRoundRect(screen *ebiten.Image, r Rect, radius float64, c color.Color) {
	fillFan(screen, r.CenterX(), r.CenterY(), roundRectOutline(r, radius, 6), c)
}

// roundRectOutline traces r clockwise with arcs of segs steps per corner.
func roundRectOutline(r Rect, radius float64, segs int) []point {
	radius = math.Min(radius, math.Min(r.W, r.H)/2)
	corners := []struct {
		cx, cy, start float64
	}{
		{r.X + r.W - radius, r.Y + radius, -math.Pi / 2},
		{r.X + r.W - radius, r.Y + r.H - radius, 0},
		{r.X + radius, r.Y + r.H - radius, math.Pi / 2},
		{r.X + radius, r.Y + radius, math.Pi},
	}
	pts := make([]point, 0, len(corners)*(segs+1))
	for _, c := range corners {
		for i := 0; i <= segs; i++ {
			a := c.start + math.Pi/2*float64(i)/float64(segs)
			pts = append(pts, point{X: c.cx + radius*math.Cos(a), Y: c.cy + radius*math.Sin(a)})
		}
	}
	return pts
}

// drawSparkle draws a four-pointed star.
func drawSparkle(screen *ebiten.Image, cx, cy, r float64, c color.Color) {
	x, y, rr := float32(cx), float32(cy), float32(r)
	vector.StrokeLine(screen, x-rr, y, x+rr, y, 2, c, true)
	vector.StrokeLine(screen, x, y-rr, x, y+rr, 2, c, true)
	d := rr * 0.5
	vector.StrokeLine(screen, x-d, y-d, x+d, y+d, 1.5, c, true)
	vector.StrokeLine(screen, x-d, y+d, x+d, y-d, 1.5, c, true)
}
