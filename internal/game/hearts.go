package game

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/valentine/internal/anim"
	"github.com/iburimskiy/valentine/internal/config"
	"github.com/iburimskiy/valentine/internal/prompt"
)

type point struct{ X, Y float64 }

// heartOutline traces a heart of the given width centred on (cx, cy),
// rotated by rot radians. The curve is the classic
// x = 16 sin³t, y = 13 cos t − 5 cos 2t − 2 cos 3t − cos 4t.
func heartOutline(cx, cy, size, rot float64, segs int) []point {
	const (
		halfWidth = 16.0
		// the raw curve spans y ∈ [-12, 17] once flipped; shift its middle to 0
		midY = 2.5
	)
	scale := size / (2 * halfWidth)
	sin, cos := math.Sin(rot), math.Cos(rot)

	pts := make([]point, segs)
	for i := range pts {
		t := 2 * math.Pi * float64(i) / float64(segs)
		st := math.Sin(t)
		x := halfWidth * st * st * st
		y := -(13*math.Cos(t) - 5*math.Cos(2*t) - 2*math.Cos(3*t) - math.Cos(4*t))
		x *= scale
		y = (y - midY) * scale
		pts[i] = point{
			X: cx + x*cos - y*sin,
			Y: cy + x*sin + y*cos,
		}
	}
	return pts
}

var whitePixel *ebiten.Image

func whiteSubImage() *ebiten.Image {
	if whitePixel == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whitePixel = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whitePixel
}

// fillHeart draws a filled heart.
func fillHeart(dst *ebiten.Image, cx, cy, size, rot float64, c color.Color) {
	fillFan(dst, cx, cy, heartOutline(cx, cy, size, rot, config.HeartOutlineSegs), c)
}

// fillFan fills the polygon pts as a triangle fan around (cx, cy). The
// polygon must be star-shaped with respect to that point.
func fillFan(dst *ebiten.Image, cx, cy float64, pts []point, c color.Color) {
	if len(pts) < 3 {
		return
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	r := float32(n.R) / 0xff
	g := float32(n.G) / 0xff
	b := float32(n.B) / 0xff
	a := float32(n.A) / 0xff

	vs := make([]ebiten.Vertex, 0, len(pts)+1)
	vs = append(vs, ebiten.Vertex{
		DstX: float32(cx), DstY: float32(cy),
		SrcX: 1, SrcY: 1,
		ColorR: r, ColorG: g, ColorB: b, ColorA: a,
	})
	for _, p := range pts {
		vs = append(vs, ebiten.Vertex{
			DstX: float32(p.X), DstY: float32(p.Y),
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		})
	}

	is := make([]uint16, 0, len(pts)*3)
	for i := range pts {
		next := (i + 1) % len(pts)
		is = append(is, 0, uint16(1+i), uint16(1+next))
	}

	dst.DrawTriangles(vs, is, whiteSubImage(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// heartPalette hands out one display colour per heart, picked the first time
// that heart is drawn and kept for the rest of the batch.
type heartPalette struct {
	src    prompt.Source
	colors map[int]color.RGBA
}

func newHeartPalette(src prompt.Source) *heartPalette {
	return &heartPalette{src: src, colors: make(map[int]color.RGBA)}
}

func (p *heartPalette) color(id int) color.RGBA {
	if c, ok := p.colors[id]; ok {
		return c
	}
	c := anim.HSL(prompt.Hue(p.src), prompt.HeartSaturation, prompt.HeartLightness)
	p.colors[id] = c
	return c
}

// reset forgets all colours; called when a new batch is generated.
func (p *heartPalette) reset() {
	clear(p.colors)
}

// heartSprite is where one floating heart is drawn this frame.
type heartSprite struct {
	CX, CY   float64
	Size     float64
	Rotation float64
	Opacity  float64
}

// placeHeart positions a heart in a width×height viewport elapsed seconds into
// the celebration. It starts just below the bottom edge and rises 120% of the
// viewport height per loop. pulse scales the heart with the song.
func placeHeart(p prompt.Particle, elapsed float64, width, height int, pulse float64) (heartSprite, bool) {
	pose, ok := anim.FloatUp(elapsed, p.DelaySeconds, config.FloatDuration.Seconds())
	if !ok {
		return heartSprite{}, false
	}
	size := p.SizePixels * (1 + config.PulseAmplitude*anim.Clamp01(pulse))
	left := p.HorizontalPercent / 100 * float64(width)
	bottom := float64(height) + config.FloatStartBelow
	rise := pose.Progress * config.FloatRiseFactor * float64(height)
	return heartSprite{
		CX:       left + p.SizePixels/2,
		CY:       bottom - p.SizePixels/2 - rise,
		Size:     size,
		Rotation: pose.Rotation,
		Opacity:  pose.Opacity,
	}, true
}
