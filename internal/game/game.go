// Package game is the windowed front-end: it draws the prompt with ebiten and
// turns pointer input into prompt events.
package game

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/valentine/internal/anim"
	"github.com/iburimskiy/valentine/internal/audio"
	"github.com/iburimskiy/valentine/internal/config"
	"github.com/iburimskiy/valentine/internal/prompt"
)

// Game implements ebiten.Game over a prompt.Machine.
type Game struct {
	machine  *prompt.Machine
	settings *config.Settings
	sound    *audio.Sound
	faces    *faces
	palette  *heartPalette

	width, height int

	// clock is seconds since start; celebratedAt is the clock at the last accept.
	clock        float64
	celebratedAt float64

	// decline control
	glide   anim.Glide
	wasOver bool // edge detection for approaches
	hover   bool // pointer is over the control where it now sits
	placed  bool
}

// New builds the game and its machine. sound may be nil.
func New(settings *config.Settings, src prompt.Source, sound *audio.Sound, opts ...prompt.Option) (*Game, error) {
	f, err := loadFaces()
	if err != nil {
		return nil, err
	}
	g := &Game{
		settings: settings,
		sound:    sound,
		faces:    f,
		palette:  newHeartPalette(src),
		width:    settings.Width,
		height:   settings.Height,
		glide:    anim.Glide{Duration: config.GlideDuration.Seconds()},
	}
	opts = append(opts, prompt.WithListener(g.observe))
	g.machine = prompt.NewMachine(src, opts...)
	return g, nil
}

func (g *Game) layout() layout {
	return layout{width: g.width, height: g.height}
}

// observe reacts to applied transitions with sound and animation state.
func (g *Game) observe(t prompt.Transition) {
	switch t.Event {
	case prompt.EventAccept:
		g.celebratedAt = g.clock
		g.palette.reset()
		g.sound.Celebrate()
	case prompt.EventReset:
		g.sound.Stop()
		g.placed = false
		g.wasOver = false
		g.hover = false
	case prompt.EventEvade:
		r := g.layout().no(g.machine.Evasive())
		if !g.placed {
			in := g.layout().noInline()
			g.glide.Jump(in.X, in.Y)
			g.placed = true
		}
		g.glide.Retarget(r.X, r.Y)
	}
}

func (g *Game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	g.clock += dt
	g.glide.Advance(dt)

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	p := readPointer()
	switch g.machine.Stage() {
	case prompt.Prompting:
		g.updatePrompting(p)
	case prompt.Celebrating:
		g.updateCelebrating(p)
	}
	return nil
}

func (g *Game) updatePrompting(p pointer) {
	l := g.layout()
	over := l.no(g.machine.Evasive()).Contains(p.X, p.Y)
	if approach(p, over, g.wasOver) {
		g.machine.EvadeAttempt()
		// the next frame decides whether the pointer is over the new spot
		g.wasOver = true
		g.hover = p.Present && l.no(g.machine.Evasive()).Contains(p.X, p.Y)
		return
	}
	g.wasOver = over
	g.hover = p.Present && over

	if p.JustPressed && !over && l.yes().Contains(p.X, p.Y) {
		g.machine.Accept()
	}
}

func (g *Game) updateCelebrating(p pointer) {
	if p.JustPressed && g.layout().askAgain().Contains(p.X, p.Y) {
		g.machine.Reset()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		if err := g.sound.PickSong(); err != nil {
			log.Printf("pick song: %v", err)
		}
	}
}

// elapsed is the time since the current celebration began.
func (g *Game) elapsed() time.Duration {
	return time.Duration((g.clock - g.celebratedAt) * float64(time.Second))
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)
	v := g.machine.Snapshot()
	switch v.Stage {
	case prompt.Prompting:
		g.drawPrompting(screen, v)
	case prompt.Celebrating:
		g.drawCelebrating(screen)
		g.drawHearts(screen, v.Hearts)
	}
}

// Layout tracks the window so placement percentages refer to the real viewport.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth < config.CardWidth {
		outsideWidth = config.CardWidth
	}
	if outsideHeight < config.CardHeight {
		outsideHeight = config.CardHeight
	}
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		if g.placed {
			r := g.layout().no(g.machine.Evasive())
			g.glide.Jump(r.X, r.Y)
		}
	}
	return g.width, g.height
}
