// Package terminal is the text-mode front-end. It draws the same prompt in a
// mouse-enabled terminal with tcell.
package terminal

import (
	"image/color"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/valentine/internal/anim"
	"github.com/iburimskiy/valentine/internal/audio"
	"github.com/iburimskiy/valentine/internal/config"
	"github.com/iburimskiy/valentine/internal/prompt"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

var (
	bgColor     = color.RGBA{R: 255, G: 241, B: 242, A: 255}
	styleBase   = tcell.StyleDefault.Background(rgb(bgColor)).Foreground(tcell.NewRGBColor(251, 113, 133))
	styleCard   = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.NewRGBColor(251, 113, 133))
	styleTitle  = styleCard.Foreground(tcell.NewRGBColor(225, 29, 72)).Bold(true)
	styleYes    = tcell.StyleDefault.Background(tcell.NewRGBColor(244, 63, 94)).Foreground(tcell.ColorWhite).Bold(true)
	styleNo     = tcell.StyleDefault.Background(tcell.NewRGBColor(226, 232, 240)).Foreground(tcell.NewRGBColor(100, 116, 139)).Bold(true)
	styleNoOver = styleNo.Background(tcell.NewRGBColor(203, 213, 225))
	styleLink   = styleCard.Foreground(tcell.NewRGBColor(148, 163, 184)).Underline(true)
	stylePill   = tcell.StyleDefault.Background(tcell.NewRGBColor(255, 228, 230)).Foreground(tcell.NewRGBColor(225, 29, 72)).Bold(true)
)

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// blend mixes c over the background by opacity.
func blend(c color.RGBA, opacity float64) color.RGBA {
	o := anim.Clamp01(opacity)
	mix := func(a, b uint8) uint8 {
		return uint8(anim.Lerp(float64(b), float64(a), o) + 0.5)
	}
	return color.RGBA{R: mix(c.R, bgColor.R), G: mix(c.G, bgColor.G), B: mix(c.B, bgColor.B), A: 255}
}

// UI runs the prompt in a terminal.
type UI struct {
	screen   tcell.Screen
	machine  *prompt.Machine
	settings *config.Settings
	sound    *audio.Sound
	src      prompt.Source
	palette  map[int]color.RGBA

	width, height int
	now           func() time.Time
	celebratedAt  time.Time

	wasOver    bool
	hover      bool
	wasPressed bool
}

// New prepares a UI on an initialised screen. sound may be nil.
func New(screen tcell.Screen, settings *config.Settings, src prompt.Source, sound *audio.Sound, opts ...prompt.Option) *UI {
	u := &UI{
		screen:   screen,
		settings: settings,
		sound:    sound,
		src:      src,
		palette:  make(map[int]color.RGBA),
		now:      time.Now,
	}
	opts = append(opts, prompt.WithListener(u.observe))
	u.machine = prompt.NewMachine(src, opts...)
	u.width, u.height = screen.Size()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.SetStyle(styleBase)
	return u
}

func (u *UI) grid() grid {
	c := u.settings.Copy
	return grid{
		width:     u.width,
		height:    u.height,
		yesLabel:  "[ " + c.Yes + " ♥ ]",
		noLabel:   "[ " + c.No + " ]",
		linkLabel: c.AskAgain,
	}
}

func (u *UI) observe(t prompt.Transition) {
	switch t.Event {
	case prompt.EventAccept:
		u.celebratedAt = u.now()
		clear(u.palette)
		u.sound.Celebrate()
	case prompt.EventReset:
		u.sound.Stop()
		u.wasOver = false
		u.hover = false
	}
}

func (u *UI) heartColor(id int) color.RGBA {
	if c, ok := u.palette[id]; ok {
		return c
	}
	c := anim.HSL(prompt.Hue(u.src), prompt.HeartSaturation, prompt.HeartLightness)
	u.palette[id] = c
	return c
}

// handle applies one input event; it returns false when the user quits.
func (u *UI) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune && (ev.Rune() == 'm' || ev.Rune() == 'M') &&
			u.machine.Stage() == prompt.Celebrating {
			if err := u.sound.PickSong(); err != nil {
				log.Printf("pick song: %v", err)
			}
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		pressed := ev.Buttons()&tcell.Button1 != 0
		justPressed := pressed && !u.wasPressed
		u.wasPressed = pressed
		u.pointer(x, y, justPressed)

	case *tcell.EventResize:
		u.width, u.height = u.screen.Size()
		u.screen.Sync()
	}
	return true
}

func (u *UI) pointer(x, y int, justPressed bool) {
	g := u.grid()
	switch u.machine.Stage() {
	case prompt.Prompting:
		over := g.no(u.machine.Evasive()).Contains(x, y)
		if over && (!u.wasOver || justPressed) {
			u.machine.EvadeAttempt()
			u.wasOver = true
			u.hover = g.no(u.machine.Evasive()).Contains(x, y)
			return
		}
		u.wasOver = over
		u.hover = over
		if justPressed && g.yes().Contains(x, y) {
			u.machine.Accept()
		}
	case prompt.Celebrating:
		if justPressed && g.askAgain().Contains(x, y) {
			u.machine.Reset()
		}
	}
}

// Run polls input and redraws until the user quits.
func (u *UI) Run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := u.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	u.draw()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !u.handle(ev) {
				return
			}
		case <-ticker.C:
			u.draw()
		}
	}
}
