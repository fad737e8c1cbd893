package game

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/iburimskiy/valentine/internal/anim"
	"github.com/iburimskiy/valentine/internal/config"
	"github.com/iburimskiy/valentine/internal/prompt"
)

// newTestGame wires a Game without fonts or sound so input handling can be
// exercised without a running ebiten loop.
func newTestGame(t *testing.T) *Game {
	t.Helper()
	src := rand.New(rand.NewPCG(11, 12))
	s := config.Default()
	g := &Game{
		settings: s,
		palette:  newHeartPalette(src),
		width:    s.Width,
		height:   s.Height,
		glide:    anim.Glide{Duration: config.GlideDuration.Seconds()},
	}
	g.machine = prompt.NewMachine(src, prompt.WithListener(g.observe))
	return g
}

func center(r Rect) (int, int) {
	return int(r.CenterX()), int(r.CenterY())
}

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 100, H: 50}
	tests := []struct {
		x, y int
		want bool
	}{
		{10, 20, true},
		{109, 69, true},
		{110, 20, false},
		{10, 70, false},
		{9, 30, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestLayout_InlineButtonsInsideCard(t *testing.T) {
	l := layout{width: config.WindowWidth, height: config.WindowHeight}
	card := l.card()
	for name, r := range map[string]Rect{"yes": l.yes(), "no": l.noInline(), "link": l.askAgain(), "picture": l.picture()} {
		if r.X < card.X || r.Y < card.Y || r.X+r.W > card.X+card.W || r.Y+r.H > card.Y+card.H {
			t.Errorf("%s %+v escapes card %+v", name, r, card)
		}
	}
	if l.noInline().X <= l.yes().X+l.yes().W {
		t.Error("inline No should sit right of Yes")
	}
}

func TestLayout_FixedUsesViewportPercent(t *testing.T) {
	l := layout{width: 1000, height: 500}
	ev := prompt.Evasive{Mode: prompt.Fixed, Top: 20, Left: 80, Triggered: true}
	r := l.no(ev)
	if r.X != 800 || r.Y != 100 {
		t.Errorf("fixed No at (%v,%v), want (800,100)", r.X, r.Y)
	}
	if got := l.no(prompt.Evasive{Top: 50, Left: 50}); got != l.noInline() {
		t.Errorf("untriggered No at %+v, want inline %+v", got, l.noInline())
	}
}

func TestLayout_FixedNeverClipped(t *testing.T) {
	edge := math.Nextafter(80, 0)
	tests := []struct {
		name          string
		width, height int
	}{
		{"default window", config.WindowWidth, config.WindowHeight},
		{"smallest window", config.CardWidth, config.CardHeight},
		{"wide and short", 1600, config.CardHeight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := layout{width: tt.width, height: tt.height}
			for _, ev := range []prompt.Evasive{
				{Mode: prompt.Fixed, Top: edge, Left: edge, Triggered: true},
				{Mode: prompt.Fixed, Top: 20, Left: 20, Triggered: true},
			} {
				r := l.no(ev)
				if r.X < 0 || r.Y < 0 || r.X+r.W > float64(l.width) || r.Y+r.H+config.ButtonShadow > float64(l.height) {
					t.Errorf("No at %+v is clipped by %dx%d", r, l.width, l.height)
				}
			}
		})
	}
}

func TestApproach(t *testing.T) {
	tests := []struct {
		name          string
		p             pointer
		over, wasOver bool
		want          bool
	}{
		{"enter", pointer{Present: true}, true, false, true},
		{"hovering", pointer{Present: true}, true, true, false},
		{"click while hovering", pointer{Present: true, JustPressed: true}, true, true, true},
		{"touch start", pointer{Present: true, JustPressed: true}, true, true, true},
		{"elsewhere", pointer{Present: true, JustPressed: true}, false, false, false},
		{"no pointer", pointer{}, true, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := approach(tt.p, tt.over, tt.wasOver); got != tt.want {
				t.Errorf("approach = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUpdatePrompting_HoverEvades(t *testing.T) {
	g := newTestGame(t)
	x, y := center(g.layout().noInline())
	g.updatePrompting(pointer{X: x, Y: y, Present: true})

	ev := g.machine.Evasive()
	if !ev.Triggered || ev.Mode != prompt.Fixed {
		t.Fatalf("evasive = %+v, want triggered", ev)
	}
	if g.machine.Stage() != prompt.Prompting {
		t.Errorf("stage = %v", g.machine.Stage())
	}
	// the glide starts from the inline spot
	gx, gy := g.glide.Position()
	in := g.layout().noInline()
	if gx != in.X || gy != in.Y {
		t.Errorf("glide starts at (%v,%v), want (%v,%v)", gx, gy, in.X, in.Y)
	}
}

func TestUpdatePrompting_HoverColourFollowsPointer(t *testing.T) {
	g := newTestGame(t)
	x, y := center(g.layout().noInline())
	g.updatePrompting(pointer{X: x, Y: y, Present: true})

	if g.layout().no(g.machine.Evasive()).Contains(x, y) {
		t.Skip("control landed under the pointer")
	}
	if g.hover {
		t.Error("relocated No drawn as hovered while the pointer is elsewhere")
	}

	nx, ny := center(g.layout().no(g.machine.Evasive()))
	g.wasOver = true
	g.updatePrompting(pointer{X: nx, Y: ny, Present: true})
	if !g.hover {
		t.Error("pointer resting on No is not drawn as hovered")
	}
}

func TestUpdatePrompting_ClickOnNoNeverAccepts(t *testing.T) {
	g := newTestGame(t)
	for i := 0; i < 200; i++ {
		x, y := center(g.layout().no(g.machine.Evasive()))
		g.updatePrompting(pointer{X: x, Y: y, Present: true, JustPressed: true})
	}
	if g.machine.Stage() != prompt.Prompting {
		t.Fatal("clicking No accepted")
	}
	if got := g.machine.Snapshot().Attempts; got != 200 {
		t.Errorf("attempts = %d, want 200", got)
	}
}

func TestUpdatePrompting_YesAccepts(t *testing.T) {
	g := newTestGame(t)
	g.clock = 3
	x, y := center(g.layout().yes())
	g.updatePrompting(pointer{X: x, Y: y, Present: true})
	if g.machine.Stage() != prompt.Prompting {
		t.Fatal("hovering Yes should not accept")
	}
	g.updatePrompting(pointer{X: x, Y: y, Present: true, JustPressed: true})
	if g.machine.Stage() != prompt.Celebrating {
		t.Fatal("clicking Yes did not accept")
	}
	if len(g.machine.Hearts()) != prompt.BatchSize {
		t.Errorf("hearts = %d", len(g.machine.Hearts()))
	}
	if g.celebratedAt != 3 {
		t.Errorf("celebratedAt = %v, want 3", g.celebratedAt)
	}
}

func TestUpdateCelebrating_AskAgainResets(t *testing.T) {
	g := newTestGame(t)
	nx, ny := center(g.layout().noInline())
	g.updatePrompting(pointer{X: nx, Y: ny, Present: true})
	g.machine.Accept()

	x, y := center(g.layout().askAgain())
	g.updateCelebrating(pointer{X: x, Y: y, Present: true, JustPressed: true})

	if g.machine.Stage() != prompt.Prompting {
		t.Fatalf("stage = %v", g.machine.Stage())
	}
	if g.machine.Evasive().Triggered || g.placed || g.wasOver {
		t.Error("decline control not back at its inline spot")
	}
}

func TestSlideIn(t *testing.T) {
	if got := slideIn(0); got != config.SlideInDistance {
		t.Errorf("slideIn(0) = %v, want %v", got, config.SlideInDistance)
	}
	if got := slideIn(config.SlideInDuration.Seconds()); got != 0 {
		t.Errorf("slideIn at the end = %v, want 0", got)
	}
	if got := slideIn(10); got != 0 {
		t.Errorf("slideIn long after = %v, want 0", got)
	}
	half := slideIn(config.SlideInDuration.Seconds() / 2)
	if half <= 0 || half >= config.SlideInDistance/2 {
		t.Errorf("slideIn half way = %v, want eased past the midpoint", half)
	}
}

func TestFrameGlow(t *testing.T) {
	for _, s := range []float64{0, 0.5, 1, 2, 3.7} {
		c := frameGlow(s)
		if c.R != 237 || c.G >= c.B || c.B >= c.R {
			t.Errorf("frameGlow(%v) = %v, want a pink-rose tone", s, c)
		}
	}
}

func TestHeartOutline(t *testing.T) {
	const size = 40.0
	pts := heartOutline(100, 200, size, 0, 64)
	if len(pts) != 64 {
		t.Fatalf("len = %d", len(pts))
	}
	minX, maxX := math.Inf(1), math.Inf(-1)
	for _, p := range pts {
		if math.Hypot(p.X-100, p.Y-200) > size*0.6 {
			t.Fatalf("point %+v too far from centre", p)
		}
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
	}
	if w := maxX - minX; math.Abs(w-size) > 1 {
		t.Errorf("width = %v, want about %v", w, size)
	}
	// the point of the heart is at the bottom
	if bottom := pts[32]; bottom.Y <= 200 {
		t.Errorf("tip at %+v is not below centre", bottom)
	}
}

func TestHeartOutline_Rotation(t *testing.T) {
	a := heartOutline(0, 0, 30, 0, 16)
	b := heartOutline(0, 0, 30, 2*math.Pi, 16)
	for i := range a {
		if math.Abs(a[i].X-b[i].X) > 1e-9 || math.Abs(a[i].Y-b[i].Y) > 1e-9 {
			t.Fatalf("full turn moved point %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestRoundRectOutline(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 100, H: 40}
	pts := roundRectOutline(r, 50, 4)
	if len(pts) != 20 {
		t.Fatalf("len = %d", len(pts))
	}
	for _, p := range pts {
		if p.X < -1e-9 || p.X > 100+1e-9 || p.Y < -1e-9 || p.Y > 40+1e-9 {
			t.Errorf("point %+v outside rect", p)
		}
	}
}

func TestPlaceHeart(t *testing.T) {
	p := prompt.Particle{ID: 1, HorizontalPercent: 50, DelaySeconds: 1, SizePixels: 20}

	if _, ok := placeHeart(p, 0.5, 800, 600, 0); ok {
		t.Error("heart visible before its delay")
	}

	start, ok := placeHeart(p, 1, 800, 600, 0)
	if !ok {
		t.Fatal("heart hidden after its delay")
	}
	if start.CX != 410 || start.CY != 600+50-10 {
		t.Errorf("start at (%v,%v), want (410,640)", start.CX, start.CY)
	}
	if start.Opacity != 0 {
		t.Errorf("start opacity = %v", start.Opacity)
	}

	mid, _ := placeHeart(p, 4, 800, 600, 0)
	wantY := 640 - 0.5*1.2*600
	if math.Abs(mid.CY-wantY) > 1e-6 {
		t.Errorf("half way y = %v, want %v", mid.CY, wantY)
	}
	if mid.CX != start.CX {
		t.Error("hearts drift straight up")
	}

	loud, _ := placeHeart(p, 4, 800, 600, 1)
	if loud.Size <= mid.Size {
		t.Error("song level should enlarge the heart")
	}
}

func TestHeartPalette(t *testing.T) {
	pal := newHeartPalette(rand.New(rand.NewPCG(1, 1)))
	first := pal.color(3)
	if again := pal.color(3); again != first {
		t.Error("colour changed between frames")
	}
	for id := 0; id < 50; id++ {
		c := pal.color(id)
		if c.R != 255 {
			t.Errorf("heart %d colour %v is not in the rose range", id, c)
		}
	}
	pal.reset()
	if len(pal.colors) != 0 {
		t.Error("reset kept colours")
	}
}
