package terminal

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/valentine/internal/anim"
	"github.com/iburimskiy/valentine/internal/config"
	"github.com/iburimskiy/valentine/internal/prompt"
)

// minHeartOpacity hides hearts that would be indistinguishable from the background.
const minHeartOpacity = 0.15

func (u *UI) draw() {
	u.screen.Fill(' ', styleBase)
	g := u.grid()

	v := u.machine.Snapshot()
	switch v.Stage {
	case prompt.Prompting:
		u.drawPrompting(g, v)
	case prompt.Celebrating:
		u.drawCelebrating(g)
		u.drawHearts(v.Hearts)
	}
	u.screen.Show()
}

func (u *UI) drawText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		if x >= 0 && x < u.width && y >= 0 && y < u.height {
			u.screen.SetContent(x, y, r, nil, style)
		}
		x++
	}
}

func (u *UI) drawCentered(b box, y int, s string, style tcell.Style) {
	w := utf8.RuneCountInString(s)
	if w > b.W {
		s = string([]rune(s)[:b.W])
		w = b.W
	}
	u.drawText(b.X+(b.W-w)/2, y, s, style)
}

func (u *UI) drawCard(g grid) box {
	c := g.card()
	for y := c.Y; y < c.Y+c.H; y++ {
		for x := c.X; x < c.X+c.W; x++ {
			u.screen.SetContent(x, y, ' ', nil, styleCard)
		}
	}
	return c
}

func (u *UI) drawPrompting(g grid, v prompt.View) {
	words := u.settings.Copy
	c := u.drawCard(g)

	u.drawCentered(c, c.Y+2, "♥ ♥ ♥", styleTitle)
	u.drawCentered(c, c.Y+5, words.Question, styleTitle)
	u.drawCentered(c, c.Y+7, words.Plea, styleCard)

	yes := g.yes()
	u.drawText(yes.X, yes.Y, g.yesLabel, styleYes)

	no := g.no(v.Evasive)
	style := styleNo
	if u.hover {
		style = styleNoOver
	}
	u.drawText(no.X, no.Y, g.noLabel, style)
}

func (u *UI) drawCelebrating(g grid) {
	words := u.settings.Copy
	c := u.drawCard(g)

	u.drawCentered(c, c.Y+2, "*  ♥  *", styleTitle)
	u.drawCentered(c, c.Y+5, words.SuccessTitle, styleTitle)
	u.drawCentered(c, c.Y+7, words.Quote, styleCard.Italic(true))

	pill := " " + words.Pending + " "
	u.drawCentered(c, c.Y+9, pill, stylePill)

	link := g.askAgain()
	u.drawText(link.X, link.Y, g.linkLabel, styleLink)
}

func (u *UI) drawHearts(hearts []prompt.Particle) {
	elapsed := u.now().Sub(u.celebratedAt).Seconds()
	for _, p := range hearts {
		x, y, opacity, ok := heartCell(p, elapsed, u.width, u.height)
		if !ok || opacity < minHeartOpacity {
			continue
		}
		if x < 0 || x >= u.width || y < 0 || y >= u.height {
			continue
		}
		_, _, st, _ := u.screen.GetContent(x, y)
		_, bg, _ := st.Decompose()
		fg := rgb(blend(u.heartColor(p.ID), opacity))
		u.screen.SetContent(x, y, '♥', nil, tcell.StyleDefault.Background(bg).Foreground(fg))
	}
}

// heartCell maps a heart's float-up pose to a terminal cell. Hearts start one
// row below the screen and rise 120% of its height per loop.
func heartCell(p prompt.Particle, elapsed float64, width, height int) (int, int, float64, bool) {
	pose, ok := anim.FloatUp(elapsed, p.DelaySeconds, config.FloatDuration.Seconds())
	if !ok {
		return 0, 0, 0, false
	}
	x := int(p.HorizontalPercent / 100 * float64(width))
	y := height - int(pose.Progress*config.FloatRiseFactor*float64(height))
	return x, y, pose.Opacity, true
}
