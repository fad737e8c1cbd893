package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// pointer is this frame's mouse or touch state. Touch wins when present.
type pointer struct {
	// JustPressed is a click or a touch start this frame.
	JustPressed bool
	X, Y        int
	// Present is false for a touch screen with no finger down.
	Present bool
}

func readPointer() pointer {
	if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		return pointer{JustPressed: true, X: x, Y: y, Present: true}
	}

	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		return pointer{X: x, Y: y, Present: true}
	}

	x, y := ebiten.CursorPosition()
	return pointer{
		JustPressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		X:           x,
		Y:           y,
		Present:     true,
	}
}

// approach reports whether the pointer approached the decline control this
// frame: it entered the control, or pressed/touched down on it.
func approach(p pointer, over, wasOver bool) bool {
	if !p.Present || !over {
		return false
	}
	return !wasOver || p.JustPressed
}
