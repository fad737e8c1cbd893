package game

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

type faces struct {
	title  *text.GoTextFace
	body   *text.GoTextFace
	quote  *text.GoTextFace
	button *text.GoTextFace
	small  *text.GoTextFace
}

func loadFaces() (*faces, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("load bold font: %w", err)
	}
	italic, err := text.NewGoTextFaceSource(bytes.NewReader(goitalic.TTF))
	if err != nil {
		return nil, fmt.Errorf("load italic font: %w", err)
	}

	return &faces{
		title:  &text.GoTextFace{Source: bold, Size: 28},
		body:   &text.GoTextFace{Source: regular, Size: 17},
		quote:  &text.GoTextFace{Source: italic, Size: 20},
		button: &text.GoTextFace{Source: bold, Size: 20},
		small:  &text.GoTextFace{Source: regular, Size: 13},
	}, nil
}

// drawCentered draws s with its centre at (cx, cy).
func drawCentered(dst *ebiten.Image, s string, face *text.GoTextFace, cx, cy float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(c)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, s, face, op)
}

// fitFace shrinks face until s fits within width.
func fitFace(s string, face *text.GoTextFace, width float64) *text.GoTextFace {
	w, _ := text.Measure(s, face, 0)
	if w <= width {
		return face
	}
	return &text.GoTextFace{Source: face.Source, Size: face.Size * width / w}
}
