package arkanoid

import (
	"math"

	"github.com/vovakirdan/arkanoid/internal/core"
)

// Glyph is how a sprite looks on a character screen.
type Glyph struct {
	Rune  rune
	Color core.Color
}

// SpriteSheet maps each sprite to its terminal glyph.
var SpriteSheet = map[SpriteID]Glyph{
	SpriteBackground:   {Rune: ' ', Color: core.ColorDefault},
	SpriteBall:         {Rune: '●', Color: core.ColorWhite},
	SpritePaddle:       {Rune: '▀', Color: core.ColorCyan},
	SpriteBlock:        {Rune: '█', Color: core.ColorOrange},
	SpriteControlLeft:  {Rune: '◀', Color: core.ColorGray},
	SpriteControlRight: {Rune: '▶', Color: core.ColorGray},
	SpriteReplay:       {Rune: '↻', Color: core.ColorGreen},
}

// ScreenRenderer draws scenes onto a character screen, scaling field pixels
// to cells so the whole field always fits.
type ScreenRenderer struct {
	dst *core.Screen
}

var _ Renderer = (*ScreenRenderer)(nil)

// NewScreenRenderer creates a renderer that writes into dst.
func NewScreenRenderer(dst *core.Screen) *ScreenRenderer {
	return &ScreenRenderer{dst: dst}
}

// Draw renders the scene. Sprites are drawn in order, so later ones win.
func (r *ScreenRenderer) Draw(s Scene) {
	if s.Field.Width <= 0 || s.Field.Height <= 0 {
		return
	}

	for _, sp := range s.Sprites {
		r.drawSprite(s.Field, sp)
	}

	if s.Message != "" {
		y := int(MessageOffset * float64(r.dst.Height()) / s.Field.Height)
		r.dst.DrawTextCentered(y, s.Message, core.ColorWhite)
	}
}

func (r *ScreenRenderer) drawSprite(f Field, sp Sprite) {
	glyph, ok := SpriteSheet[sp.ID]
	if !ok {
		return
	}
	cell := r.toCells(f, sp.Rect)

	switch sp.ID {
	case SpriteBackground:
		// Screen is pre-cleared
	case SpriteControlLeft, SpriteControlRight:
		r.dst.DrawBox(cell, glyph.Color)
		r.dst.Put(cell.X+cell.W/2, cell.Y+cell.H/2, glyph.Rune, glyph.Color)
	case SpriteReplay:
		r.dst.DrawBox(cell, glyph.Color)
		label := string(glyph.Rune) + " REPLAY"
		x := cell.X + (cell.W-len([]rune(label)))/2
		r.dst.DrawText(x, cell.Y+cell.H/2, label, glyph.Color)
	default:
		r.dst.FillRect(cell, glyph.Rune, glyph.Color)
	}
}

// toCells converts a field rectangle to the cells it covers.
// Every visible rectangle covers at least one cell.
func (r *ScreenRenderer) toCells(f Field, rc core.Rect) core.CellRect {
	sx := float64(r.dst.Width()) / f.Width
	sy := float64(r.dst.Height()) / f.Height

	x0 := int(math.Floor(rc.X * sx))
	y0 := int(math.Floor(rc.Y * sy))
	x1 := int(math.Ceil(rc.Right() * sx))
	y1 := int(math.Ceil(rc.Bottom() * sy))

	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	return core.NewCellRect(x0, y0, x1-x0, y1-y0)
}
