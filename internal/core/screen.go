package core

import "strings"

// Cell is a single character position on the screen.
type Cell struct {
	Rune  rune
	Color Color
}

var blankCell = Cell{Rune: ' ', Color: ColorDefault}

// Screen is a character buffer the game draws into. The platform decides
// how cells reach the terminal; games only see runes and colors.
// Cells are stored row-major.
type Screen struct {
	width, height int
	cells         []Cell
}

// NewScreen creates a blank screen with the given dimensions.
// Negative dimensions are treated as zero.
func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.Resize(width, height)
	return s
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the dimensions and blanks the screen. Every frame is
// redrawn from scratch, so old content is not kept.
func (s *Screen) Resize(width, height int) {
	s.width = max(width, 0)
	s.height = max(height, 0)
	if n := s.width * s.height; cap(s.cells) >= n {
		s.cells = s.cells[:n]
	} else {
		s.cells = make([]Cell, n)
	}
	s.Clear()
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blankCell
	}
}

func (s *Screen) inside(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Put places a rune. Out-of-bounds coordinates are ignored.
func (s *Screen) Put(x, y int, r rune, c Color) {
	if s.inside(x, y) {
		s.cells[y*s.width+x] = Cell{Rune: r, Color: c}
	}
}

// Cell returns the cell at (x, y); a blank cell outside the screen.
func (s *Screen) Cell(x, y int) Cell {
	if !s.inside(x, y) {
		return blankCell
	}
	return s.cells[y*s.width+x]
}

// Rune returns the rune at (x, y).
func (s *Screen) Rune(x, y int) rune {
	return s.Cell(x, y).Rune
}

// DrawText writes text left to right from (x, y), clipped to the screen.
func (s *Screen) DrawText(x, y int, text string, c Color) {
	for _, r := range text {
		s.Put(x, y, r, c)
		x++
	}
}

// DrawTextCentered writes text centered on row y.
func (s *Screen) DrawTextCentered(y int, text string, c Color) {
	s.DrawText((s.width-len([]rune(text)))/2, y, text, c)
}

// FillRect fills r with a rune.
func (s *Screen) FillRect(r CellRect, fill rune, c Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.Put(x, y, fill, c)
		}
	}
}

// DrawBox outlines r with box-drawing characters.
func (s *Screen) DrawBox(r CellRect, c Color) {
	if r.W < 2 || r.H < 2 {
		s.FillRect(r, '□', c)
		return
	}

	right, bottom := r.Right()-1, r.Bottom()-1
	for x := r.X + 1; x < right; x++ {
		s.Put(x, r.Y, '─', c)
		s.Put(x, bottom, '─', c)
	}
	for y := r.Y + 1; y < bottom; y++ {
		s.Put(r.X, y, '│', c)
		s.Put(right, y, '│', c)
	}
	s.Put(r.X, r.Y, '┌', c)
	s.Put(right, r.Y, '┐', c)
	s.Put(r.X, bottom, '└', c)
	s.Put(right, bottom, '┘', c)
}

// String returns the screen as plain text, one line per row.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(len(s.cells) + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range s.cells[y*s.width : (y+1)*s.width] {
			sb.WriteRune(c.Rune)
		}
	}
	return sb.String()
}
