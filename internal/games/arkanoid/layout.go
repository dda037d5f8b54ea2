package arkanoid

import "github.com/vovakirdan/arkanoid/internal/config"

// GridShape returns the number of rows and columns used to lay out count
// blocks over the preferred number of rows.
//
// When count is not a multiple of rows, one more row is added and the column
// count becomes count/rows + count%rows. That formula does not always produce
// count cells (7 over 2 rows yields 3x3 = 9). Gameplay depends on the exact
// grid, so it is kept as is.
func GridShape(count, rows int) (int, int) {
	if count%rows == 0 {
		return rows, count / rows
	}
	rows++
	return rows, count/rows + count%rows
}

// GenerateBlocks lays out a fresh grid of active blocks.
// Cell (row, col) has its top-left corner at
// (CellWidth*col + CellWidth, RowHeight*row + TopMargin).
func GenerateBlocks(cfg config.BlocksConfig) []Block {
	rows, cols := GridShape(cfg.Count, cfg.Rows)

	blocks := make([]Block, 0, rows*cols)
	for row := range rows {
		for col := range cols {
			blocks = append(blocks, Block{
				X:      cfg.CellWidth*float64(col) + cfg.CellWidth,
				Y:      cfg.RowHeight*float64(row) + cfg.TopMargin,
				Width:  cfg.Width,
				Height: cfg.Height,
				Active: true,
			})
		}
	}
	return blocks
}
