package fonts

import (
	"fmt"
	"image"
)

// Supported character range: space through underscore.
const (
	FirstCode = 32
	LastCode  = 95
	NumGlyphs = LastCode - FirstCode + 1
)

// Sheet is a glyph image. *ebiten.Image satisfies it.
type Sheet interface {
	Bounds() image.Rectangle
}

// Surface receives glyph blits: the src region of sheet is copied to dst
// at its natural size.
type Surface interface {
	Blit(sheet Sheet, src image.Rectangle, dst image.Point)
}

// Atlas is a bitmap font: one sheet cut into a grid of equally sized cells,
// one per supported character. It is never modified after creation and is
// shared by every widget that draws with it.
type Atlas struct {
	sheet      Sheet
	cellWidth  int
	cellHeight int
	rows       int
	cols       int
}

// NewAtlas derives the grid from the sheet size. Pixels beyond the last full
// row or column are ignored.
func NewAtlas(sheet Sheet, cellWidth, cellHeight int) (*Atlas, error) {
	if sheet == nil {
		return nil, fmt.Errorf("glyph sheet is nil")
	}
	if cellWidth <= 0 || cellHeight <= 0 {
		return nil, fmt.Errorf("invalid glyph cell size %dx%d", cellWidth, cellHeight)
	}

	b := sheet.Bounds()
	a := &Atlas{
		sheet:      sheet,
		cellWidth:  cellWidth,
		cellHeight: cellHeight,
		rows:       b.Dy() / cellHeight,
		cols:       b.Dx() / cellWidth,
	}
	if a.rows*a.cols < NumGlyphs {
		return nil, fmt.Errorf("glyph sheet %dx%d holds %d cells of %dx%d, need %d",
			b.Dx(), b.Dy(), a.rows*a.cols, cellWidth, cellHeight, NumGlyphs)
	}
	return a, nil
}

func (a *Atlas) CellWidth() int  { return a.cellWidth }
func (a *Atlas) CellHeight() int { return a.cellHeight }
func (a *Atlas) Rows() int       { return a.rows }
func (a *Atlas) Cols() int       { return a.cols }

// Index returns the cell index of a character code.
func (a *Atlas) Index(code byte) (int, bool) {
	if code < FirstCode || code > LastCode {
		return 0, false
	}
	return int(code) - FirstCode, true
}

// Cell returns the grid row and column of a character code.
func (a *Atlas) Cell(code byte) (row, col int, ok bool) {
	idx, ok := a.Index(code)
	if !ok {
		return 0, 0, false
	}
	return idx / a.cols, idx % a.cols, true
}

// Source returns the sheet region holding the glyph for code.
func (a *Atlas) Source(code byte) (image.Rectangle, bool) {
	row, col, ok := a.Cell(code)
	if !ok {
		return image.Rectangle{}, false
	}
	origin := a.sheet.Bounds().Min.Add(image.Pt(col*a.cellWidth, row*a.cellHeight))
	return image.Rectangle{Min: origin, Max: origin.Add(image.Pt(a.cellWidth, a.cellHeight))}, true
}

// DrawGlyph blits one character at (x, y). Unsupported codes, e.g. lowercase
// letters, draw nothing.
func (a *Atlas) DrawGlyph(dst Surface, x, y int, code byte) {
	src, ok := a.Source(code)
	if !ok {
		return
	}
	dst.Blit(a.sheet, src, image.Pt(x, y))
}
