package fonts

import (
	"fmt"
	"image"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// BakeColumns is the grid width of baked sheets.
const BakeColumns = 16

// Bake renders the supported characters of a TrueType font into a grid
// sheet suitable for NewAtlas with the same cell size. Glyphs are white on a
// transparent background, centered in their cells.
func Bake(ttf []byte, cellWidth, cellHeight int, size float64) (*image.RGBA, error) {
	if cellWidth <= 0 || cellHeight <= 0 {
		return nil, fmt.Errorf("invalid glyph cell size %dx%d", cellWidth, cellHeight)
	}

	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face := truetype.NewFace(fontData, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	rows := (NumGlyphs + BakeColumns - 1) / BakeColumns
	sheet := image.NewRGBA(image.Rect(0, 0, BakeColumns*cellWidth, rows*cellHeight))

	d := &font.Drawer{
		Dst:  sheet,
		Src:  image.White,
		Face: face,
	}

	m := face.Metrics()
	glyphHeight := (m.Ascent + m.Descent).Ceil()
	baseline := (cellHeight-glyphHeight)/2 + m.Ascent.Ceil()

	for code := FirstCode; code <= LastCode; code++ {
		idx := code - FirstCode
		cellX := (idx % BakeColumns) * cellWidth
		cellY := (idx / BakeColumns) * cellHeight

		s := string(rune(code))
		advance := d.MeasureString(s).Ceil()
		d.Dot = fixed.P(cellX+(cellWidth-advance)/2, cellY+baseline)
		d.DrawString(s)
	}

	return sheet, nil
}
