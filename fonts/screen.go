package fonts

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screen blits glyphs from ebiten sheets onto an ebiten render target.
type Screen struct {
	dst *ebiten.Image
	op  ebiten.DrawImageOptions
}

func NewScreen(dst *ebiten.Image) *Screen {
	return &Screen{dst: dst}
}

// Blit draws src of sheet at dst. Sheets that are not ebiten images are
// skipped.
func (s *Screen) Blit(sheet Sheet, src image.Rectangle, dst image.Point) {
	img, ok := sheet.(*ebiten.Image)
	if !ok {
		return
	}
	s.op.GeoM.Reset()
	s.op.GeoM.Translate(float64(dst.X), float64(dst.Y))
	s.dst.DrawImage(img.SubImage(src).(*ebiten.Image), &s.op)
}
