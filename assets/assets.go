package assets

import (
	"fmt"
	"image"
	_ "image/png"
	"io"
	"os"

	cfg "github.com/automoto/mini-magnets/config"
	"github.com/automoto/mini-magnets/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/font/gofont/goregular"
)

// DecodeSheet decodes a png or bmp glyph sheet.
func DecodeSheet(r io.Reader) (image.Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode sheet: %w", err)
	}
	if format != "png" && format != "bmp" {
		return nil, fmt.Errorf("unsupported sheet format: %s", format)
	}
	return img, nil
}

// LoadSheet reads a glyph sheet from disk into a GPU image.
func LoadSheet(path string) (*ebiten.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sheet %s: %w", path, err)
	}
	defer f.Close()

	img, err := DecodeSheet(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

// LoadFontAtlas builds the menu atlas. A configured sheet is loaded from
// disk; without one the sheet is baked from the bundled Go font.
func LoadFontAtlas(c cfg.FontConfig) (*fonts.Atlas, error) {
	var sheet *ebiten.Image
	if c.SheetPath != "" {
		s, err := LoadSheet(c.SheetPath)
		if err != nil {
			return nil, err
		}
		sheet = s
	} else {
		baked, err := fonts.Bake(goregular.TTF, c.CellWidth, c.CellHeight, c.BakeSize)
		if err != nil {
			return nil, fmt.Errorf("failed to bake font sheet: %w", err)
		}
		sheet = ebiten.NewImageFromImage(baked)
	}
	return fonts.NewAtlas(sheet, c.CellWidth, c.CellHeight)
}
