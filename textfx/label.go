package textfx

import (
	"github.com/automoto/mini-magnets/fonts"
)

// Widget is the behaviour shared by all text effects.
type Widget interface {
	Update()
	Draw(dst fonts.Surface)
	SetText(text string)
	SetFont(atlas *fonts.Atlas)
	Text() string
}

var (
	_ Widget = (*Label)(nil)
	_ Widget = (*Wave)(nil)
	_ Widget = (*Selectable)(nil)
)

// Label is static text drawn glyph by glyph with a shared atlas.
// Width and height always match the current text and atlas; both are zero
// while no atlas is attached.
type Label struct {
	x, y   int
	width  int
	height int
	text   string
	atlas  *fonts.Atlas
}

func NewLabel(x, y int, text string) *Label {
	return &Label{x: x, y: y, text: text}
}

func (l *Label) Text() string       { return l.text }
func (l *Label) Pos() (int, int)    { return l.x, l.y }
func (l *Label) Width() int         { return l.width }
func (l *Label) Height() int        { return l.height }
func (l *Label) Font() *fonts.Atlas { return l.atlas }

func (l *Label) SetPos(x, y int) {
	l.x, l.y = x, y
}

func (l *Label) SetText(text string) {
	l.text = text
	l.measure()
}

func (l *Label) SetFont(atlas *fonts.Atlas) {
	l.atlas = atlas
	l.measure()
}

func (l *Label) measure() {
	if l.atlas == nil {
		l.width, l.height = 0, 0
		return
	}
	l.width = l.atlas.CellWidth() * len(l.text)
	l.height = l.atlas.CellHeight()
}

// Center shifts the label left by half its width. Every call shifts again.
func (l *Label) Center() {
	if l.atlas == nil {
		return
	}
	l.x -= l.width / 2
}

// CenterAt places the label so it is horizontally centered on anchor.
func (l *Label) CenterAt(anchor int) {
	l.x = anchor - l.width/2
}

func (l *Label) Update() {}

func (l *Label) Draw(dst fonts.Surface) {
	l.DrawOffset(0, 0, dst)
}

func (l *Label) DrawOffset(dx, dy int, dst fonts.Surface) {
	if l.atlas == nil {
		return
	}
	x := l.x + dx
	y := l.y + dy
	for i := 0; i < len(l.text); i++ {
		l.atlas.DrawGlyph(dst, x, y, l.text[i])
		x += l.atlas.CellWidth()
	}
}
