package menu

import (
	cfg "github.com/automoto/mini-magnets/config"
	"github.com/automoto/mini-magnets/fonts"
	"github.com/automoto/mini-magnets/textfx"
)

// Base is the building block of every menu screen: a wave title, optional
// description lines and a list of selectable entries navigated with
// up/down. Exactly one entry is active, the selected one.
//
// Only the active entry animates its markers, and an entry restarts its
// marker cycle each time it becomes active.
type Base struct {
	item         Item
	layout       cfg.LayoutConfig
	atlas        *fonts.Atlas
	title        *textfx.Wave
	descriptions []*textfx.Label
	entries      []*textfx.Selectable
}

// New lays out a menu around layout.X. Entries must not be empty.
func New(layout cfg.LayoutConfig, wave cfg.WaveConfig, title string, descriptions, entries []string) *Base {
	if len(entries) == 0 {
		panic("menu: at least one entry is required")
	}

	b := &Base{
		item:   NewItem(len(entries)),
		layout: layout,
		title:  textfx.NewWave(layout.X, layout.Y, wave.Amplitude, wave.Speed, wave.Shift, title),
	}
	b.setDescriptions(descriptions)
	for _, text := range entries {
		b.entries = append(b.entries, textfx.NewSelectable(layout.X, 0, layout.MaxOffset, text))
	}
	b.entries[0].SetActive(true)
	b.relayout()

	return b
}

func (b *Base) Selected() int                  { return b.item.Selected() }
func (b *Base) Len() int                       { return len(b.entries) }
func (b *Base) Title() *textfx.Wave            { return b.title }
func (b *Base) Entry(i int) *textfx.Selectable { return b.entries[i] }
func (b *Base) Descriptions() []*textfx.Label  { return b.descriptions }

// Process handles up/down navigation and reports whether the selection
// moved. All other actions are left to the owning screen.
func (b *Base) Process(action cfg.ActionID) bool {
	prev := b.item.Selected()
	switch action {
	case cfg.ActionMenuUp:
		b.item.Up()
	case cfg.ActionMenuDown:
		b.item.Down()
	default:
		return false
	}
	b.activate(prev, b.item.Selected())
	return prev != b.item.Selected()
}

// Select moves the selection directly, keeping one entry active.
func (b *Base) Select(i int) {
	prev := b.item.Selected()
	b.item.Select(i)
	b.activate(prev, b.item.Selected())
}

func (b *Base) activate(prev, next int) {
	if prev == next {
		return
	}
	b.entries[prev].SetActive(false)
	b.entries[next].ResetAnimation()
	b.entries[next].SetActive(true)
}

func (b *Base) Update() {
	b.title.Update()
	b.entries[b.item.Selected()].Update()
}

func (b *Base) Draw(dst fonts.Surface) {
	b.title.Draw(dst)
	for _, d := range b.descriptions {
		d.Draw(dst)
	}
	for _, e := range b.entries {
		e.Draw(dst)
	}
}

func (b *Base) SetFont(atlas *fonts.Atlas) {
	b.atlas = atlas
	b.title.SetFont(atlas)
	for _, d := range b.descriptions {
		d.SetFont(atlas)
	}
	for _, e := range b.entries {
		e.SetFont(atlas)
	}
	b.relayout()
}

// ChangeMenu replaces the text of entry i and re-centers it.
func (b *Base) ChangeMenu(i int, text string) {
	e := b.entries[i]
	e.SetText(text)
	e.CenterAt(b.layout.X)
}

// SetDescriptions replaces the description lines; entries move to stay
// below them.
func (b *Base) SetDescriptions(lines []string) {
	b.setDescriptions(lines)
	b.relayout()
}

func (b *Base) setDescriptions(lines []string) {
	b.descriptions = nil
	for _, line := range lines {
		l := textfx.NewLabel(b.layout.X, 0, line)
		l.SetFont(b.atlas)
		b.descriptions = append(b.descriptions, l)
	}
}

// relayout stacks title, descriptions and entries. It only depends on the
// layout and the current widths, so it can run any number of times.
func (b *Base) relayout() {
	step := b.layout.Step
	y := b.layout.Y

	b.title.SetPos(b.layout.X, y)
	b.title.CenterAt(b.layout.X)
	y += 2 * step

	widest := 0
	for _, d := range b.descriptions {
		if d.Width() > widest {
			widest = d.Width()
		}
	}
	left := b.layout.X - widest/2
	for _, d := range b.descriptions {
		d.SetPos(left, y)
		y += step
	}
	if len(b.descriptions) > 0 {
		y += step
	}

	for _, e := range b.entries {
		e.SetPos(b.layout.X, y)
		e.CenterAt(b.layout.X)
		y += step
	}
}
