package screens

import (
	"fmt"

	"github.com/automoto/mini-magnets/components"
	cfg "github.com/automoto/mini-magnets/config"
	"github.com/automoto/mini-magnets/fonts"
	"github.com/automoto/mini-magnets/menu"
)

const (
	audioOptSFX = iota
	audioOptMusic
	audioOptBack
)

// AudioMenu edits the sound and music volumes.
type AudioMenu struct {
	base *menu.Base
}

func NewAudioMenu(settings *components.GameSettings) *AudioMenu {
	m := &AudioMenu{
		base: menu.New(cfg.Menu.Audio, cfg.Menu.Wave, "AUDIO OPTIONS", nil,
			[]string{"SFX VOLUME:", "MUSIC VOLUME:", "BACK"}),
	}
	m.updateSettings(settings)
	return m
}

func (m *AudioMenu) Enter(ctx *Context) {
	m.updateSettings(ctx.Settings)
}

func (m *AudioMenu) Process(action cfg.ActionID, ctx *Context) {
	s := ctx.Settings
	switch action {
	case cfg.ActionMenuSelect:
		if m.base.Selected() == audioOptBack {
			ctx.Nav.MainMenu()
		}
	case cfg.ActionMenuBack:
		ctx.Nav.MainMenu()
	case cfg.ActionMenuLeft:
		m.adjust(s, s.DecSoundVol, s.DecMusicVol)
	case cfg.ActionMenuRight:
		m.adjust(s, s.IncSoundVol, s.IncMusicVol)
	default:
		m.base.Process(action)
	}
}

// adjust applies the sound or music edit for the selected entry and
// rebuilds the entry text only when the value moved.
func (m *AudioMenu) adjust(s *components.GameSettings, sound, music func()) {
	switch m.base.Selected() {
	case audioOptSFX:
		old := s.SoundVolume
		sound()
		if s.SoundVolume != old {
			m.updateSettings(s)
		}
	case audioOptMusic:
		old := s.MusicVolume
		music()
		if s.MusicVolume != old {
			m.updateSettings(s)
		}
	}
}

func (m *AudioMenu) updateSettings(s *components.GameSettings) {
	m.base.ChangeMenu(audioOptSFX, fmt.Sprintf("SFX VOLUME: %d", s.SoundVolume))
	m.base.ChangeMenu(audioOptMusic, fmt.Sprintf("MUSIC VOLUME: %d", s.MusicVolume))
}

func (m *AudioMenu) Update(float64)             { m.base.Update() }
func (m *AudioMenu) Draw(dst fonts.Surface)     { m.base.Draw(dst) }
func (m *AudioMenu) SetFont(atlas *fonts.Atlas) { m.base.SetFont(atlas) }
