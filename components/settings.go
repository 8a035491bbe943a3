package components

import (
	cfg "github.com/automoto/mini-magnets/config"
	"github.com/yohamta/donburi"
)

// ResolutionID indexes cfg.Settings.Resolutions
type ResolutionID int

const (
	R800x600 ResolutionID = iota
	R1024x768
	R1280x1024
	R1920x1200
)

// GameSettings is the persisted settings record
type GameSettings struct {
	StartLevel  uint8        `json:"startLevel"`
	SoundVolume uint8        `json:"soundVolume"`
	MusicVolume uint8        `json:"musicVolume"`
	Fullscreen  bool         `json:"fullscreen"`
	Resolution  ResolutionID `json:"resolution"`
}

// DefaultSettings returns the settings used when nothing was saved
func DefaultSettings() GameSettings {
	return GameSettings{
		StartLevel:  0,
		SoundVolume: uint8(cfg.Settings.DefaultVolume),
		MusicVolume: uint8(cfg.Settings.DefaultVolume),
		Fullscreen:  false,
		Resolution:  ResolutionID(cfg.Settings.DefaultResolution),
	}
}

func (s *GameSettings) IncSoundVol() { s.SoundVolume = stepVolume(s.SoundVolume, +1) }
func (s *GameSettings) DecSoundVol() { s.SoundVolume = stepVolume(s.SoundVolume, -1) }
func (s *GameSettings) IncMusicVol() { s.MusicVolume = stepVolume(s.MusicVolume, +1) }
func (s *GameSettings) DecMusicVol() { s.MusicVolume = stepVolume(s.MusicVolume, -1) }

// stepVolume moves a volume by one configured step, saturating at the limits
func stepVolume(v uint8, direction int) uint8 {
	next := int(v) + direction*cfg.Settings.VolumeStep
	if next < 0 {
		next = 0
	}
	if next > cfg.Settings.MaxVolume {
		next = cfg.Settings.MaxVolume
	}
	return uint8(next)
}

func (s *GameSettings) ToggleFullscreen() {
	s.Fullscreen = !s.Fullscreen
}

func (s *GameSettings) IncResolution() {
	if int(s.Resolution) < len(cfg.Settings.Resolutions)-1 {
		s.Resolution++
	}
}

func (s *GameSettings) DecResolution() {
	if s.Resolution > 0 {
		s.Resolution--
	}
}

// ResolutionConfig returns the preset the settings point at
func (s *GameSettings) ResolutionConfig() cfg.Resolution {
	return cfg.Settings.Resolutions[s.Resolution]
}

func (s *GameSettings) ResolutionText() string {
	return s.ResolutionConfig().Label
}

func (s *GameSettings) IncStartLevel() {
	if int(s.StartLevel) < cfg.Settings.MaxStartLevel {
		s.StartLevel++
	}
}

func (s *GameSettings) DecStartLevel() {
	if s.StartLevel > 0 {
		s.StartLevel--
	}
}

// Normalize clamps fields a hand-edited or outdated file may have put out
// of range.
func (s *GameSettings) Normalize() {
	if s.Resolution < 0 || int(s.Resolution) >= len(cfg.Settings.Resolutions) {
		s.Resolution = ResolutionID(cfg.Settings.DefaultResolution)
	}
	if int(s.StartLevel) > cfg.Settings.MaxStartLevel {
		s.StartLevel = uint8(cfg.Settings.MaxStartLevel)
	}
	if int(s.SoundVolume) > cfg.Settings.MaxVolume {
		s.SoundVolume = uint8(cfg.Settings.MaxVolume)
	}
	if int(s.MusicVolume) > cfg.Settings.MaxVolume {
		s.MusicVolume = uint8(cfg.Settings.MaxVolume)
	}
}

var Settings = donburi.NewComponentType[GameSettings]()
