package config

import "time"

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundMenuNavigate
	SoundMenuSelect
	SoundMenuAdjust
)

// ToneConfig describes a synthesised menu sound
type ToneConfig struct {
	Frequency float64 // Hz
	Duration  time.Duration
	Attack    time.Duration
	Release   time.Duration
	Gain      float64 // 0.0 - 1.0
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate int
}

// SoundConfig maps sound IDs to their sources
type SoundConfig struct {
	// MenuMusic is read from disk; a missing file only disables music
	MenuMusic string
	Tones     map[SoundID]ToneConfig
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate: 44100,
	}

	Sound = SoundConfig{
		MenuMusic: "assets/music/menu.ogg",
		Tones: map[SoundID]ToneConfig{
			SoundMenuNavigate: {
				Frequency: 660,
				Duration:  60 * time.Millisecond,
				Attack:    5 * time.Millisecond,
				Release:   40 * time.Millisecond,
				Gain:      0.3,
			},
			SoundMenuSelect: {
				Frequency: 990,
				Duration:  120 * time.Millisecond,
				Attack:    5 * time.Millisecond,
				Release:   80 * time.Millisecond,
				Gain:      0.35,
			},
			SoundMenuAdjust: {
				Frequency: 440,
				Duration:  40 * time.Millisecond,
				Attack:    2 * time.Millisecond,
				Release:   30 * time.Millisecond,
				Gain:      0.25,
			},
		},
	}
}
