package config

// Resolution represents a display resolution option
type Resolution struct {
	Width  int
	Height int
	Label  string
}

// SettingsConfig contains the limits of the persisted game settings
type SettingsConfig struct {
	Resolutions       []Resolution
	VolumeStep        int
	MaxVolume         int
	MaxStartLevel     int
	DefaultVolume     int
	DefaultResolution int
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	// Labels only use glyphs the bitmap font can draw, hence the uppercase X.
	Settings = SettingsConfig{
		Resolutions: []Resolution{
			{Width: 800, Height: 600, Label: "800X600"},
			{Width: 1024, Height: 768, Label: "1024X768"},
			{Width: 1280, Height: 1024, Label: "1280X1024"},
			{Width: 1920, Height: 1200, Label: "1920X1200"},
		},
		VolumeStep:        5,
		MaxVolume:         255,
		MaxStartLevel:     9,
		DefaultVolume:     255,
		DefaultResolution: 0,
	}
}
