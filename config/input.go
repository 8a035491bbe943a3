package config

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// ActionID represents a logical menu action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMenuUp
	ActionMenuDown
	ActionMenuLeft
	ActionMenuRight
	ActionMenuSelect
	ActionMenuBack
	ActionCount // Must be last - used for array sizing
)

// MenuActions is the order in which just-pressed actions reach a screen
var MenuActions = []ActionID{
	ActionMenuUp,
	ActionMenuDown,
	ActionMenuLeft,
	ActionMenuRight,
	ActionMenuSelect,
	ActionMenuBack,
}

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Label                  string // shown on the controls screen
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Bindings: map[ActionID]InputBinding{
			ActionMenuUp: {
				Label: "UP",
				Keys:  []ebiten.Key{ebiten.KeyUp},
				// D-pad Up (analog stick handled separately)
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			ActionMenuDown: {
				Label: "DOWN",
				Keys:  []ebiten.Key{ebiten.KeyDown},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
			ActionMenuLeft: {
				Label: "LEFT",
				Keys:  []ebiten.Key{ebiten.KeyLeft},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftLeft,
				},
			},
			ActionMenuRight: {
				Label: "RIGHT",
				Keys:  []ebiten.Key{ebiten.KeyRight},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftRight,
				},
			},
			ActionMenuSelect: {
				Label: "SELECT",
				Keys:  []ebiten.Key{ebiten.KeyEnter},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionMenuBack: {
				Label: "BACK",
				Keys:  []ebiten.Key{ebiten.KeyEscape},
				// B / Circle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightRight,
				},
			},
		},
	}
}

// KeyLabel returns an uppercase, font-safe name for a key
func KeyLabel(k ebiten.Key) string {
	switch k {
	case ebiten.KeyUp:
		return "UP ARROW"
	case ebiten.KeyDown:
		return "DOWN ARROW"
	case ebiten.KeyLeft:
		return "LEFT ARROW"
	case ebiten.KeyRight:
		return "RIGHT ARROW"
	case ebiten.KeyEnter:
		return "RETURN"
	case ebiten.KeyEscape:
		return "ESCAPE"
	}
	return strings.ToUpper(k.String())
}

// ButtonLabel returns an uppercase, font-safe name for a standard gamepad button
func ButtonLabel(b ebiten.StandardGamepadButton) string {
	switch b {
	case ebiten.StandardGamepadButtonLeftTop:
		return "DPAD UP"
	case ebiten.StandardGamepadButtonLeftBottom:
		return "DPAD DOWN"
	case ebiten.StandardGamepadButtonLeftLeft:
		return "DPAD LEFT"
	case ebiten.StandardGamepadButtonLeftRight:
		return "DPAD RIGHT"
	case ebiten.StandardGamepadButtonRightBottom:
		return "A"
	case ebiten.StandardGamepadButtonRightRight:
		return "B"
	}
	return fmt.Sprintf("BUTTON %d", int(b))
}
