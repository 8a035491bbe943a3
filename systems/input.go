package systems

import (
	"github.com/automoto/mini-magnets/components"
	cfg "github.com/automoto/mini-magnets/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input and updates the InputComponent.
// Must run BEFORE UpdateScreens in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	// Merge analog stick into directional actions
	for _, id := range analogActions(gamepadIDs) {
		input.Current[id] = true
		gamepadUsed = true
	}

	// Gamepad takes priority if both used
	if gamepadUsed {
		input.LastInputMethod = components.InputGamepad
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// analogActions maps the left stick of every gamepad past the deadzone to
// menu directions
func analogActions(gamepads []ebiten.GamepadID) []cfg.ActionID {
	var out []cfg.ActionID
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		out = append(out, stickActions(horizontal, vertical, cfg.Input.AnalogDeadzone)...)
	}
	return out
}

// stickActions converts one stick position to directions, applying deadzone
func stickActions(horizontal, vertical, deadzone float64) []cfg.ActionID {
	var out []cfg.ActionID
	if horizontal < -deadzone {
		out = append(out, cfg.ActionMenuLeft)
	}
	if horizontal > deadzone {
		out = append(out, cfg.ActionMenuRight)
	}
	if vertical < -deadzone {
		out = append(out, cfg.ActionMenuUp)
	}
	if vertical > deadzone {
		out = append(out, cfg.ActionMenuDown)
	}
	return out
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed is derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:     curr,
		JustPressed: curr && !prev,
	}
}

// JustPressedActions lists the menu actions pressed this frame in the
// fixed dispatch order
func JustPressedActions(input *components.InputData) []cfg.ActionID {
	var out []cfg.ActionID
	for _, id := range cfg.MenuActions {
		if GetAction(input, id).JustPressed {
			out = append(out, id)
		}
	}
	return out
}
