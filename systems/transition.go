package systems

import (
	"image/color"

	"github.com/automoto/mini-magnets/components"
	cfg "github.com/automoto/mini-magnets/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// StartTransition covers the screen and fades it back in over
// cfg.Transition.Duration. Restarting mid-fade begins a new fade.
func StartTransition(t *components.TransitionData) {
	t.Tween = gween.New(1, 0, cfg.Transition.Duration, ease.OutQuad)
	t.Alpha = 1
}

// StepTransition advances the fade by dt seconds
func StepTransition(t *components.TransitionData, dt float32) {
	if t.Tween == nil {
		return
	}
	alpha, done := t.Tween.Update(dt)
	t.Alpha = alpha
	if done {
		t.Tween = nil
		t.Alpha = 0
	}
}

// UpdateTransition advances the fade by one tick
func UpdateTransition(ecs *ecs.ECS) {
	StepTransition(GetOrCreateTransition(ecs), 1/float32(cfg.C.TPS))
}

// DrawTransition renders the fade overlay while a fade is running
func DrawTransition(ecs *ecs.ECS, screen *ebiten.Image) {
	t := GetOrCreateTransition(ecs)
	if t.Alpha <= 0 {
		return
	}

	c := cfg.Transition.Color
	overlay := color.RGBA{
		R: uint8(float32(c.R) * t.Alpha),
		G: uint8(float32(c.G) * t.Alpha),
		B: uint8(float32(c.B) * t.Alpha),
		A: uint8(float32(c.A) * t.Alpha),
	}
	bounds := screen.Bounds()
	vector.FillRect(
		screen,
		0, 0,
		float32(bounds.Dx()), float32(bounds.Dy()),
		overlay,
		false,
	)
}

// GetOrCreateTransition returns the singleton Transition component, creating if needed
func GetOrCreateTransition(ecs *ecs.ECS) *components.TransitionData {
	entry, ok := components.Transition.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Transition))
	}
	return components.Transition.Get(entry)
}
