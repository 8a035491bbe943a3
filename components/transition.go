package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TransitionData fades the screen in after a navigation change
type TransitionData struct {
	Tween *gween.Tween
	Alpha float32 // 1 = fully covered, 0 = clear
}

// Active reports whether a fade is still running
func (t *TransitionData) Active() bool {
	return t.Tween != nil
}

var Transition = donburi.NewComponentType[TransitionData]()
