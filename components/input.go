package components

import (
	cfg "github.com/automoto/rooftop-siege/config"
	"github.com/yohamta/donburi"
)

// InputData is the player intent for the next tick. MoveForward and
// MoveRight are in [-1, 1]. The toggles are edge-triggered and cleared once
// consumed.
type InputData struct {
	MoveForward float64
	MoveRight   float64
	Sprint      bool
	Jump        bool
	Attack      bool
	CombatMode  *cfg.CombatModeID

	LookDX float64
	LookDY float64

	ToggleView  bool
	ToggleScope bool
}

// Consume clears the one-shot fields after a tick. Held axes and buttons
// persist until the next ApplyPlayerInput.
func (in *InputData) Consume() {
	in.Attack = false
	in.CombatMode = nil
	in.LookDX = 0
	in.LookDY = 0
	in.ToggleView = false
	in.ToggleScope = false
}

var Input = donburi.NewComponentType[InputData]()
