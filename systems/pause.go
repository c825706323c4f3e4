package systems

import (
	cfg "github.com/automoto/rooftop-siege/config"
	"github.com/yohamta/donburi/ecs"
)

// TogglePause flips Playing and Paused. Other states are left alone.
func TogglePause(e *ecs.ECS) {
	switch GameState(e) {
	case cfg.GameStatePlaying:
		setGameState(e, cfg.GameStatePaused)
	case cfg.GameStatePaused:
		setGameState(e, cfg.GameStatePlaying)
	}
}

// IsPaused reports whether the game is paused.
func IsPaused(e *ecs.ECS) bool {
	return GameState(e) == cfg.GameStatePaused
}

// WithPauseCheck wraps a system so it only runs while the game is playing.
// Menu, pause, transitions and end screens freeze the simulation.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if GameState(e) != cfg.GameStatePlaying {
			return
		}
		system(e)
	}
}
