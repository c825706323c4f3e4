package components

import (
	"math/rand"

	cfg "github.com/automoto/rooftop-siege/config"
	"github.com/yohamta/donburi"
)

// GameData is the top-level game state. This is a singleton component.
type GameData struct {
	State cfg.GameStateID

	// Rand is the only randomness source of the simulation.
	Rand *rand.Rand

	// DeltaTime is the step length of the tick being processed, in seconds.
	DeltaTime float64
	Elapsed   float64
	Tick      int
}

var Game = donburi.NewComponentType[GameData]()
