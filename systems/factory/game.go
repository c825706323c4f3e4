package factory

import (
	"math/rand"

	"github.com/automoto/rooftop-siege/archetypes"
	"github.com/automoto/rooftop-siege/components"
	cfg "github.com/automoto/rooftop-siege/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGame creates the game singleton in the menu state with wave
// counters reset.
func CreateGame(ecs *ecs.ECS, rng *rand.Rand) *donburi.Entry {
	game := archetypes.Game.Spawn(ecs)

	components.Game.SetValue(game, components.GameData{
		State: cfg.GameStateMenu,
		Rand:  rng,
	})
	components.Wave.SetValue(game, components.WaveData{
		CurrentWave:    1,
		TotalWaves:     cfg.Wave.TotalWaves,
		EnemiesPerWave: cfg.Wave.EnemiesPerWave,
	})

	return game
}
