package systems

import (
	"math/rand"
	"testing"

	"github.com/automoto/rooftop-siege/assets"
	"github.com/automoto/rooftop-siege/components"
	cfg "github.com/automoto/rooftop-siege/config"
	"github.com/automoto/rooftop-siege/shared/leveldata"
	"github.com/automoto/rooftop-siege/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const testDT = 1.0 / 60

// newTestWorld builds a world around reg, or the embedded arena when reg is
// nil. The game starts in the menu with the player at the level spawn.
func newTestWorld(t *testing.T, reg *leveldata.Registry, seed int64) *ecs.ECS {
	t.Helper()
	if reg == nil {
		var err error
		reg, err = assets.NewLevelLoader().LoadLevel(assets.DefaultLevel)
		require.NoError(t, err)
	}

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateLevel(e, reg)
	factory.CreateGame(e, rand.New(rand.NewSource(seed)))
	factory.CreateCamera(e, cfg.ViewThirdPerson)
	factory.CreatePlayer(e, reg.PlayerSpawn.X, 0, reg.PlayerSpawn.Z, reg.PlayerSpawn.RotationY)
	Game(e).DeltaTime = testDT
	return e
}

func playing(e *ecs.ECS) {
	setGameState(e, cfg.GameStatePlaying)
}

func placeEnemy(t *testing.T, e *ecs.ECS, pos mgl64.Vec3, health float64) *donburi.Entry {
	t.Helper()
	entry := factory.CreateEnemy(e, Game(e).Rand, "target", pos)
	components.Health.SetValue(entry, components.HealthData{Current: health, Max: health})
	return entry
}

func player(t *testing.T, e *ecs.ECS) *donburi.Entry {
	t.Helper()
	entry, ok := PlayerEntry(e)
	require.True(t, ok)
	return entry
}

func countTagged(e *ecs.ECS, tag *donburi.ComponentType[donburi.Tag]) int {
	n := 0
	tag.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}
