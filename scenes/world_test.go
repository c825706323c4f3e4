package scenes

import (
	"testing"

	"github.com/automoto/rooftop-siege/components"
	cfg "github.com/automoto/rooftop-siege/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

const dt = 1.0 / 60

func newWorld(t *testing.T, seed int64) *GameWorld {
	t.Helper()
	w, err := NewGameWorld(Options{Seed: seed})
	require.NoError(t, err)
	return w
}

func TestNewGameWorld_UnknownLevel(t *testing.T) {
	_, err := NewGameWorld(Options{Seed: 1, Level: "nope"})
	assert.Error(t, err)
}

func TestGameWorld_StartsInMenu(t *testing.T) {
	w := newWorld(t, 1)

	assert.Equal(t, cfg.GameStateMenu, w.State())
	assert.Empty(t, w.Enemies())

	before := components.Transform.Get(w.Player()).Position
	w.ApplyPlayerInput(PlayerInput{MoveForward: 1})
	w.AdvanceSimulation(dt)
	assert.Equal(t, before, components.Transform.Get(w.Player()).Position, "nothing moves in the menu")
}

func TestGameWorld_NonPositiveStepIsIgnored(t *testing.T) {
	w := newWorld(t, 2)
	w.StartGame()

	w.AdvanceSimulation(0)
	w.AdvanceSimulation(-1)
	elapsed, ticks := w.Elapsed()
	assert.Zero(t, elapsed)
	assert.Zero(t, ticks)
}

func TestGameWorld_PauseFreezesSimulation(t *testing.T) {
	w := newWorld(t, 3)
	w.StartGame()
	w.TogglePause()
	require.Equal(t, cfg.GameStatePaused, w.State())

	w.ApplyPlayerInput(PlayerInput{MoveForward: 1})
	before := components.Transform.Get(w.Player()).Position
	for i := 0; i < 30; i++ {
		w.AdvanceSimulation(dt)
	}
	assert.Equal(t, before, components.Transform.Get(w.Player()).Position)

	w.TogglePause()
	w.AdvanceSimulation(dt)
	assert.NotEqual(t, before, components.Transform.Get(w.Player()).Position)
}

func TestGameWorld_FireWeapon(t *testing.T) {
	w := newWorld(t, 4)
	w.StartGame()

	assert.False(t, w.FireWeapon(mgl64.Vec3{0, 1.4, 0}, mgl64.Vec3{}))
	assert.True(t, w.FireWeapon(mgl64.Vec3{0, 1.4, 0}, mgl64.Vec3{0, 0, 1}))
	assert.Len(t, w.Bullets(), 1)

	// The bullet runs out of range and is purged.
	for i := 0; i < 60; i++ {
		w.AdvanceSimulation(dt)
	}
	assert.Empty(t, w.Bullets())
}

// alive tolerates entries already purged from the world.
func alive(entry *donburi.Entry) bool {
	return entry.Valid() && components.Enemy.Get(entry).IsAlive
}

// Clearing wave 1 by punching every enemy leads through the transition into
// wave 2 with a fresh set of enemies.
func TestGameWorld_WaveOneToWaveTwo(t *testing.T) {
	w := newWorld(t, 42)
	w.StartGame()
	require.Equal(t, cfg.GameStatePlaying, w.State())
	require.Len(t, w.Enemies(), 5)

	p := w.Player()
	for _, enemy := range w.Enemies() {
		for i := 0; i < 300 && alive(enemy); i++ {
			// Stand just south of the enemy, facing north.
			ep := components.Transform.Get(enemy).Position
			pt := components.Transform.Get(p)
			pt.Position = ep.Sub(mgl64.Vec3{0, 0, 1})
			pt.RotationY = 0
			w.ApplyPlayerInput(PlayerInput{Attack: true})
			w.AdvanceSimulation(dt)
		}
		require.False(t, alive(enemy), "enemy survived")
		if w.State() != cfg.GameStatePlaying {
			break
		}
	}

	assert.Equal(t, cfg.GameStateWaveTransition, w.State())
	assert.Equal(t, 1, w.Wave().CurrentWave)
	assert.Empty(t, w.Enemies())

	for i := 0; i < 200; i++ {
		w.AdvanceSimulation(dt)
	}

	assert.Equal(t, cfg.GameStatePlaying, w.State())
	assert.Equal(t, 2, w.Wave().CurrentWave)
	assert.Equal(t, 5, w.LivingEnemies())
	assert.Zero(t, w.Wave().EnemiesKilled)
}

func TestGameWorld_RestartResetsPlayer(t *testing.T) {
	w := newWorld(t, 5)
	w.StartGame()
	w.ApplyPlayerInput(PlayerInput{MoveForward: 1, Jump: true})
	for i := 0; i < 10; i++ {
		w.AdvanceSimulation(dt)
	}
	w.Camera().Pitch = 20

	w.RestartGame()

	spawn := w.Engine().Level().PlayerSpawn
	pos := components.Transform.Get(w.Player()).Position
	assert.InDelta(t, spawn.X, pos.X(), 1e-9)
	assert.InDelta(t, spawn.Z, pos.Z(), 1e-9)
	assert.False(t, components.Body.Get(w.Player()).Airborne)
	assert.Zero(t, w.Camera().Pitch)
	assert.Equal(t, 1, w.Wave().CurrentWave)
	assert.Equal(t, cfg.GameStatePlaying, w.State())
}

func TestGameWorld_BotClearsAnEnemy(t *testing.T) {
	w, err := NewGameWorld(Options{Seed: 7, Bot: true})
	require.NoError(t, err)
	w.StartGame()

	for i := 0; i < 60*120 && w.Wave().EnemiesKilled == 0 && w.State() == cfg.GameStatePlaying; i++ {
		w.AdvanceSimulation(dt)
	}
	assert.Positive(t, w.Wave().EnemiesKilled)
}
