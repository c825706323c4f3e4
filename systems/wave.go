package systems

import (
	"github.com/automoto/rooftop-siege/components"
	cfg "github.com/automoto/rooftop-siege/config"
	"github.com/automoto/rooftop-siege/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateWave drives the wave state machine. It runs in every state and
// acts only in Playing and WaveTransition.
func UpdateWave(e *ecs.ECS) {
	g := Game(e)
	w := Wave(e)
	if g == nil || w == nil {
		return
	}

	switch g.State {
	case cfg.GameStatePlaying:
		if w.WaveComplete {
			completeWave(e, w)
		}

	case cfg.GameStateWaveTransition:
		w.TransitionTimer -= g.DeltaTime
		if w.TransitionTimer > 0 {
			return
		}
		w.TransitionTimer = 0
		if w.CurrentWave >= w.TotalWaves {
			win(e, w)
			return
		}
		w.CurrentWave++
		startWave(e, w)
		setGameState(e, cfg.GameStatePlaying)
	}
}

// RegisterKill counts a kill towards the current wave. Kills outside Playing
// are ignored, and the threshold only latches WaveComplete once.
func RegisterKill(e *ecs.ECS) {
	w := Wave(e)
	if w == nil || GameState(e) != cfg.GameStatePlaying {
		return
	}
	w.EnemiesKilled++
	if w.EnemiesKilled >= w.EnemiesPerWave {
		w.WaveComplete = true
	}
}

func completeWave(e *ecs.ECS, w *components.WaveData) {
	ClearEnemies(e)
	logFor("wave").WithFields(logrus.Fields{
		"wave":  w.CurrentWave,
		"kills": w.EnemiesKilled,
		"of":    w.TotalWaves,
	}).Info("wave complete")

	if w.CurrentWave >= w.TotalWaves {
		win(e, w)
		return
	}
	w.TransitionTimer = cfg.Wave.TransitionTime
	setGameState(e, cfg.GameStateWaveTransition)
}

func startWave(e *ecs.ECS, w *components.WaveData) {
	w.EnemiesKilled = 0
	w.WaveComplete = false
	SpawnWave(e, w.EnemiesPerWave)
	logFor("wave").WithFields(logrus.Fields{
		"wave":    w.CurrentWave,
		"of":      w.TotalWaves,
		"enemies": w.EnemiesPerWave,
	}).Info("wave started")
}

func win(e *ecs.ECS, w *components.WaveData) {
	w.WaveComplete = true
	setGameState(e, cfg.GameStateWin)
	logFor("wave").WithField("waves", w.TotalWaves).Info("all waves cleared")
}

// ResetGame clears the arena, restores the player and camera to their spawn
// pose and starts wave 1.
func ResetGame(e *ecs.ECS) {
	ClearEnemies(e)
	clearBullets(e)

	if w := Wave(e); w != nil {
		spawned := w.EnemiesSpawned
		*w = components.WaveData{
			CurrentWave:    1,
			TotalWaves:     cfg.Wave.TotalWaves,
			EnemiesPerWave: cfg.Wave.EnemiesPerWave,
			EnemiesSpawned: spawned,
		}
		resetPlayer(e)
		if cam := Camera(e); cam != nil {
			cam.Yaw = 0
			cam.Pitch = 0
		}
		startWave(e, w)
	}
	setGameState(e, cfg.GameStatePlaying)
}

// StartGame leaves the menu. It does nothing in any other state.
func StartGame(e *ecs.ECS) {
	if GameState(e) != cfg.GameStateMenu {
		return
	}
	ResetGame(e)
}

func resetPlayer(e *ecs.ECS) {
	entry, ok := PlayerEntry(e)
	engine := Engine(e)
	if !ok || engine == nil {
		return
	}
	spawn := engine.Level().PlayerSpawn

	t := components.Transform.Get(entry)
	t.Position = mgl64.Vec3{spawn.X, engine.GroundHeight(spawn.X, spawn.Z, 0), spawn.Z}
	t.RotationY = spawn.RotationY

	body := components.Body.Get(entry)
	body.Airborne = false
	body.VelocityY = 0

	p := components.Player.Get(entry)
	p.IsPunching = false
	p.PunchProgress = 0
	p.ShootCooldown = 0
	p.IsMoving = false
	p.Sprinting = false
	p.AnimTime = 0

	components.Limbs.Get(entry).Reset()
	*components.Input.Get(entry) = components.InputData{}
}

func clearBullets(e *ecs.ECS) {
	var all []donburi.Entity
	tags.Bullet.Each(e.World, func(entry *donburi.Entry) {
		all = append(all, entry.Entity())
	})
	for _, entity := range all {
		e.World.Remove(entity)
	}
}
