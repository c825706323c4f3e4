package scenes

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/automoto/rooftop-siege/assets"
	"github.com/automoto/rooftop-siege/components"
	cfg "github.com/automoto/rooftop-siege/config"
	"github.com/automoto/rooftop-siege/shared/spatial"
	"github.com/automoto/rooftop-siege/systems"
	"github.com/automoto/rooftop-siege/systems/factory"
	"github.com/automoto/rooftop-siege/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlayerInput is the intent applied to the player on the next tick.
type PlayerInput = components.InputData

// Options configures a new world. Zero values pick a wall-clock seed and the
// default arena.
type Options struct {
	Seed  int64
	Level string
	Bot   bool // drive the player with the autopilot
}

// GameWorld owns one simulation: the donburi world, the fixed system order
// and the loaded arena.
type GameWorld struct {
	ecs  *ecs.ECS
	seed int64
}

func NewGameWorld(opts Options) (*GameWorld, error) {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Level == "" {
		opts.Level = assets.DefaultLevel
	}

	reg, err := assets.NewLevelLoader().LoadLevel(opts.Level)
	if err != nil {
		return nil, fmt.Errorf("new game world: %w", err)
	}

	w := &GameWorld{
		ecs:  ecs.NewECS(donburi.NewWorld()),
		seed: opts.Seed,
	}
	w.configure()

	level := factory.CreateLevel(w.ecs, reg)
	engine := components.Level.Get(level).Engine
	factory.CreateGame(w.ecs, rand.New(rand.NewSource(opts.Seed)))
	factory.CreateCamera(w.ecs, cfg.ViewThirdPerson)

	spawn := reg.PlayerSpawn
	factory.CreatePlayer(w.ecs, spawn.X, engine.GroundHeight(spawn.X, spawn.Z, 0), spawn.Z, spawn.RotationY)

	if opts.Bot {
		systems.AttachBot(w.ecs)
	}

	logrus.WithFields(logrus.Fields{
		"component": "world",
		"seed":      opts.Seed,
		"level":     reg.Name,
		"bot":       opts.Bot,
	}).Info("world ready")

	if cfg.Debug.SkipMenu {
		w.StartGame()
	}
	return w, nil
}

func (w *GameWorld) configure() {
	// Autopilot writes input before anything reads it
	w.ecs.AddSystem(systems.UpdateBot)

	// Game systems wrapped with pause and state checks
	w.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateInput))
	w.ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePlayer))
	w.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateEnemies))
	w.ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePhysics))
	w.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCamera))
	w.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateBullets))

	// Systems that always run
	w.ecs.AddSystem(systems.UpdateWave)
	w.ecs.AddSystem(systems.UpdatePurge)
}

// ApplyPlayerInput replaces the player's intent for the next tick.
func (w *GameWorld) ApplyPlayerInput(in PlayerInput) {
	entry, ok := systems.PlayerEntry(w.ecs)
	if !ok {
		return
	}
	components.Input.SetValue(entry, in)
}

// AdvanceSimulation runs one tick of dt seconds. A non-positive dt is
// ignored.
func (w *GameWorld) AdvanceSimulation(dt float64) {
	if dt <= 0 {
		return
	}
	g := systems.Game(w.ecs)
	g.DeltaTime = dt
	g.Elapsed += dt
	g.Tick++

	w.ecs.Update()

	if entry, ok := systems.PlayerEntry(w.ecs); ok {
		components.Input.Get(entry).Consume()
	}
}

// FireWeapon spawns a bullet outside of the player's own attack input.
func (w *GameWorld) FireWeapon(origin, direction mgl64.Vec3) bool {
	_, ok := systems.Fire(w.ecs, origin, direction)
	return ok
}

func (w *GameWorld) StartGame()   { systems.StartGame(w.ecs) }
func (w *GameWorld) RestartGame() { systems.ResetGame(w.ecs) }
func (w *GameWorld) TogglePause() { systems.TogglePause(w.ecs) }

// AttachBot hands the player to the autopilot.
func (w *GameWorld) AttachBot() bool { return systems.AttachBot(w.ecs) }

func (w *GameWorld) Player() *donburi.Entry {
	entry, _ := systems.PlayerEntry(w.ecs)
	return entry
}

// Enemies lists every enemy entity, including any killed this tick that
// have not been purged yet.
func (w *GameWorld) Enemies() []*donburi.Entry {
	return w.collect(tags.Enemy)
}

func (w *GameWorld) Bullets() []*donburi.Entry {
	return w.collect(tags.Bullet)
}

// LivingEnemies counts enemies that are still alive.
func (w *GameWorld) LivingEnemies() int {
	n := 0
	for _, entry := range w.Enemies() {
		if components.Enemy.Get(entry).IsAlive {
			n++
		}
	}
	return n
}

func (w *GameWorld) Wave() components.WaveData {
	if wave := systems.Wave(w.ecs); wave != nil {
		return *wave
	}
	return components.WaveData{}
}

func (w *GameWorld) State() cfg.GameStateID { return systems.GameState(w.ecs) }

func (w *GameWorld) Camera() *components.CameraData { return systems.Camera(w.ecs) }

func (w *GameWorld) Engine() *spatial.Engine { return systems.Engine(w.ecs) }

func (w *GameWorld) Seed() int64 { return w.seed }

// Elapsed is the simulated time in seconds and the number of ticks run.
func (w *GameWorld) Elapsed() (float64, int) {
	g := systems.Game(w.ecs)
	return g.Elapsed, g.Tick
}

func (w *GameWorld) collect(tag *donburi.ComponentType[donburi.Tag]) []*donburi.Entry {
	var out []*donburi.Entry
	tag.Each(w.ecs.World, func(entry *donburi.Entry) {
		out = append(out, entry)
	})
	return out
}
