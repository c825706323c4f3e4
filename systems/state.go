package systems

import (
	"github.com/automoto/rooftop-siege/components"
	cfg "github.com/automoto/rooftop-siege/config"
	"github.com/automoto/rooftop-siege/shared/spatial"
	"github.com/automoto/rooftop-siege/tags"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func logFor(component string) *logrus.Entry {
	return logrus.WithField("component", component)
}

// Game returns the game singleton. Worlds are always built with one, see
// factory.CreateGame.
func Game(e *ecs.ECS) *components.GameData {
	entry, ok := components.Game.First(e.World)
	if !ok {
		return nil
	}
	return components.Game.Get(entry)
}

// Wave returns the wave singleton.
func Wave(e *ecs.ECS) *components.WaveData {
	entry, ok := components.Wave.First(e.World)
	if !ok {
		return nil
	}
	return components.Wave.Get(entry)
}

// GameState returns the current top-level state, or Menu for a world that
// has no game singleton yet.
func GameState(e *ecs.ECS) cfg.GameStateID {
	if g := Game(e); g != nil {
		return g.State
	}
	return cfg.GameStateMenu
}

func setGameState(e *ecs.ECS, state cfg.GameStateID) {
	g := Game(e)
	if g == nil || g.State == state {
		return
	}
	logFor("game").WithFields(logrus.Fields{
		"from": g.State.String(),
		"to":   state.String(),
	}).Debug("state change")
	g.State = state
}

func deltaTime(e *ecs.ECS) float64 {
	if g := Game(e); g != nil {
		return g.DeltaTime
	}
	return 0
}

// Engine returns the spatial engine of the loaded level.
func Engine(e *ecs.ECS) *spatial.Engine {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return nil
	}
	return components.Level.Get(entry).Engine
}

// Camera returns the camera singleton.
func Camera(e *ecs.ECS) *components.CameraData {
	entry, ok := components.Camera.First(e.World)
	if !ok {
		return nil
	}
	return components.Camera.Get(entry)
}

// PlayerEntry returns the player entity.
func PlayerEntry(e *ecs.ECS) (*donburi.Entry, bool) {
	return tags.Player.First(e.World)
}

// livingEnemies collects enemies that are still alive. The slice is safe to
// hold while entities are mutated.
func livingEnemies(e *ecs.ECS) []*donburi.Entry {
	var out []*donburi.Entry
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		if components.Enemy.Get(entry).IsAlive {
			out = append(out, entry)
		}
	})
	return out
}
