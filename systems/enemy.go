package systems

import (
	"fmt"
	"math"

	"github.com/automoto/rooftop-siege/components"
	cfg "github.com/automoto/rooftop-siege/config"
	"github.com/automoto/rooftop-siege/shared/gamemath"
	"github.com/automoto/rooftop-siege/shared/spatial"
	"github.com/automoto/rooftop-siege/systems/factory"
	"github.com/automoto/rooftop-siege/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies runs the Moving/Idle state machine of every living enemy.
func UpdateEnemies(e *ecs.ECS) {
	engine := Engine(e)
	g := Game(e)
	if engine == nil || g == nil {
		return
	}
	dt := g.DeltaTime

	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		if !enemy.IsAlive {
			return
		}
		state := components.State.Get(entry)
		limbs := components.Limbs.Get(entry)
		state.StateTimer += dt

		switch state.CurrentState {
		case cfg.StateMoving:
			enemy.AnimPhase += dt * enemy.MoveSpeed
			limbs.Swing(math.Sin(enemy.AnimPhase*cfg.Enemy.AnimSpeed) * cfg.Enemy.AnimAmplitude)

			enemy.MoveTimer -= dt
			if enemy.MoveTimer <= 0 {
				state.Enter(cfg.StateIdle)
				enemy.IdleDuration = randBetween(g, cfg.Enemy.MinIdleDuration, cfg.Enemy.MaxIdleDuration)
				enemy.IdleTimer = enemy.IdleDuration
				limbs.Reset()
				return
			}
			stepEnemy(entry, enemy, engine, g, dt)

		case cfg.StateIdle:
			enemy.IdleTimer -= dt
			if enemy.IdleTimer <= 0 {
				state.Enter(cfg.StateMoving)
				enemy.MoveDirection = float64(g.Rand.Intn(360))
				enemy.MoveDuration = randBetween(g, cfg.Enemy.MinMoveDuration, cfg.Enemy.MaxMoveDuration)
				enemy.MoveTimer = enemy.MoveDuration
			}
		}
	})
}

// stepEnemy walks an enemy along its heading. Enemies do not slide: a
// blocked step turns them to a fresh random heading instead.
func stepEnemy(entry *donburi.Entry, enemy *components.EnemyData, engine *spatial.Engine, g *components.GameData, dt float64) {
	t := components.Transform.Get(entry)
	body := components.Body.Get(entry)

	hx, hz := gamemath.HeadingVector(enemy.MoveDirection)
	ext := cfg.Enemy.SpawnExtent
	newX := gamemath.Clamp(t.Position.X()+hx*enemy.MoveSpeed*dt, -ext, ext)
	newZ := gamemath.Clamp(t.Position.Z()+hz*enemy.MoveSpeed*dt, -ext, ext)

	if engine.IsBlocked(newX, newZ, t.Position.Y(), body.Height) {
		enemy.MoveDirection = float64(g.Rand.Intn(360))
		return
	}
	t.Position = StepActor(engine, t.Position, newX-t.Position.X(), newZ-t.Position.Z(), body)
	t.RotationY = enemy.MoveDirection
}

// SpawnEnemy places one enemy by rejection sampling: up to SpawnAttempts
// random points inside the spawn area that are not blocked and keep
// MinSpawnDistance from every living enemy. When no sample qualifies the
// enemy spawns at the origin.
func SpawnEnemy(e *ecs.ECS) *donburi.Entry {
	engine := Engine(e)
	g := Game(e)
	w := Wave(e)
	if engine == nil || g == nil || w == nil {
		return nil
	}

	ext := cfg.Enemy.SpawnExtent
	minDist2 := cfg.Enemy.MinSpawnDistance * cfg.Enemy.MinSpawnDistance

	var others []mgl64.Vec3
	for _, entry := range livingEnemies(e) {
		others = append(others, components.Transform.Get(entry).Position)
	}

	x, z := 0.0, 0.0
	found := false
	for i := 0; i < cfg.Enemy.SpawnAttempts && !found; i++ {
		cx := randBetween(g, -ext, ext)
		cz := randBetween(g, -ext, ext)
		if engine.IsBlocked(cx, cz, 0, cfg.Enemy.Height) {
			continue
		}
		found = true
		for _, o := range others {
			dx, dz := cx-o.X(), cz-o.Z()
			if dx*dx+dz*dz < minDist2 {
				found = false
				break
			}
		}
		if found {
			x, z = cx, cz
		}
	}

	w.EnemiesSpawned++
	name := fmt.Sprintf("Enemy %d", w.EnemiesSpawned)
	pos := mgl64.Vec3{x, engine.GroundHeight(x, z, 0), z}
	entry := factory.CreateEnemy(e, g.Rand, name, pos)

	log := logFor("enemy").WithFields(logrus.Fields{
		"enemy":  name,
		"x":      pos.X(),
		"z":      pos.Z(),
		"health": components.Health.Get(entry).Max,
	})
	if !found {
		log.Warn("no free spawn point, using origin")
	} else {
		log.Debug("enemy spawned")
	}
	return entry
}

// SpawnWave spawns n enemies.
func SpawnWave(e *ecs.ECS, n int) {
	for i := 0; i < n; i++ {
		SpawnEnemy(e)
	}
}

// ClearEnemies removes every enemy entity, alive or not.
func ClearEnemies(e *ecs.ECS) {
	var all []donburi.Entity
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		all = append(all, entry.Entity())
	})
	for _, entity := range all {
		e.World.Remove(entity)
	}
}

func randBetween(g *components.GameData, lo, hi float64) float64 {
	return lo + g.Rand.Float64()*(hi-lo)
}
