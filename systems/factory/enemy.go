package factory

import (
	"math/rand"

	"github.com/automoto/rooftop-siege/archetypes"
	"github.com/automoto/rooftop-siege/components"
	cfg "github.com/automoto/rooftop-siege/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns a living enemy at pos with randomized health, speed,
// heading and timers. It starts in the Moving state.
func CreateEnemy(ecs *ecs.ECS, rng *rand.Rand, name string, pos mgl64.Vec3) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)
	e := cfg.Enemy

	health := between(rng, e.MinHealth, e.MaxHealth)
	moveDuration := between(rng, e.MinMoveDuration, e.MaxMoveDuration)

	components.Transform.SetValue(enemy, components.TransformData{
		Position:  pos,
		RotationY: float64(rng.Intn(360)),
	})
	components.Body.SetValue(enemy, components.BodyData{
		Height: e.Height,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: health,
		Max:     health,
	})
	components.Enemy.SetValue(enemy, components.EnemyData{
		Name:          name,
		MoveSpeed:     between(rng, e.MinMoveSpeed, e.MaxMoveSpeed),
		MoveDirection: float64(rng.Intn(360)),
		MoveDuration:  moveDuration,
		MoveTimer:     moveDuration,
		IdleDuration:  between(rng, e.MinIdleDuration, e.MaxIdleDuration),
		IsAlive:       true,
	})
	components.State.SetValue(enemy, components.StateData{
		CurrentState: cfg.StateMoving,
	})

	return enemy
}

func between(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
