package factory

import (
	"github.com/automoto/rooftop-siege/archetypes"
	"github.com/automoto/rooftop-siege/components"
	cfg "github.com/automoto/rooftop-siege/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBullet spawns an active bullet. dir must already be normalized.
func CreateBullet(ecs *ecs.ECS, origin, dir mgl64.Vec3) *donburi.Entry {
	bullet := archetypes.Bullet.Spawn(ecs)

	components.Transform.SetValue(bullet, components.TransformData{
		Position: origin,
	})
	components.Bullet.SetValue(bullet, components.BulletData{
		Direction:   dir,
		Speed:       cfg.Combat.BulletSpeed,
		Damage:      cfg.Combat.BulletDamage,
		MaxDistance: cfg.Combat.BulletMaxDistance,
		Active:      true,
	})

	return bullet
}
