package systems

import (
	"github.com/automoto/rooftop-siege/components"
	cfg "github.com/automoto/rooftop-siege/config"
	"github.com/automoto/rooftop-siege/shared/gamemath"
	"github.com/automoto/rooftop-siege/systems/factory"
	"github.com/automoto/rooftop-siege/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Fire spawns a bullet from origin along direction. A zero direction fires
// nothing.
func Fire(e *ecs.ECS, origin, direction mgl64.Vec3) (*donburi.Entry, bool) {
	if direction.Len() == 0 {
		return nil, false
	}
	return factory.CreateBullet(e, origin, direction.Normalize()), true
}

// UpdateBullets advances every active bullet, retires the ones past their
// range, then resolves hits for the rest.
func UpdateBullets(e *ecs.ECS) {
	dt := deltaTime(e)

	var active []*donburi.Entry
	tags.Bullet.Each(e.World, func(entry *donburi.Entry) {
		b := components.Bullet.Get(entry)
		if !b.Active {
			return
		}
		t := components.Transform.Get(entry)
		step := b.Speed * dt
		t.Position = t.Position.Add(b.Direction.Mul(step))
		b.DistanceTraveled += step
		if b.DistanceTraveled >= b.MaxDistance {
			b.Active = false
			return
		}
		active = append(active, entry)
	})

	if len(active) == 0 {
		return
	}
	enemies := livingEnemies(e)
	for _, entry := range active {
		checkBulletHit(e, entry, enemies)
	}
}

// checkBulletHit damages the first living enemy whose column contains the
// bullet. A bullet hits at most one enemy.
func checkBulletHit(e *ecs.ECS, bulletEntry *donburi.Entry, enemies []*donburi.Entry) {
	b := components.Bullet.Get(bulletEntry)
	pos := components.Transform.Get(bulletEntry).Position
	r2 := cfg.Combat.HitRadius * cfg.Combat.HitRadius

	for _, enemyEntry := range enemies {
		enemy := components.Enemy.Get(enemyEntry)
		if !enemy.IsAlive {
			continue
		}
		ep := components.Transform.Get(enemyEntry).Position
		dx, dz := pos.X()-ep.X(), pos.Z()-ep.Z()
		if dx*dx+dz*dz > r2 {
			continue
		}

		damage := b.Damage * DamageMultiplier(pos.Y(), ep.Y())
		applyDamage(e, enemyEntry, damage, "bullet")
		b.Active = false
		return
	}
}

// DamageMultiplier returns the hit-band factor for a bullet at bulletY
// striking an enemy whose feet are at enemyY.
func DamageMultiplier(bulletY, enemyY float64) float64 {
	c := cfg.Combat
	switch {
	case bulletY >= enemyY+c.HeadTop-c.HeadBand:
		return c.HeadMultiplier
	case bulletY >= enemyY+c.BodyBottom:
		return c.BodyMultiplier
	default:
		return c.LegMultiplier
	}
}

// MeleeAttack punches one enemy if it is within range and inside the
// player's facing cone. It reports whether the punch landed.
func MeleeAttack(e *ecs.ECS, playerEntry, enemyEntry *donburi.Entry) bool {
	enemy := components.Enemy.Get(enemyEntry)
	if !enemy.IsAlive {
		return false
	}
	pt := components.Transform.Get(playerEntry)
	ep := components.Transform.Get(enemyEntry).Position

	dx, dz := ep.X()-pt.Position.X(), ep.Z()-pt.Position.Z()
	if dx*dx+dz*dz > cfg.Combat.MeleeRange*cfg.Combat.MeleeRange {
		return false
	}
	heading := gamemath.HeadingTo(pt.Position.X(), pt.Position.Z(), ep.X(), ep.Z())
	if gamemath.AngleDelta(heading, pt.RotationY) >= cfg.Combat.MeleeArc {
		return false
	}

	applyDamage(e, enemyEntry, cfg.Combat.MeleeDamage, "melee")
	return true
}

func applyDamage(e *ecs.ECS, enemyEntry *donburi.Entry, damage float64, source string) {
	enemy := components.Enemy.Get(enemyEntry)
	health := components.Health.Get(enemyEntry)
	health.Current -= damage

	if health.Current <= 0 && enemy.IsAlive {
		enemy.IsAlive = false
		logFor("combat").WithFields(logrus.Fields{
			"enemy":  enemy.Name,
			"source": source,
		}).Info("enemy killed")
		RegisterKill(e)
	}
}
