package systems

import (
	"github.com/automoto/rooftop-siege/components"
	"github.com/automoto/rooftop-siege/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePurge removes dead enemies and spent bullets. It runs last so every
// other system sees a consistent set of entities within a tick.
func UpdatePurge(e *ecs.ECS) {
	var dead []donburi.Entity
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		if !components.Enemy.Get(entry).IsAlive {
			dead = append(dead, entry.Entity())
		}
	})
	tags.Bullet.Each(e.World, func(entry *donburi.Entry) {
		if !components.Bullet.Get(entry).Active {
			dead = append(dead, entry.Entity())
		}
	})
	for _, entity := range dead {
		e.World.Remove(entity)
	}
}
