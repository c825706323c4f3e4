package factory

import (
	"github.com/automoto/rooftop-siege/archetypes"
	"github.com/automoto/rooftop-siege/components"
	"github.com/automoto/rooftop-siege/shared/leveldata"
	"github.com/automoto/rooftop-siege/shared/spatial"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel builds the spatial engine for a loaded registry and stores it
// in the level singleton.
func CreateLevel(ecs *ecs.ECS, reg *leveldata.Registry) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	components.Level.SetValue(level, components.LevelData{
		Name:   reg.Name,
		Engine: spatial.NewEngine(reg),
	})

	return level
}
