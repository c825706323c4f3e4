package factory

import (
	"github.com/automoto/rooftop-siege/archetypes"
	"github.com/automoto/rooftop-siege/components"
	cfg "github.com/automoto/rooftop-siege/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player standing at (x, groundY, z).
func CreatePlayer(ecs *ecs.ECS, x, groundY, z, rotationY float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	components.Transform.SetValue(player, components.TransformData{
		Position:  mgl64.Vec3{x, groundY, z},
		RotationY: rotationY,
	})
	components.Body.SetValue(player, components.BodyData{
		Height: cfg.Player.Height,
	})
	components.Player.SetValue(player, components.PlayerData{
		CombatMode: cfg.CombatModeMelee,
	})

	return player
}
