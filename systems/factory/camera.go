package factory

import (
	"github.com/automoto/rooftop-siege/archetypes"
	"github.com/automoto/rooftop-siege/components"
	cfg "github.com/automoto/rooftop-siege/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS, mode cfg.ViewModeID) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{
		Mode:        mode,
		Active:      mode,
		Sensitivity: cfg.Camera.Sensitivity,
		FOV:         cfg.Camera.DefaultFOV,
		TargetFOV:   cfg.Camera.DefaultFOV,
	})
	return camera
}
