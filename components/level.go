package components

import (
	"github.com/automoto/rooftop-siege/shared/spatial"
	"github.com/yohamta/donburi"
)

// LevelData binds the spatial query engine of the loaded arena. This is a
// singleton component.
type LevelData struct {
	Name   string
	Engine *spatial.Engine
}

var Level = donburi.NewComponentType[LevelData]()
