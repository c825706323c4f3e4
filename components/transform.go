package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// TransformData places an entity in the arena. RotationY is a heading in
// degrees where 0 faces +Z and 90 faces +X.
type TransformData struct {
	Position  mgl64.Vec3
	RotationY float64
}

var Transform = donburi.NewComponentType[TransformData]()
