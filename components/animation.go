package components

import "github.com/yohamta/donburi"

// LimbsData holds limb swing angles in degrees for the presentation layer.
type LimbsData struct {
	LeftArm  float64
	RightArm float64
	LeftLeg  float64
	RightLeg float64
}

// Swing sets the walk-cycle pose: arms and legs swing in opposition.
func (l *LimbsData) Swing(angle float64) {
	l.LeftArm = angle
	l.RightArm = -angle
	l.LeftLeg = -angle
	l.RightLeg = angle
}

func (l *LimbsData) Reset() {
	*l = LimbsData{}
}

var Limbs = donburi.NewComponentType[LimbsData]()
