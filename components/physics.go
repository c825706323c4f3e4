package components

import "github.com/yohamta/donburi"

// BodyData is the vertical state of an upright actor. Grounded actors keep
// Airborne false and VelocityY zero.
type BodyData struct {
	Height    float64
	Airborne  bool
	VelocityY float64
}

var Body = donburi.NewComponentType[BodyData]()
