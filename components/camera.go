package components

import (
	cfg "github.com/automoto/rooftop-siege/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// CameraData is the active camera pose. Yaw and Pitch are the look angles
// in degrees; positive pitch looks down.
type CameraData struct {
	// Mode is the perspective the user picked. Active is what was rendered
	// on the last update, which differs while scoped with a ranged weapon.
	Mode   cfg.ViewModeID
	Active cfg.ViewModeID
	Scoped bool

	Yaw         float64
	Pitch       float64
	Sensitivity float64
	InvertY     bool

	Position mgl64.Vec3
	Target   mgl64.Vec3
	Forward  mgl64.Vec3 // normalized, Target - Position
	Occluded bool

	FOV       float64
	TargetFOV float64
	FOVTween  *gween.Tween
}

var Camera = donburi.NewComponentType[CameraData]()

// ActiveView resolves the perspective for a combat mode. A scope on a
// ranged weapon always looks through the player's eyes.
func (c *CameraData) ActiveView(combat cfg.CombatModeID) cfg.ViewModeID {
	if c.Mode == cfg.ViewFirstPerson || (c.Scoped && combat == cfg.CombatModeRanged) {
		return cfg.ViewFirstPerson
	}
	return cfg.ViewThirdPerson
}

// PitchLimits returns the allowed pitch range for the current view.
func (c *CameraData) PitchLimits(combat cfg.CombatModeID) (lo, hi float64) {
	cc := cfg.Camera
	switch {
	case c.ActiveView(combat) == cfg.ViewFirstPerson:
		return cc.FirstPersonPitchMin, cc.FirstPersonPitchMax
	case c.Scoped:
		return cc.ScopedPitchMin, cc.ScopedPitchMax
	default:
		return cc.ThirdPersonPitchMin, cc.ThirdPersonPitchMax
	}
}

func (c *CameraData) ViewMatrix() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position, c.Target, mgl64.Vec3{0, 1, 0})
}

func (c *CameraData) ProjectionMatrix(aspect float64) mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(c.FOV), aspect, cfg.Camera.Near, cfg.Camera.Far)
}
