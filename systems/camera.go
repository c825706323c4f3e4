package systems

import (
	"math"

	"github.com/automoto/rooftop-siege/components"
	cfg "github.com/automoto/rooftop-siege/config"
	"github.com/automoto/rooftop-siege/shared/gamemath"
	"github.com/automoto/rooftop-siege/shared/spatial"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera recomputes the camera pose around the player and eases the
// field of view towards the one the current view calls for.
func UpdateCamera(e *ecs.ECS) {
	cam := Camera(e)
	entry, ok := PlayerEntry(e)
	engine := Engine(e)
	if cam == nil || !ok || engine == nil {
		return
	}
	p := components.Player.Get(entry)
	pos := components.Transform.Get(entry).Position

	lo, hi := cam.PitchLimits(p.CombatMode)
	cam.Pitch = gamemath.Clamp(cam.Pitch, lo, hi)
	cam.Active = cam.ActiveView(p.CombatMode)

	fov := cfg.Camera.DefaultFOV
	switch {
	case cam.Active == cfg.ViewFirstPerson:
		firstPersonPose(cam, pos)
		if cam.Scoped && p.CombatMode == cfg.CombatModeRanged {
			fov = cfg.Camera.ScopeFOV
		}
	case cam.Scoped:
		scopedThirdPersonPose(cam, pos, engine)
		fov = cfg.Camera.ScopeFOV
	default:
		thirdPersonPose(cam, pos, engine)
	}

	updateFOV(cam, fov, deltaTime(e))
}

func firstPersonPose(cam *components.CameraData, pos mgl64.Vec3) {
	cam.Position = pos.Add(mgl64.Vec3{0, cfg.Camera.FirstPersonEyeHeight, 0})
	cam.Forward = gamemath.LookDirection(cam.Yaw, cam.Pitch)
	cam.Target = cam.Position.Add(cam.Forward)
	cam.Occluded = false
}

// thirdPersonPose places the camera behind and above the player with a
// shoulder offset, then pulls it in front of any wall between it and the
// player's eyes.
func thirdPersonPose(cam *components.CameraData, pos mgl64.Vec3, engine *spatial.Engine) {
	c := cfg.Camera
	sy, cy := sincos(cam.Yaw)
	sp, cp := sincos(cam.Pitch)

	ideal := pos.Add(mgl64.Vec3{
		-sy*c.Distance*cp + cy*c.ShoulderOffset,
		c.Height + sp*c.Distance,
		-cy*c.Distance*cp + sy*c.ShoulderOffset,
	})
	eye := pos.Add(mgl64.Vec3{0, c.EyeHeight, 0})
	cam.Occluded, cam.Position = engine.CastOcclusionRay(eye, ideal)

	cam.Target = pos.Add(mgl64.Vec3{sy * c.AimDistance, c.EyeHeight, cy * c.AimDistance})
	cam.Forward = forward(cam.Position, cam.Target)
}

// scopedThirdPersonPose is the tight over-the-shoulder aim view. The aim
// point tilts with pitch.
func scopedThirdPersonPose(cam *components.CameraData, pos mgl64.Vec3, engine *spatial.Engine) {
	c := cfg.Camera
	sy, cy := sincos(cam.Yaw)
	sp, cp := sincos(cam.Pitch)

	ideal := pos.Add(mgl64.Vec3{
		-sy*c.ScopeDistance*cp + cy*c.ScopeShoulderOffset,
		c.ScopeEyeHeight + sp*c.ScopeDistance*0.5,
		-cy*c.ScopeDistance*cp + sy*c.ScopeShoulderOffset,
	})
	eye := pos.Add(mgl64.Vec3{0, c.ScopeEyeHeight, 0})
	cam.Occluded, cam.Position = engine.CastOcclusionRay(eye, ideal)

	cam.Target = pos.Add(mgl64.Vec3{
		sy * c.ScopeAimDistance,
		c.EyeHeight - sp*c.ScopeAimDistance,
		cy * c.ScopeAimDistance,
	})
	cam.Forward = forward(cam.Position, cam.Target)
}

// updateFOV restarts the tween whenever the wanted FOV changes and steps it
// by dt.
func updateFOV(cam *components.CameraData, fov, dt float64) {
	if fov != cam.TargetFOV {
		cam.TargetFOV = fov
		cam.FOVTween = gween.New(float32(cam.FOV), float32(fov), float32(cfg.Camera.FOVTweenTime), ease.OutQuad)
	}
	if cam.FOVTween == nil {
		return
	}
	v, done := cam.FOVTween.Update(float32(dt))
	cam.FOV = float64(v)
	if done {
		cam.FOV = cam.TargetFOV
		cam.FOVTween = nil
	}
}

// ApplyLook turns the camera by a mouse delta and clamps pitch for the
// current view.
func ApplyLook(cam *components.CameraData, combat cfg.CombatModeID, dx, dy float64) {
	if cam.InvertY {
		dy = -dy
	}
	cam.Yaw -= dx * cam.Sensitivity
	cam.Pitch += dy * cam.Sensitivity
	lo, hi := cam.PitchLimits(combat)
	cam.Pitch = gamemath.Clamp(cam.Pitch, lo, hi)
}

func sincos(deg float64) (float64, float64) {
	return math.Sincos(mgl64.DegToRad(deg))
}

func forward(from, to mgl64.Vec3) mgl64.Vec3 {
	d := to.Sub(from)
	if d.Len() == 0 {
		return mgl64.Vec3{0, 0, 1}
	}
	return d.Normalize()
}
