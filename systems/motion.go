package systems

import (
	"github.com/automoto/rooftop-siege/components"
	cfg "github.com/automoto/rooftop-siege/config"
	"github.com/automoto/rooftop-siege/shared/spatial"
	"github.com/go-gl/mathgl/mgl64"
)

// StepActor moves an actor by (dx, dz) with wall sliding and returns the new
// position. Blocked axes are withheld, and a move blocked on both axes is
// dropped entirely. A grounded actor follows the ground height, except when
// the ground falls away by more than LedgeDrop, in which case it becomes
// airborne at its current height and gravity takes over.
func StepActor(engine *spatial.Engine, pos mgl64.Vec3, dx, dz float64, body *components.BodyData) mgl64.Vec3 {
	x, y, z := pos.X(), pos.Y(), pos.Z()
	newX, newZ := x+dx, z+dz

	res := engine.ResolveWallSlide(newX, newZ, x, z, y, body.Height)
	switch {
	case !res.Collided:
		x, z = newX, newZ
	case res.BlockX && res.BlockZ:
	case !res.BlockX && !res.BlockZ:
		// Only the diagonal collides; the X-only box is clear.
		x = newX
	default:
		if !res.BlockX {
			x = newX
		}
		if !res.BlockZ {
			z = newZ
		}
	}

	if body.Airborne {
		return mgl64.Vec3{x, y, z}
	}

	ground := engine.GroundHeight(x, z, y)
	if y-ground > cfg.Collision.LedgeDrop {
		body.Airborne = true
		body.VelocityY = 0
		return mgl64.Vec3{x, y, z}
	}
	return mgl64.Vec3{x, ground, z}
}
