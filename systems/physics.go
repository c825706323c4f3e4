package systems

import (
	"github.com/automoto/rooftop-siege/components"
	cfg "github.com/automoto/rooftop-siege/config"
	"github.com/automoto/rooftop-siege/shared/gamemath"
	"github.com/automoto/rooftop-siege/shared/spatial"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var bodyQuery = donburi.NewQuery(filter.Contains(components.Transform, components.Body))

// StartJump launches a grounded body. It is a no-op mid-air.
func StartJump(body *components.BodyData) bool {
	if body.Airborne {
		return false
	}
	body.Airborne = true
	body.VelocityY = cfg.Player.JumpVelocity
	return true
}

// UpdatePhysics integrates every airborne body and lands it on the ground.
func UpdatePhysics(e *ecs.ECS) {
	engine := Engine(e)
	if engine == nil {
		return
	}
	dt := deltaTime(e)

	bodyQuery.Each(e.World, func(entry *donburi.Entry) {
		body := components.Body.Get(entry)
		if !body.Airborne {
			return
		}
		t := components.Transform.Get(entry)
		t.Position = integrateBody(t.Position, body, dt, engine)
	})
}

// integrateBody advances one airborne step. A rising head stops under the
// nearest rooftop slab and the body falls back from there.
func integrateBody(pos mgl64.Vec3, body *components.BodyData, dt float64, engine *spatial.Engine) mgl64.Vec3 {
	x, z := pos.X(), pos.Z()
	gravity := cfg.Player.Gravity * cfg.Player.GravityScale

	y, vy := gamemath.IntegrateJump(pos.Y(), body.VelocityY, gravity, dt)

	if body.VelocityY > 0 {
		if ceiling, ok := engine.Ceiling(x, z, pos.Y()+body.Height); ok && y+body.Height > ceiling {
			y = ceiling - body.Height
			vy = 0
		}
	}

	ground := engine.GroundHeight(x, z, y)
	if y <= ground {
		y = ground
		vy = 0
		body.Airborne = false
	}
	body.VelocityY = vy
	return mgl64.Vec3{x, y, z}
}
