package systems

import (
	"math"

	"github.com/automoto/rooftop-siege/components"
	cfg "github.com/automoto/rooftop-siege/config"
	"github.com/automoto/rooftop-siege/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer moves the player relative to the camera yaw, starts jumps,
// advances the walk cycle and resolves punches.
func UpdatePlayer(e *ecs.ECS) {
	entry, ok := PlayerEntry(e)
	cam := Camera(e)
	engine := Engine(e)
	if !ok || cam == nil || engine == nil {
		return
	}
	dt := deltaTime(e)

	t := components.Transform.Get(entry)
	body := components.Body.Get(entry)
	p := components.Player.Get(entry)
	limbs := components.Limbs.Get(entry)
	in := components.Input.Get(entry)

	if p.ShootCooldown > 0 {
		p.ShootCooldown = math.Max(0, p.ShootCooldown-dt)
	}

	mx, mz := gamemath.MoveVector(cam.Yaw, in.MoveForward, in.MoveRight)
	length := math.Hypot(mx, mz)
	p.IsMoving = length > 0
	p.Sprinting = p.IsMoving && in.Sprint && !body.Airborne

	if p.IsMoving {
		mx, mz = mx/length, mz/length
		speed := cfg.Player.MoveSpeed
		if p.Sprinting {
			speed *= cfg.Player.SprintMultiplier
		}
		t.RotationY = gamemath.HeadingTo(0, 0, mx, mz)
		t.Position = StepActor(engine, t.Position, mx*speed*dt, mz*speed*dt, body)
	} else if !body.Airborne {
		// Standing still can still leave the player over a drop.
		t.Position = StepActor(engine, t.Position, 0, 0, body)
	}

	if in.Jump {
		StartJump(body)
	}

	if p.IsMoving {
		p.AnimTime += dt
		limbs.Swing(math.Sin(p.AnimTime*cfg.Player.LimbSwingSpeed) * cfg.Player.LimbSwingAmplitude)
	} else {
		limbs.Reset()
	}

	updatePunch(e, p, dt)
}

// updatePunch advances the punch animation. The hit is resolved once, on
// the tick the animation crosses its hit phase.
func updatePunch(e *ecs.ECS, p *components.PlayerData, dt float64) {
	if !p.IsPunching {
		return
	}
	before := p.PunchProgress
	p.PunchProgress += dt * cfg.Player.PunchRate

	hit := cfg.Player.PunchHitPhase
	if before < hit && p.PunchProgress >= hit {
		if playerEntry, ok := PlayerEntry(e); ok {
			for _, enemy := range livingEnemies(e) {
				MeleeAttack(e, playerEntry, enemy)
			}
		}
	}

	if p.PunchProgress >= 1 {
		p.IsPunching = false
		p.PunchProgress = 0
	}
}
