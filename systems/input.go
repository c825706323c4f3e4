package systems

import (
	"github.com/automoto/rooftop-siege/components"
	cfg "github.com/automoto/rooftop-siege/config"
	"github.com/automoto/rooftop-siege/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput applies the discrete parts of the player's input: mode
// switches, view toggles, mouse look and attacks. Movement and jumping are
// left to UpdatePlayer.
// Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(e *ecs.ECS) {
	entry, ok := PlayerEntry(e)
	cam := Camera(e)
	if !ok || cam == nil {
		return
	}
	in := components.Input.Get(entry)
	p := components.Player.Get(entry)

	if in.CombatMode != nil && *in.CombatMode != p.CombatMode {
		p.CombatMode = *in.CombatMode
		logFor("input").WithField("mode", p.CombatMode).Debug("combat mode")
	}
	if in.ToggleView {
		if cam.Mode == cfg.ViewFirstPerson {
			cam.Mode = cfg.ViewThirdPerson
		} else {
			cam.Mode = cfg.ViewFirstPerson
		}
	}
	if in.ToggleScope && p.CombatMode == cfg.CombatModeRanged {
		cam.Scoped = !cam.Scoped
	}

	ApplyLook(cam, p.CombatMode, in.LookDX, in.LookDY)

	if in.Attack {
		attack(e, entry, p, cam)
	}
}

func attack(e *ecs.ECS, entry *donburi.Entry, p *components.PlayerData, cam *components.CameraData) {
	if p.CombatMode == cfg.CombatModeMelee {
		if !p.IsPunching {
			p.IsPunching = true
			p.PunchProgress = 0
		}
		return
	}

	if p.ShootCooldown > 0 {
		return
	}
	t := components.Transform.Get(entry)
	dir := cam.Forward
	if dir.Len() == 0 {
		dir = gamemath.LookDirection(cam.Yaw, cam.Pitch)
	}
	origin := t.Position.Add(mgl64.Vec3{0, cfg.Player.GunHeight, 0})
	if _, ok := Fire(e, origin, dir); !ok {
		return
	}
	if dir.X() != 0 || dir.Z() != 0 {
		t.RotationY = gamemath.HeadingTo(0, 0, dir.X(), dir.Z())
	}
	p.ShootCooldown = cfg.Player.ShootCooldown
}
