package systems

import (
	"math"

	"github.com/automoto/rooftop-siege/components"
	cfg "github.com/automoto/rooftop-siege/config"
	"github.com/automoto/rooftop-siege/shared/gamemath"
	"github.com/automoto/rooftop-siege/shared/spatial"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Package-level nav grid cache, rebuilt when the level engine changes.
// Note: This is safe in single-threaded game loop.
var cachedNavGrid *NavGrid
var navGridEngine *spatial.Engine

// AttachBot hands the player over to the autopilot.
func AttachBot(e *ecs.ECS) bool {
	entry, ok := PlayerEntry(e)
	if !ok {
		return false
	}
	if !entry.HasComponent(components.Bot) {
		entry.AddComponent(components.Bot)
	}
	components.Bot.SetValue(entry, components.BotData{})
	return true
}

// UpdateBot writes the player's input for this tick when the autopilot is
// attached: it walks the nav grid towards the nearest enemy and punches once
// in range.
// Must run BEFORE UpdateInput in the system order.
func UpdateBot(e *ecs.ECS) {
	if GameState(e) != cfg.GameStatePlaying {
		return
	}
	entry, ok := PlayerEntry(e)
	if !ok || !entry.HasComponent(components.Bot) {
		return
	}
	engine := Engine(e)
	cam := Camera(e)
	if engine == nil || cam == nil {
		return
	}
	dt := deltaTime(e)

	bot := components.Bot.Get(entry)
	in := components.Input.Get(entry)
	p := components.Player.Get(entry)
	t := components.Transform.Get(entry)

	in.MoveForward, in.MoveRight = 0, 0
	in.Sprint, in.Jump = false, false
	if p.CombatMode != cfg.CombatModeMelee {
		melee := cfg.CombatModeMelee
		in.CombatMode = &melee
	}

	target, ok := botTarget(e, bot, t.Position)
	if !ok {
		bot.Path = nil
		return
	}
	goal := components.Transform.Get(target).Position

	bot.ReplanTimer -= dt
	if bot.ReplanTimer <= 0 {
		bot.Path = navGridFor(engine).FindPath(t.Position.X(), t.Position.Z(), goal.X(), goal.Z())
		if len(bot.Path) > 0 {
			// The first waypoint is the cell the bot stands in.
			bot.Path = bot.Path[1:]
		}
		bot.ReplanTimer = cfg.Bot.ReplanInterval
	}

	if flatDistance(t.Position, goal) <= cfg.Bot.AttackRange {
		t.RotationY = gamemath.HeadingTo(t.Position.X(), t.Position.Z(), goal.X(), goal.Z())
		in.Attack = true
		return
	}

	for len(bot.Path) > 0 && flatDistance(t.Position, bot.Path[0]) < cfg.Bot.WaypointReach {
		bot.Path = bot.Path[1:]
	}
	next := goal
	if len(bot.Path) > 0 {
		next = bot.Path[0]
	}

	heading := gamemath.HeadingTo(t.Position.X(), t.Position.Z(), next.X(), next.Z())
	turn := steer(cam, heading, dt, in)
	if math.Abs(turn) < 90 {
		in.MoveForward = 1
	}
}

// steer turns the camera towards a heading at the configured turn rate and
// returns the remaining angle.
func steer(cam *components.CameraData, heading, dt float64, in *components.InputData) float64 {
	delta := gamemath.SignedAngle(cam.Yaw, heading)
	if cam.Sensitivity <= 0 {
		return delta
	}
	turn := gamemath.ClampSpeed(delta, cfg.Bot.TurnRate*dt)
	// ApplyLook subtracts LookDX from the yaw.
	in.LookDX = -turn / cam.Sensitivity
	return delta
}

// botTarget keeps the current target while it lives, otherwise picks the
// nearest living enemy and forces a replan.
func botTarget(e *ecs.ECS, bot *components.BotData, pos mgl64.Vec3) (*donburi.Entry, bool) {
	if bot.Target != nil && bot.Target.Valid() && components.Enemy.Get(bot.Target).IsAlive {
		return bot.Target, true
	}

	var nearest *donburi.Entry
	best := math.MaxFloat64
	for _, enemy := range livingEnemies(e) {
		d := flatDistance(pos, components.Transform.Get(enemy).Position)
		if d < best {
			best, nearest = d, enemy
		}
	}
	if nearest == nil {
		bot.Target = nil
		return nil, false
	}
	bot.Target = nearest
	bot.ReplanTimer = 0
	bot.Path = nil
	return nearest, true
}

// navGridFor returns the cached nav grid or creates a new one
func navGridFor(engine *spatial.Engine) *NavGrid {
	if cachedNavGrid != nil && navGridEngine == engine {
		return cachedNavGrid
	}
	cachedNavGrid = CreateNavGrid(engine, cfg.Bot.NavExtent, cfg.Bot.NavCellSize)
	navGridEngine = engine
	return cachedNavGrid
}

func flatDistance(a, b mgl64.Vec3) float64 {
	return math.Hypot(a.X()-b.X(), a.Z()-b.Z())
}
