package systems

import (
	"testing"

	"github.com/automoto/rooftop-siege/assets"
	"github.com/automoto/rooftop-siege/components"
	cfg "github.com/automoto/rooftop-siege/config"
	"github.com/automoto/rooftop-siege/shared/leveldata"
	"github.com/automoto/rooftop-siege/shared/spatial"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wallAt5() *spatial.Engine {
	return spatial.NewEngine(&leveldata.Registry{
		Walls: []leveldata.Wall{{X1: -5, Z1: 5, X2: 5, Z2: 5, Height: 3, Thickness: 1}},
	})
}

func TestStepActor_SlidesAlongWall(t *testing.T) {
	body := &components.BodyData{Height: 2}

	got := StepActor(wallAt5(), mgl64.Vec3{0, 0, 3.9}, 0.1, 0.4, body)

	assert.InDelta(t, 0.1, got.X(), 1e-9)
	assert.InDelta(t, 3.9, got.Z(), 1e-9)
	assert.False(t, body.Airborne)
}

func TestStepActor_NeverEntersWall(t *testing.T) {
	engine := wallAt5()
	body := &components.BodyData{Height: 2}
	pos := mgl64.Vec3{0, 0, 0}

	for i := 0; i < 200; i++ {
		pos = StepActor(engine, pos, 0.02, 0.1, body)
		assert.False(t, engine.IsBlocked(pos.X(), pos.Z(), pos.Y(), body.Height), "inside wall at %v", pos)
	}
	assert.Less(t, pos.Z(), 4.5)
	assert.Greater(t, pos.X(), 3.0)
}

func TestStepActor_LedgeStartsFall(t *testing.T) {
	engine := spatial.NewEngine(&leveldata.Registry{
		Floors: []leveldata.Floor{{X1: -5, Z1: -5, X2: 5, Z2: 5, Height: 3}},
	})
	body := &components.BodyData{Height: 2}

	pos := StepActor(engine, mgl64.Vec3{0, 3, 4.9}, 0, 0.2, body)
	assert.InDelta(t, 3, pos.Y(), 1e-9)
	assert.True(t, body.Airborne)
	assert.Zero(t, body.VelocityY)

	for i := 0; i < 120 && body.Airborne; i++ {
		pos = integrateBody(pos, body, testDT, engine)
	}
	assert.False(t, body.Airborne)
	assert.InDelta(t, 0, pos.Y(), 1e-9)
}

func TestStepActor_StaysOnGroundBehindStairLanding(t *testing.T) {
	reg, err := assets.NewLevelLoader().LoadLevel(assets.DefaultLevel)
	require.NoError(t, err)
	engine := spatial.NewEngine(reg)
	body := &components.BodyData{Height: cfg.Player.Height}
	pos := mgl64.Vec3{-11.75, 0, 25}

	step := cfg.Player.MoveSpeed * testDT
	for i := 0; i < 120; i++ {
		pos = StepActor(engine, pos, 0, -step, body)
		require.InDelta(t, 0, pos.Y(), 1e-9, "lifted at tick %d: %v", i, pos)
		require.False(t, body.Airborne)
	}
	assert.Greater(t, pos.Z(), 24.0, "walked through the stair barrier")
}

func TestIntegrateBody_JumpLands(t *testing.T) {
	engine := spatial.NewEngine(&leveldata.Registry{})
	body := &components.BodyData{Height: 2}
	assert.True(t, StartJump(body))
	assert.False(t, StartJump(body), "no double jump")

	pos := mgl64.Vec3{}
	peak := 0.0
	for i := 0; i < 200 && body.Airborne; i++ {
		pos = integrateBody(pos, body, testDT, engine)
		peak = max(peak, pos.Y())
	}

	assert.False(t, body.Airborne)
	assert.InDelta(t, 0, pos.Y(), 1e-9)
	g := cfg.Player.Gravity * cfg.Player.GravityScale
	assert.InDelta(t, cfg.Player.JumpVelocity*cfg.Player.JumpVelocity/(2*g), peak, 0.1)
}

func TestIntegrateBody_StopsUnderCeiling(t *testing.T) {
	engine := spatial.NewEngine(&leveldata.Registry{
		Rooftops: []leveldata.Rooftop{{X1: -5, Z1: -5, X2: 5, Z2: 5, Y: 3, Thickness: 0.5}},
	})
	body := &components.BodyData{Height: 2}
	StartJump(body)

	pos := mgl64.Vec3{}
	for i := 0; i < 200 && body.Airborne; i++ {
		pos = integrateBody(pos, body, testDT, engine)
		assert.LessOrEqual(t, pos.Y()+body.Height, 2.5+1e-9)
	}
	assert.False(t, body.Airborne)
}

func TestUpdatePlayer_CameraRelativeMovement(t *testing.T) {
	e := newTestWorld(t, &leveldata.Registry{}, 14)
	playing(e)
	p := player(t, e)
	Camera(e).Yaw = 90

	in := components.Input.Get(p)
	in.MoveForward = 1
	in.MoveRight = 1
	UpdatePlayer(e)

	pos := components.Transform.Get(p).Position
	step := cfg.Player.MoveSpeed * testDT
	assert.InDelta(t, step, pos.Len(), 1e-9, "diagonals are normalized")
	assert.Greater(t, pos.X(), 0.0)
	assert.Greater(t, pos.Z(), 0.0)
	pd := components.Player.Get(p)
	assert.True(t, pd.IsMoving)
	assert.InDelta(t, 45, components.Transform.Get(p).RotationY, 1e-9)
}

func TestUpdatePlayer_SprintOnlyOnGround(t *testing.T) {
	e := newTestWorld(t, &leveldata.Registry{}, 15)
	playing(e)
	p := player(t, e)
	in := components.Input.Get(p)
	in.MoveForward = 1
	in.Sprint = true

	UpdatePlayer(e)
	z := components.Transform.Get(p).Position.Z()
	assert.InDelta(t, cfg.Player.MoveSpeed*cfg.Player.SprintMultiplier*testDT, z, 1e-9)

	components.Body.Get(p).Airborne = true
	UpdatePlayer(e)
	dz := components.Transform.Get(p).Position.Z() - z
	assert.InDelta(t, cfg.Player.MoveSpeed*testDT, dz, 1e-9)
	assert.False(t, components.Player.Get(p).Sprinting)
}
