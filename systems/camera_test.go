package systems

import (
	"testing"

	"github.com/automoto/rooftop-siege/components"
	cfg "github.com/automoto/rooftop-siege/config"
	"github.com/automoto/rooftop-siege/shared/leveldata"
	"github.com/automoto/rooftop-siege/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertVec(t *testing.T, want, got mgl64.Vec3) {
	t.Helper()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, want[i], got[i], 1e-9, "component %d of %v", i, got)
	}
}

func TestUpdateCamera_ThirdPersonPose(t *testing.T) {
	e := newTestWorld(t, &leveldata.Registry{}, 31)
	playing(e)

	UpdateCamera(e)

	cam := Camera(e)
	assert.Equal(t, cfg.ViewThirdPerson, cam.Active)
	assert.False(t, cam.Occluded)
	assertVec(t, mgl64.Vec3{1.2, 1.8, -6}, cam.Position)
	assertVec(t, mgl64.Vec3{0, 1.5, 20}, cam.Target)
	assert.InDelta(t, 1, cam.Forward.Len(), 1e-9)
}

func TestUpdateCamera_PulledInFrontOfWall(t *testing.T) {
	e := newTestWorld(t, &leveldata.Registry{
		Walls: []leveldata.Wall{{X1: -5, Z1: -3, X2: 5, Z2: -3, Height: 6, Thickness: 1}},
	}, 32)
	playing(e)

	UpdateCamera(e)

	cam := Camera(e)
	assert.True(t, cam.Occluded)
	assert.Greater(t, cam.Position.Z(), -2.5)
	assert.Less(t, cam.Position.Z(), 0.0)
}

func TestUpdateCamera_FirstPerson(t *testing.T) {
	e := newTestWorld(t, &leveldata.Registry{}, 33)
	playing(e)
	cam := Camera(e)
	cam.Mode = cfg.ViewFirstPerson
	cam.Pitch = 20

	UpdateCamera(e)

	assert.Equal(t, cfg.ViewFirstPerson, cam.Active)
	assertVec(t, mgl64.Vec3{0, 1.8, 0}, cam.Position)
	assert.Less(t, cam.Forward.Y(), 0.0)
	assertVec(t, cam.Position.Add(cam.Forward), cam.Target)
}

func TestUpdateCamera_RangedScopeEasesFOV(t *testing.T) {
	e := newTestWorld(t, &leveldata.Registry{}, 34)
	playing(e)
	components.Player.Get(player(t, e)).CombatMode = cfg.CombatModeRanged
	cam := Camera(e)
	cam.Scoped = true

	UpdateCamera(e)
	assert.Equal(t, cfg.ViewFirstPerson, cam.Active, "scoped pistol looks through the eyes")
	assert.Equal(t, cfg.Camera.ScopeFOV, cam.TargetFOV)
	assert.Less(t, cam.FOV, cfg.Camera.DefaultFOV)
	assert.Greater(t, cam.FOV, cfg.Camera.ScopeFOV)

	for i := 0; i < 20; i++ {
		UpdateCamera(e)
	}
	assert.Equal(t, cfg.Camera.ScopeFOV, cam.FOV)
	assert.Nil(t, cam.FOVTween)
}

func TestUpdateCamera_MeleeScopeStaysThirdPerson(t *testing.T) {
	e := newTestWorld(t, &leveldata.Registry{}, 35)
	playing(e)
	cam := Camera(e)
	cam.Scoped = true

	UpdateCamera(e)

	assert.Equal(t, cfg.ViewThirdPerson, cam.Active)
	assertVec(t, mgl64.Vec3{0.4, 1.6, -1.5}, cam.Position)
	assertVec(t, mgl64.Vec3{0, 1.5, 100}, cam.Target)
	assert.Equal(t, cfg.Camera.ScopeFOV, cam.TargetFOV)
}

func TestApplyLook_ClampsPitchPerView(t *testing.T) {
	cam := &components.CameraData{Sensitivity: 0.1}

	ApplyLook(cam, cfg.CombatModeMelee, 0, 1e4)
	assert.Equal(t, cfg.Camera.ThirdPersonPitchMax, cam.Pitch)
	ApplyLook(cam, cfg.CombatModeMelee, 0, -1e4)
	assert.Equal(t, cfg.Camera.ThirdPersonPitchMin, cam.Pitch)

	cam.Mode = cfg.ViewFirstPerson
	ApplyLook(cam, cfg.CombatModeMelee, 0, -1e4)
	assert.Equal(t, cfg.Camera.FirstPersonPitchMin, cam.Pitch)

	cam.InvertY = true
	ApplyLook(cam, cfg.CombatModeMelee, 10, -100)
	assert.InDelta(t, cfg.Camera.FirstPersonPitchMin+10, cam.Pitch, 1e-9)
	assert.InDelta(t, -1, cam.Yaw, 1e-9)
}

func TestCamera_Matrices(t *testing.T) {
	cam := &components.CameraData{
		Position: mgl64.Vec3{0, 2, -5},
		Target:   mgl64.Vec3{0, 2, 0},
		FOV:      45,
	}

	eye := cam.ViewMatrix().Mul4x1(mgl64.Vec4{0, 2, -5, 1})
	assertVec(t, mgl64.Vec3{}, eye.Vec3())

	ahead := cam.ViewMatrix().Mul4x1(mgl64.Vec4{0, 2, 0, 1})
	assert.InDelta(t, -5, ahead.Z(), 1e-9, "view space looks down -Z")

	proj := cam.ProjectionMatrix(16.0 / 9)
	assert.NotEqual(t, mgl64.Mat4{}, proj)
}

func TestUpdateInput_TogglesAndModes(t *testing.T) {
	e := newTestWorld(t, &leveldata.Registry{}, 36)
	playing(e)
	p := player(t, e)
	cam := Camera(e)
	in := components.Input.Get(p)

	in.ToggleScope = true
	UpdateInput(e)
	assert.False(t, cam.Scoped, "melee has no scope")

	ranged := cfg.CombatModeRanged
	in.CombatMode = &ranged
	UpdateInput(e)
	assert.True(t, cam.Scoped)
	assert.Equal(t, cfg.CombatModeRanged, components.Player.Get(p).CombatMode)

	in.Consume()
	in.ToggleView = true
	UpdateInput(e)
	assert.Equal(t, cfg.ViewFirstPerson, cam.Mode)
}

func TestUpdateInput_RangedAttackFires(t *testing.T) {
	e := newTestWorld(t, &leveldata.Registry{}, 37)
	playing(e)
	p := player(t, e)
	components.Player.Get(p).CombatMode = cfg.CombatModeRanged
	in := components.Input.Get(p)
	in.Attack = true

	UpdateInput(e)

	require.Equal(t, 1, countTagged(e, tags.Bullet))
	entry, ok := tags.Bullet.First(e.World)
	require.True(t, ok)
	assertVec(t, mgl64.Vec3{0, cfg.Player.GunHeight, 0}, components.Transform.Get(entry).Position)
	assertVec(t, mgl64.Vec3{0, 0, 1}, components.Bullet.Get(entry).Direction)

	// Melee attacks start a punch instead.
	components.Player.Get(p).CombatMode = cfg.CombatModeMelee
	UpdateInput(e)
	assert.True(t, components.Player.Get(p).IsPunching)
	assert.Equal(t, 1, countTagged(e, tags.Bullet))
}
