package systems

import (
	"testing"

	"github.com/automoto/rooftop-siege/components"
	"github.com/automoto/rooftop-siege/shared/leveldata"
	"github.com/automoto/rooftop-siege/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestDamageMultiplier_Bands(t *testing.T) {
	tests := []struct {
		name    string
		bulletY float64
		want    float64
	}{
		{"head", 2.2, 2.5},
		{"head lower edge", 1.9, 2.5},
		{"body", 1.2, 1.0},
		{"body lower edge", 0.8, 1.0},
		{"legs", 0.3, 0.6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, DamageMultiplier(tt.bulletY+3, 3), 1e-9)
		})
	}
}

func TestBullet_HeadAndLegShots(t *testing.T) {
	for _, tc := range []struct {
		y, left float64
	}{
		{2.2, 12.5},
		{0.3, 79},
	} {
		e := newTestWorld(t, &leveldata.Registry{}, 7)
		playing(e)
		enemy := placeEnemy(t, e, mgl64.Vec3{0, 0, 0}, 100)

		_, ok := Fire(e, mgl64.Vec3{0, tc.y, -3}, mgl64.Vec3{0, 0, 1})
		require.True(t, ok)
		UpdateBullets(e)

		assert.InDelta(t, tc.left, components.Health.Get(enemy).Current, 1e-9)
		assert.True(t, components.Enemy.Get(enemy).IsAlive)
	}
}

func TestBullet_HitsOneEnemyOnly(t *testing.T) {
	e := newTestWorld(t, &leveldata.Registry{}, 8)
	playing(e)
	a := placeEnemy(t, e, mgl64.Vec3{0, 0, 0}, 100)
	b := placeEnemy(t, e, mgl64.Vec3{0.5, 0, 0}, 100)

	Fire(e, mgl64.Vec3{0, 1, -3}, mgl64.Vec3{0, 0, 1})
	UpdateBullets(e)

	hurt := 0
	for _, entry := range []*donburi.Entry{a, b} {
		if components.Health.Get(entry).Current < 100 {
			hurt++
		}
	}
	assert.Equal(t, 1, hurt)

	UpdatePurge(e)
	assert.Equal(t, 0, countTagged(e, tags.Bullet))
}

func TestBullet_RetiresAfterRange(t *testing.T) {
	e := newTestWorld(t, &leveldata.Registry{}, 9)
	playing(e)

	entry, ok := Fire(e, mgl64.Vec3{0, 1, 0}, mgl64.Vec3{1, 0, 0})
	require.True(t, ok)

	for i := 0; i < 40; i++ {
		UpdateBullets(e)
	}
	b := components.Bullet.Get(entry)
	assert.False(t, b.Active)
	assert.GreaterOrEqual(t, b.DistanceTraveled, b.MaxDistance)

	UpdatePurge(e)
	assert.Equal(t, 0, countTagged(e, tags.Bullet))
}

func TestFire_ZeroDirectionIsIgnored(t *testing.T) {
	e := newTestWorld(t, &leveldata.Registry{}, 10)

	_, ok := Fire(e, mgl64.Vec3{}, mgl64.Vec3{})
	assert.False(t, ok)
	assert.Equal(t, 0, countTagged(e, tags.Bullet))
}

func TestMeleeAttack_FacingCone(t *testing.T) {
	tests := []struct {
		name string
		pos  mgl64.Vec3
		hit  bool
	}{
		{"straight ahead", mgl64.Vec3{0, 0, 1}, true},
		{"slightly right", mgl64.Vec3{0.5, 0, 1}, true},
		{"edge of cone", mgl64.Vec3{1, 0, 1}, false},
		{"behind", mgl64.Vec3{0, 0, -1}, false},
		{"out of reach", mgl64.Vec3{0, 0, 2}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestWorld(t, &leveldata.Registry{}, 11)
			playing(e)
			p := player(t, e)
			components.Transform.Get(p).RotationY = 0
			enemy := placeEnemy(t, e, tt.pos, 100)

			assert.Equal(t, tt.hit, MeleeAttack(e, p, enemy))
			if tt.hit {
				assert.InDelta(t, 75, components.Health.Get(enemy).Current, 1e-9)
			}
		})
	}
}

func TestMeleeAttack_KillsCountOnce(t *testing.T) {
	e := newTestWorld(t, &leveldata.Registry{}, 12)
	playing(e)
	p := player(t, e)
	enemy := placeEnemy(t, e, mgl64.Vec3{0, 0, 1}, 20)

	assert.True(t, MeleeAttack(e, p, enemy))
	assert.False(t, components.Enemy.Get(enemy).IsAlive)
	assert.False(t, MeleeAttack(e, p, enemy))
	assert.Equal(t, 1, Wave(e).EnemiesKilled)
}

func TestPunch_LandsOnceAtHitPhase(t *testing.T) {
	e := newTestWorld(t, &leveldata.Registry{}, 13)
	playing(e)
	p := player(t, e)
	enemy := placeEnemy(t, e, mgl64.Vec3{0, 0, 1}, 100)

	pd := components.Player.Get(p)
	pd.IsPunching = true
	for i := 0; i < 10; i++ {
		updatePunch(e, pd, 0.05)
	}

	assert.False(t, pd.IsPunching)
	assert.InDelta(t, 75, components.Health.Get(enemy).Current, 1e-9)
}
