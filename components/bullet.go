package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// BulletData is a straight-line projectile. Direction is normalized.
type BulletData struct {
	Direction        mgl64.Vec3
	Speed            float64
	Damage           float64
	DistanceTraveled float64
	MaxDistance      float64
	Active           bool
}

var Bullet = donburi.NewComponentType[BulletData]()
