package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// BotData marks a player driven by the autopilot rather than a human.
type BotData struct {
	Target      *donburi.Entry
	Path        []mgl64.Vec3 // remaining waypoints, nearest first
	ReplanTimer float64
}

var Bot = donburi.NewComponentType[BotData]()
