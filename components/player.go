package components

import (
	cfg "github.com/automoto/rooftop-siege/config"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	CombatMode cfg.CombatModeID

	IsPunching    bool
	PunchProgress float64 // 0..1 while a punch plays
	ShootCooldown float64 // seconds until the next shot

	IsMoving  bool
	Sprinting bool
	AnimTime  float64 // accumulated walk-cycle time
}

var Player = donburi.NewComponentType[PlayerData]()
