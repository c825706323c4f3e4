package components

import "github.com/yohamta/donburi"

// EnemyData is the AI state of one enemy. The Moving/Idle phase itself lives
// in the State component.
type EnemyData struct {
	Name string

	MoveTimer    float64
	IdleTimer    float64
	MoveDuration float64
	IdleDuration float64

	MoveDirection float64 // heading in degrees
	MoveSpeed     float64

	IsAlive   bool
	AnimPhase float64
}

var Enemy = donburi.NewComponentType[EnemyData]()
