package components

import (
	cfg "github.com/automoto/rooftop-siege/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState cfg.StateID
	StateTimer   float64 // seconds spent in CurrentState
}

// Enter switches to a new state and restarts the timer. Re-entering the
// current state is a no-op.
func (s *StateData) Enter(state cfg.StateID) {
	if s.CurrentState == state {
		return
	}
	s.CurrentState = state
	s.StateTimer = 0
}

var State = donburi.NewComponentType[StateData]()
