package config

// GameStateID is the top-level game state.
type GameStateID int

const (
	GameStateMenu GameStateID = iota
	GameStatePlaying
	GameStatePaused
	GameStateWaveTransition
	GameStateWin
	// GameStateLose has no transition into it yet.
	GameStateLose
)

func (s GameStateID) String() string {
	switch s {
	case GameStateMenu:
		return "menu"
	case GameStatePlaying:
		return "playing"
	case GameStatePaused:
		return "paused"
	case GameStateWaveTransition:
		return "wave_transition"
	case GameStateWin:
		return "win"
	case GameStateLose:
		return "lose"
	}
	return "unknown"
}

// StateID is the per-enemy AI state.
type StateID int

const (
	StateMoving StateID = iota
	StateIdle
)

func (s StateID) String() string {
	if s == StateIdle {
		return "idle"
	}
	return "moving"
}

// CombatModeID selects the player's attack.
type CombatModeID int

const (
	CombatModeMelee CombatModeID = iota
	CombatModeRanged
)

func (m CombatModeID) String() string {
	if m == CombatModeRanged {
		return "ranged"
	}
	return "melee"
}

// ViewModeID selects the camera perspective.
type ViewModeID int

const (
	ViewThirdPerson ViewModeID = iota
	ViewFirstPerson
)

func (v ViewModeID) String() string {
	if v == ViewFirstPerson {
		return "first_person"
	}
	return "third_person"
}
