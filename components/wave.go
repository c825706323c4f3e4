package components

import "github.com/yohamta/donburi"

// WaveData tracks wave progression. This is a singleton component.
type WaveData struct {
	CurrentWave     int // 1-based
	TotalWaves      int
	EnemiesPerWave  int
	EnemiesKilled   int
	WaveComplete    bool
	TransitionTimer float64 // seconds left before the next wave
	EnemiesSpawned  int     // running counter used for enemy names
}

var Wave = donburi.NewComponentType[WaveData]()
