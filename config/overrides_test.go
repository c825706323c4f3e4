package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreDefaults(t *testing.T) {
	player, enemy, combat, wave := Player, Enemy, Combat, Wave
	camera, collision, debug := Camera, Collision, Debug
	t.Cleanup(func() {
		Player, Enemy, Combat, Wave = player, enemy, combat, wave
		Camera, Collision, Debug = camera, collision, debug
	})
}

func TestApplyOverrides_KeepsUnsetFields(t *testing.T) {
	restoreDefaults(t)

	err := ApplyOverrides([]byte("wave:\n  totalwaves: 5\ncombat:\n  bulletdamage: 50\n"))
	require.NoError(t, err)

	assert.Equal(t, 5, Wave.TotalWaves)
	assert.Equal(t, 5, Wave.EnemiesPerWave)
	assert.Equal(t, 3.0, Wave.TransitionTime)
	assert.Equal(t, 50.0, Combat.BulletDamage)
	assert.Equal(t, 200.0, Combat.BulletSpeed)
}

func TestApplyOverrides_RejectsInvalidWave(t *testing.T) {
	restoreDefaults(t)

	err := ApplyOverrides([]byte("wave:\n  enemiesperwave: 0\n"))
	require.Error(t, err)
	assert.Equal(t, 5, Wave.EnemiesPerWave)
}

func TestApplyOverrides_RejectsMalformedYAML(t *testing.T) {
	restoreDefaults(t)

	err := ApplyOverrides([]byte("wave: [unterminated"))
	assert.Error(t, err)
}

func TestLoadOverrides_MissingFile(t *testing.T) {
	err := LoadOverrides(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadOverrides_FromFile(t *testing.T) {
	restoreDefaults(t)

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("enemy:\n  spawnattempts: 10\n"), 0o600))

	require.NoError(t, LoadOverrides(path))
	assert.Equal(t, 10, Enemy.SpawnAttempts)
}

func TestGameStateID_String(t *testing.T) {
	assert.Equal(t, "wave_transition", GameStateWaveTransition.String())
	assert.Equal(t, "lose", GameStateLose.String())
	assert.Equal(t, "unknown", GameStateID(42).String())
}
