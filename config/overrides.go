package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// overrideDoc mirrors the tunable sections. Keys are the lowercased field
// names, e.g.
//
//	wave:
//	  totalwaves: 5
//	enemy:
//	  maxmovespeed: 4
type overrideDoc struct {
	Player    PlayerConfig    `yaml:"player"`
	Enemy     EnemyConfig     `yaml:"enemy"`
	Combat    CombatConfig    `yaml:"combat"`
	Wave      WaveConfig      `yaml:"wave"`
	Camera    CameraConfig    `yaml:"camera"`
	Collision CollisionConfig `yaml:"collision"`
	Bot       BotConfig       `yaml:"bot"`
	Debug     DebugConfig     `yaml:"debug"`
}

// LoadOverrides reads a YAML file and overlays it on the current values.
func LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read overrides %s: %w", path, err)
	}
	if err := ApplyOverrides(data); err != nil {
		return fmt.Errorf("apply overrides %s: %w", path, err)
	}
	return nil
}

// ApplyOverrides overlays YAML data on the current values. Fields absent from
// the document keep their current value.
func ApplyOverrides(data []byte) error {
	doc := overrideDoc{
		Player:    Player,
		Enemy:     Enemy,
		Combat:    Combat,
		Wave:      Wave,
		Camera:    Camera,
		Collision: Collision,
		Bot:       Bot,
		Debug:     Debug,
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decode yaml: %w", err)
	}
	if doc.Wave.TotalWaves < 1 || doc.Wave.EnemiesPerWave < 1 {
		return fmt.Errorf("wave: totalwaves and enemiesperwave must be positive")
	}
	if doc.Collision.CellSize < 1 || doc.Collision.SpaceSize < doc.Collision.CellSize {
		return fmt.Errorf("collision: invalid broadphase grid %d/%d", doc.Collision.SpaceSize, doc.Collision.CellSize)
	}
	if doc.Bot.NavCellSize <= 0 {
		return fmt.Errorf("bot: navcellsize must be positive")
	}

	Player = doc.Player
	Enemy = doc.Enemy
	Combat = doc.Combat
	Wave = doc.Wave
	Camera = doc.Camera
	Collision = doc.Collision
	Bot = doc.Bot
	Debug = doc.Debug
	return nil
}
