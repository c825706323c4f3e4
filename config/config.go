package config

import "image/color"

// Config holds the debug viewer window settings.
type Config struct {
	Width  int
	Height int
	Scale  float64 // Screen pixels per world unit in the top-down viewer
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	MoveSpeed        float64 // Units per second
	SprintMultiplier float64

	// Jumping
	JumpVelocity float64
	Gravity      float64
	GravityScale float64 // Extra factor applied to gravity while airborne

	// Body
	HalfWidth float64
	Height    float64
	GunHeight float64 // Bullet origin above the feet

	// Animation
	LimbSwingSpeed     float64
	LimbSwingAmplitude float64 // Degrees
	PunchRate          float64 // Punch progress per second
	PunchHitPhase      float64 // Progress at which the punch connects

	ShootCooldown float64 // Seconds between shots
}

// EnemyConfig contains enemy spawning and AI configuration
type EnemyConfig struct {
	// Spawning
	SpawnExtent      float64 // Enemies stay within [-SpawnExtent, SpawnExtent] on X and Z
	MinSpawnDistance float64
	SpawnAttempts    int

	// Randomized per enemy
	MinHealth       float64
	MaxHealth       float64
	MinMoveSpeed    float64
	MaxMoveSpeed    float64
	MinMoveDuration float64
	MaxMoveDuration float64
	MinIdleDuration float64
	MaxIdleDuration float64

	// Animation
	AnimSpeed     float64
	AnimAmplitude float64 // Degrees

	Height float64
}

// CombatConfig contains combat-related configuration values
type CombatConfig struct {
	// Bullets
	BulletSpeed       float64
	BulletMaxDistance float64
	BulletDamage      float64
	HitRadius         float64 // Horizontal radius around an enemy

	// Hit bands, measured from the enemy's feet
	HeadTop    float64
	HeadBand   float64 // Head zone extends this far below HeadTop
	BodyBottom float64

	HeadMultiplier float64
	BodyMultiplier float64
	LegMultiplier  float64

	// Melee
	MeleeRange  float64
	MeleeDamage float64
	MeleeArc    float64 // Half-angle of the facing cone, degrees
}

// WaveConfig contains wave progression settings
type WaveConfig struct {
	TotalWaves     int
	EnemiesPerWave int
	TransitionTime float64 // Seconds between waves
}

// CameraConfig contains view settings for all camera modes
type CameraConfig struct {
	// Third person
	Distance       float64
	Height         float64
	ShoulderOffset float64
	EyeHeight      float64 // Occlusion ray origin above the feet
	AimDistance    float64

	// Third person while scoped
	ScopeDistance       float64
	ScopeShoulderOffset float64
	ScopeEyeHeight      float64
	ScopeAimDistance    float64

	// First person
	FirstPersonEyeHeight float64

	// Projection
	DefaultFOV   float64
	ScopeFOV     float64
	FOVTweenTime float64
	Near         float64
	Far          float64

	Sensitivity float64 // Degrees per unit of mouse delta

	// Pitch clamps, degrees
	FirstPersonPitchMin float64
	FirstPersonPitchMax float64
	ThirdPersonPitchMin float64
	ThirdPersonPitchMax float64
	ScopedPitchMin      float64
	ScopedPitchMax      float64
}

// CollisionConfig contains tolerances for the spatial queries
type CollisionConfig struct {
	OcclusionBuffer    float64 // Distance kept between a corrected camera and the wall
	MinRayLength       float64
	ParallelEpsilon    float64
	RoofEdgeHalfWidth  float64
	RoofClearance      float64 // Rooftop edges only block actors whose head is below the slab
	FloorSnapTolerance float64
	LedgeDrop          float64 // A grounded actor starts falling when the ground drops by more than this

	// Staircases
	StairMountTolerance float64
	StairStepEpsilon    float64
	StairLandingAfter   float64
	StairOuterMargin    float64
	StairInnerMargin    float64

	// Broadphase grid
	SpaceOrigin float64
	SpaceSize   int
	CellSize    int
}

// BotConfig tunes the autopilot that drives the player in headless runs
type BotConfig struct {
	ReplanInterval float64 // Seconds between path searches
	TurnRate       float64 // Degrees per second
	AttackRange    float64
	WaypointReach  float64 // A waypoint counts as reached within this distance

	// Navigation grid over the arena floor
	NavCellSize  float64
	NavExtent    float64
	NavSampleGap float64 // Spacing of the blocked-test samples inside a cell
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	LogLevel  string
	ShowBoxes bool // Draw derived collision boxes in the viewer
	SkipMenu  bool // Start the first wave immediately
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Combat CombatConfig
var Wave WaveConfig
var Camera CameraConfig
var Collision CollisionConfig
var Bot BotConfig
var Debug DebugConfig

// Viewer colors
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow    = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green     = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightBlue = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Brown     = color.RGBA{R: 140, G: 90, B: 40, A: 255}
	Gray      = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	DarkGreen = color.RGBA{R: 30, G: 70, B: 30, A: 255}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 960,
		Scale:  4.5,
	}

	Player = PlayerConfig{
		MoveSpeed:        4.0,
		SprintMultiplier: 7.0,

		JumpVelocity: 4.0,
		Gravity:      5.0,
		GravityScale: 1.5,

		HalfWidth: 0.3,
		Height:    2.0,
		GunHeight: 1.4,

		LimbSwingSpeed:     5.0,
		LimbSwingAmplitude: 30.0,
		PunchRate:          4.0,
		PunchHitPhase:      0.5,

		ShootCooldown: 0,
	}

	Enemy = EnemyConfig{
		SpawnExtent:      95.0,
		MinSpawnDistance: 20.0,
		SpawnAttempts:    50,

		MinHealth:       50,
		MaxHealth:       100,
		MinMoveSpeed:    1.0,
		MaxMoveSpeed:    3.0,
		MinMoveDuration: 2.0,
		MaxMoveDuration: 6.0,
		MinIdleDuration: 1.0,
		MaxIdleDuration: 3.0,

		AnimSpeed:     2.0,
		AnimAmplitude: 30.0,

		Height: 2.0,
	}

	Combat = CombatConfig{
		BulletSpeed:       200.0,
		BulletMaxDistance: 100.0,
		BulletDamage:      35.0,
		HitRadius:         1.0,

		HeadTop:    2.4,
		HeadBand:   0.5,
		BodyBottom: 0.8,

		HeadMultiplier: 2.5,
		BodyMultiplier: 1.0,
		LegMultiplier:  0.6,

		MeleeRange:  1.5,
		MeleeDamage: 25.0,
		MeleeArc:    45.0,
	}

	Wave = WaveConfig{
		TotalWaves:     3,
		EnemiesPerWave: 5,
		TransitionTime: 3.0,
	}

	Camera = CameraConfig{
		Distance:       6.0,
		Height:         1.8,
		ShoulderOffset: 1.2,
		EyeHeight:      1.5,
		AimDistance:    20.0,

		ScopeDistance:       1.5,
		ScopeShoulderOffset: 0.4,
		ScopeEyeHeight:      1.6,
		ScopeAimDistance:    100.0,

		FirstPersonEyeHeight: 1.8,

		DefaultFOV:   45.0,
		ScopeFOV:     30.0,
		FOVTweenTime: 0.15,
		Near:         0.1,
		Far:          1000.0,

		Sensitivity: 0.02,

		FirstPersonPitchMin: -60.0,
		FirstPersonPitchMax: 30.0,
		ThirdPersonPitchMin: 0.0,
		ThirdPersonPitchMax: 30.0,
		ScopedPitchMin:      -20.0,
		ScopedPitchMax:      30.0,
	}

	Collision = CollisionConfig{
		OcclusionBuffer:    0.3,
		MinRayLength:       0.0001,
		ParallelEpsilon:    0.0001,
		RoofEdgeHalfWidth:  0.1,
		RoofClearance:      1.8,
		FloorSnapTolerance: 0.5,
		LedgeDrop:          0.5,

		StairMountTolerance: 0.2,
		StairStepEpsilon:    0.2,
		StairLandingAfter:   2.5,
		StairOuterMargin:    0.5,
		StairInnerMargin:    0.7,

		SpaceOrigin: -110.0,
		SpaceSize:   220,
		CellSize:    4,
	}

	Bot = BotConfig{
		ReplanInterval: 0.5,
		TurnRate:       360.0,
		AttackRange:    1.3,
		WaypointReach:  1.0,

		NavCellSize:  2.0,
		NavExtent:    96.0,
		NavSampleGap: 0.7,
	}

	Debug = DebugConfig{
		LogLevel: "info",
	}
}
