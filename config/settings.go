package config

// SettingsConfig contains defaults for the persisted user settings
type SettingsConfig struct {
	AppName            string
	ItemKey            string
	DefaultSensitivity float64
	MinSensitivity     float64
	MaxSensitivity     float64
	SensitivityStep    float64
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		AppName:            "rooftop-siege",
		ItemKey:            "settings",
		DefaultSensitivity: 0.02,
		MinSensitivity:     0.005,
		MaxSensitivity:     0.2,
		SensitivityStep:    0.005,
	}
}
