package systems

import (
	"encoding/json"
	"fmt"

	"github.com/automoto/rooftop-siege/components"
	cfg "github.com/automoto/rooftop-siege/config"
	"github.com/automoto/rooftop-siege/shared/gamemath"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	MouseSensitivity float64        `json:"mouseSensitivity"`
	InvertY          bool           `json:"invertY"`
	DefaultView      cfg.ViewModeID `json:"defaultView"`
}

// DefaultSettings is what a fresh install starts with.
func DefaultSettings() SavedSettings {
	return SavedSettings{
		MouseSensitivity: cfg.Settings.DefaultSensitivity,
		DefaultView:      cfg.ViewThirdPerson,
	}
}

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		logFor("persistence").WithError(err).Warn("could not initialize persistence")
		return fmt.Errorf("open settings store: %w", err)
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. A missing store or item yields
// nil settings and no error.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(cfg.Settings.ItemKey)
	if err != nil {
		logFor("persistence").WithError(err).Warn("could not load settings")
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		logFor("persistence").WithError(err).Warn("could not parse saved settings")
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil || s == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := gdataManager.SaveItem(cfg.Settings.ItemKey, data); err != nil {
		logFor("persistence").WithError(err).Warn("could not save settings")
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// CurrentSettings captures the persisted fields of a camera.
func CurrentSettings(cam *components.CameraData) *SavedSettings {
	return &SavedSettings{
		MouseSensitivity: cam.Sensitivity,
		InvertY:          cam.InvertY,
		DefaultView:      cam.Mode,
	}
}

// ApplySavedSettings copies loaded settings onto the camera, or the defaults
// when nothing was saved. Sensitivity is clamped to the configured range and
// an unknown view falls back to third person.
func ApplySavedSettings(cam *components.CameraData, saved *SavedSettings) {
	if cam == nil {
		return
	}
	if saved == nil {
		defaults := DefaultSettings()
		saved = &defaults
	}
	sens := saved.MouseSensitivity
	if sens == 0 {
		sens = cfg.Settings.DefaultSensitivity
	}
	cam.Sensitivity = gamemath.Clamp(sens, cfg.Settings.MinSensitivity, cfg.Settings.MaxSensitivity)
	cam.InvertY = saved.InvertY

	switch saved.DefaultView {
	case cfg.ViewFirstPerson, cfg.ViewThirdPerson:
		cam.Mode = saved.DefaultView
	default:
		cam.Mode = cfg.ViewThirdPerson
	}
}

// AdjustSensitivity nudges the sensitivity by steps of SensitivityStep.
func AdjustSensitivity(cam *components.CameraData, steps int) {
	s := cam.Sensitivity + float64(steps)*cfg.Settings.SensitivityStep
	cam.Sensitivity = gamemath.Clamp(s, cfg.Settings.MinSensitivity, cfg.Settings.MaxSensitivity)
}
