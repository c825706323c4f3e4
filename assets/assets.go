package assets

import (
	"embed"
	"fmt"

	"github.com/automoto/rooftop-siege/shared/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// DefaultLevel is the arena used when no level is named.
const DefaultLevel = "arena"

// LevelLoader reads the embedded arena definitions.
type LevelLoader struct{}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{}
}

// LoadLevel loads one embedded level by name, e.g. "arena".
func (l *LevelLoader) LoadLevel(name string) (*leveldata.Registry, error) {
	reg, err := leveldata.LoadRegistry(assetFS, fmt.Sprintf("levels/%s.tmx", name))
	if err != nil {
		return nil, fmt.Errorf("load level %q: %w", name, err)
	}
	return reg, nil
}

// LevelNames lists every embedded level.
func (l *LevelLoader) LevelNames() ([]string, error) {
	_, names, err := leveldata.LoadAllRegistries(assetFS, "levels")
	return names, err
}
