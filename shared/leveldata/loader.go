package leveldata

import (
	"fmt"
	"io/fs"
	"math"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group names understood by the loader.
const (
	GroupWalls      = "walls"
	GroupWallRuns   = "wallruns"
	GroupFences     = "fences"
	GroupRooftops   = "rooftops"
	GroupStaircases = "staircases"
	GroupDoorways   = "doorways"
	GroupFloors     = "floors"
	GroupSpawn      = "PlayerSpawn"
)

// LoadRegistry parses a TMX file into an obstacle Registry. Every obstacle is
// an object whose custom properties carry its 3D coordinates; the 2D object
// rectangle is ignored. It takes an fs.FS so callers can pass embed.FS or
// os.DirFS.
func LoadRegistry(fsys fs.FS, tmxPath string) (*Registry, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	reg := &Registry{
		Name: strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
	}

	for _, og := range levelMap.ObjectGroups {
		for i, o := range og.Objects {
			if err := reg.addObject(og.Name, o); err != nil {
				return nil, fmt.Errorf("%s: object group %q #%d (%s): %w", tmxPath, og.Name, i, o.Name, err)
			}
		}
	}

	if len(reg.Walls) == 0 && len(reg.Fences) == 0 {
		return nil, fmt.Errorf("%s: level has no walls or fences", tmxPath)
	}
	return reg, nil
}

func (r *Registry) addObject(group string, o *tiled.Object) error {
	p := o.Properties
	switch group {
	case GroupWalls:
		w := Wall{
			X1: p.GetFloat("x1"), Z1: p.GetFloat("z1"),
			X2: p.GetFloat("x2"), Z2: p.GetFloat("z2"),
			BaseY:     p.GetFloat("baseY"),
			Height:    p.GetFloat("height"),
			Thickness: p.GetFloat("thickness"),
		}
		if w.Height <= 0 {
			return fmt.Errorf("wall height must be positive")
		}
		r.Walls = append(r.Walls, w)

	case GroupWallRuns:
		walls, err := expandWallRun(p)
		if err != nil {
			return err
		}
		r.Walls = append(r.Walls, walls...)

	case GroupFences:
		f := Fence{
			StartX: p.GetFloat("startX"), StartZ: p.GetFloat("startZ"),
			EndX: p.GetFloat("endX"), EndZ: p.GetFloat("endZ"),
			Height:    p.GetFloat("height"),
			Thickness: p.GetFloat("thickness"),
			PostCount: p.GetInt("posts"),
		}
		if f.Height <= 0 {
			return fmt.Errorf("fence height must be positive")
		}
		r.Fences = append(r.Fences, f)

	case GroupRooftops:
		r.Rooftops = append(r.Rooftops, Rooftop{
			X1: p.GetFloat("x1"), Z1: p.GetFloat("z1"),
			X2: p.GetFloat("x2"), Z2: p.GetFloat("z2"),
			Y:         p.GetFloat("y"),
			Thickness: p.GetFloat("thickness"),
		})

	case GroupStaircases:
		s := Staircase{
			StartX:     p.GetFloat("startX"),
			StartZ:     p.GetFloat("startZ"),
			Width:      p.GetFloat("width"),
			StepDepth:  p.GetFloat("stepDepth"),
			StepHeight: p.GetFloat("stepHeight"),
			StepCount:  p.GetInt("steps"),
			BaseY:      p.GetFloat("baseY"),
		}
		if s.StepHeight <= 0 || s.StepDepth <= 0 {
			return fmt.Errorf("staircase steps need positive depth and height")
		}
		// Without an explicit count, climb to the requested height.
		if s.StepCount == 0 {
			s.StepCount = int(math.Ceil(p.GetFloat("targetHeight") / s.StepHeight))
		}
		if s.StepCount < 1 {
			return fmt.Errorf("staircase needs steps or targetHeight")
		}
		r.Staircases = append(r.Staircases, s)

	case GroupDoorways:
		r.Doorways = append(r.Doorways, Doorway{
			X1: p.GetFloat("x1"), Z1: p.GetFloat("z1"),
			X2: p.GetFloat("x2"), Z2: p.GetFloat("z2"),
			BaseY:  p.GetFloat("baseY"),
			Height: p.GetFloat("height"),
		})

	case GroupFloors:
		r.Floors = append(r.Floors, Floor{
			X1: p.GetFloat("x1"), Z1: p.GetFloat("z1"),
			X2: p.GetFloat("x2"), Z2: p.GetFloat("z2"),
			Height: p.GetFloat("height"),
		})

	case GroupSpawn:
		r.PlayerSpawn = SpawnPoint{
			X:         p.GetFloat("x"),
			Z:         p.GetFloat("z"),
			RotationY: p.GetFloat("rotation"),
		}
	}
	return nil
}

// expandWallRun turns a crenellation run into evenly spaced wall segments of
// length "segment" separated by "gap", laid along an axis-aligned line.
func expandWallRun(p tiled.Properties) ([]Wall, error) {
	x1, z1 := p.GetFloat("x1"), p.GetFloat("z1")
	x2, z2 := p.GetFloat("x2"), p.GetFloat("z2")
	segment, gap := p.GetFloat("segment"), p.GetFloat("gap")
	if segment <= 0 || gap < 0 {
		return nil, fmt.Errorf("wall run needs a positive segment and non-negative gap")
	}
	if x1 != x2 && z1 != z2 {
		return nil, fmt.Errorf("wall run must be axis aligned")
	}

	length := math.Abs(x2-x1) + math.Abs(z2-z1)
	if length < segment {
		return nil, nil
	}
	dirX, dirZ := sign(x2-x1), sign(z2-z1)
	count := int(math.Floor((length-segment)/(segment+gap)+1e-9)) + 1

	walls := make([]Wall, 0, count)
	for i := 0; i < count; i++ {
		offset := float64(i) * (segment + gap)
		sx, sz := x1+dirX*offset, z1+dirZ*offset
		walls = append(walls, Wall{
			X1: sx, Z1: sz,
			X2: sx + dirX*segment, Z2: sz + dirZ*segment,
			BaseY:     p.GetFloat("baseY"),
			Height:    p.GetFloat("height"),
			Thickness: p.GetFloat("thickness"),
		})
	}
	return walls, nil
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// LoadAllRegistries discovers all .tmx files in levelsDir within fsys and
// returns the registries keyed by stem name plus a sorted list of names.
func LoadAllRegistries(fsys fs.FS, levelsDir string) (map[string]*Registry, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Registry, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		reg, err := LoadRegistry(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[reg.Name] = reg
		names = append(names, reg.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
