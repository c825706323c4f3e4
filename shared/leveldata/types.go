// Package leveldata provides the static obstacle catalog of an arena and the
// TMX parser that builds it. It has no dependencies on donburi or resolv,
// pure data only.
package leveldata

import "math"

// Wall is a straight wall segment from (X1,Z1) to (X2,Z2) rising from BaseY.
type Wall struct {
	X1, Z1, X2, Z2 float64
	BaseY          float64
	Height         float64
	Thickness      float64
}

func (w Wall) Top() float64 { return w.BaseY + w.Height }

// Footprint returns the XZ rectangle of the wall expanded by half its thickness.
func (w Wall) Footprint() (minX, minZ, maxX, maxZ float64) {
	return expandSegment(w.X1, w.Z1, w.X2, w.Z2, w.Thickness/2)
}

// Fence is a perimeter barrier standing on the ground plane.
type Fence struct {
	StartX, StartZ, EndX, EndZ float64
	Height                     float64
	Thickness                  float64
	PostCount                  int
}

func (f Fence) Footprint() (minX, minZ, maxX, maxZ float64) {
	return expandSegment(f.StartX, f.StartZ, f.EndX, f.EndZ, f.Thickness/2)
}

// Rooftop is a horizontal slab whose top surface sits at Y.
type Rooftop struct {
	X1, Z1, X2, Z2 float64
	Y              float64
	Thickness      float64
}

func (r Rooftop) Underside() float64 { return r.Y - r.Thickness }

func (r Rooftop) Contains(x, z float64) bool {
	return inRect(x, z, r.X1, r.Z1, r.X2, r.Z2)
}

// Staircase climbs along +Z from (StartX, StartZ), spanning Width on X.
type Staircase struct {
	StartX, StartZ float64
	Width          float64
	StepDepth      float64
	StepHeight     float64
	StepCount      int
	BaseY          float64
}

func (s Staircase) EndZ() float64 { return s.StartZ + s.StepDepth*float64(s.StepCount) }

func (s Staircase) TopHeight() float64 { return s.BaseY + s.StepHeight*float64(s.StepCount) }

// ContainsX reports whether x lies within the stair's width.
func (s Staircase) ContainsX(x float64) bool {
	return x >= s.StartX && x <= s.StartX+s.Width
}

// Doorway is a cut-out that stays passable for actors standing between BaseY
// and BaseY+Height.
type Doorway struct {
	X1, Z1, X2, Z2 float64
	BaseY          float64
	Height         float64
}

func (d Doorway) Contains(x, z float64) bool {
	return inRect(x, z, d.X1, d.Z1, d.X2, d.Z2)
}

// Floor is a walkable upper surface. Actors only snap onto it once they are
// already close to its height.
type Floor struct {
	X1, Z1, X2, Z2 float64
	Height         float64
}

func (f Floor) Contains(x, z float64) bool {
	return inRect(x, z, f.X1, f.Z1, f.X2, f.Z2)
}

// SpawnPoint is where the player starts.
type SpawnPoint struct {
	X, Z      float64
	RotationY float64
}

// Registry is the full obstacle catalog of one arena. It is immutable once
// loaded.
type Registry struct {
	Name        string
	Walls       []Wall
	Fences      []Fence
	Rooftops    []Rooftop
	Staircases  []Staircase
	Doorways    []Doorway
	Floors      []Floor
	PlayerSpawn SpawnPoint
}

// Extent returns the largest absolute X or Z coordinate used by any obstacle.
func (r *Registry) Extent() float64 {
	ext := 0.0
	grow := func(vs ...float64) {
		for _, v := range vs {
			ext = math.Max(ext, math.Abs(v))
		}
	}
	for _, w := range r.Walls {
		grow(w.X1, w.Z1, w.X2, w.Z2)
	}
	for _, f := range r.Fences {
		grow(f.StartX, f.StartZ, f.EndX, f.EndZ)
	}
	for _, rt := range r.Rooftops {
		grow(rt.X1, rt.Z1, rt.X2, rt.Z2)
	}
	return ext
}

func expandSegment(x1, z1, x2, z2, pad float64) (minX, minZ, maxX, maxZ float64) {
	return math.Min(x1, x2) - pad, math.Min(z1, z2) - pad, math.Max(x1, x2) + pad, math.Max(z1, z2) + pad
}

func inRect(x, z, x1, z1, x2, z2 float64) bool {
	return x >= math.Min(x1, x2) && x <= math.Max(x1, x2) &&
		z >= math.Min(z1, z2) && z <= math.Max(z1, z2)
}
