package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// RaySlab intersects a ray with a box using the slab method. dir must be
// normalized. Axes whose direction component is below parallelEps are treated
// as parallel: the origin must then lie within that slab.
//
// tmin is the entry distance and may be negative when the origin is inside
// the box.
func RaySlab(origin, dir mgl64.Vec3, box AABB, parallelEps float64) (tmin, tmax float64, ok bool) {
	tmin, tmax = math.Inf(-1), math.Inf(1)
	for axis := 0; axis < 3; axis++ {
		o, d := origin[axis], dir[axis]
		lo, hi := box.Min[axis], box.Max[axis]
		if math.Abs(d) < parallelEps {
			if o < lo || o > hi {
				return 0, 0, false
			}
			continue
		}
		t1 := (lo - o) / d
		t2 := (hi - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmin > tmax {
			return 0, 0, false
		}
	}
	return tmin, tmax, true
}
