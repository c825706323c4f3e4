package spatial

import (
	"math"

	"github.com/automoto/rooftop-siege/config"
	"github.com/automoto/rooftop-siege/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// CastOcclusionRay tests the segment start→end against every wall. On a hit
// before end it returns the closest intersection pulled back towards start
// by the occlusion buffer. Degenerate segments never hit.
func (e *Engine) CastOcclusionRay(start, end mgl64.Vec3) (bool, mgl64.Vec3) {
	delta := end.Sub(start)
	length := delta.Len()
	if length < config.Collision.MinRayLength {
		return false, end
	}
	dir := delta.Mul(1 / length)

	closest := math.Inf(1)
	for _, box := range e.walls {
		tmin, _, ok := gamemath.RaySlab(start, dir, box, config.Collision.ParallelEpsilon)
		if ok && tmin > 0 && tmin < length && tmin < closest {
			closest = tmin
		}
	}
	if math.IsInf(closest, 1) {
		return false, end
	}

	t := math.Max(0, closest-config.Collision.OcclusionBuffer)
	return true, start.Add(dir.Mul(t))
}
