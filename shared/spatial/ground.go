package spatial

import "github.com/automoto/rooftop-siege/config"

// GroundHeight returns the walkable surface under (x, z) for an actor
// currently at altitude. Upper floors are only returned once the actor is
// already within FloorSnapTolerance of them, so walking into a building never
// lifts an actor onto its roof. Out-of-range positions yield 0.
func (e *Engine) GroundHeight(x, z, altitude float64) float64 {
	c := config.Collision

	for _, s := range e.level.Staircases {
		if x < s.StartX-c.StairOuterMargin || x > s.StartX+s.Width+c.StairInnerMargin {
			continue
		}
		for i := 0; i < s.StepCount-1; i++ {
			stepZ := s.StartZ + s.StepDepth*float64(i)
			if z >= stepZ-c.StairStepEpsilon && z <= stepZ+s.StepDepth+c.StairStepEpsilon {
				return s.BaseY + s.StepHeight*float64(i+1)
			}
		}
		// The last tread runs straight into the landing. Past the top edge the
		// landing only holds actors already up there.
		endZ := s.EndZ()
		if z >= endZ-s.StepDepth-c.StairStepEpsilon && z <= endZ {
			return s.TopHeight()
		}
		if z > endZ && z <= endZ+c.StairLandingAfter && altitude >= s.TopHeight()-c.FloorSnapTolerance {
			return s.TopHeight()
		}
	}

	ground := 0.0
	for _, f := range e.level.Floors {
		if f.Height > ground && f.Contains(x, z) && altitude >= f.Height-c.FloorSnapTolerance {
			ground = f.Height
		}
	}
	return ground
}

// Ceiling returns the underside of the lowest rooftop above headY whose
// footprint contains (x, z).
func (e *Engine) Ceiling(x, z, headY float64) (float64, bool) {
	found := false
	lowest := 0.0
	for _, r := range e.level.Rooftops {
		under := r.Underside()
		if under < headY || !r.Contains(x, z) {
			continue
		}
		if !found || under < lowest {
			lowest = under
			found = true
		}
	}
	return lowest, found
}
