package spatial

import (
	"math"

	"github.com/automoto/rooftop-siege/config"
	"github.com/automoto/rooftop-siege/shared/gamemath"
)

// SlideResult reports whether a move collides and which isolated axis move
// also collides. Callers apply the unblocked axis and withhold the other.
type SlideResult struct {
	Collided bool
	BlockX   bool
	BlockZ   bool
}

func (r SlideResult) blocked() bool { return r.BlockX && r.BlockZ }

// ResolveWallSlide tests a move from (oldX, oldZ) to (newX, newZ) for an actor
// whose body spans actorY to actorY+actorHeight.
//
// Staircase footprints and doorways short-circuit to a free move. A stair may
// only be entered from its top edge while the actor already stands at the
// stair-top height.
func (e *Engine) ResolveWallSlide(newX, newZ, oldX, oldZ, actorY, actorHeight float64) SlideResult {
	var result SlideResult

	for _, s := range e.level.Staircases {
		if !s.ContainsX(newX) {
			continue
		}
		endZ := s.EndZ()
		if oldZ > endZ && newZ < endZ {
			if math.Abs(actorY-s.TopHeight()) < config.Collision.StairMountTolerance {
				return result
			}
			return SlideResult{Collided: true, BlockZ: true}
		}
		if newZ >= s.StartZ && newZ <= endZ {
			return result
		}
	}

	if e.inDoorway(newX, newZ, actorY) {
		return result
	}

	hw := config.Player.HalfWidth
	xOnly := gamemath.BodyBox(newX, actorY, oldZ, hw, actorHeight)
	zOnly := gamemath.BodyBox(oldX, actorY, newZ, hw, actorHeight)
	full := gamemath.BodyBox(newX, actorY, newZ, hw, actorHeight)

	for _, ob := range e.candidates(full, TagWall) {
		if actorY > ob.top {
			continue
		}
		e.test(ob, full, xOnly, zOnly, &result)
		if result.blocked() {
			return result
		}
	}

	for _, ob := range e.candidates(full, TagRoofEdge) {
		if actorY+config.Collision.RoofClearance >= ob.roofY {
			continue
		}
		e.test(ob, full, xOnly, zOnly, &result)
		if result.blocked() {
			return result
		}
	}

	for _, ob := range e.candidates(full, TagFence) {
		e.test(ob, full, xOnly, zOnly, &result)
		if result.blocked() {
			return result
		}
	}

	return result
}

func (e *Engine) test(ob *obstacle, full, xOnly, zOnly gamemath.AABB, result *SlideResult) {
	if !full.Overlaps(ob.box) {
		return
	}
	result.Collided = true
	if ob.axis != axisZ && xOnly.Overlaps(ob.box) {
		result.BlockX = true
	}
	if ob.axis != axisX && zOnly.Overlaps(ob.box) {
		result.BlockZ = true
	}
}

// IsBlocked reports whether an actor of the given height standing at (x, z)
// with its feet at actorY would overlap any obstacle.
func (e *Engine) IsBlocked(x, z, actorY, actorHeight float64) bool {
	return e.ResolveWallSlide(x, z, x, z, actorY, actorHeight).Collided
}

func (e *Engine) inDoorway(x, z, actorY float64) bool {
	for _, d := range e.level.Doorways {
		if !d.Contains(x, z) {
			continue
		}
		if actorY >= d.BaseY-config.Collision.FloorSnapTolerance && actorY <= d.BaseY+d.Height {
			return true
		}
	}
	return false
}
