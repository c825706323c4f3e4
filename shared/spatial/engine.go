// Package spatial answers collision, ground-height and line-of-sight queries
// against a static obstacle registry.
package spatial

import (
	"math"

	"github.com/automoto/rooftop-siege/config"
	"github.com/automoto/rooftop-siege/shared/gamemath"
	"github.com/automoto/rooftop-siege/shared/leveldata"
	"github.com/solarlune/resolv"
)

// Resolv tags for the broadphase space.
const (
	TagWall     = "wall"
	TagFence    = "fence"
	TagRoofEdge = "roofedge"
	tagProbe    = "probe"
)

// Broadphase rectangles are grown by this much on every side so thin walls
// always register in at least one cell.
const broadphasePad = 1.0

type blockAxis int

const (
	axisBoth blockAxis = iota
	axisX
	axisZ
)

// obstacle is a derived collision box stored as resolv Object data.
type obstacle struct {
	box  gamemath.AABB
	axis blockAxis
	// top is the height above which walls stop blocking. Fences block only
	// within their own box, from 0 to their height.
	top float64
	// roofY is set for rooftop edges, which only block actors whose head is
	// below the slab.
	roofY float64
}

// Engine is the spatial query engine for one level. The registry and the
// derived boxes never change after construction; the only mutable part is a
// scratch probe used for broadphase lookups, so an Engine must not be shared
// between goroutines.
type Engine struct {
	level  *leveldata.Registry
	space  *resolv.Space
	probe  *resolv.Object
	origin float64

	walls []gamemath.AABB // same order as level.Walls
	debug []gamemath.AABB
}

// NewEngine derives every collision box from the registry and indexes their
// XZ footprints in a resolv space.
func NewEngine(level *leveldata.Registry) *Engine {
	cell := config.Collision.CellSize
	origin := config.Collision.SpaceOrigin
	size := config.Collision.SpaceSize

	// Grow the grid when a level reaches past the configured area.
	if need := level.Extent() + 2*broadphasePad + float64(cell); need > -origin {
		origin = -need
		size = int(math.Ceil(2*need/float64(cell))) * cell
	}

	e := &Engine{
		level:  level,
		space:  resolv.NewSpace(size, size, cell, cell),
		origin: origin,
	}

	for _, w := range level.Walls {
		minX, minZ, maxX, maxZ := w.Footprint()
		box := gamemath.NewAABB(minX, w.BaseY, minZ, maxX, w.Top(), maxZ)
		e.walls = append(e.walls, box)
		e.add(TagWall, &obstacle{box: box, axis: axisBoth, top: w.Top()})
	}

	hw := config.Collision.RoofEdgeHalfWidth
	for _, r := range level.Rooftops {
		low, high := r.Underside(), r.Y
		edges := []*obstacle{
			{box: gamemath.NewAABB(r.X1, low, r.Z1-hw, r.X2, high, r.Z1+hw), axis: axisZ},
			{box: gamemath.NewAABB(r.X1, low, r.Z2-hw, r.X2, high, r.Z2+hw), axis: axisZ},
			{box: gamemath.NewAABB(r.X1-hw, low, r.Z1, r.X1+hw, high, r.Z2), axis: axisX},
			{box: gamemath.NewAABB(r.X2-hw, low, r.Z1, r.X2+hw, high, r.Z2), axis: axisX},
		}
		for _, ob := range edges {
			ob.roofY = r.Y
			e.add(TagRoofEdge, ob)
		}
	}

	for _, f := range level.Fences {
		minX, minZ, maxX, maxZ := f.Footprint()
		box := gamemath.NewAABB(minX, 0, minZ, maxX, f.Height, maxZ)
		e.add(TagFence, &obstacle{box: box, axis: axisBoth, top: f.Height})
	}

	e.probe = resolv.NewObject(0, 0, 1, 1, tagProbe)
	e.space.Add(e.probe)

	return e
}

func (e *Engine) add(tag string, ob *obstacle) {
	size := ob.box.Size()
	obj := resolv.NewObject(
		ob.box.Min.X()-e.origin-broadphasePad,
		ob.box.Min.Z()-e.origin-broadphasePad,
		size.X()+2*broadphasePad,
		size.Z()+2*broadphasePad,
		tag,
	)
	obj.SetShape(resolv.NewRectangle(0, 0, obj.W, obj.H))
	obj.Data = ob
	e.space.Add(obj)
	e.debug = append(e.debug, ob.box)
}

// candidates returns the obstacles with the given tag whose broadphase cells
// overlap the XZ footprint of box.
func (e *Engine) candidates(box gamemath.AABB, tag string) []*obstacle {
	size := box.Size()
	e.probe.X = box.Min.X() - e.origin - broadphasePad
	e.probe.Y = box.Min.Z() - e.origin - broadphasePad
	e.probe.W = size.X() + 2*broadphasePad
	e.probe.H = size.Z() + 2*broadphasePad
	e.probe.Update()

	check := e.probe.Check(0, 0, tag)
	if check == nil {
		return nil
	}
	objs := check.ObjectsByTags(tag)
	out := make([]*obstacle, 0, len(objs))
	for _, o := range objs {
		if ob, ok := o.Data.(*obstacle); ok {
			out = append(out, ob)
		}
	}
	return out
}

// Level returns the registry the engine was built from.
func (e *Engine) Level() *leveldata.Registry {
	return e.level
}

// DebugBoxes returns every derived collision box for visualization.
func (e *Engine) DebugBoxes() []gamemath.AABB {
	out := make([]gamemath.AABB, len(e.debug))
	copy(out, e.debug)
	return out
}
