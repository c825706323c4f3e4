package gamemath

import "github.com/go-gl/mathgl/mgl64"

// AABB is an axis-aligned box in world space.
type AABB struct {
	Min, Max mgl64.Vec3
}

func NewAABB(minX, minY, minZ, maxX, maxY, maxZ float64) AABB {
	return AABB{
		Min: mgl64.Vec3{minX, minY, minZ},
		Max: mgl64.Vec3{maxX, maxY, maxZ},
	}
}

// BodyBox is the box of an upright actor centred on (x, z) with its feet at y.
func BodyBox(x, y, z, halfWidth, height float64) AABB {
	return NewAABB(x-halfWidth, y, z-halfWidth, x+halfWidth, y+height, z+halfWidth)
}

// Overlaps reports whether two boxes intersect. Touching faces count.
func (a AABB) Overlaps(b AABB) bool {
	return a.Min.X() <= b.Max.X() && a.Max.X() >= b.Min.X() &&
		a.Min.Y() <= b.Max.Y() && a.Max.Y() >= b.Min.Y() &&
		a.Min.Z() <= b.Max.Z() && a.Max.Z() >= b.Min.Z()
}

func (a AABB) Size() mgl64.Vec3 {
	return a.Max.Sub(a.Min)
}
