package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Headings are in degrees. A heading of 0 faces +Z and 90 faces +X.

// HeadingVector returns the unit XZ direction for a heading.
func HeadingVector(deg float64) (x, z float64) {
	r := mgl64.DegToRad(deg)
	return math.Sin(r), math.Cos(r)
}

// HeadingTo returns the heading from (fromX, fromZ) towards (toX, toZ).
func HeadingTo(fromX, fromZ, toX, toZ float64) float64 {
	return mgl64.RadToDeg(math.Atan2(toX-fromX, toZ-fromZ))
}

// NormalizeDegrees maps an angle to [0, 360).
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// AngleDelta is the absolute difference between two headings in [0, 180].
func AngleDelta(a, b float64) float64 {
	d := NormalizeDegrees(a - b)
	if d > 180 {
		d = 360 - d
	}
	return d
}

// LookDirection returns the unit view direction for a yaw and pitch in
// degrees. Positive pitch looks down.
func LookDirection(yaw, pitch float64) mgl64.Vec3 {
	y, p := mgl64.DegToRad(yaw), mgl64.DegToRad(pitch)
	return mgl64.Vec3{
		math.Sin(y) * math.Cos(p),
		-math.Sin(p),
		math.Cos(y) * math.Cos(p),
	}
}

// MoveVector converts forward/right intents into a world XZ direction for a
// camera yaw. Forward follows the yaw heading and right follows yaw-90.
func MoveVector(yaw, forward, right float64) (x, z float64) {
	r := mgl64.DegToRad(yaw)
	return forward*math.Sin(r) - right*math.Cos(r), forward*math.Cos(r) + right*math.Sin(r)
}

// SignedAngle is the shortest turn from heading a to heading b, in
// (-180, 180]. Positive turns increase the heading.
func SignedAngle(a, b float64) float64 {
	d := NormalizeDegrees(b - a)
	if d > 180 {
		d -= 360
	}
	return d
}
