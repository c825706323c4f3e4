package gamemath

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// IntegrateJump advances a vertical jump by dt. The position moves with the
// current velocity first, then gravity is applied to the velocity.
func IntegrateJump(y, vy, gravity, dt float64) (newY, newVY float64) {
	return y + vy*dt, vy - gravity*dt
}
