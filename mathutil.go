package gizmo

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const tau = float32(2 * math.Pi)

// normalizeOrZero returns v scaled to unit length, or the zero vector when v
// has no usable length. Degenerate directions must stay well-defined instead
// of turning into NaNs.
func normalizeOrZero(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l == 0 || math.IsInf(float64(l), 0) || math.IsNaN(float64(l)) {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / l)
}

// rotationBetween returns the minimal rotation mapping the direction of from
// onto the direction of to. Either input being zero yields the identity, so
// degenerate rays rotate nothing rather than producing NaNs.
func rotationBetween(from, to mgl32.Vec3) mgl32.Quat {
	if from.Len() == 0 || to.Len() == 0 {
		return mgl32.QuatIdent()
	}
	return mgl32.QuatBetweenVectors(from, to)
}

// axisAngle decomposes q into a unit rotation axis and an unsigned angle in
// [0, pi]. When the rotation is too small to pin down an axis, any unit axis
// works; +Y is returned.
func axisAngle(q mgl32.Quat) (mgl32.Vec3, float32) {
	w := mgl32.Clamp(q.W, -1, 1)
	angle := 2 * float32(math.Acos(float64(w)))
	s := float32(math.Sqrt(float64(1 - w*w)))
	if s < 1e-4 {
		return mgl32.Vec3{0, 1, 0}, angle
	}
	return q.V.Mul(1 / s), angle
}
