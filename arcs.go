package gizmo

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// DefaultCircleResolution is the segment count used for a full circle when no
// resolution override is given. Partial arcs scale it down proportionally.
const DefaultCircleResolution uint32 = 32

// resolutionFromAngle derives the default tessellation resolution for an arc
// from its total swept angle, so that a full turn matches
// DefaultCircleResolution.
func resolutionFromAngle(angle float32) uint32 {
	return uint32(math.Ceil(float64(mgl32.Abs(angle) / tau * float32(DefaultCircleResolution))))
}

// angleUnchanged keeps the minimal sweep between two rays.
func angleUnchanged(angle float32) float32 {
	return angle
}

// angleInverted maps a sweep onto its complement around the full circle,
// keeping the sign convention of the rotation axis.
func angleInverted(angle float32) float32 {
	switch {
	case angle > 0:
		return tau - angle
	case angle < 0:
		return -tau - angle
	default:
		return 0
	}
}

// fromToParams converts a center point and the two rays center->from and
// center->to into the canonical arc parameterization: the start vertex
// expressed in the arc-local frame, the rotation aligning +Y onto the arc's
// rotation axis, the direction-selected sweep angle and the radius. angleFn
// picks between the short (angleUnchanged) and long (angleInverted) sweep.
//
// from and to may coincide with center: the zero axes yield a zero-angle,
// zero-radius arc and the orientation ambiguity of the rotation axis does not
// matter because nothing visible is produced. Rays at exactly 180 degrees
// leave the axis, and with it the side a long arc takes, undefined.
func fromToParams(center, from, to mgl32.Vec3, angleFn func(float32) float32) (startVertex mgl32.Vec3, rotation mgl32.Quat, angle, radius float32) {
	fromAxis := normalizeOrZero(from.Sub(center))
	toAxis := normalizeOrZero(to.Sub(center))
	up, arcAngle := axisAngle(rotationBetween(fromAxis, toAxis))

	angle = angleFn(arcAngle)
	radius = from.Sub(center).Len()
	rotation = rotationBetween(mgl32.Vec3{0, 1, 0}, up)

	startVertex = rotation.Inverse().Rotate(fromAxis)
	return startVertex, rotation, angle, radius
}

// arcPoint maps a swept angle in the arc-local frame back to world space.
func arcPoint(startVertex mgl32.Vec3, rotation mgl32.Quat, center mgl32.Vec3, angle, radius float32) mgl32.Vec3 {
	p := mgl32.QuatRotate(angle, mgl32.Vec3{0, 1, 0}).Rotate(startVertex)
	return rotation.Rotate(p.Mul(radius)).Add(center)
}

// arc3DPoints tessellates an arc in canonical parameterization. Sweeps beyond
// a full turn only overlap what is already drawn while eating resolution, so
// the angle is clamped to one turn.
func arc3DPoints(startVertex mgl32.Vec3, rotation mgl32.Quat, center mgl32.Vec3, angle, radius float32, resolution uint32) []mgl32.Vec3 {
	angle = mgl32.Clamp(angle, -tau, tau)
	if resolution == 0 {
		resolution = 1
	}
	points := make([]mgl32.Vec3, 0, resolution+1)
	for n := uint32(0); n <= resolution; n++ {
		frac := float32(n) / float32(resolution)
		points = append(points, arcPoint(startVertex, rotation, center, frac*angle, radius))
	}
	return points
}

// arc2DPoints tessellates a polar 2D arc. directionAngle points from center to
// the arc's angular midpoint and is measured from the +Y axis; arcAngle is the
// total span. Both in radians.
func arc2DPoints(center mgl32.Vec2, directionAngle, arcAngle, radius float32, resolution uint32) []mgl32.Vec2 {
	if resolution == 0 {
		resolution = 1
	}
	start := directionAngle - arcAngle/2
	points := make([]mgl32.Vec2, 0, resolution+1)
	for n := uint32(0); n <= resolution; n++ {
		pct := float32(n) / float32(resolution)
		sin, cos := math.Sincos(float64(start + pct*arcAngle + math.Pi/2))
		offset := mgl32.Vec2{float32(cos), float32(sin)}.Mul(radius)
		points = append(points, center.Add(offset))
	}
	return points
}

// Arc3DBuilder configures an arc returned by Arc3D, ShortArcBetween,
// LongArcBetween or Circle3D. Draw records the tessellated arc; dropping the
// builder without calling Draw records nothing.
type Arc3DBuilder struct {
	gizmos      *Gizmos
	startVertex mgl32.Vec3
	rotation    mgl32.Quat
	center      mgl32.Vec3
	angle       float32
	radius      float32
	color       [4]float32
	resolution  *uint32
}

// Resolution overrides the number of segments used to approximate the arc.
func (b *Arc3DBuilder) Resolution(resolution uint32) *Arc3DBuilder {
	b.resolution = &resolution
	return b
}

// Draw records the arc into the frame buffer.
func (b *Arc3DBuilder) Draw() {
	if !b.gizmos.config.Enabled {
		return
	}
	resolution := resolutionFromAngle(b.angle)
	if b.resolution != nil {
		resolution = *b.resolution
	}
	points := arc3DPoints(b.startVertex, b.rotation, b.center, b.angle, b.radius, resolution)
	b.gizmos.LineStrip(points, b.color)
}

// Arc3D draws an arc of the given sweep around center. The sweep happens
// around the rotated +Y axis, starting from the rotated +X direction.
func (g *Gizmos) Arc3D(angle, radius float32, center mgl32.Vec3, rotation mgl32.Quat, color [4]float32) *Arc3DBuilder {
	return &Arc3DBuilder{
		gizmos:      g,
		startVertex: mgl32.Vec3{1, 0, 0},
		rotation:    rotation,
		center:      center,
		angle:       angle,
		radius:      radius,
		color:       color,
	}
}

// ShortArcBetween draws the minor arc around center connecting from and to.
// The radius is taken from the center->from ray.
func (g *Gizmos) ShortArcBetween(center, from, to mgl32.Vec3, color [4]float32) *Arc3DBuilder {
	return g.arcFromTo(center, from, to, color, angleUnchanged)
}

// LongArcBetween draws the major arc around center connecting from and to.
func (g *Gizmos) LongArcBetween(center, from, to mgl32.Vec3, color [4]float32) *Arc3DBuilder {
	return g.arcFromTo(center, from, to, color, angleInverted)
}

func (g *Gizmos) arcFromTo(center, from, to mgl32.Vec3, color [4]float32, angleFn func(float32) float32) *Arc3DBuilder {
	startVertex, rotation, angle, radius := fromToParams(center, from, to, angleFn)
	return &Arc3DBuilder{
		gizmos:      g,
		startVertex: startVertex,
		rotation:    rotation,
		center:      center,
		angle:       angle,
		radius:      radius,
		color:       color,
	}
}

// Arc2DBuilder configures a polar 2D arc returned by Arc2D or Circle2D.
type Arc2DBuilder struct {
	gizmos         *Gizmos
	center         mgl32.Vec2
	directionAngle float32
	arcAngle       float32
	radius         float32
	color          [4]float32
	resolution     *uint32
}

// Resolution overrides the number of segments used to approximate the arc.
func (b *Arc2DBuilder) Resolution(resolution uint32) *Arc2DBuilder {
	b.resolution = &resolution
	return b
}

// Draw records the arc into the frame buffer.
func (b *Arc2DBuilder) Draw() {
	if !b.gizmos.config.Enabled {
		return
	}
	resolution := resolutionFromAngle(b.arcAngle)
	if b.resolution != nil {
		resolution = *b.resolution
	}
	points := arc2DPoints(b.center, b.directionAngle, b.arcAngle, b.radius, resolution)
	b.gizmos.LineStrip2D(points, b.color)
}

// Arc2D draws a 2D arc in polar form: directionAngle points from center to the
// arc's angular midpoint, arcAngle is the total span, both in radians measured
// from the +Y axis.
func (g *Gizmos) Arc2D(center mgl32.Vec2, directionAngle, arcAngle, radius float32, color [4]float32) *Arc2DBuilder {
	return &Arc2DBuilder{
		gizmos:         g,
		center:         center,
		directionAngle: directionAngle,
		arcAngle:       arcAngle,
		radius:         radius,
		color:          color,
	}
}
