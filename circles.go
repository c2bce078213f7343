package gizmo

import "github.com/go-gl/mathgl/mgl32"

// Circle2D draws a full circle around center.
func (g *Gizmos) Circle2D(center mgl32.Vec2, radius float32, color [4]float32) *Arc2DBuilder {
	return g.Arc2D(center, 0, tau, radius, color)
}

// Circle3D draws a full circle around center in the plane whose normal is the
// rotated +Y axis.
func (g *Gizmos) Circle3D(center mgl32.Vec3, rotation mgl32.Quat, radius float32, color [4]float32) *Arc3DBuilder {
	return g.Arc3D(tau, radius, center, rotation, color)
}
