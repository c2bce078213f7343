package gizmo

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// AnimatedGizmos wraps a draw surface with a clock so that lines and arcs can
// be rendered as moving dashes that encode the direction and speed of travel
// along the primitive. Dashes move from start to end for lines and from the
// from ray toward the to ray for arcs.
//
// All regular drawing methods stay available through the embedded surface, so
// call sites never need both an AnimatedGizmos and a plain Gizmos.
//
//	ag := gizmo.NewAnimatedGizmos(g, clock)
//	ag.AnimatedLine(a, b, green).Segments(10).Speed(0.5).Draw()
//	ag.Line(a, c, green)
//
// Builders collect their settings via chained setters and emit on the terminal
// Draw call. A builder whose Draw is never called draws nothing.
type AnimatedGizmos struct {
	*Gizmos
	clock Clock
}

func NewAnimatedGizmos(gizmos *Gizmos, clock Clock) *AnimatedGizmos {
	return &AnimatedGizmos{Gizmos: gizmos, clock: clock}
}

const (
	defaultSegments = 5
	defaultSpeed    = float32(0.1)
)

// animationWindows samples segments+1 dash windows in the normalized [0,1]
// path parameter. Each window scrolls with elapsed*speed and wraps with a
// period of 1+1/n, slightly longer than the path, so a dash fully leaves the
// visible range before re-entering. Clamping both ends lets dashes shrink
// smoothly at the endpoints instead of popping in and out.
func animationWindows(segments int, elapsed, speed float32) [][2]float32 {
	n := float32(segments)
	// Half of an even spacing, so the gaps between dashes stay visible.
	dashLength := 1 / (2 * n)
	modulo := 1 + 1/n
	windows := make([][2]float32, 0, segments+1)
	for i := 0; i <= segments; i++ {
		offset := float32(i)/n + elapsed*speed
		phase := float32(math.Mod(float64(offset), float64(modulo)))
		windows = append(windows, [2]float32{
			mgl32.Clamp(phase-dashLength, 0, 1),
			mgl32.Clamp(phase, 0, 1),
		})
	}
	return windows
}

// AnimatedLineBuilder configures an animated 3D line.
type AnimatedLineBuilder struct {
	gizmos     *AnimatedGizmos
	start, end mgl32.Vec3
	color      [4]float32
	segments   int
	speed      float32
}

// AnimatedLine draws a 3D line from start to end as dashes travelling from
// start to end, emphasizing the direction of the line. Call it every frame
// the line should be visible and finish the chain with Draw.
func (g *AnimatedGizmos) AnimatedLine(start, end mgl32.Vec3, color [4]float32) *AnimatedLineBuilder {
	return &AnimatedLineBuilder{
		gizmos:   g,
		start:    start,
		end:      end,
		color:    color,
		segments: defaultSegments,
		speed:    defaultSpeed,
	}
}

// Segments sets the number of dashes that make up the line.
func (b *AnimatedLineBuilder) Segments(segments int) *AnimatedLineBuilder {
	b.segments = segments
	return b
}

// Speed sets how fast the dashes travel, in animation cycles per second.
func (b *AnimatedLineBuilder) Speed(speed float32) *AnimatedLineBuilder {
	b.speed = speed
	return b
}

// Draw emits this frame's dashes.
func (b *AnimatedLineBuilder) Draw() {
	if !b.gizmos.config.Enabled {
		return
	}
	if b.segments <= 0 {
		// Nothing to show, and the sampler would divide by zero.
		b.gizmos.logger.Debugf("animated line skipped: %d segments", b.segments)
		return
	}
	diff := b.end.Sub(b.start)
	for _, w := range animationWindows(b.segments, b.gizmos.clock.ElapsedSeconds(), b.speed) {
		b.gizmos.Line(b.start.Add(diff.Mul(w[0])), b.start.Add(diff.Mul(w[1])), b.color)
	}
}

// AnimatedLine2DBuilder configures an animated 2D line.
type AnimatedLine2DBuilder struct {
	gizmos     *AnimatedGizmos
	start, end mgl32.Vec2
	color      [4]float32
	segments   int
	speed      float32
}

// AnimatedLine2D draws a 2D line from start to end as dashes travelling from
// start to end.
func (g *AnimatedGizmos) AnimatedLine2D(start, end mgl32.Vec2, color [4]float32) *AnimatedLine2DBuilder {
	return &AnimatedLine2DBuilder{
		gizmos:   g,
		start:    start,
		end:      end,
		color:    color,
		segments: defaultSegments,
		speed:    defaultSpeed,
	}
}

// Segments sets the number of dashes that make up the line.
func (b *AnimatedLine2DBuilder) Segments(segments int) *AnimatedLine2DBuilder {
	b.segments = segments
	return b
}

// Speed sets how fast the dashes travel, in animation cycles per second.
func (b *AnimatedLine2DBuilder) Speed(speed float32) *AnimatedLine2DBuilder {
	b.speed = speed
	return b
}

// Draw emits this frame's dashes.
func (b *AnimatedLine2DBuilder) Draw() {
	if !b.gizmos.config.Enabled {
		return
	}
	if b.segments <= 0 {
		b.gizmos.logger.Debugf("animated 2d line skipped: %d segments", b.segments)
		return
	}
	diff := b.end.Sub(b.start)
	for _, w := range animationWindows(b.segments, b.gizmos.clock.ElapsedSeconds(), b.speed) {
		b.gizmos.Line2D(b.start.Add(diff.Mul(w[0])), b.start.Add(diff.Mul(w[1])), b.color)
	}
}

// AnimatedArcBuilder configures an animated 3D arc described by the rays
// center->from and center->to.
type AnimatedArcBuilder struct {
	gizmos           *AnimatedGizmos
	from, to, center mgl32.Vec3
	color            [4]float32
	segments         int
	speed            float32
	resolution       *uint32
	angleFn          func(float32) float32
}

// AnimatedArc draws the minor arc between the rays center->from and
// center->to as dashes travelling from the from ray toward the to ray. The
// radius is taken from the center->from ray.
func (g *AnimatedGizmos) AnimatedArc(from, to, center mgl32.Vec3, color [4]float32) *AnimatedArcBuilder {
	return g.animatedArc(from, to, center, color, angleUnchanged)
}

// AnimatedArcLong draws the major arc between the rays center->from and
// center->to. When the rays point in exactly opposite directions the side the
// arc takes is undefined.
func (g *AnimatedGizmos) AnimatedArcLong(from, to, center mgl32.Vec3, color [4]float32) *AnimatedArcBuilder {
	return g.animatedArc(from, to, center, color, angleInverted)
}

func (g *AnimatedGizmos) animatedArc(from, to, center mgl32.Vec3, color [4]float32, angleFn func(float32) float32) *AnimatedArcBuilder {
	return &AnimatedArcBuilder{
		gizmos:   g,
		from:     from,
		to:       to,
		center:   center,
		color:    color,
		segments: defaultSegments,
		speed:    defaultSpeed,
		angleFn:  angleFn,
	}
}

// Segments sets the number of dashes that make up the arc.
func (b *AnimatedArcBuilder) Segments(segments int) *AnimatedArcBuilder {
	b.segments = segments
	return b
}

// Speed sets how fast the dashes travel, in animation cycles per second.
func (b *AnimatedArcBuilder) Speed(speed float32) *AnimatedArcBuilder {
	b.speed = speed
	return b
}

// Resolution overrides the number of segments used to approximate each dash.
func (b *AnimatedArcBuilder) Resolution(resolution uint32) *AnimatedArcBuilder {
	b.resolution = &resolution
	return b
}

// Draw emits this frame's dashes, each as a shortest-arc primitive so the
// underlying tessellation follows the circle instead of chording it.
func (b *AnimatedArcBuilder) Draw() {
	if !b.gizmos.config.Enabled {
		return
	}
	if b.segments <= 0 {
		b.gizmos.logger.Debugf("animated arc skipped: %d segments", b.segments)
		return
	}

	startVertex, rotation, angle, radius := fromToParams(b.center, b.from, b.to, b.angleFn)
	// Sweeps beyond one turn would just draw over themselves.
	angle = mgl32.Clamp(angle, -tau, tau)

	elapsed := b.gizmos.clock.ElapsedSeconds()
	for _, w := range animationWindows(b.segments, elapsed, b.speed) {
		p0 := arcPoint(startVertex, rotation, b.center, w[0]*angle, radius)
		p1 := arcPoint(startVertex, rotation, b.center, w[1]*angle, radius)
		arc := b.gizmos.ShortArcBetween(b.center, p0, p1, b.color)
		if b.resolution != nil {
			arc.Resolution(*b.resolution)
		}
		arc.Draw()
	}
}

// AnimatedArc2DBuilder configures an animated polar 2D arc.
type AnimatedArc2DBuilder struct {
	gizmos         *AnimatedGizmos
	center         mgl32.Vec2
	directionAngle float32
	arcAngle       float32
	radius         float32
	color          [4]float32
	segments       int
	speed          float32
	resolution     *uint32
}

// AnimatedArc2D draws a 2D arc in polar form as dashes sweeping along it.
// directionAngle points from center to the arc's angular midpoint, arcAngle is
// the total span, both in radians measured from the +Y axis.
func (g *AnimatedGizmos) AnimatedArc2D(center mgl32.Vec2, directionAngle, arcAngle, radius float32, color [4]float32) *AnimatedArc2DBuilder {
	return &AnimatedArc2DBuilder{
		gizmos:         g,
		center:         center,
		directionAngle: directionAngle,
		arcAngle:       arcAngle,
		radius:         radius,
		color:          color,
		segments:       defaultSegments,
		speed:          defaultSpeed,
	}
}

// Segments sets the number of dashes that make up the arc.
func (b *AnimatedArc2DBuilder) Segments(segments int) *AnimatedArc2DBuilder {
	b.segments = segments
	return b
}

// Speed sets how fast the dashes travel, in animation cycles per second.
func (b *AnimatedArc2DBuilder) Speed(speed float32) *AnimatedArc2DBuilder {
	b.speed = speed
	return b
}

// Resolution overrides the number of segments used to approximate each dash.
func (b *AnimatedArc2DBuilder) Resolution(resolution uint32) *AnimatedArc2DBuilder {
	b.resolution = &resolution
	return b
}

// arc2DWindow narrows a polar arc down to one sampled dash window, keeping the
// dash's angular length and position consistent with the window's fractional
// semantics.
func arc2DWindow(directionAngle, arcAngle float32, w [2]float32) (direction, span float32) {
	length := mgl32.Abs(w[1] - w[0])
	return directionAngle + w[0]*arcAngle + length, length * arcAngle
}

// Draw emits this frame's dashes as polar sub-arcs.
func (b *AnimatedArc2DBuilder) Draw() {
	if !b.gizmos.config.Enabled {
		return
	}
	if b.segments <= 0 {
		b.gizmos.logger.Debugf("animated 2d arc skipped: %d segments", b.segments)
		return
	}
	elapsed := b.gizmos.clock.ElapsedSeconds()
	for _, w := range animationWindows(b.segments, elapsed, b.speed) {
		direction, span := arc2DWindow(b.directionAngle, b.arcAngle, w)
		arc := b.gizmos.Arc2D(b.center, direction, span, b.radius, b.color)
		if b.resolution != nil {
			arc.Resolution(*b.resolution)
		}
		arc.Draw()
	}
}
