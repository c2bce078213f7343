package gizmo

import "github.com/go-gl/mathgl/mgl32"

// Gizmos is the immediate-mode draw surface. Every call records wireframe
// geometry into the frame buffer for the current frame only; a disabled
// surface records nothing. Colors are RGBA in [0,1].
type Gizmos struct {
	buffer *Buffer
	config *Config
	logger Logger
}

// NewGizmos binds a draw surface to a frame buffer. A nil config gets the
// defaults (enabled, standard line width).
func NewGizmos(buffer *Buffer, config *Config) *Gizmos {
	if config == nil {
		config = defaultConfig()
	}
	return &Gizmos{
		buffer: buffer,
		config: config,
		logger: NewNopLogger(),
	}
}

// SetLogger installs a logger for draw-call tracing. Nil restores the no-op
// logger.
func (g *Gizmos) SetLogger(logger Logger) {
	if logger == nil {
		logger = NewNopLogger()
	}
	g.logger = logger
}

// Enabled reports whether the surface currently records geometry.
func (g *Gizmos) Enabled() bool {
	return g.config.Enabled
}

// Config returns the config backing this surface. Mutations take effect on
// the next draw call.
func (g *Gizmos) Config() *Config {
	return g.config
}

// Buffer returns the frame buffer this surface records into.
func (g *Gizmos) Buffer() *Buffer {
	return g.buffer
}

// Line draws a straight 3D segment from start to end.
func (g *Gizmos) Line(start, end mgl32.Vec3, color [4]float32) {
	if !g.config.Enabled {
		return
	}
	g.buffer.Lines = append(g.buffer.Lines, LineGizmo{Start: start, End: end, Color: color})
}

// Line2D draws a straight 2D segment from start to end.
func (g *Gizmos) Line2D(start, end mgl32.Vec2, color [4]float32) {
	if !g.config.Enabled {
		return
	}
	g.buffer.Lines2D = append(g.buffer.Lines2D, LineGizmo2D{Start: start, End: end, Color: color})
}

// LineStrip draws connected 3D segments through the given points. Fewer than
// two points draw nothing.
func (g *Gizmos) LineStrip(points []mgl32.Vec3, color [4]float32) {
	if !g.config.Enabled || len(points) < 2 {
		return
	}
	g.buffer.Strips = append(g.buffer.Strips, StripGizmo{Points: points, Color: color})
}

// LineStrip2D draws connected 2D segments through the given points.
func (g *Gizmos) LineStrip2D(points []mgl32.Vec2, color [4]float32) {
	if !g.config.Enabled || len(points) < 2 {
		return
	}
	g.buffer.Strips2D = append(g.buffer.Strips2D, StripGizmo2D{Points: points, Color: color})
}
