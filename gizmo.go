package gizmo

import "github.com/go-gl/mathgl/mgl32"

// LineGizmo is one straight 3D segment retained for the current frame.
type LineGizmo struct {
	Start, End mgl32.Vec3
	Color      [4]float32
}

// LineGizmo2D is one straight 2D segment retained for the current frame.
type LineGizmo2D struct {
	Start, End mgl32.Vec2
	Color      [4]float32
}

// StripGizmo is a connected run of 3D segments, used for tessellated arcs and
// circles. Points holds the joints; each consecutive pair is one segment.
type StripGizmo struct {
	Points []mgl32.Vec3
	Color  [4]float32
}

// StripGizmo2D is the 2D counterpart of StripGizmo.
type StripGizmo2D struct {
	Points []mgl32.Vec2
	Color  [4]float32
}

// Buffer collects everything drawn through a Gizmos surface during one frame.
// A renderer drains the records however it likes (lines, strips, instancing);
// the host clears the buffer before the next frame's draw calls. Gizmos are
// wireframes, there is no fill state to carry.
type Buffer struct {
	Lines    []LineGizmo
	Lines2D  []LineGizmo2D
	Strips   []StripGizmo
	Strips2D []StripGizmo2D
}

func NewBuffer() *Buffer {
	return &Buffer{}
}

// Clear drops all retained gizmos, keeping the allocations for the next frame.
func (b *Buffer) Clear() {
	b.Lines = b.Lines[:0]
	b.Lines2D = b.Lines2D[:0]
	b.Strips = b.Strips[:0]
	b.Strips2D = b.Strips2D[:0]
}

// Empty reports whether nothing has been drawn since the last Clear.
func (b *Buffer) Empty() bool {
	return len(b.Lines) == 0 && len(b.Lines2D) == 0 &&
		len(b.Strips) == 0 && len(b.Strips2D) == 0
}
