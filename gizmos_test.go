package gizmo

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGizmos_RecordsLines(t *testing.T) {
	buffer := NewBuffer()
	g := NewGizmos(buffer, nil)
	red := [4]float32{1, 0, 0, 1}

	g.Line(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{4, 5, 6}, red)
	g.Line2D(mgl32.Vec2{1, 2}, mgl32.Vec2{3, 4}, red)

	require.Len(t, buffer.Lines, 1)
	assert.Equal(t, LineGizmo{Start: mgl32.Vec3{1, 2, 3}, End: mgl32.Vec3{4, 5, 6}, Color: red}, buffer.Lines[0])
	require.Len(t, buffer.Lines2D, 1)
	assert.Equal(t, LineGizmo2D{Start: mgl32.Vec2{1, 2}, End: mgl32.Vec2{3, 4}, Color: red}, buffer.Lines2D[0])
}

func TestGizmos_DisabledRecordsNothing(t *testing.T) {
	buffer := NewBuffer()
	g := NewGizmos(buffer, &Config{Enabled: false})
	white := [4]float32{1, 1, 1, 1}

	g.Line(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}, white)
	g.Line2D(mgl32.Vec2{}, mgl32.Vec2{1, 0}, white)
	g.LineStrip([]mgl32.Vec3{{}, {1, 0, 0}, {1, 1, 0}}, white)
	g.ShortArcBetween(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}, white).Draw()
	g.Arc2D(mgl32.Vec2{}, 0, 1, 1, white).Draw()

	assert.True(t, buffer.Empty())
	assert.False(t, g.Enabled())
}

func TestGizmos_LineStripNeedsTwoPoints(t *testing.T) {
	buffer := NewBuffer()
	g := NewGizmos(buffer, nil)

	g.LineStrip([]mgl32.Vec3{{1, 1, 1}}, [4]float32{1, 1, 1, 1})
	g.LineStrip2D([]mgl32.Vec2{{1, 1}}, [4]float32{1, 1, 1, 1})

	assert.True(t, buffer.Empty())
}

func TestBuffer_Clear(t *testing.T) {
	buffer := NewBuffer()
	g := NewGizmos(buffer, nil)

	g.Line(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}, [4]float32{1, 1, 1, 1})
	g.Circle2D(mgl32.Vec2{}, 1, [4]float32{1, 1, 1, 1}).Draw()
	require.False(t, buffer.Empty())

	buffer.Clear()
	assert.True(t, buffer.Empty())
}

func TestConfigStore_Groups(t *testing.T) {
	store := NewConfigStore()

	physics := store.Register()
	editor := store.Register()
	assert.NotEqual(t, physics, editor)
	assert.NotEqual(t, store.DefaultGroup(), physics)

	require.NotNil(t, store.Config(physics))
	assert.Nil(t, store.Config(GroupId("missing")))

	buffer := NewBuffer()
	g := store.Gizmos(physics, buffer)
	store.Config(physics).Enabled = false
	g.Line(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}, [4]float32{1, 1, 1, 1})
	assert.True(t, buffer.Empty())

	// Unknown ids fall back to the default group's config.
	fallback := store.Gizmos(GroupId("missing"), buffer)
	assert.Same(t, store.Config(store.DefaultGroup()), fallback.Config())
}

func TestManualClock(t *testing.T) {
	clock := &ManualClock{}
	assert.Zero(t, clock.ElapsedSeconds())

	clock.Advance(0.5)
	clock.Advance(0.25)
	assert.InDelta(t, 0.75, float64(clock.ElapsedSeconds()), 1e-6)

	clock.Set(2)
	assert.EqualValues(t, 2, clock.ElapsedSeconds())
}

func TestSystemClock_Advances(t *testing.T) {
	clock := NewSystemClock()
	if elapsed := clock.ElapsedSeconds(); elapsed < 0 {
		t.Errorf("elapsed time went backwards: %v", elapsed)
	}
}
