package gizmo_test

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gizmo"
)

func Example() {
	buffer := gizmo.NewBuffer()
	clock := &gizmo.ManualClock{}
	g := gizmo.NewAnimatedGizmos(gizmo.NewGizmos(buffer, nil), clock)

	green := [4]float32{0, 1, 0, 1}

	// Animated drawing: ten dashes travelling from the origin towards +X.
	g.AnimatedLine(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}, green).
		Segments(10).
		Speed(0.5).
		Draw()

	// Regular drawing through the same facade.
	g.Line(mgl32.Vec3{}, mgl32.Vec3{-1, 0, 0}, green)

	fmt.Println(len(buffer.Lines))
	// Output: 12
}
