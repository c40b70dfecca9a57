package shaped

import (
	"math"
	"testing"
)

func TestShapePathLineTo(t *testing.T) {
	p := NewShapePath(0, 0)
	p.LineTo(10, 0)

	if p.EndX() != 10 || p.EndY() != 0 {
		t.Errorf("end = (%v, %v), want (10, 0)", p.EndX(), p.EndY())
	}
	if p.ContainsIncompatibleShadowOp() {
		t.Error("line should be shadow compatible")
	}

	path := NewPath()
	p.ApplyToPath(Identity(), path)
	if got := path.CurrentPoint(); !pointsClose(got, Pt(10, 0), 1e-9) {
		t.Errorf("replayed end point = %v, want (10, 0)", got)
	}
}

func TestShapePathCurvesAreShadowIncompatible(t *testing.T) {
	quad := NewShapePath(0, 0)
	quad.QuadTo(5, 5, 10, 0)
	if !quad.ContainsIncompatibleShadowOp() {
		t.Error("quadratic segment should be shadow incompatible")
	}

	cubic := NewShapePath(0, 0)
	cubic.CubicTo(3, 3, 7, 3, 10, 0)
	if !cubic.ContainsIncompatibleShadowOp() {
		t.Error("cubic segment should be shadow incompatible")
	}
}

func TestShapePathAddArcEndPoint(t *testing.T) {
	// Quarter arc of a circle of radius 8 centered at (8, 8), from the
	// left of the circle to its top.
	p := NewShapePath(0, 8)
	p.AddArc(0, 0, 16, 16, 180, 90)

	if math.Abs(p.EndX()-8) > 1e-9 || math.Abs(p.EndY()-0) > 1e-9 {
		t.Errorf("arc end = (%v, %v), want (8, 0)", p.EndX(), p.EndY())
	}
	if p.ContainsIncompatibleShadowOp() {
		t.Error("arc should be shadow compatible")
	}
}

func TestShapePathApplyTransform(t *testing.T) {
	p := NewShapePath(0, 0)
	p.LineTo(10, 0)

	// Rotate a quarter turn clockwise and translate.
	m := Translate(100, 0).Multiply(Rotate(math.Pi / 2))
	path := NewPath()
	p.ApplyToPath(m, path)
	if got := path.CurrentPoint(); !pointsClose(got, Pt(100, 10), 1e-6) {
		t.Errorf("transformed end = %v, want (100, 10)", got)
	}
}

func TestShapePathConnectingShadow(t *testing.T) {
	// Two lines that turn a corner leave an angular gap that must be
	// bridged by a connecting corner shadow.
	p := NewShapePath(0, 0)
	p.LineTo(10, 0)
	p.LineTo(10, 10)

	op := p.ShadowOperationForSegment(Identity())
	composite, ok := op.(*compositeShadowOperation)
	if !ok {
		t.Fatalf("ShadowOperationForSegment returned %T, want composite", op)
	}
	// line, connecting arc, line.
	if got := len(composite.ops); got != 3 {
		t.Errorf("shadow op count = %d, want 3", got)
	}
	if _, ok := composite.ops[1].(*arcShadowOperation); !ok {
		t.Errorf("middle op = %T, want connecting arc", composite.ops[1])
	}
}

func TestShapePathNoConnectingShadowWhenAligned(t *testing.T) {
	// A straight continuation needs no connector.
	p := NewShapePath(0, 0)
	p.LineTo(5, 0)
	p.LineTo(10, 0)

	op := p.ShadowOperationForSegment(Identity())
	composite := op.(*compositeShadowOperation)
	if got := len(composite.ops); got != 2 {
		t.Errorf("shadow op count = %d, want 2", got)
	}
}

func TestRoundedCornerTreatmentGeometry(t *testing.T) {
	p := NewShapePath(0, 0)
	RoundedCorner().ApplyCornerPath(90, 1, 16, p)

	if !pointsClose(Pt(p.StartX(), p.StartY()), Pt(0, 16), 1e-9) {
		t.Errorf("start = (%v, %v), want (0, 16)", p.StartX(), p.StartY())
	}
	if !pointsClose(Pt(p.EndX(), p.EndY()), Pt(16, 0), 1e-9) {
		t.Errorf("end = (%v, %v), want (16, 0)", p.EndX(), p.EndY())
	}
}

func TestRoundedCornerInterpolationScales(t *testing.T) {
	p := NewShapePath(0, 0)
	RoundedCorner().ApplyCornerPath(90, 0.5, 16, p)
	if !pointsClose(Pt(p.StartX(), p.StartY()), Pt(0, 8), 1e-9) {
		t.Errorf("interpolated start = (%v, %v), want (0, 8)", p.StartX(), p.StartY())
	}
}

func TestCutCornerTreatmentGeometry(t *testing.T) {
	p := NewShapePath(0, 0)
	CutCorner().ApplyCornerPath(90, 1, 16, p)

	if !pointsClose(Pt(p.StartX(), p.StartY()), Pt(0, 16), 1e-9) {
		t.Errorf("start = (%v, %v), want (0, 16)", p.StartX(), p.StartY())
	}
	if !pointsClose(Pt(p.EndX(), p.EndY()), Pt(16, 0), 1e-9) {
		t.Errorf("end = (%v, %v), want (16, 0)", p.EndX(), p.EndY())
	}
	if p.ContainsIncompatibleShadowOp() {
		t.Error("cut corner should be shadow compatible")
	}
}

func TestSquareCornerTreatmentEmitsNothing(t *testing.T) {
	p := NewShapePath(0, 0)
	SquareCorner().ApplyCornerPath(90, 1, 16, p)
	if p.StartX() != 0 || p.StartY() != 0 || p.EndX() != 0 || p.EndY() != 0 {
		t.Errorf("square corner moved the path: start (%v,%v) end (%v,%v)",
			p.StartX(), p.StartY(), p.EndX(), p.EndY())
	}
	path := NewPath()
	p.ApplyToPath(Identity(), path)
	if !path.IsEmpty() {
		t.Error("square corner should record no path operations")
	}
}

func TestTriangleEdgeTreatment(t *testing.T) {
	p := NewShapePath(0, 0)
	TriangleEdge(10, false).ApplyEdgePath(100, 50, 1, p)
	if !pointsClose(Pt(p.EndX(), p.EndY()), Pt(100, 0), 1e-9) {
		t.Errorf("edge end = (%v, %v), want (100, 0)", p.EndX(), p.EndY())
	}

	path := NewPath()
	p.ApplyToPath(Identity(), path)
	b := path.Bounds()
	// The outward triangle dips to local y = -10 at the center.
	if math.Abs(b.Min.Y+10) > 1e-9 {
		t.Errorf("outward triangle Min.Y = %v, want -10", b.Min.Y)
	}
}

func TestOffsetEdgeShiftsCenter(t *testing.T) {
	p := NewShapePath(0, 0)
	OffsetEdge(TriangleEdge(10, false), 20).ApplyEdgePath(100, 50, 1, p)

	path := NewPath()
	p.ApplyToPath(Identity(), path)
	// Tip of the triangle should sit at x = 70.
	tip := Pt(0, 0)
	for _, elem := range path.Elements() {
		if l, ok := elem.(LineTo); ok && l.Point.Y < tip.Y {
			tip = l.Point
		}
	}
	if !pointsClose(tip, Pt(70, -10), 1e-9) {
		t.Errorf("offset triangle tip = %v, want (70, -10)", tip)
	}
}
