package shaped

import (
	"math"
	"testing"
)

func TestPathContains(t *testing.T) {
	p := NewPath()
	p.Rectangle(10, 10, 20, 20)

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 20, 20, true},
		{"outside left", 5, 20, false},
		{"outside above", 20, 5, false},
		{"just inside", 11, 11, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestPathIsConvex(t *testing.T) {
	rect := NewPath()
	rect.Rectangle(0, 0, 10, 10)
	if !rect.IsConvex() {
		t.Error("rectangle should be convex")
	}

	round := NewPath()
	round.RoundedRectangle(0, 0, 100, 100, 16)
	if !round.IsConvex() {
		t.Error("rounded rectangle should be convex")
	}

	// An L shape is concave.
	l := NewPath()
	l.MoveTo(0, 0)
	l.LineTo(10, 0)
	l.LineTo(10, 5)
	l.LineTo(5, 5)
	l.LineTo(5, 10)
	l.LineTo(0, 10)
	l.Close()
	if l.IsConvex() {
		t.Error("L shape should not be convex")
	}
}

func TestPathBoundsIncludesControls(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.QuadraticTo(10, -5, 20, 0)

	b := p.Bounds()
	if b.Min.Y != -5 {
		t.Errorf("Bounds().Min.Y = %v, want -5 (control point included)", b.Min.Y)
	}
}

func TestPathArcEndpoints(t *testing.T) {
	p := NewPath()
	p.Arc(0, 0, 10, 0, math.Pi/2)

	got := p.CurrentPoint()
	if !pointsClose(got, Pt(0, 10), 1e-6) {
		t.Errorf("arc end = %v, want (0, 10)", got)
	}

	// Negative sweep runs the other way.
	q := NewPath()
	q.Arc(0, 0, 10, 0, -math.Pi/2)
	if got := q.CurrentPoint(); !pointsClose(got, Pt(0, -10), 1e-6) {
		t.Errorf("reverse arc end = %v, want (0, -10)", got)
	}
}

func TestPathTransformDoesNotMutate(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 1)
	p.LineTo(2, 2)

	moved := p.Transform(Translate(10, 10))
	if got := moved.CurrentPoint(); !pointsClose(got, Pt(12, 12), 1e-9) {
		t.Errorf("transformed end = %v, want (12, 12)", got)
	}
	if got := p.CurrentPoint(); !pointsClose(got, Pt(2, 2), 1e-9) {
		t.Errorf("original path mutated: end = %v", got)
	}
}

func TestRoundedRectangleClampsRadius(t *testing.T) {
	p := NewPath()
	p.RoundedRectangle(0, 0, 20, 10, 50)
	b := p.Bounds()
	if b.Min.X < -1e-9 || b.Min.Y < -1e-9 || b.Max.X > 20+1e-9 || b.Max.Y > 10+1e-9 {
		t.Errorf("clamped rounded rectangle escaped its rect: %v", b)
	}
}
