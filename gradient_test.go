package shaped

import (
	"math"
	"testing"
)

func colorsClose(a, b RGBA, eps float64) bool {
	return math.Abs(a.R-b.R) < eps && math.Abs(a.G-b.G) < eps &&
		math.Abs(a.B-b.B) < eps && math.Abs(a.A-b.A) < eps
}

func TestLinearGradientColorAt(t *testing.T) {
	g := NewLinearGradientBrush(0, 0, 0, 10).
		AddColorStop(0, Black).
		AddColorStop(1, White)

	tests := []struct {
		name string
		x, y float64
		want RGBA
	}{
		{"start", 0, 0, Black},
		{"end", 0, 10, White},
		{"middle", 5, 5, RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1}},
		{"before start pads", 0, -5, Black},
		{"after end pads", 0, 15, White},
		{"x ignored on vertical axis", 100, 10, White},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.ColorAt(tt.x, tt.y)
			if !colorsClose(got, tt.want, 1e-9) {
				t.Errorf("ColorAt(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestLinearGradientZeroLength(t *testing.T) {
	g := NewLinearGradientBrush(5, 5, 5, 5).
		AddColorStop(0, Black).
		AddColorStop(1, White)
	got := g.ColorAt(100, 100)
	if !colorsClose(got, Black, 1e-9) {
		t.Errorf("zero-length gradient ColorAt = %v, want first stop color", got)
	}
}

func TestRadialGradientColorAt(t *testing.T) {
	g := NewRadialGradientBrush(0, 0, 0, 10).
		AddColorStop(0, White).
		AddColorStop(1, Transparent)

	if got := g.ColorAt(0, 0); !colorsClose(got, White, 1e-9) {
		t.Errorf("ColorAt(center) = %v, want White", got)
	}
	if got := g.ColorAt(0, 5); math.Abs(got.A-0.5) > 1e-9 {
		t.Errorf("ColorAt(half radius).A = %v, want 0.5", got.A)
	}
	if got := g.ColorAt(20, 0); got.A != 0 {
		t.Errorf("ColorAt(beyond radius).A = %v, want 0 (pad)", got.A)
	}
}

func TestApplyExtendMode(t *testing.T) {
	tests := []struct {
		name string
		t    float64
		mode ExtendMode
		want float64
	}{
		{"pad clamps low", -0.5, ExtendPad, 0},
		{"pad clamps high", 1.5, ExtendPad, 1},
		{"pad passes through", 0.25, ExtendPad, 0.25},
		{"repeat wraps", 1.25, ExtendRepeat, 0.25},
		{"repeat wraps negative", -0.25, ExtendRepeat, 0.75},
		{"reflect mirrors", 1.25, ExtendReflect, 0.75},
		{"reflect second period", 2.25, ExtendReflect, 0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := applyExtendMode(tt.t, tt.mode)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("applyExtendMode(%v, %v) = %v, want %v", tt.t, tt.mode, got, tt.want)
			}
		})
	}
}

func TestColorAtOffsetEdgeCases(t *testing.T) {
	if got := colorAtOffset(nil, 0.5, ExtendPad); got != Transparent {
		t.Errorf("colorAtOffset(no stops) = %v, want Transparent", got)
	}
	single := []ColorStop{{Offset: 0.5, Color: White}}
	if got := colorAtOffset(single, 0.9, ExtendPad); got != White {
		t.Errorf("colorAtOffset(single stop) = %v, want White", got)
	}
	unsorted := []ColorStop{{Offset: 1, Color: White}, {Offset: 0, Color: Black}}
	if got := colorAtOffset(unsorted, 0, ExtendPad); !colorsClose(got, Black, 1e-9) {
		t.Errorf("colorAtOffset(unsorted, 0) = %v, want Black", got)
	}
}
