package shaped

import "testing"

func TestDrawEdgeShadowGradient(t *testing.T) {
	canvas := NewSoftCanvas(60, 60)
	r := NewShadowRenderer()

	// Edge running along y = 30 from x = 10 to x = 50, casting an
	// 8 unit shadow upward (outward).
	r.DrawEdgeShadow(canvas, Translate(10, 30), RectWH(0, 0, 40, 0), 8)

	pm := canvas.Pixmap()
	nearEdge := pm.GetPixel(30, 29).A
	farEdge := pm.GetPixel(30, 23).A
	if nearEdge <= 0 {
		t.Fatal("no shadow next to the edge")
	}
	if farEdge <= 0 {
		t.Fatal("no shadow at the outer rim")
	}
	if nearEdge <= farEdge {
		t.Errorf("shadow should darken toward the edge: near %v, far %v", nearEdge, farEdge)
	}
	if got := pm.GetPixel(30, 35).A; got != 0 {
		t.Errorf("shadow leaked inside the shape: alpha %v at (30, 35)", got)
	}
	if got := pm.GetPixel(30, 15).A; got != 0 {
		t.Errorf("shadow leaked past the rim: alpha %v at (30, 15)", got)
	}
}

func TestDrawEdgeShadowZeroElevation(t *testing.T) {
	canvas := NewSoftCanvas(40, 40)
	NewShadowRenderer().DrawEdgeShadow(canvas, Translate(0, 20), RectWH(0, 0, 40, 0), 0)

	pm := canvas.Pixmap()
	for y := 0; y < 40; y += 5 {
		for x := 0; x < 40; x += 5 {
			if pm.GetPixel(x, y).A != 0 {
				t.Fatalf("zero elevation painted pixel (%d, %d)", x, y)
			}
		}
	}
}

func TestDrawCornerShadowWedge(t *testing.T) {
	canvas := NewSoftCanvas(60, 60)
	r := NewShadowRenderer()

	// Degenerate corner at (30, 30): the shadow is a quarter ring of
	// radius 10 sweeping through the lower right quadrant.
	bounds := NewRect(Pt(30, 30), Pt(30, 30))
	r.DrawCornerShadow(canvas, Identity(), bounds, 10, 0, 90)

	pm := canvas.Pixmap()
	if got := pm.GetPixel(35, 35).A; got <= 0 {
		t.Errorf("no shadow inside the wedge: alpha %v at (35, 35)", got)
	}
	if got := pm.GetPixel(35, 25).A; got != 0 {
		t.Errorf("shadow outside the sweep: alpha %v at (35, 25)", got)
	}
	if got := pm.GetPixel(45, 45).A; got != 0 {
		t.Errorf("shadow beyond the rim: alpha %v at (45, 45)", got)
	}
}

func TestShadowColor(t *testing.T) {
	r := NewShadowRenderer()
	if got := r.ShadowColor(); got != Black {
		t.Errorf("default shadow color = %v, want Black", got)
	}

	blue := RGB(0, 0, 1)
	r.SetShadowColor(blue)
	if got := r.ShadowColor(); got != blue {
		t.Errorf("shadow color after set = %v, want %v", got, blue)
	}
	if got := r.startColor.A; got != float64(0x44)/255 {
		t.Errorf("start alpha = %v, want %v", got, float64(0x44)/255)
	}
	if got := r.endColor.A; got != 0 {
		t.Errorf("end alpha = %v, want 0", got)
	}
}
