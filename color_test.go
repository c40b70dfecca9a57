package shaped

import (
	"math"
	"testing"
)

func TestRGBALerp(t *testing.T) {
	got := Black.Lerp(White, 0.5)
	want := RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1}
	if !colorsClose(got, want, 1e-9) {
		t.Errorf("Black.Lerp(White, 0.5) = %v, want %v", got, want)
	}
	if got := Black.Lerp(White, 0); got != Black {
		t.Errorf("Lerp(0) = %v, want Black", got)
	}
	if got := Black.Lerp(White, 1); got != White {
		t.Errorf("Lerp(1) = %v, want White", got)
	}
}

func TestRGBAOver(t *testing.T) {
	// Opaque source replaces the background entirely.
	red := RGB(1, 0, 0)
	if got := red.Over(White); !colorsClose(got, red, 1e-9) {
		t.Errorf("opaque Over = %v, want %v", got, red)
	}

	// Half-transparent black over white gives mid gray.
	got := Black.WithAlpha(0.5).Over(White)
	if math.Abs(got.R-0.5) > 1e-9 || math.Abs(got.A-1) > 1e-9 {
		t.Errorf("half black Over white = %v, want mid gray, alpha 1", got)
	}

	// Fully transparent over transparent stays transparent.
	if got := Transparent.Over(Transparent); got != Transparent {
		t.Errorf("Transparent.Over(Transparent) = %v, want Transparent", got)
	}
}

func TestRGBAAlphaHelpers(t *testing.T) {
	c := RGB(0.2, 0.4, 0.6)
	if got := c.WithAlpha(0.5).A; got != 0.5 {
		t.Errorf("WithAlpha(0.5).A = %v, want 0.5", got)
	}
	if got := c.WithAlpha(0.5).ModulateAlpha(0.5).A; got != 0.25 {
		t.Errorf("ModulateAlpha(0.5).A = %v, want 0.25", got)
	}
	// ModulateAlpha clamps the scale, not the result.
	if got := c.ModulateAlpha(2).A; got != 1 {
		t.Errorf("ModulateAlpha(2).A = %v, want 1", got)
	}
}

func TestRGBAColorRoundTrip(t *testing.T) {
	c := RGBA{R: 0.5, G: 0.25, B: 0.75, A: 1}
	got := FromColor(c.Color())
	if !colorsClose(got, c, 0.01) {
		t.Errorf("FromColor(Color()) = %v, want about %v", got, c)
	}
}
