package shaped

import (
	"math"
	"testing"
)

func TestSpringCriticallyDampedConverges(t *testing.T) {
	f := SpringForce{Stiffness: StiffnessMedium, DampingRatio: DampingRatioNoBouncy}

	d, v := 100.0, 0.0
	for i := 0; i < 600; i++ {
		d, v = f.Update(d, v, 1.0/60)
		// Critically damped from rest must never overshoot.
		if d < -1e-9 {
			t.Fatalf("critically damped spring overshot: displacement %v at tick %d", d, i)
		}
		if f.AtEquilibrium(d, v) {
			return
		}
	}
	t.Fatalf("spring did not settle: displacement %v, velocity %v", d, v)
}

func TestSpringUnderdampedOvershoots(t *testing.T) {
	f := SpringForce{Stiffness: StiffnessMedium, DampingRatio: DampingRatioHighBouncy}

	d, v := 100.0, 0.0
	overshot := false
	for i := 0; i < 600; i++ {
		d, v = f.Update(d, v, 1.0/60)
		if d < -springValueThreshold {
			overshot = true
		}
		if f.AtEquilibrium(d, v) {
			break
		}
	}
	if !overshot {
		t.Error("bouncy spring never overshot the target")
	}
}

func TestSpringOverdamped(t *testing.T) {
	f := SpringForce{Stiffness: StiffnessLow, DampingRatio: 1.5}

	d, v := 50.0, 0.0
	for i := 0; i < 2000; i++ {
		d, v = f.Update(d, v, 1.0/60)
		if d < -1e-9 {
			t.Fatalf("overdamped spring overshot: %v", d)
		}
		if f.AtEquilibrium(d, v) {
			return
		}
	}
	t.Fatalf("overdamped spring did not settle: displacement %v", d)
}

func TestSpringClosedFormSliceIndependence(t *testing.T) {
	f := NewSpringForce()

	// One large step.
	d1, v1 := f.Update(100, 0, 0.1)

	// The same elapsed time in ten small steps.
	d2, v2 := 100.0, 0.0
	for i := 0; i < 10; i++ {
		d2, v2 = f.Update(d2, v2, 0.01)
	}

	if math.Abs(d1-d2) > 1e-6 {
		t.Errorf("displacement depends on tick slicing: %v vs %v", d1, d2)
	}
	if math.Abs(v1-v2) > 1e-4 {
		t.Errorf("velocity depends on tick slicing: %v vs %v", v1, v2)
	}
}

func TestCornerSpringAnimatorSnapAndAnimate(t *testing.T) {
	a := NewCornerSpringAnimator(NewSpringForce())

	a.SnapTo([4]float64{16, 16, 16, 16})
	if !a.Settled() {
		t.Error("animator should be settled after SnapTo")
	}
	if got := a.CurrentValues(); got != [4]float64{16, 16, 16, 16} {
		t.Errorf("CurrentValues after SnapTo = %v", got)
	}

	a.SetTargets([4]float64{32, 16, 16, 16})
	if a.Settled() {
		t.Error("animator should be animating after retarget")
	}

	a.Tick(1.0 / 60)
	vals := a.CurrentValues()
	if vals[0] <= 16 || vals[0] >= 32 {
		t.Errorf("spring 0 should be between start and target, got %v", vals[0])
	}
	for i := 1; i < 4; i++ {
		if vals[i] != 16 {
			t.Errorf("spring %d moved without a target change: %v", i, vals[i])
		}
	}

	// Run until settled.
	for i := 0; i < 600 && a.Tick(1.0/60); i++ {
	}
	if !a.Settled() {
		t.Fatal("animator did not settle")
	}
	if got := a.CurrentValues()[0]; got != 32 {
		t.Errorf("settled value = %v, want exactly 32", got)
	}
}

func TestCornerSpringAnimatorSkipToEnd(t *testing.T) {
	a := NewCornerSpringAnimator(NewSpringForce())
	a.SnapTo([4]float64{0, 0, 0, 0})
	a.SetTargets([4]float64{10, 20, 30, 40})
	a.Tick(1.0 / 60)

	a.SkipToEnd()
	if !a.Settled() {
		t.Error("animator should be settled after SkipToEnd")
	}
	if got := a.CurrentValues(); got != [4]float64{10, 20, 30, 40} {
		t.Errorf("values after SkipToEnd = %v", got)
	}
}
