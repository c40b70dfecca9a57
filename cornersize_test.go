package shaped

import (
	"math"
	"testing"
)

func TestCornerSizeResolve(t *testing.T) {
	bounds := RectWH(0, 0, 100, 50)

	tests := []struct {
		name string
		size CornerSize
		want float64
	}{
		{"absolute", Absolute(16), 16},
		{"absolute zero", Absolute(0), 0},
		{"relative uses shorter side", Relative(0.5), 25},
		{"relative zero", Relative(0), 0},
		{"relative clamps above one", Relative(1.5), 50},
		{"relative clamps below zero", Relative(-0.5), 0},
		{"adjusted offsets absolute", Adjusted(Absolute(16), -4), 12},
		{"adjusted clamps at zero", Adjusted(Absolute(2), -10), 0},
		{"adjusted passes relative through", Adjusted(Relative(0.5), -10), 25},
		{"pill", Pill, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.size.Resolve(bounds)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Resolve(%v) = %v, want %v", bounds, got, tt.want)
			}
		})
	}
}

func TestAdjustedCombines(t *testing.T) {
	s := Adjusted(Adjusted(Absolute(20), -4), -6)
	if got := s.Adjustment(); got != -10 {
		t.Errorf("nested Adjusted adjustment = %v, want -10", got)
	}
	if got := s.Resolve(RectWH(0, 0, 100, 100)); got != 10 {
		t.Errorf("nested Adjusted Resolve = %v, want 10", got)
	}
}
