package shaped

import "testing"

func TestColorListForState(t *testing.T) {
	list := NewColorList(RGB(0.5, 0.5, 0.5)).
		Add(StatePressed, RGB(0, 0, 1)).
		Add(StateFocused, RGB(0, 1, 0))

	tests := []struct {
		name  string
		state State
		want  RGBA
	}{
		{"fallback", StateEnabled, RGB(0.5, 0.5, 0.5)},
		{"pressed", StateEnabled | StatePressed, RGB(0, 0, 1)},
		{"focused", StateEnabled | StateFocused, RGB(0, 1, 0)},
		{"first match wins", StatePressed | StateFocused, RGB(0, 0, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := list.ForState(tt.state); got != tt.want {
				t.Errorf("ForState(%v) = %v, want %v", tt.state, got, tt.want)
			}
		})
	}
}

func TestColorListIsStateful(t *testing.T) {
	if SolidColorList(Black).IsStateful() {
		t.Error("solid list should not be stateful")
	}
	if !NewColorList(Black).Add(StatePressed, White).IsStateful() {
		t.Error("list with entries should be stateful")
	}
	var nilList *ColorList
	if nilList.IsStateful() {
		t.Error("nil list should not be stateful")
	}
}

func TestBlendModes(t *testing.T) {
	dst := RGB(1, 0, 0).WithAlpha(0.5)
	tint := RGB(0, 0, 1)

	// Src-in keeps the tint color at the destination's alpha.
	got := BlendSrcIn.Blend(dst, tint)
	want := RGB(0, 0, 1).WithAlpha(0.5)
	if !colorsClose(got, want, 1e-9) {
		t.Errorf("BlendSrcIn = %v, want %v", got, want)
	}

	// Opaque src-over replaces the destination.
	got = BlendSrcOver.Blend(dst, tint)
	if !colorsClose(got, tint, 1e-9) {
		t.Errorf("BlendSrcOver(opaque) = %v, want %v", got, tint)
	}
}
