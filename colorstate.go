package shaped

// BlendMode selects how a tint color combines with the color it tints.
type BlendMode int

const (
	// BlendSrcIn keeps the tint color and the tinted color's alpha. This
	// is the default tint mode.
	BlendSrcIn BlendMode = iota
	// BlendSrcOver composites the tint over the tinted color.
	BlendSrcOver
)

// Blend combines src onto dst using the blend mode and returns the
// result.
func (m BlendMode) Blend(dst, src RGBA) RGBA {
	switch m {
	case BlendSrcOver:
		return src.Over(dst)
	default:
		return src.WithAlpha(src.A * dst.A)
	}
}

type colorEntry struct {
	spec  State
	color RGBA
}

// ColorList maps widget states to colors. Entries are matched in
// insertion order and the first entry whose state bits are all present
// wins, falling back to the default color.
//
//	tint := shaped.NewColorList(gray).
//	    Add(shaped.StatePressed, blue).
//	    Add(shaped.StateFocused, lightBlue)
type ColorList struct {
	entries      []colorEntry
	defaultColor RGBA
}

// NewColorList creates a list that falls back to defaultColor when no
// entry matches.
func NewColorList(defaultColor RGBA) *ColorList {
	return &ColorList{defaultColor: defaultColor}
}

// SolidColorList returns a list that resolves to c for every state.
func SolidColorList(c RGBA) *ColorList {
	return NewColorList(c)
}

// Add appends an entry matched when all bits of spec are set.
// Returns the list for chaining.
func (l *ColorList) Add(spec State, c RGBA) *ColorList {
	l.entries = append(l.entries, colorEntry{spec: spec, color: c})
	return l
}

// ForState returns the color for the given state.
func (l *ColorList) ForState(state State) RGBA {
	for _, e := range l.entries {
		if state.Contains(e.spec) {
			return e.color
		}
	}
	return l.defaultColor
}

// DefaultColor returns the fallback color.
func (l *ColorList) DefaultColor() RGBA {
	return l.defaultColor
}

// IsStateful reports whether the resolved color can change with state.
func (l *ColorList) IsStateful() bool {
	return l != nil && len(l.entries) > 0
}
