package shaped

// Style specifies whether a paint fills, strokes, or does both.
type Style int

const (
	// StyleFillAndStroke fills the shape and strokes its outline.
	StyleFillAndStroke Style = iota
	// StyleFill only fills the shape.
	StyleFill
	// StyleStroke only strokes the outline.
	StyleStroke
)

// CompositeMode specifies how painted pixels combine with the destination.
type CompositeMode int

const (
	// CompositeOver is standard source-over alpha compositing.
	CompositeOver CompositeMode = iota
	// CompositeDstOut erases destination pixels where the source is
	// opaque. Used by the shadow clear pass to remove shadow pixels
	// covered by the shape itself.
	CompositeDstOut
)

// Paint represents the styling information for a single draw operation.
type Paint struct {
	// Brush is the fill or stroke brush.
	Brush Brush

	// LineWidth is the width of strokes.
	LineWidth float64

	// Composite selects how pixels combine with the destination.
	Composite CompositeMode

	// Alpha scales the brush alpha, in [0, 1].
	Alpha float64
}

// NewPaint creates a new Paint with default values.
func NewPaint() *Paint {
	return &Paint{
		Brush:     Solid(Black),
		LineWidth: 1.0,
		Composite: CompositeOver,
		Alpha:     1.0,
	}
}

// Clone creates a copy of the Paint.
func (p *Paint) Clone() *Paint {
	clone := *p
	return &clone
}

// SetBrush sets the brush for this Paint.
func (p *Paint) SetBrush(b Brush) {
	p.Brush = b
}

// ColorAt returns the paint color at the given position with the paint's
// alpha modulation applied.
func (p *Paint) ColorAt(x, y float64) RGBA {
	if p.Brush == nil {
		return Black.ModulateAlpha(p.Alpha)
	}
	return p.Brush.ColorAt(x, y).ModulateAlpha(p.Alpha)
}
