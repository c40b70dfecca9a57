package shaped

import "math"

// RadialGradientBrush represents a radial color transition.
// Colors radiate from the center between StartRadius and EndRadius.
// It implements the Brush interface and supports multiple color stops and
// configurable extend modes. The shadow renderer uses radial gradients for
// the penumbra ring around each treated corner.
//
// Example:
//
//	gradient := shaped.NewRadialGradientBrush(0, 0, 16, 24).
//	    AddColorStop(0, shaped.Black.WithAlpha(0.27)).
//	    AddColorStop(1, shaped.Transparent)
type RadialGradientBrush struct {
	Center      Point       // Center of the gradient circle
	StartRadius float64     // Inner radius where gradient begins (t=0)
	EndRadius   float64     // Outer radius where gradient ends (t=1)
	Stops       []ColorStop // Color stops defining the gradient
	Extend      ExtendMode  // How gradient extends beyond bounds
}

// NewRadialGradientBrush creates a new radial gradient.
// The gradient transitions from startRadius to endRadius around (cx, cy).
func NewRadialGradientBrush(cx, cy, startRadius, endRadius float64) *RadialGradientBrush {
	return &RadialGradientBrush{
		Center:      Point{X: cx, Y: cy},
		StartRadius: startRadius,
		EndRadius:   endRadius,
		Stops:       nil,
		Extend:      ExtendPad,
	}
}

// AddColorStop adds a color stop at the specified offset.
// Offset should be in the range [0, 1].
// Returns the gradient for method chaining.
func (g *RadialGradientBrush) AddColorStop(offset float64, c RGBA) *RadialGradientBrush {
	g.Stops = append(g.Stops, ColorStop{Offset: offset, Color: c})
	return g
}

// brushMarker implements the Brush interface marker.
func (RadialGradientBrush) brushMarker() {}

// ColorAt returns the color at the given point.
// Implements the Brush interface.
func (g *RadialGradientBrush) ColorAt(x, y float64) RGBA {
	radiusDiff := g.EndRadius - g.StartRadius
	if radiusDiff == 0 {
		return firstStopColor(g.Stops)
	}

	dx := x - g.Center.X
	dy := y - g.Center.Y
	dist := math.Sqrt(dx*dx + dy*dy)
	t := (dist - g.StartRadius) / radiusDiff

	return colorAtOffset(g.Stops, t, g.Extend)
}
