package shaped

import "math"

// ElevationOverlay lightens or darkens a surface color as a function of
// elevation, so that raised surfaces remain distinguishable on themes
// where shadows alone are too subtle.
type ElevationOverlay interface {
	// CompositeOverlay returns color with the elevation overlay applied.
	CompositeOverlay(color RGBA, elevation float64) RGBA
}

// OverlayProvider is the standard ElevationOverlay: it layers a
// semi-transparent overlay color whose opacity grows logarithmically
// with elevation.
type OverlayProvider struct {
	enabled      bool
	overlayColor RGBA
	surfaceColor RGBA
}

// NewOverlayProvider creates an overlay provider. When enabled is false
// all composite calls return their input unchanged. The overlay color is
// typically white on dark themes; the surface color is the theme's base
// surface color.
func NewOverlayProvider(enabled bool, overlayColor, surfaceColor RGBA) *OverlayProvider {
	return &OverlayProvider{
		enabled:      enabled,
		overlayColor: overlayColor,
		surfaceColor: surfaceColor,
	}
}

// Enabled reports whether the overlay is active.
func (p *OverlayProvider) Enabled() bool { return p.enabled }

// OverlayAlpha returns the overlay opacity for the given elevation, in
// [0, 1]. The curve is logarithmic so the first few units of elevation
// produce the most visible change.
func (p *OverlayProvider) OverlayAlpha(elevation float64) float64 {
	if elevation <= 0 {
		return 0
	}
	alpha := (4.5*math.Log(elevation+1) + 2) / 100
	if alpha > 1 {
		alpha = 1
	}
	return alpha
}

// CompositeOverlay implements ElevationOverlay. The overlay is layered
// onto the color at the elevation's opacity; the color's own alpha is
// preserved.
func (p *OverlayProvider) CompositeOverlay(color RGBA, elevation float64) RGBA {
	if !p.enabled {
		return color
	}
	alpha := p.OverlayAlpha(elevation)
	blended := color.Lerp(p.overlayColor, alpha)
	return blended.WithAlpha(color.A)
}

// CompositeOverlayIfNeeded applies the overlay only when color matches
// the theme surface color. Custom-colored surfaces are left alone.
func (p *OverlayProvider) CompositeOverlayIfNeeded(color RGBA, elevation float64) RGBA {
	if !p.enabled || color.WithAlpha(1) != p.surfaceColor.WithAlpha(1) {
		return color
	}
	return p.CompositeOverlay(color, elevation)
}
