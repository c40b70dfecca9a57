package shaped

// Option configures a Drawable at construction time.
type Option func(*Drawable)

// WithFillColor sets a solid fill color.
func WithFillColor(c RGBA) Option {
	return func(d *Drawable) {
		d.state.fillColor = SolidColorList(c)
	}
}

// WithFillColorList sets a state-dependent fill color.
func WithFillColorList(l *ColorList) Option {
	return func(d *Drawable) {
		d.state.fillColor = l
	}
}

// WithStroke sets the stroke width and a solid stroke color.
func WithStroke(width float64, c RGBA) Option {
	return func(d *Drawable) {
		d.SetStroke(width, c)
	}
}

// WithElevation sets the base elevation.
func WithElevation(elevation float64) Option {
	return func(d *Drawable) {
		d.SetElevation(elevation)
	}
}

// WithShadowCompatMode sets when the compatibility shadow is drawn.
func WithShadowCompatMode(mode ShadowCompatMode) Option {
	return func(d *Drawable) {
		d.state.shadowCompatMode = mode
	}
}

// WithShadowColor sets the base color of the compatibility shadow.
func WithShadowColor(c RGBA) Option {
	return func(d *Drawable) {
		d.shadowRenderer.SetShadowColor(c)
	}
}

// WithElevationOverlay installs an elevation overlay for the fill color.
func WithElevationOverlay(overlay ElevationOverlay) Option {
	return func(d *Drawable) {
		d.state.elevationOverlay = overlay
	}
}

// WithInterpolation sets the initial treatment interpolation.
func WithInterpolation(interpolation float64) Option {
	return func(d *Drawable) {
		d.state.interpolation = clamp01(interpolation)
	}
}

// WithPaintStyle selects whether the drawable fills, strokes, or both.
func WithPaintStyle(style Style) Option {
	return func(d *Drawable) {
		d.state.paintStyle = style
	}
}

// WithStateShapes installs a state-to-shape mapping that overrides the
// base model per widget state.
func WithStateShapes(shapes *StateShapeList) Option {
	return func(d *Drawable) {
		d.state.stateShapes = shapes
	}
}

// WithCornerSprings enables spring-animated corner size changes using
// the given spring force.
func WithCornerSprings(force SpringForce) Option {
	return func(d *Drawable) {
		d.EnableCornerSprings(force)
	}
}

// WithNativeShadowSupport declares whether the target canvas can cast
// shadows from the exported outline itself. Without it, every elevated
// shape uses the compatibility shadow.
func WithNativeShadowSupport(enabled bool) Option {
	return func(d *Drawable) {
		d.state.nativeShadowSupport = enabled
	}
}

// WithTint sets a solid tint color.
func WithTint(c RGBA) Option {
	return func(d *Drawable) {
		d.state.tintList = SolidColorList(c)
	}
}
