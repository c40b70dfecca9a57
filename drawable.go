package shaped

import (
	"fmt"
	"math"
)

// Multipliers from total Z to the compat shadow's blur radius and
// vertical offset, approximating the native shadow's appearance.
const (
	shadowRadiusMultiplier = 0.75
	shadowOffsetMultiplier = 0.25
)

// ShadowCompatMode controls when a drawable falls back to the
// gradient-based compatibility shadow instead of relying on the
// canvas's native shadow.
type ShadowCompatMode int

const (
	// ShadowCompatModeDefault draws the compatibility shadow only when
	// the shape cannot be shadowed natively.
	ShadowCompatModeDefault ShadowCompatMode = iota
	// ShadowCompatModeNever never draws the compatibility shadow.
	ShadowCompatModeNever
	// ShadowCompatModeAlways always draws the compatibility shadow,
	// useful for debugging or for canvases that report native support
	// they do not honor.
	ShadowCompatModeAlways
)

// drawableState holds everything that describes a Drawable's appearance.
// Drawables created from one another share a state until Mutate forks it.
type drawableState struct {
	model       *ShapeModel
	stateShapes *StateShapeList

	fillColor        *ColorList
	strokeColor      *ColorList
	tintList         *ColorList
	tintMode         BlendMode
	elevationOverlay ElevationOverlay

	alpha         float64
	scale         float64
	interpolation float64
	strokeWidth   float64

	elevation               float64
	translationZ            float64
	parentAbsoluteElevation float64

	shadowCompatMode     ShadowCompatMode
	shadowCompatRadius   float64
	shadowCompatOffset   float64
	shadowCompatRotation float64

	paintStyle Style

	// padding: left, top, right, bottom.
	padding [4]float64

	nativeShadowSupport   bool
	shadowBitmapDrawing   bool
	useTintColorForShadow bool
}

// Drawable renders a ShapeModel with a fill, an optional stroke, and an
// optional shadow onto a Canvas. It caches the synthesized outline and
// only rebuilds it when the shape, bounds, or interpolation change.
//
// A Drawable is not safe for concurrent use.
type Drawable struct {
	state *drawableState

	bounds    Rect
	boundsSet bool

	currentState State

	pathDirty       bool
	strokePathDirty bool

	path       Path
	strokePath Path
	pathBounds Rect
	pathResult PathResult

	synthesizer    *Synthesizer
	shadowRenderer *ShadowRenderer

	springAnimator     *CornerSpringAnimator
	onCornerSizeChange func(diffX float64)
}

// NewDrawable creates a drawable for the given shape model. By default
// it fills with black, has no stroke, no elevation, and full
// interpolation.
func NewDrawable(model *ShapeModel, opts ...Option) *Drawable {
	d := &Drawable{
		state: &drawableState{
			model:               model,
			fillColor:           SolidColorList(Black),
			strokeColor:         SolidColorList(Transparent),
			tintMode:            BlendSrcIn,
			alpha:               1,
			scale:               1,
			interpolation:       1,
			shadowCompatMode:    ShadowCompatModeDefault,
			paintStyle:          StyleFillAndStroke,
			shadowBitmapDrawing: true,
		},
		currentState:    StateEnabled,
		pathDirty:       true,
		strokePathDirty: true,
		synthesizer:     NewSynthesizer(),
		shadowRenderer:  NewShadowRenderer(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Mutate forks the drawable's shared state so that subsequent setter
// calls no longer affect drawables this one was created from. Returns
// the receiver.
func (d *Drawable) Mutate() *Drawable {
	forked := *d.state
	d.state = &forked
	renderer := *d.shadowRenderer
	d.shadowRenderer = &renderer
	d.invalidateShape()
	return d
}

// invalidateShape marks both cached outlines stale.
func (d *Drawable) invalidateShape() {
	d.pathDirty = true
	d.strokePathDirty = true
}

// ShapeModel returns the drawable's base shape model.
func (d *Drawable) ShapeModel() *ShapeModel { return d.state.model }

// SetShapeModel replaces the shape model and retargets the corner
// springs if they are enabled.
func (d *Drawable) SetShapeModel(model *ShapeModel) {
	d.state.model = model
	if d.springAnimator != nil && d.boundsSet {
		d.springAnimator.SetTargets(d.springTargets(d.bounds))
	}
	d.invalidateShape()
}

// SetStateShapes installs a state-to-shape mapping that overrides the
// base model per widget state. Pass nil to remove it.
func (d *Drawable) SetStateShapes(shapes *StateShapeList) {
	d.state.stateShapes = shapes
	d.invalidateShape()
}

// Bounds returns the drawable's bounds.
func (d *Drawable) Bounds() Rect { return d.bounds }

// SetBounds sets the rectangle the shape is rendered into. The first
// call snaps the corner springs directly to their targets so the shape
// never animates from a zero size; later calls retarget them.
func (d *Drawable) SetBounds(bounds Rect) {
	if d.boundsSet && bounds == d.bounds {
		return
	}
	first := !d.boundsSet
	d.bounds = bounds
	d.boundsSet = true

	if d.springAnimator != nil {
		targets := d.springTargets(bounds)
		if first {
			d.springAnimator.SnapTo(targets)
		} else {
			d.springAnimator.SetTargets(targets)
		}
	}
	d.invalidateShape()
}

// State returns the current widget state bits.
func (d *Drawable) State() State { return d.currentState }

// SetState updates the widget state and reports whether the change
// affects the drawable's appearance.
func (d *Drawable) SetState(state State) bool {
	if state == d.currentState {
		return false
	}
	old := d.currentState
	d.currentState = state

	changed := false
	if d.state.fillColor.IsStateful() &&
		d.state.fillColor.ForState(old) != d.state.fillColor.ForState(state) {
		changed = true
	}
	if d.state.strokeColor.IsStateful() &&
		d.state.strokeColor.ForState(old) != d.state.strokeColor.ForState(state) {
		changed = true
	}
	if d.state.tintList.IsStateful() &&
		d.state.tintList.ForState(old) != d.state.tintList.ForState(state) {
		changed = true
	}
	if d.state.stateShapes != nil &&
		d.state.stateShapes.ModelFor(old) != d.state.stateShapes.ModelFor(state) {
		if d.springAnimator != nil && d.boundsSet {
			d.springAnimator.SetTargets(d.springTargets(d.bounds))
		}
		d.invalidateShape()
		changed = true
	}
	return changed
}

// SetFillColor sets the state-dependent fill color.
func (d *Drawable) SetFillColor(c *ColorList) { d.state.fillColor = c }

// FillColor returns the state-dependent fill color.
func (d *Drawable) FillColor() *ColorList { return d.state.fillColor }

// SetStroke sets the stroke width and a solid stroke color.
func (d *Drawable) SetStroke(width float64, c RGBA) {
	d.SetStrokeWidth(width)
	d.state.strokeColor = SolidColorList(c)
}

// SetStrokeColor sets the state-dependent stroke color.
func (d *Drawable) SetStrokeColor(c *ColorList) { d.state.strokeColor = c }

// StrokeColor returns the state-dependent stroke color.
func (d *Drawable) StrokeColor() *ColorList { return d.state.strokeColor }

// SetStrokeWidth sets the stroke width. The stroke is centered on the
// inset outline, so it never paints outside the fill shape's bounds.
func (d *Drawable) SetStrokeWidth(width float64) {
	d.state.strokeWidth = width
	d.strokePathDirty = true
}

// StrokeWidth returns the stroke width.
func (d *Drawable) StrokeWidth() float64 { return d.state.strokeWidth }

// SetTintList sets the state-dependent tint. Pass nil to remove tinting.
func (d *Drawable) SetTintList(tint *ColorList) { d.state.tintList = tint }

// SetTint sets a solid tint color.
func (d *Drawable) SetTint(c RGBA) { d.state.tintList = SolidColorList(c) }

// SetTintBlendMode sets how the tint combines with the fill color.
func (d *Drawable) SetTintBlendMode(mode BlendMode) { d.state.tintMode = mode }

// SetAlpha sets the overall opacity in [0, 1].
func (d *Drawable) SetAlpha(alpha float64) { d.state.alpha = clamp01(alpha) }

// Alpha returns the overall opacity.
func (d *Drawable) Alpha() float64 { return d.state.alpha }

// SetPaintStyle selects whether the drawable fills, strokes, or does
// both.
func (d *Drawable) SetPaintStyle(style Style) { d.state.paintStyle = style }

// PaintStyle returns the paint style.
func (d *Drawable) PaintStyle() Style { return d.state.paintStyle }

// SetInterpolation scales all corner and edge treatments between an
// untreated rectangle at 0 and the full shape at 1. Values outside
// [0, 1] are clamped.
func (d *Drawable) SetInterpolation(interpolation float64) {
	interpolation = clamp01(interpolation)
	if interpolation == d.state.interpolation {
		return
	}
	d.state.interpolation = interpolation
	d.invalidateShape()
}

// Interpolation returns the treatment interpolation.
func (d *Drawable) Interpolation() float64 { return d.state.interpolation }

// SetScale scales the rendered outline about the bounds center. A scale
// other than 1 disables the round rect fast path.
func (d *Drawable) SetScale(scale float64) {
	if scale == d.state.scale {
		return
	}
	d.state.scale = scale
	d.invalidateShape()
}

// Scale returns the outline scale.
func (d *Drawable) Scale() float64 { return d.state.scale }

// SetPadding sets the padding hint returned by Padding. Padding does not
// affect rendering; containers use it to keep content inside the shape.
func (d *Drawable) SetPadding(left, top, right, bottom float64) {
	d.state.padding = [4]float64{left, top, right, bottom}
}

// Padding returns the padding hint as left, top, right, bottom.
func (d *Drawable) Padding() (left, top, right, bottom float64) {
	p := d.state.padding
	return p[0], p[1], p[2], p[3]
}

// Elevation returns the base elevation.
func (d *Drawable) Elevation() float64 { return d.state.elevation }

// SetElevation sets the base elevation, which drives the shadow size and
// the elevation overlay.
func (d *Drawable) SetElevation(elevation float64) {
	if elevation == d.state.elevation {
		return
	}
	d.state.elevation = elevation
	d.updateZ()
}

// TranslationZ returns the dynamic Z offset added to the elevation.
func (d *Drawable) TranslationZ() float64 { return d.state.translationZ }

// SetTranslationZ sets the dynamic Z offset, typically animated while a
// widget is pressed or dragged.
func (d *Drawable) SetTranslationZ(translationZ float64) {
	if translationZ == d.state.translationZ {
		return
	}
	d.state.translationZ = translationZ
	d.updateZ()
}

// Z returns the total elevation, base plus translation.
func (d *Drawable) Z() float64 { return d.state.elevation + d.state.translationZ }

// SetZ adjusts the translation so the total elevation equals z.
func (d *Drawable) SetZ(z float64) {
	d.SetTranslationZ(z - d.state.elevation)
}

// SetParentAbsoluteElevation sets the absolute elevation of the surface
// the drawable sits on, which feeds into the elevation overlay.
func (d *Drawable) SetParentAbsoluteElevation(elevation float64) {
	d.state.parentAbsoluteElevation = elevation
}

func (d *Drawable) updateZ() {
	z := d.Z()
	d.state.shadowCompatRadius = math.Ceil(z * shadowRadiusMultiplier)
	d.state.shadowCompatOffset = math.Ceil(z * shadowOffsetMultiplier)
}

// SetShadowCompatMode sets when the compatibility shadow is drawn.
func (d *Drawable) SetShadowCompatMode(mode ShadowCompatMode) {
	d.state.shadowCompatMode = mode
}

// ShadowCompatMode returns the compatibility shadow mode.
func (d *Drawable) ShadowCompatMode() ShadowCompatMode { return d.state.shadowCompatMode }

// SetShadowColor sets the base color of the compatibility shadow.
func (d *Drawable) SetShadowColor(c RGBA) { d.shadowRenderer.SetShadowColor(c) }

// SetUseTintColorForShadow makes the compat shadow take its color from
// the tint list instead of the configured shadow color.
func (d *Drawable) SetUseTintColorForShadow(enabled bool) {
	d.state.useTintColorForShadow = enabled
}

// SetShadowCompatRotation rotates the direction the compat shadow is
// offset in, in degrees. Zero offsets the shadow straight down.
func (d *Drawable) SetShadowCompatRotation(degrees float64) {
	d.state.shadowCompatRotation = degrees
}

// ShadowCompatRadius returns the current compat shadow blur radius,
// derived from Z.
func (d *Drawable) ShadowCompatRadius() float64 { return d.state.shadowCompatRadius }

// SetShadowBitmapDrawing controls whether the compat shadow renders
// through an intermediate layer. The layer keeps the shadow's erase pass
// from clearing canvas content beneath the shape; disable it only on
// canvases drawn back to front.
func (d *Drawable) SetShadowBitmapDrawing(enabled bool) {
	d.state.shadowBitmapDrawing = enabled
}

// SetElevationOverlay installs an elevation overlay applied to the fill
// color. Pass nil to remove it.
func (d *Drawable) SetElevationOverlay(overlay ElevationOverlay) {
	d.state.elevationOverlay = overlay
}

// EnableCornerSprings makes corner size changes animate with the given
// spring instead of jumping. Drive the animation with TickCornerSprings.
func (d *Drawable) EnableCornerSprings(force SpringForce) {
	d.springAnimator = NewCornerSpringAnimator(force)
	if d.boundsSet {
		d.springAnimator.SnapTo(d.springTargets(d.bounds))
	}
}

// CornerSprings returns the corner spring animator, or nil when corner
// springs are disabled.
func (d *Drawable) CornerSprings() *CornerSpringAnimator { return d.springAnimator }

// TickCornerSprings advances the corner springs by deltaT seconds and
// reports whether another tick is needed. The outline is marked stale
// whenever a spring moved.
func (d *Drawable) TickCornerSprings(deltaT float64) bool {
	if d.springAnimator == nil {
		return false
	}
	before := d.springAnimator.CurrentValues()
	running := d.springAnimator.Tick(deltaT)
	if d.springAnimator.CurrentValues() != before {
		d.invalidateShape()
		if d.onCornerSizeChange != nil {
			d.onCornerSizeChange(d.CornerSizeDiffX())
		}
	}
	return running
}

// OnCornerSizeChange registers a callback fired on every spring tick
// that moved a corner, with the current horizontal corner asymmetry.
// Hosts use it to re-center content while corners morph unevenly. Pass
// nil to remove the callback.
func (d *Drawable) OnCornerSizeChange(fn func(diffX float64)) {
	d.onCornerSizeChange = fn
}

// stateModel returns the shape model for the current widget state,
// before spring animation.
func (d *Drawable) stateModel() *ShapeModel {
	if d.state.stateShapes != nil {
		return d.state.stateShapes.ModelFor(d.currentState)
	}
	return d.state.model
}

// springTargets resolves the state model's corner sizes against bounds.
func (d *Drawable) springTargets(bounds Rect) [4]float64 {
	model := d.stateModel()
	var targets [4]float64
	for i := 0; i < 4; i++ {
		targets[i] = model.CornerSizeAt(i).Resolve(bounds)
	}
	return targets
}

// cornerOverrides returns the spring-animated corner sizes to substitute
// for the model's own, or nil when corners are not animating.
func (d *Drawable) cornerOverrides() []float64 {
	if d.springAnimator == nil || !d.boundsSet {
		return nil
	}
	vals := d.springAnimator.CurrentValues()
	return vals[:]
}

// resolvedCornerSize returns the rendered size of the given corner.
func (d *Drawable) resolvedCornerSize(index int) float64 {
	if o := d.cornerOverrides(); o != nil {
		return o[index]
	}
	return d.stateModel().CornerSizeAt(index).Resolve(d.bounds)
}

// TopRightCornerResolvedSize returns the rendered top right corner size.
func (d *Drawable) TopRightCornerResolvedSize() float64 {
	return d.resolvedCornerSize(CornerTopRight)
}

// BottomRightCornerResolvedSize returns the rendered bottom right corner size.
func (d *Drawable) BottomRightCornerResolvedSize() float64 {
	return d.resolvedCornerSize(CornerBottomRight)
}

// BottomLeftCornerResolvedSize returns the rendered bottom left corner size.
func (d *Drawable) BottomLeftCornerResolvedSize() float64 {
	return d.resolvedCornerSize(CornerBottomLeft)
}

// TopLeftCornerResolvedSize returns the rendered top left corner size.
func (d *Drawable) TopLeftCornerResolvedSize() float64 {
	return d.resolvedCornerSize(CornerTopLeft)
}

// CornerSizeDiffX returns half the difference between the summed right
// and left corner sizes. Layouts use it to keep asymmetric shapes
// visually centered while their corners animate.
func (d *Drawable) CornerSizeDiffX() float64 {
	right := d.BottomRightCornerResolvedSize() + d.TopRightCornerResolvedSize()
	left := d.BottomLeftCornerResolvedSize() + d.TopLeftCornerResolvedSize()
	return (right - left) / 2
}

// roundRectCornerSize returns the uniform rendered corner radius when
// the drawn shape reduces to a round rect, and -1 otherwise. Draw and
// Outline both consult it so the fast path and the exported outline can
// never disagree.
func (d *Drawable) roundRectCornerSize() float64 {
	if d.state.scale != 1 {
		return -1
	}
	model := d.stateModel()
	o := d.cornerOverrides()
	if o == nil {
		if !model.IsRoundRect(d.bounds) {
			return -1
		}
		return model.CornerSizeAt(CornerTopRight).Resolve(d.bounds) * d.state.interpolation
	}
	for _, v := range o[1:] {
		if v != o[0] {
			return -1
		}
	}
	if !model.HasRoundedCorners() || !model.hasStraightEdges() {
		return -1
	}
	return o[0] * d.state.interpolation
}

// IsRoundRect reports whether the rendered shape reduces to a round
// rect for the current bounds.
func (d *Drawable) IsRoundRect() bool {
	return d.roundRectCornerSize() >= 0
}

// RequiresCompatShadow reports whether the shape cannot be shadowed
// natively: it is neither a round rect nor convex, and the canvas cannot
// cast native shadows for such outlines. Round rects and convex shapes
// never need the compat shadow outside of ShadowCompatModeAlways.
func (d *Drawable) RequiresCompatShadow() bool {
	d.updatePaths()
	return !d.IsRoundRect() && !d.path.IsConvex() && !d.state.nativeShadowSupport
}

func (d *Drawable) hasCompatShadow() bool {
	return d.state.shadowCompatMode != ShadowCompatModeNever &&
		d.state.shadowCompatRadius > 0 &&
		(d.state.shadowCompatMode == ShadowCompatModeAlways || d.RequiresCompatShadow())
}

// updatePaths rebuilds the cached fill and stroke outlines if stale.
func (d *Drawable) updatePaths() {
	if d.pathDirty {
		d.pathResult = d.synthesizer.SynthesizeWithCornerOverrides(
			d.stateModel(), d.state.interpolation, d.bounds, d.cornerOverrides(), &d.path)
		if d.state.scale != 1 {
			d.path = *d.path.Transform(ScaleAbout(d.state.scale, d.bounds.Center()))
			d.pathResult.Path = &d.path
			d.pathResult.Bounds = d.path.Bounds()
		}
		d.pathBounds = d.pathResult.Bounds
		d.pathDirty = false
		Logger().Debug("outline rebuilt",
			"bounds", d.bounds,
			"interpolation", d.state.interpolation)
	}
	if d.strokePathDirty {
		d.updateStrokePath()
		d.strokePathDirty = false
	}
}

// updateStrokePath synthesizes the stroke outline on bounds inset by
// half the stroke width, with corner sizes reduced to match, so the
// stroke stays entirely inside the fill shape.
func (d *Drawable) updateStrokePath() {
	inset := d.state.strokeWidth / 2
	if inset <= 0 {
		d.strokePath.Clear()
		return
	}
	model := d.stateModel().WithCornerSizes(func(s CornerSize) CornerSize {
		return Adjusted(s, -inset)
	})
	overrides := d.cornerOverrides()
	if overrides != nil {
		adjusted := make([]float64, len(overrides))
		for i, v := range overrides {
			adjusted[i] = math.Max(0, v-inset)
		}
		overrides = adjusted
	}
	d.synthesizer.SynthesizeWithCornerOverrides(model, d.state.interpolation, d.bounds.Inset(inset), overrides, &d.strokePath)
	if d.state.scale != 1 {
		d.strokePath = *d.strokePath.Transform(ScaleAbout(d.state.scale, d.bounds.Center()))
	}
}

func (d *Drawable) hasFill() bool {
	return d.state.paintStyle == StyleFillAndStroke || d.state.paintStyle == StyleFill
}

func (d *Drawable) hasStroke() bool {
	if d.state.paintStyle != StyleFillAndStroke && d.state.paintStyle != StyleStroke {
		return false
	}
	return d.state.strokeWidth > 0 && d.state.strokeColor.ForState(d.currentState).A > 0
}

// resolvedFillColor applies the elevation overlay and tint to the
// state-resolved fill color.
func (d *Drawable) resolvedFillColor() RGBA {
	c := d.state.fillColor.ForState(d.currentState)
	if d.state.elevationOverlay != nil {
		c = d.state.elevationOverlay.CompositeOverlay(c, d.Z()+d.state.parentAbsoluteElevation)
	}
	if d.state.tintList != nil {
		c = d.state.tintMode.Blend(c, d.state.tintList.ForState(d.currentState))
	}
	return c
}

// Draw renders the shape onto the canvas: compat shadow first, then
// fill, then stroke.
func (d *Drawable) Draw(canvas Canvas) {
	if !d.boundsSet || d.bounds.IsEmpty() {
		return
	}
	d.updatePaths()

	if d.hasCompatShadow() {
		canvas.Save()
		dx, dy := d.shadowOffset()
		canvas.Translate(dx, dy)
		if d.state.shadowBitmapDrawing {
			d.drawShadowLayer(canvas)
		} else {
			d.drawCompatShadow(canvas)
		}
		canvas.Restore()
	}

	if d.hasFill() {
		d.drawFill(canvas)
	}
	if d.hasStroke() {
		d.drawStroke(canvas)
	}
}

// shadowOffset returns the compat shadow displacement, rotated by the
// configured shadow rotation. Zero rotation pushes the shadow straight
// down.
func (d *Drawable) shadowOffset() (float64, float64) {
	rad := d.state.shadowCompatRotation * math.Pi / 180
	return d.state.shadowCompatOffset * math.Sin(rad),
		d.state.shadowCompatOffset * math.Cos(rad)
}

// drawShadowLayer renders the compat shadow into an intermediate pixmap
// and composites it in one step, so the shadow's erase pass cannot
// punch through content already on the canvas.
func (d *Drawable) drawShadowLayer(canvas Canvas) {
	radius := d.state.shadowCompatRadius

	// Room for edge treatments that extend past the bounds.
	extraW := d.pathBounds.Width() - d.bounds.Width()
	extraH := d.pathBounds.Height() - d.bounds.Height()
	if extraW < 0 || extraH < 0 {
		panic(fmt.Sprintf(
			"shaped: compat shadow requires bounds (%gx%g) to cover the shape (%gx%g)",
			d.bounds.Width(), d.bounds.Height(), d.pathBounds.Width(), d.pathBounds.Height()))
	}

	layerW := int(math.Ceil(d.pathBounds.Width() + 2*radius + extraW))
	layerH := int(math.Ceil(d.pathBounds.Height() + 2*radius + extraH))
	if layerW <= 0 || layerH <= 0 {
		return
	}
	left := d.bounds.Min.X - radius - extraW
	top := d.bounds.Min.Y - radius - extraH

	layer := NewPixmap(layerW, layerH)
	layerCanvas := NewSoftCanvasFor(layer)
	layerCanvas.Translate(-left, -top)
	d.drawCompatShadow(layerCanvas)

	canvas.DrawPixmap(layer, left, top, 1)
}

// drawCompatShadow draws the gradient shadow of every outline segment,
// then erases the part covered by the shape itself so translucent fills
// do not show the shadow through.
func (d *Drawable) drawCompatShadow(canvas Canvas) {
	if !d.pathResult.ShadowCompatible() {
		Logger().Warn("compat shadow requested but shape contains operations it cannot render")
	}

	if d.state.useTintColorForShadow && d.state.tintList != nil {
		d.shadowRenderer.SetShadowColor(d.state.tintList.ForState(d.currentState))
	}

	radius := d.state.shadowCompatRadius
	if d.state.shadowCompatOffset != 0 {
		// With a nonzero offset the shape no longer covers the hole in
		// the middle of the shadow ring; fill it.
		paint := NewPaint()
		paint.SetBrush(Solid(d.shadowRenderer.startColor))
		canvas.FillPath(&d.path, paint, StyleFill)
	}

	for _, seg := range d.pathResult.Segments {
		seg.Shadow.DrawShadow(seg.Transform, d.shadowRenderer, radius, canvas)
	}

	// Erase the shadow where the shape itself will sit. The canvas is
	// still translated by the shadow offset, so step back to the shape's
	// true position first. Skipped when drawing without the bitmap
	// layer, where DstOut would punch through content already on the
	// canvas.
	if d.state.shadowBitmapDrawing {
		dx, dy := d.shadowOffset()
		clear := NewPaint()
		clear.SetBrush(Solid(White))
		clear.Composite = CompositeDstOut
		canvas.Save()
		canvas.Translate(-dx, -dy)
		canvas.FillPath(&d.path, clear, StyleFill)
		canvas.Restore()
	}
}

func (d *Drawable) drawFill(canvas Canvas) {
	paint := NewPaint()
	paint.SetBrush(Solid(d.resolvedFillColor()))
	paint.Alpha = d.state.alpha

	if size := d.roundRectCornerSize(); size >= 0 {
		canvas.DrawRoundRect(d.bounds, size, paint, StyleFill)
		return
	}
	canvas.FillPath(&d.path, paint, StyleFill)
}

func (d *Drawable) drawStroke(canvas Canvas) {
	paint := NewPaint()
	paint.SetBrush(Solid(d.state.strokeColor.ForState(d.currentState)))
	paint.Alpha = d.state.alpha
	paint.LineWidth = d.state.strokeWidth

	if d.IsRoundRect() {
		inset := d.state.strokeWidth / 2
		radius := math.Max(0, d.resolvedCornerSize(CornerTopRight)-inset) * d.state.interpolation
		canvas.DrawRoundRect(d.bounds.Inset(inset), radius, paint, StyleStroke)
		return
	}
	canvas.FillPath(&d.strokePath, paint, StyleStroke)
}

// Outline describes the rendered shape for hit testing, clipping, and
// native shadow casting.
type Outline struct {
	// IsRoundRect is true when the outline is exactly Rect with a
	// uniform Radius; Path is still populated.
	IsRoundRect bool
	Rect        Rect
	Radius      float64

	// Path is the full outline.
	Path *Path
}

// Outline exports the rendered outline. The round-rect flag matches the
// fast path taken by Draw exactly. The zero Outline is returned when the
// bounds are empty or the compat shadow is forced on, where a native
// shadow cast from the outline would double up with the drawn one.
func (d *Drawable) Outline() Outline {
	if !d.boundsSet || d.bounds.IsEmpty() ||
		d.state.shadowCompatMode == ShadowCompatModeAlways {
		return Outline{}
	}
	d.updatePaths()
	out := Outline{Path: d.path.Clone()}
	if size := d.roundRectCornerSize(); size >= 0 {
		out.IsRoundRect = true
		out.Rect = d.bounds
		out.Radius = size
	}
	return out
}

// PathBounds returns the bounding box of the rendered outline, which
// can exceed the drawable bounds when an edge treatment extends outward.
func (d *Drawable) PathBounds() Rect {
	d.updatePaths()
	return d.pathBounds
}

// IsPointInTransparentRegion reports whether a point inside the bounds
// falls outside the shape, where touches should pass through.
func (d *Drawable) IsPointInTransparentRegion(x, y float64) bool {
	if !d.bounds.Contains(Pt(x, y)) {
		return false
	}
	d.updatePaths()
	return !d.path.Contains(x, y)
}
