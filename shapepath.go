package shaped

import "math"

// angleLeft is the angle, in degrees, pointing along the negative x axis.
const angleLeft = 180.0

// ShapePath records the outline of a single corner or edge segment in the
// segment's local coordinate space. Treatments draw into a ShapePath; the
// synthesizer then replays the recorded operations into the final outline
// under the segment transform, and replays the recorded shadow operations
// when a compatibility shadow is needed.
type ShapePath struct {
	startX float64
	startY float64
	endX   float64
	endY   float64

	currentShadowAngle float64
	endShadowAngle     float64

	operations      []pathOperation
	shadowOps       []ShadowOperation
	hasIncompatible bool
}

// NewShapePath creates a ShapePath starting at (startX, startY).
func NewShapePath(startX, startY float64) *ShapePath {
	p := &ShapePath{}
	p.Reset(startX, startY, angleLeft, 0)
	return p
}

// Reset clears all recorded operations and moves the start point to
// (startX, startY). The shadow angles describe the range the segment's
// shadow is expected to cover, in degrees.
func (p *ShapePath) Reset(startX, startY, shadowStartAngle, shadowSweepAngle float64) {
	p.startX = startX
	p.startY = startY
	p.endX = startX
	p.endY = startY
	p.currentShadowAngle = shadowStartAngle
	p.endShadowAngle = shadowStartAngle + shadowSweepAngle
	p.operations = p.operations[:0]
	p.shadowOps = p.shadowOps[:0]
	p.hasIncompatible = false
}

// StartX returns the x coordinate of the segment start.
func (p *ShapePath) StartX() float64 { return p.startX }

// StartY returns the y coordinate of the segment start.
func (p *ShapePath) StartY() float64 { return p.startY }

// EndX returns the x coordinate reached by the last operation.
func (p *ShapePath) EndX() float64 { return p.endX }

// EndY returns the y coordinate reached by the last operation.
func (p *ShapePath) EndY() float64 { return p.endY }

// LineTo records a straight line to (x, y).
func (p *ShapePath) LineTo(x, y float64) {
	op := &lineOperation{x: x, y: y}
	p.operations = append(p.operations, op)

	shadow := &lineShadowOperation{op: op, startX: p.endX, startY: p.endY}
	angle := shadow.angle()
	p.addShadowOperation(shadow, angleLeft+angle, angleLeft+angle)

	p.endX = x
	p.endY = y
}

// QuadTo records a quadratic curve to (x, y) with control point (cx, cy).
// Quadratic segments cannot be represented by the compatibility shadow,
// so recording one marks the path shadow-incompatible.
func (p *ShapePath) QuadTo(cx, cy, x, y float64) {
	p.operations = append(p.operations, &quadOperation{cx: cx, cy: cy, x: x, y: y})
	p.hasIncompatible = true
	p.endX = x
	p.endY = y
}

// CubicTo records a cubic curve to (x, y) with control points (c1x, c1y)
// and (c2x, c2y). Cubic segments mark the path shadow-incompatible.
func (p *ShapePath) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.operations = append(p.operations, &cubicOperation{
		c1x: c1x, c1y: c1y, c2x: c2x, c2y: c2y, x: x, y: y,
	})
	p.hasIncompatible = true
	p.endX = x
	p.endY = y
}

// AddArc records an elliptical arc inscribed in the oval (left, top,
// right, bottom), beginning at startAngle and sweeping sweepAngle, both
// in degrees. A positive sweep is clockwise in y-down coordinates. If the
// arc start differs from the current end point, a connecting line is
// implied when the path is replayed.
func (p *ShapePath) AddArc(left, top, right, bottom, startAngle, sweepAngle float64) {
	op := &arcOperation{
		left: left, top: top, right: right, bottom: bottom,
		startAngle: startAngle, sweepAngle: sweepAngle,
	}
	p.operations = append(p.operations, op)

	shadow := &arcShadowOperation{op: op}
	endAngle := startAngle + sweepAngle
	// Negative sweeps trace the oval from the inside, so the shadow is
	// cast from the opposite side of the arc.
	if sweepAngle < 0 {
		p.addShadowOperation(shadow,
			math.Mod(angleLeft+startAngle, 360),
			math.Mod(angleLeft+endAngle, 360))
	} else {
		p.addShadowOperation(shadow, startAngle, endAngle)
	}

	cx := (left + right) / 2
	cy := (top + bottom) / 2
	rx := (right - left) / 2
	ry := (bottom - top) / 2
	rad := endAngle * math.Pi / 180
	p.endX = cx + rx*math.Cos(rad)
	p.endY = cy + ry*math.Sin(rad)
}

// ContainsIncompatibleShadowOp reports whether any recorded operation
// cannot be rendered by the compatibility shadow.
func (p *ShapePath) ContainsIncompatibleShadowOp() bool {
	return p.hasIncompatible
}

// addShadowOperation appends a shadow operation covering the angular
// range [startShadowAngle, endShadowAngle], first inserting a connecting
// corner shadow if the previous operation left a gap.
func (p *ShapePath) addShadowOperation(op ShadowOperation, startShadowAngle, endShadowAngle float64) {
	p.addConnectingShadowIfNecessary(startShadowAngle)
	p.shadowOps = append(p.shadowOps, op)
	p.currentShadowAngle = endShadowAngle
}

// addConnectingShadowIfNecessary fills the angular gap between the last
// shadow operation and nextShadowAngle with a degenerate corner arc at
// the current end point. Gaps wider than a half turn would shade the
// interior of the shape and are skipped.
func (p *ShapePath) addConnectingShadowIfNecessary(nextShadowAngle float64) {
	if p.currentShadowAngle == nextShadowAngle {
		return
	}
	sweep := math.Mod(nextShadowAngle-p.currentShadowAngle+360, 360)
	if sweep > 180 {
		return
	}
	op := &arcOperation{
		left: p.endX, top: p.endY, right: p.endX, bottom: p.endY,
		startAngle: p.currentShadowAngle, sweepAngle: sweep,
	}
	p.shadowOps = append(p.shadowOps, &arcShadowOperation{op: op})
	p.currentShadowAngle = nextShadowAngle
}

// ApplyToPath replays the recorded operations into path, transforming
// every point by transform.
func (p *ShapePath) ApplyToPath(transform Matrix, path *Path) {
	for _, op := range p.operations {
		op.applyToPath(transform, path)
	}
}

// ShadowOperationForSegment finalizes the recorded shadow operations and
// returns a single operation that draws them all under the given segment
// transform. A trailing connecting shadow is appended if the recorded
// operations stopped short of the segment's declared end angle.
func (p *ShapePath) ShadowOperationForSegment(transform Matrix) ShadowOperation {
	p.addConnectingShadowIfNecessary(p.endShadowAngle)
	ops := make([]ShadowOperation, len(p.shadowOps))
	copy(ops, p.shadowOps)
	return &compositeShadowOperation{transform: transform, ops: ops}
}

// pathOperation is a single recorded outline operation.
type pathOperation interface {
	applyToPath(transform Matrix, path *Path)
}

type lineOperation struct {
	x, y float64
}

func (o *lineOperation) applyToPath(transform Matrix, path *Path) {
	pt := transform.TransformPoint(Pt(o.x, o.y))
	if path.IsEmpty() {
		path.MoveTo(pt.X, pt.Y)
		return
	}
	path.LineTo(pt.X, pt.Y)
}

type quadOperation struct {
	cx, cy, x, y float64
}

func (o *quadOperation) applyToPath(transform Matrix, path *Path) {
	c := transform.TransformPoint(Pt(o.cx, o.cy))
	pt := transform.TransformPoint(Pt(o.x, o.y))
	if path.IsEmpty() {
		path.MoveTo(c.X, c.Y)
	}
	path.QuadraticTo(c.X, c.Y, pt.X, pt.Y)
}

type cubicOperation struct {
	c1x, c1y, c2x, c2y, x, y float64
}

func (o *cubicOperation) applyToPath(transform Matrix, path *Path) {
	c1 := transform.TransformPoint(Pt(o.c1x, o.c1y))
	c2 := transform.TransformPoint(Pt(o.c2x, o.c2y))
	pt := transform.TransformPoint(Pt(o.x, o.y))
	if path.IsEmpty() {
		path.MoveTo(c1.X, c1.Y)
	}
	path.CubicTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y)
}

type arcOperation struct {
	left, top, right, bottom float64
	startAngle, sweepAngle   float64
}

func (o *arcOperation) applyToPath(transform Matrix, path *Path) {
	cx := (o.left + o.right) / 2
	cy := (o.top + o.bottom) / 2
	rx := (o.right - o.left) / 2
	ry := (o.bottom - o.top) / 2

	startRad := o.startAngle * math.Pi / 180
	sweepRad := o.sweepAngle * math.Pi / 180

	start := transform.TransformPoint(Pt(cx+rx*math.Cos(startRad), cy+ry*math.Sin(startRad)))
	if path.IsEmpty() {
		path.MoveTo(start.X, start.Y)
	} else {
		if path.CurrentPoint().Distance(start) > 1e-9 {
			path.LineTo(start.X, start.Y)
		}
	}

	// Split the sweep into arcs of at most a quarter turn and emit each
	// as a cubic segment. Affine transforms map cubics to cubics, so the
	// control points can be transformed directly.
	segments := int(math.Ceil(math.Abs(sweepRad) / (math.Pi / 2)))
	if segments == 0 {
		return
	}
	step := sweepRad / float64(segments)
	a0 := startRad
	for i := 0; i < segments; i++ {
		a1 := a0 + step
		// Cubic approximation of an elliptical arc from a0 to a1.
		k := 4.0 / 3.0 * math.Tan((a1-a0)/4)

		x0, y0 := math.Cos(a0), math.Sin(a0)
		x1, y1 := math.Cos(a1), math.Sin(a1)

		c1 := transform.TransformPoint(Pt(cx+rx*(x0-k*y0), cy+ry*(y0+k*x0)))
		c2 := transform.TransformPoint(Pt(cx+rx*(x1+k*y1), cy+ry*(y1-k*x1)))
		end := transform.TransformPoint(Pt(cx+rx*x1, cy+ry*y1))
		path.CubicTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
		a0 = a1
	}
}

// ShadowOperation draws the compatibility shadow cast by part of a shape
// outline.
type ShadowOperation interface {
	// DrawShadow renders the shadow for this operation onto the canvas.
	// The transform maps the operation's local coordinates into canvas
	// space, and elevation controls the shadow spread.
	DrawShadow(transform Matrix, renderer *ShadowRenderer, elevation float64, canvas Canvas)
}

// lineShadowOperation casts an edge shadow below a straight outline
// segment.
type lineShadowOperation struct {
	op     *lineOperation
	startX float64
	startY float64
}

func (s *lineShadowOperation) angle() float64 {
	return math.Atan2(s.op.y-s.startY, s.op.x-s.startX) * 180 / math.Pi
}

func (s *lineShadowOperation) DrawShadow(transform Matrix, renderer *ShadowRenderer, elevation float64, canvas Canvas) {
	w := s.op.x - s.startX
	h := s.op.y - s.startY
	length := math.Hypot(w, h)

	edgeTransform := transform.
		Multiply(Translate(s.startX, s.startY)).
		Multiply(Rotate(s.angle() * math.Pi / 180))
	renderer.DrawEdgeShadow(canvas, edgeTransform, RectWH(0, 0, length, 0), elevation)
}

// arcShadowOperation casts a corner shadow around an arc segment.
type arcShadowOperation struct {
	op *arcOperation
}

func (s *arcShadowOperation) DrawShadow(transform Matrix, renderer *ShadowRenderer, elevation float64, canvas Canvas) {
	bounds := NewRect(Pt(s.op.left, s.op.top), Pt(s.op.right, s.op.bottom))
	renderer.DrawCornerShadow(canvas, transform, bounds, elevation, s.op.startAngle, s.op.sweepAngle)
}

// compositeShadowOperation draws a fixed list of shadow operations under
// a captured segment transform. The transform passed to DrawShadow is
// ignored; the segment transform was bound when the outline was built.
type compositeShadowOperation struct {
	transform Matrix
	ops       []ShadowOperation
}

func (s *compositeShadowOperation) DrawShadow(_ Matrix, renderer *ShadowRenderer, elevation float64, canvas Canvas) {
	for _, op := range s.ops {
		op.DrawShadow(s.transform, renderer, elevation, canvas)
	}
}
