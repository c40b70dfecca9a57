package shaped

import "math"

// cornerAngle is the interior angle, in degrees, of a corner on
// rectangular bounds.
const cornerAngle = 90.0

// SegmentRecord describes one of the eight outline segments produced by
// a synthesis pass: the transform that placed the segment and the shadow
// operation that renders its compatibility shadow.
type SegmentRecord struct {
	// Transform maps the segment's local coordinates into shape space.
	Transform Matrix

	// Shadow draws the compatibility shadow cast by this segment.
	Shadow ShadowOperation

	// ShadowCompatible is false when the segment contains operations the
	// compatibility shadow cannot represent, such as free-form curves.
	ShadowCompatible bool
}

// PathResult is the output of one synthesis pass.
type PathResult struct {
	// Path is the closed shape outline.
	Path *Path

	// Bounds is the bounding box of the outline, which can exceed the
	// requested bounds when an edge treatment extends outward.
	Bounds Rect

	// Segments holds the four corner segments at indices 0 to 3 followed
	// by the four edge segments at indices 4 to 7, in draw order
	// starting from the top right corner.
	Segments [8]SegmentRecord
}

// ShadowCompatible reports whether every segment of the outline can be
// rendered by the compatibility shadow.
func (r *PathResult) ShadowCompatible() bool {
	for _, s := range r.Segments {
		if !s.ShadowCompatible {
			return false
		}
	}
	return true
}

// Synthesizer turns a ShapeModel plus concrete bounds into a closed
// outline path. The outline is traversed clockwise starting from the top
// right corner, alternating corner and edge segments.
//
// A Synthesizer reuses internal scratch state between calls and is not
// safe for concurrent use. Callers that synthesize from multiple
// goroutines should use one Synthesizer per goroutine.
type Synthesizer struct {
	cornerPaths      [4]*ShapePath
	edgePaths        [4]*ShapePath
	cornerTransforms [4]Matrix
	edgeTransforms   [4]Matrix

	edgeIntersectionCheck bool
}

// NewSynthesizer creates a Synthesizer with the corner overlap
// adjustment enabled.
func NewSynthesizer() *Synthesizer {
	s := &Synthesizer{edgeIntersectionCheck: true}
	for i := 0; i < 4; i++ {
		s.cornerPaths[i] = NewShapePath(0, 0)
		s.edgePaths[i] = NewShapePath(0, 0)
	}
	return s
}

// SetEdgeIntersectionCheck toggles the corner overlap adjustment. When
// enabled, adjacent corner sizes whose sum exceeds the length of the
// side between them are scaled down proportionally so the corner paths
// never cross.
func (s *Synthesizer) SetEdgeIntersectionCheck(enabled bool) {
	s.edgeIntersectionCheck = enabled
}

// Synthesize builds the outline of model over bounds into path, which is
// cleared first. Interpolation scales all treatments between untreated
// square corners at 0 and the full model at 1.
func (s *Synthesizer) Synthesize(model *ShapeModel, interpolation float64, bounds Rect, path *Path) PathResult {
	return s.SynthesizeWithCornerOverrides(model, interpolation, bounds, nil, path)
}

// SynthesizeWithCornerOverrides is Synthesize with the model's resolved
// corner sizes replaced by overrides, in corner index order. A nil slice
// applies no overrides. Animated corner sizes are fed through here so
// the model itself stays immutable while corners morph.
func (s *Synthesizer) SynthesizeWithCornerOverrides(model *ShapeModel, interpolation float64, bounds Rect, overrides []float64, path *Path) PathResult {
	path.Clear()
	interpolation = clamp01(interpolation)

	var radii [4]float64
	for i := 0; i < 4; i++ {
		if overrides != nil {
			radii[i] = overrides[i]
		} else {
			radii[i] = model.CornerSizeAt(i).Resolve(bounds)
		}
		radii[i] = math.Max(0, radii[i])
	}
	if s.edgeIntersectionCheck {
		adjustRadiiForOverlap(model, bounds, &radii)
	}

	for i := 0; i < 4; i++ {
		model.CornerTreatmentAt(i).ApplyCornerPath(cornerAngle, interpolation, radii[i], s.cornerPaths[i])
		anchor := cornerAnchor(bounds, i)
		s.cornerTransforms[i] = Translate(anchor.X, anchor.Y).
			Multiply(Rotate(segmentRotation(i)))
	}

	var result PathResult
	for i := 0; i < 4; i++ {
		s.appendCorner(i, path, &result)
		s.appendEdge(model, interpolation, bounds, i, path, &result)
	}
	path.Close()

	result.Path = path
	result.Bounds = path.Bounds()
	return result
}

func (s *Synthesizer) appendCorner(index int, path *Path, result *PathResult) {
	cp := s.cornerPaths[index]
	transform := s.cornerTransforms[index]

	start := transform.TransformPoint(Pt(cp.StartX(), cp.StartY()))
	if path.IsEmpty() {
		path.MoveTo(start.X, start.Y)
	} else {
		path.LineTo(start.X, start.Y)
	}
	cp.ApplyToPath(transform, path)

	result.Segments[index] = SegmentRecord{
		Transform:        transform,
		Shadow:           cp.ShadowOperationForSegment(transform),
		ShadowCompatible: !cp.ContainsIncompatibleShadowOp(),
	}
}

func (s *Synthesizer) appendEdge(model *ShapeModel, interpolation float64, bounds Rect, index int, path *Path, result *PathResult) {
	next := (index + 1) % 4
	cp := s.cornerPaths[index]
	ncp := s.cornerPaths[next]

	start := s.cornerTransforms[index].TransformPoint(Pt(cp.EndX(), cp.EndY()))
	end := s.cornerTransforms[next].TransformPoint(Pt(ncp.StartX(), ncp.StartY()))
	length := start.Distance(end)
	center := edgeCenter(bounds, index, start)

	ep := s.edgePaths[index]
	ep.Reset(0, 0, angleLeft, 0)
	model.EdgeTreatmentAt(index).ApplyEdgePath(length, center, interpolation, ep)

	transform := Translate(start.X, start.Y).Multiply(Rotate(segmentRotation(index)))
	s.edgeTransforms[index] = transform
	ep.ApplyToPath(transform, path)

	result.Segments[4+index] = SegmentRecord{
		Transform:        transform,
		Shadow:           ep.ShadowOperationForSegment(transform),
		ShadowCompatible: !ep.ContainsIncompatibleShadowOp(),
	}
}

// cornerAnchor returns the bounds vertex for the given corner index.
func cornerAnchor(bounds Rect, index int) Point {
	switch index {
	case CornerBottomRight:
		return Pt(bounds.Max.X, bounds.Max.Y)
	case CornerBottomLeft:
		return Pt(bounds.Min.X, bounds.Max.Y)
	case CornerTopLeft:
		return Pt(bounds.Min.X, bounds.Min.Y)
	default:
		return Pt(bounds.Max.X, bounds.Min.Y)
	}
}

// segmentRotation returns the rotation, in radians, that maps segment
// local space into place for corner or edge index.
func segmentRotation(index int) float64 {
	return float64(index+1) * cornerAngle * math.Pi / 180
}

// edgeCenter returns the distance from the edge start point to the
// midpoint of the bounds side the edge lies on. Keeping edge decorations
// anchored to the side midpoint makes them independent of the adjacent
// corner sizes.
func edgeCenter(bounds Rect, index int, start Point) float64 {
	c := bounds.Center()
	if index == EdgeRight || index == EdgeLeft {
		return math.Abs(c.Y - start.Y)
	}
	return math.Abs(c.X - start.X)
}

// adjustRadiiForOverlap scales down adjacent corner sizes whose sum
// exceeds the side between them. Each corner takes the smallest factor
// of its two adjacent sides so neither side ends up with crossing corner
// paths. Edges that force intersection opt their sides out.
func adjustRadiiForOverlap(model *ShapeModel, bounds Rect, radii *[4]float64) {
	sides := [4]float64{bounds.Height(), bounds.Width(), bounds.Height(), bounds.Width()}

	factors := [4]float64{1, 1, 1, 1}
	for e := 0; e < 4; e++ {
		if model.EdgeTreatmentAt(e).ForceIntersection() {
			continue
		}
		i, j := e, (e+1)%4
		sum := radii[i] + radii[j]
		if sum <= sides[e] || sum <= 0 {
			continue
		}
		f := sides[e] / sum
		if f < factors[i] {
			factors[i] = f
		}
		if f < factors[j] {
			factors[j] = f
		}
	}
	for i := range radii {
		radii[i] *= factors[i]
	}
}
