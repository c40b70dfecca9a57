package shaped

// EdgeTreatment generates the outline of one edge in the edge's local
// coordinate space.
//
// Local space runs from (0, 0) at the end of the preceding corner to
// (length, 0) at the start of the following corner, with the shape
// interior in the positive y direction. The synthesizer rotates and
// translates the result into place for each of the four edges.
type EdgeTreatment interface {
	// ApplyEdgePath writes the edge outline into path. The center is the
	// distance from the edge start to the midpoint of the bounds side,
	// which keeps decorations centered on the side even when the
	// adjacent corners have different sizes. Interpolation scales the
	// treatment between a straight edge at 0 and the full treatment at 1.
	ApplyEdgePath(length, center, interpolation float64, path *ShapePath)

	// ForceIntersection reports whether the edge must always meet its
	// neighboring corners exactly, disabling the corner overlap
	// adjustment for the two adjacent corners.
	ForceIntersection() bool
}

// StraightEdgeTreatment is an edge with no treatment, a straight line
// between the adjacent corners.
type StraightEdgeTreatment struct{}

// StraightEdge returns an edge treatment that draws a straight line.
func StraightEdge() StraightEdgeTreatment { return StraightEdgeTreatment{} }

// ApplyEdgePath implements EdgeTreatment.
func (StraightEdgeTreatment) ApplyEdgePath(length, _, _ float64, path *ShapePath) {
	path.LineTo(length, 0)
}

// ForceIntersection implements EdgeTreatment.
func (StraightEdgeTreatment) ForceIntersection() bool { return false }

// TriangleEdgeTreatment draws a triangular notch or bump centered on the
// edge, pointing into the shape when Inside is true and out of it
// otherwise.
type TriangleEdgeTreatment struct {
	size   float64
	inside bool
}

// TriangleEdge returns an edge treatment with a triangle of the given
// size. An outward triangle expands the shape outline beyond its bounds.
func TriangleEdge(size float64, inside bool) TriangleEdgeTreatment {
	return TriangleEdgeTreatment{size: size, inside: inside}
}

// ApplyEdgePath implements EdgeTreatment.
func (t TriangleEdgeTreatment) ApplyEdgePath(length, center, interpolation float64, path *ShapePath) {
	size := t.size * interpolation
	path.LineTo(center-size, 0)
	if t.inside {
		path.LineTo(center, size)
	} else {
		path.LineTo(center, -size)
	}
	path.LineTo(center+size, 0)
	path.LineTo(length, 0)
}

// ForceIntersection implements EdgeTreatment.
func (TriangleEdgeTreatment) ForceIntersection() bool { return false }

// OffsetEdgeTreatment wraps another edge treatment and shifts its center
// point along the edge. Useful for anchoring a notch or marker somewhere
// other than the middle of the side.
type OffsetEdgeTreatment struct {
	other  EdgeTreatment
	offset float64
}

// OffsetEdge returns the given edge treatment with its center shifted by
// offset device units along the edge.
func OffsetEdge(other EdgeTreatment, offset float64) OffsetEdgeTreatment {
	return OffsetEdgeTreatment{other: other, offset: offset}
}

// ApplyEdgePath implements EdgeTreatment.
func (t OffsetEdgeTreatment) ApplyEdgePath(length, center, interpolation float64, path *ShapePath) {
	t.other.ApplyEdgePath(length, center+t.offset, interpolation, path)
}

// ForceIntersection implements EdgeTreatment.
func (t OffsetEdgeTreatment) ForceIntersection() bool {
	return t.other.ForceIntersection()
}
