package shaped

import "math"

// CornerTreatment generates the outline of one corner in the corner's
// local coordinate space.
//
// Local space places the corner vertex at the origin with the two
// adjacent edges along the positive x and y axes, oriented as the
// top-left corner of the shape in y-down coordinates. The synthesizer
// rotates and translates the result into place for each of the four
// corners, so a treatment is written once and reused everywhere.
//
// The path must start on the y axis at (0, size*interpolation) and end
// on the x axis; interpolation scales the treatment between a square
// corner at 0 and the full treatment at 1.
type CornerTreatment interface {
	// ApplyCornerPath writes the corner outline into path. The angle is
	// the interior angle of the corner in degrees (90 for rectangular
	// bounds), and size is the resolved corner size in device units.
	ApplyCornerPath(angle, interpolation, size float64, path *ShapePath)
}

// SquareCornerTreatment is a corner with no treatment at all. The
// outline passes straight through the corner vertex.
type SquareCornerTreatment struct{}

// SquareCorner returns a corner treatment that leaves the corner square.
func SquareCorner() SquareCornerTreatment { return SquareCornerTreatment{} }

// ApplyCornerPath implements CornerTreatment. The path starts and ends
// at the corner vertex and records no operations.
func (SquareCornerTreatment) ApplyCornerPath(angle, _, _ float64, path *ShapePath) {
	path.Reset(0, 0, angleLeft, 180-angle)
}

// RoundedCornerTreatment replaces the corner with a circular arc of the
// resolved corner size.
type RoundedCornerTreatment struct{}

// RoundedCorner returns a corner treatment that rounds the corner.
func RoundedCorner() RoundedCornerTreatment { return RoundedCornerTreatment{} }

// ApplyCornerPath implements CornerTreatment.
func (RoundedCornerTreatment) ApplyCornerPath(angle, interpolation, size float64, path *ShapePath) {
	radius := size * interpolation
	path.Reset(0, radius, angleLeft, 180-angle)
	path.AddArc(0, 0, 2*radius, 2*radius, angleLeft, angle)
}

// CutCornerTreatment replaces the corner with a straight diagonal cut of
// the resolved corner size.
type CutCornerTreatment struct{}

// CutCorner returns a corner treatment that cuts the corner off with a
// straight line.
func CutCorner() CutCornerTreatment { return CutCornerTreatment{} }

// ApplyCornerPath implements CornerTreatment.
func (CutCornerTreatment) ApplyCornerPath(angle, interpolation, size float64, path *ShapePath) {
	depth := size * interpolation
	path.Reset(0, depth, angleLeft, 180-angle)
	path.LineTo(
		math.Sin(angle*math.Pi/180)*depth,
		math.Sin((90-angle)*math.Pi/180)*depth,
	)
}
