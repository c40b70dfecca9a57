package shaped

import "fmt"

// CornerSize resolves the size of a corner for concrete shape bounds.
//
// Implementations are immutable values. AbsoluteCornerSize is a fixed
// device-unit radius, RelativeCornerSize scales with the shorter side of
// the bounds, and AdjustedCornerSize offsets another size by a constant.
type CornerSize interface {
	// Resolve returns the corner size in device units for the given bounds.
	Resolve(bounds Rect) float64
}

// AbsoluteCornerSize is a corner size with a fixed value in device units.
type AbsoluteCornerSize struct {
	size float64
}

// Absolute returns a corner size fixed at the given value.
func Absolute(size float64) AbsoluteCornerSize {
	return AbsoluteCornerSize{size: size}
}

// Value returns the fixed size.
func (s AbsoluteCornerSize) Value() float64 { return s.size }

// Resolve implements CornerSize. The bounds are ignored.
func (s AbsoluteCornerSize) Resolve(Rect) float64 { return s.size }

func (s AbsoluteCornerSize) String() string {
	return fmt.Sprintf("Absolute(%v)", s.size)
}

// RelativeCornerSize is a corner size that is a fraction of the shorter
// side of the shape bounds. A fraction of 0.5 on square bounds produces a
// fully rounded (pill or circular) corner.
type RelativeCornerSize struct {
	fraction float64
}

// Relative returns a corner size that resolves to fraction times the
// shorter side of the bounds. The fraction is clamped to [0, 1].
func Relative(fraction float64) RelativeCornerSize {
	if fraction < 0 {
		fraction = 0
	} else if fraction > 1 {
		fraction = 1
	}
	return RelativeCornerSize{fraction: fraction}
}

// Fraction returns the configured fraction of the shorter side.
func (s RelativeCornerSize) Fraction() float64 { return s.fraction }

// Resolve implements CornerSize.
func (s RelativeCornerSize) Resolve(bounds Rect) float64 {
	return s.fraction * bounds.ShorterSide()
}

func (s RelativeCornerSize) String() string {
	return fmt.Sprintf("Relative(%v%%)", s.fraction*100)
}

// AdjustedCornerSize wraps another corner size and offsets its resolved
// value by a constant. Relative sizes pass through unadjusted so that a
// fully rounded corner stays fully rounded when the shape is inset for
// stroke rendering.
type AdjustedCornerSize struct {
	other      CornerSize
	adjustment float64
}

// Adjusted returns the given corner size offset by adjustment device
// units. If other is already adjusted, the adjustments are combined into
// a single wrapper.
func Adjusted(other CornerSize, adjustment float64) AdjustedCornerSize {
	if inner, ok := other.(AdjustedCornerSize); ok {
		return AdjustedCornerSize{
			other:      inner.other,
			adjustment: inner.adjustment + adjustment,
		}
	}
	return AdjustedCornerSize{other: other, adjustment: adjustment}
}

// Adjustment returns the constant offset applied to the wrapped size.
func (s AdjustedCornerSize) Adjustment() float64 { return s.adjustment }

// Resolve implements CornerSize. Relative sizes are returned unadjusted;
// everything else is offset and clamped at zero.
func (s AdjustedCornerSize) Resolve(bounds Rect) float64 {
	if rel, ok := s.other.(RelativeCornerSize); ok {
		return rel.Resolve(bounds)
	}
	v := s.other.Resolve(bounds) + s.adjustment
	if v < 0 {
		v = 0
	}
	return v
}
