package shaped

import "math"

// Alpha levels of the three shadow gradient stops. The shadow is darkest
// at the shape outline and fades to fully transparent at the outer rim.
const (
	shadowStartAlpha  = 0x44
	shadowMiddleAlpha = 0x14
	shadowEndAlpha    = 0x00
)

// ShadowRenderer paints the compatibility shadow of a shape outline as
// gradient-filled geometry: a linear gradient strip along each straight
// edge and a radial gradient ring sector around each corner arc.
//
// Used on canvases without native shadow support. A renderer holds the
// resolved shadow colors and can be reused across draws.
type ShadowRenderer struct {
	startColor  RGBA
	middleColor RGBA
	endColor    RGBA
}

// NewShadowRenderer creates a renderer with a black shadow color.
func NewShadowRenderer() *ShadowRenderer {
	r := &ShadowRenderer{}
	r.SetShadowColor(Black)
	return r
}

// SetShadowColor sets the base shadow color. Only the hue of the color
// is kept; the alpha ramp of the shadow gradient is fixed.
func (r *ShadowRenderer) SetShadowColor(c RGBA) {
	r.startColor = c.WithAlpha(float64(shadowStartAlpha) / 255)
	r.middleColor = c.WithAlpha(float64(shadowMiddleAlpha) / 255)
	r.endColor = c.WithAlpha(float64(shadowEndAlpha) / 255)
}

// ShadowColor returns the base shadow color at full opacity.
func (r *ShadowRenderer) ShadowColor() RGBA {
	return r.startColor.WithAlpha(1)
}

// DrawEdgeShadow draws the shadow strip cast by a straight edge segment.
// The bounds describe the edge in local space, running along the x axis
// with the shape interior in the positive y direction; the strip extends
// elevation units outward. The transform maps local space onto the
// canvas.
func (r *ShadowRenderer) DrawEdgeShadow(canvas Canvas, transform Matrix, bounds Rect, elevation float64) {
	if elevation <= 0 {
		return
	}
	length := bounds.Width()
	if length <= 0 {
		return
	}

	local := NewPath()
	local.Rectangle(bounds.Min.X, -elevation, length, elevation)
	path := local.Transform(transform)

	// The transform is rigid, so the gradient axis can be mapped through
	// it directly.
	outer := transform.TransformPoint(Pt(bounds.Min.X, -elevation))
	inner := transform.TransformPoint(Pt(bounds.Min.X, 0))
	grad := NewLinearGradientBrush(outer.X, outer.Y, inner.X, inner.Y).
		AddColorStop(0, r.endColor).
		AddColorStop(0.5, r.middleColor).
		AddColorStop(1, r.startColor)

	paint := NewPaint()
	paint.SetBrush(grad)
	canvas.FillPath(path, paint, StyleFill)
}

// DrawCornerShadow draws the shadow ring sector cast by a corner arc.
// The bounds describe the oval the arc is inscribed in, in local space;
// startAngle and sweepAngle are in degrees. A negative sweep means the
// arc is traced from inside the shape, so the gradient ramp is inverted.
func (r *ShadowRenderer) DrawCornerShadow(canvas Canvas, transform Matrix, bounds Rect, elevation, startAngle, sweepAngle float64) {
	if elevation <= 0 || sweepAngle == 0 {
		return
	}
	inside := sweepAngle < 0

	outer := bounds
	if !inside {
		outer = bounds.Inset(-elevation)
	}
	radius := outer.Width() / 2
	if radius <= 0 {
		return
	}

	startRatio := 1 - elevation/radius
	if startRatio < 0 {
		startRatio = 0
	}
	midRatio := startRatio + (1-startRatio)/2

	localCenter := outer.Center()
	center := transform.TransformPoint(localCenter)

	near, far := r.startColor, r.endColor
	if inside {
		near, far = r.endColor, r.startColor
	}
	grad := NewRadialGradientBrush(center.X, center.Y, 0, radius).
		AddColorStop(0, Transparent).
		AddColorStop(startRatio, near).
		AddColorStop(midRatio, r.middleColor).
		AddColorStop(1, far)

	a0 := startAngle * math.Pi / 180
	a1 := (startAngle + sweepAngle) * math.Pi / 180

	local := NewPath()
	if inside {
		// Concave arc: fill the whole wedge from the oval center.
		local.MoveTo(localCenter.X, localCenter.Y)
		local.LineTo(localCenter.X+radius*math.Cos(a0), localCenter.Y+radius*math.Sin(a0))
		local.Arc(localCenter.X, localCenter.Y, radius, a0, a1)
		local.Close()
	} else {
		// Convex arc: fill the ring sector between the corner arc and
		// the outer rim. For the degenerate connecting arcs between
		// segments the inner radius collapses to the corner point.
		innerR := radius - elevation
		if innerR < 0 {
			innerR = 0
		}
		local.MoveTo(localCenter.X+innerR*math.Cos(a0), localCenter.Y+innerR*math.Sin(a0))
		local.LineTo(localCenter.X+radius*math.Cos(a0), localCenter.Y+radius*math.Sin(a0))
		local.Arc(localCenter.X, localCenter.Y, radius, a0, a1)
		local.LineTo(localCenter.X+innerR*math.Cos(a1), localCenter.Y+innerR*math.Sin(a1))
		local.Arc(localCenter.X, localCenter.Y, innerR, a1, a0)
		local.Close()
	}
	path := local.Transform(transform)

	paint := NewPaint()
	paint.SetBrush(grad)
	canvas.FillPath(path, paint, StyleFill)
}
