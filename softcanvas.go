package shaped

import (
	"image"

	"golang.org/x/image/vector"
)

// SoftCanvas is a software Canvas that rasterizes into a Pixmap using
// golang.org/x/image/vector for anti-aliased coverage.
//
// It has no native shadow support, so drawables whose outline needs a
// shadow it cannot fake natively use the compatibility shadow.
type SoftCanvas struct {
	pixmap    *Pixmap
	transform Matrix
	stack     []Matrix
}

// NewSoftCanvas creates a canvas backed by a new pixmap of the given
// size.
func NewSoftCanvas(width, height int) *SoftCanvas {
	return NewSoftCanvasFor(NewPixmap(width, height))
}

// NewSoftCanvasFor creates a canvas that draws into an existing pixmap.
func NewSoftCanvasFor(pm *Pixmap) *SoftCanvas {
	return &SoftCanvas{pixmap: pm, transform: Identity()}
}

// Pixmap returns the pixel buffer the canvas draws into.
func (c *SoftCanvas) Pixmap() *Pixmap {
	return c.pixmap
}

// Translate implements Canvas.
func (c *SoftCanvas) Translate(dx, dy float64) {
	c.transform = c.transform.Multiply(Translate(dx, dy))
}

// Save implements Canvas.
func (c *SoftCanvas) Save() {
	c.stack = append(c.stack, c.transform)
}

// Restore implements Canvas.
func (c *SoftCanvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.transform = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// FillPath implements Canvas.
func (c *SoftCanvas) FillPath(path *Path, paint *Paint, style Style) {
	p := path
	if !c.transform.IsIdentity() {
		p = path.Transform(c.transform)
	}
	switch style {
	case StyleStroke:
		c.fillMask(strokeOutline(p, paint.LineWidth), paint)
	case StyleFillAndStroke:
		c.fillMask(p, paint)
		c.fillMask(strokeOutline(p, paint.LineWidth), paint)
	default:
		c.fillMask(p, paint)
	}
}

// DrawRoundRect implements Canvas.
func (c *SoftCanvas) DrawRoundRect(rect Rect, radius float64, paint *Paint, style Style) {
	path := NewPath()
	path.RoundedRectangle(rect.Min.X, rect.Min.Y, rect.Width(), rect.Height(), radius)
	c.FillPath(path, paint, style)
}

// DrawPixmap implements Canvas. Only the translation component of the
// current transform is applied.
func (c *SoftCanvas) DrawPixmap(pm *Pixmap, x, y float64, alpha float64) {
	origin := c.transform.TransformPoint(Pt(x, y))
	ox := int(origin.X + 0.5)
	oy := int(origin.Y + 0.5)
	for py := 0; py < pm.Height(); py++ {
		for px := 0; px < pm.Width(); px++ {
			src := pm.GetPixel(px, py)
			if src.A == 0 {
				continue
			}
			c.pixmap.BlendPixel(ox+px, oy+py, src.ModulateAlpha(alpha), 1, CompositeOver)
		}
	}
}

// fillMask rasterizes the path into a coverage mask and blends the
// paint through it. The path is already in device space; the brush is
// defined in user space, so sample positions map back through the
// inverse canvas transform.
func (c *SoftCanvas) fillMask(path *Path, paint *Paint) {
	if path.IsEmpty() {
		return
	}
	inv := Identity()
	if !c.transform.IsIdentity() {
		inv = c.transform.Invert()
	}
	w := c.pixmap.Width()
	h := c.pixmap.Height()

	z := vector.NewRasterizer(w, h)
	for _, elem := range path.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			z.MoveTo(float32(e.Point.X), float32(e.Point.Y))
		case LineTo:
			z.LineTo(float32(e.Point.X), float32(e.Point.Y))
		case QuadTo:
			z.QuadTo(
				float32(e.Control.X), float32(e.Control.Y),
				float32(e.Point.X), float32(e.Point.Y))
		case CubicTo:
			z.CubeTo(
				float32(e.Control1.X), float32(e.Control1.Y),
				float32(e.Control2.X), float32(e.Control2.Y),
				float32(e.Point.X), float32(e.Point.Y))
		case Close:
			z.ClosePath()
		}
	}

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	// Clip the blend loop to the path bounds.
	b := path.Bounds()
	minX, minY := int(b.Min.X)-1, int(b.Min.Y)-1
	maxX, maxY := int(b.Max.X)+1, int(b.Max.Y)+1
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX > w-1 {
		maxX = w - 1
	}
	if maxY > h-1 {
		maxY = h - 1
	}

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			coverage := float64(mask.AlphaAt(x, y).A) / 255
			if coverage == 0 {
				continue
			}
			pt := inv.TransformPoint(Pt(float64(x)+0.5, float64(y)+0.5))
			color := paint.ColorAt(pt.X, pt.Y)
			c.pixmap.BlendPixel(x, y, color, coverage, paint.Composite)
		}
	}
}

// strokeOutline converts a closed path into the fill outline of its
// stroke: the contour offset outward by half the width, plus the contour
// offset inward traversed in reverse. Filling both with the nonzero rule
// leaves only the stroke ring.
func strokeOutline(p *Path, width float64) *Path {
	out := NewPath()
	if width <= 0 {
		return out
	}
	pts := dedupePolyline(p.Flatten())
	if len(pts) < 3 {
		return out
	}
	w2 := width / 2
	appendRing(out, offsetPolygon(pts, w2), false)
	appendRing(out, offsetPolygon(pts, -w2), true)
	return out
}

// dedupePolyline drops consecutive points closer than a small epsilon.
// Degenerate treatments, a zero-size rounded corner for example, produce
// coincident points that would break normal computation.
func dedupePolyline(pts []Point) []Point {
	const eps = 1e-9
	out := pts[:0:0]
	for _, pt := range pts {
		if len(out) > 0 && out[len(out)-1].Distance(pt) < eps {
			continue
		}
		out = append(out, pt)
	}
	if len(out) > 1 && out[0].Distance(out[len(out)-1]) < eps {
		out = out[:len(out)-1]
	}
	return out
}

// offsetPolygon offsets each vertex of a closed polygon along its miter
// direction by d. A positive d offsets toward the outward normal of a
// clockwise polygon in y-down coordinates.
func offsetPolygon(pts []Point, d float64) []Point {
	n := len(pts)
	out := make([]Point, n)
	for i := 0; i < n; i++ {
		prev := pts[(i-1+n)%n]
		cur := pts[i]
		next := pts[(i+1)%n]

		d1 := cur.Sub(prev).Normalize()
		d2 := next.Sub(cur).Normalize()
		n1 := Pt(d1.Y, -d1.X)
		n2 := Pt(d2.Y, -d2.X)

		bisect := n1.Add(n2)
		lenSq := bisect.X*bisect.X + bisect.Y*bisect.Y
		if lenSq < 1e-12 {
			// Segments reverse direction; fall back to the first normal.
			out[i] = cur.Add(n1.Mul(d))
			continue
		}
		// Miter offset: |n1+n2|/2 is the cosine of the half angle
		// between the segments.
		out[i] = cur.Add(bisect.Mul(2 * d / lenSq))
	}
	return out
}

// appendRing appends a closed polygon subpath, optionally reversed.
func appendRing(p *Path, pts []Point, reverse bool) {
	if len(pts) < 3 {
		return
	}
	if reverse {
		p.MoveTo(pts[len(pts)-1].X, pts[len(pts)-1].Y)
		for i := len(pts) - 2; i >= 0; i-- {
			p.LineTo(pts[i].X, pts[i].Y)
		}
	} else {
		p.MoveTo(pts[0].X, pts[0].Y)
		for i := 1; i < len(pts); i++ {
			p.LineTo(pts[i].X, pts[i].Y)
		}
	}
	p.Close()
}
