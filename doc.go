// Package shaped renders rectangles whose corners and edges carry
// pluggable treatments: rounded or cut corners, notched or decorated
// edges, all resolved against concrete bounds at draw time.
//
// A ShapeModel describes the shape declaratively. A Drawable renders a
// model onto any Canvas with a fill, an optional inset stroke, and an
// elevation-driven shadow. When a concave outline cannot be shadowed
// natively, the shadow is synthesized from gradient geometry per
// outline segment.
//
//	model := shaped.NewModel().
//	    SetAllCorners(shaped.RoundedCorner()).
//	    SetAllCornerSizes(shaped.Absolute(16)).
//	    Build()
//
//	drawable := shaped.NewDrawable(model,
//	    shaped.WithFillColor(shaped.RGB(0.2, 0.4, 0.9)),
//	    shaped.WithElevation(4))
//	drawable.SetBounds(shaped.RectWH(0, 0, 200, 100))
//
//	canvas := shaped.NewSoftCanvas(220, 130)
//	drawable.Draw(canvas)
//
// Corner sizes can be absolute or relative to the bounds, and corner
// size changes can be animated with springs through
// Drawable.EnableCornerSprings.
package shaped
