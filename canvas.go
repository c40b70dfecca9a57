package shaped

// Canvas is the drawing surface that shapes render onto.
//
// Implementations translate fill and round-rect operations into their
// backend of choice. SoftCanvas in this package rasterizes into a Pixmap;
// an application can adapt any other 2D surface by implementing this
// interface.
type Canvas interface {
	// FillPath fills the path using the paint's brush, composite mode,
	// and alpha. When the paint's style is stroke, the path outline is
	// stroked with the paint's line width instead.
	FillPath(path *Path, paint *Paint, style Style)

	// DrawRoundRect fills a rectangle with a uniform corner radius.
	// This is the fast path for shapes that reduce to a round rect.
	DrawRoundRect(rect Rect, radius float64, paint *Paint, style Style)

	// DrawPixmap composites a pixel buffer at the given offset using
	// source-over blending and the given alpha.
	DrawPixmap(pm *Pixmap, x, y float64, alpha float64)

	// Translate offsets all subsequent drawing by (dx, dy).
	Translate(dx, dy float64)

	// Save pushes the current transform onto a stack.
	Save()

	// Restore pops the most recently saved transform.
	Restore()
}
