package shaped

// Corner and edge indices. Corners are numbered clockwise from the top
// right in y-down coordinates, and edge i is the edge that follows
// corner i in draw order.
const (
	CornerTopRight = iota
	CornerBottomRight
	CornerBottomLeft
	CornerTopLeft
)

const (
	EdgeRight = iota
	EdgeBottom
	EdgeLeft
	EdgeTop
)

// Pill is a corner size that makes the shorter sides of the shape fully
// rounded regardless of the shape's concrete bounds.
var Pill CornerSize = Relative(0.5)

// ShapeModel describes the shape of all four corners and edges. It is
// immutable; derive variants through ToBuilder or WithCornerSizes.
//
// A zero-value ShapeModel is not usable. Construct one with NewModel:
//
//	model := shaped.NewModel().
//	    SetAllCorners(shaped.RoundedCorner()).
//	    SetAllCornerSizes(shaped.Absolute(16)).
//	    Build()
type ShapeModel struct {
	corners [4]CornerTreatment
	sizes   [4]CornerSize
	edges   [4]EdgeTreatment
}

// ModelBuilder assembles a ShapeModel through chained setters.
type ModelBuilder struct {
	model ShapeModel
}

// NewModel returns a builder initialized with rounded corners of size
// zero and straight edges.
func NewModel() *ModelBuilder {
	b := &ModelBuilder{}
	for i := 0; i < 4; i++ {
		b.model.corners[i] = RoundedCorner()
		b.model.sizes[i] = Absolute(0)
		b.model.edges[i] = StraightEdge()
	}
	return b
}

// SetAllCorners sets the treatment of all four corners.
func (b *ModelBuilder) SetAllCorners(t CornerTreatment) *ModelBuilder {
	for i := range b.model.corners {
		b.model.corners[i] = t
	}
	return b
}

// SetAllCornerSizes sets the size of all four corners.
func (b *ModelBuilder) SetAllCornerSizes(s CornerSize) *ModelBuilder {
	for i := range b.model.sizes {
		b.model.sizes[i] = s
	}
	return b
}

// SetAllEdges sets the treatment of all four edges.
func (b *ModelBuilder) SetAllEdges(e EdgeTreatment) *ModelBuilder {
	for i := range b.model.edges {
		b.model.edges[i] = e
	}
	return b
}

// SetTopRightCorner sets the treatment and size of the top right corner.
func (b *ModelBuilder) SetTopRightCorner(t CornerTreatment, s CornerSize) *ModelBuilder {
	b.model.corners[CornerTopRight] = t
	b.model.sizes[CornerTopRight] = s
	return b
}

// SetBottomRightCorner sets the treatment and size of the bottom right corner.
func (b *ModelBuilder) SetBottomRightCorner(t CornerTreatment, s CornerSize) *ModelBuilder {
	b.model.corners[CornerBottomRight] = t
	b.model.sizes[CornerBottomRight] = s
	return b
}

// SetBottomLeftCorner sets the treatment and size of the bottom left corner.
func (b *ModelBuilder) SetBottomLeftCorner(t CornerTreatment, s CornerSize) *ModelBuilder {
	b.model.corners[CornerBottomLeft] = t
	b.model.sizes[CornerBottomLeft] = s
	return b
}

// SetTopLeftCorner sets the treatment and size of the top left corner.
func (b *ModelBuilder) SetTopLeftCorner(t CornerTreatment, s CornerSize) *ModelBuilder {
	b.model.corners[CornerTopLeft] = t
	b.model.sizes[CornerTopLeft] = s
	return b
}

// SetTopRightCornerSize sets only the size of the top right corner.
func (b *ModelBuilder) SetTopRightCornerSize(s CornerSize) *ModelBuilder {
	b.model.sizes[CornerTopRight] = s
	return b
}

// SetBottomRightCornerSize sets only the size of the bottom right corner.
func (b *ModelBuilder) SetBottomRightCornerSize(s CornerSize) *ModelBuilder {
	b.model.sizes[CornerBottomRight] = s
	return b
}

// SetBottomLeftCornerSize sets only the size of the bottom left corner.
func (b *ModelBuilder) SetBottomLeftCornerSize(s CornerSize) *ModelBuilder {
	b.model.sizes[CornerBottomLeft] = s
	return b
}

// SetTopLeftCornerSize sets only the size of the top left corner.
func (b *ModelBuilder) SetTopLeftCornerSize(s CornerSize) *ModelBuilder {
	b.model.sizes[CornerTopLeft] = s
	return b
}

// SetRightEdge sets the treatment of the right edge.
func (b *ModelBuilder) SetRightEdge(e EdgeTreatment) *ModelBuilder {
	b.model.edges[EdgeRight] = e
	return b
}

// SetBottomEdge sets the treatment of the bottom edge.
func (b *ModelBuilder) SetBottomEdge(e EdgeTreatment) *ModelBuilder {
	b.model.edges[EdgeBottom] = e
	return b
}

// SetLeftEdge sets the treatment of the left edge.
func (b *ModelBuilder) SetLeftEdge(e EdgeTreatment) *ModelBuilder {
	b.model.edges[EdgeLeft] = e
	return b
}

// SetTopEdge sets the treatment of the top edge.
func (b *ModelBuilder) SetTopEdge(e EdgeTreatment) *ModelBuilder {
	b.model.edges[EdgeTop] = e
	return b
}

// Build returns the assembled immutable ShapeModel. The builder can be
// reused after Build.
func (b *ModelBuilder) Build() *ShapeModel {
	m := b.model
	return &m
}

// ToBuilder returns a builder initialized with this model's treatments
// and sizes.
func (m *ShapeModel) ToBuilder() *ModelBuilder {
	return &ModelBuilder{model: *m}
}

// WithCornerSizes returns a copy of the model with every corner size
// replaced by fn applied to the existing size.
func (m *ShapeModel) WithCornerSizes(fn func(CornerSize) CornerSize) *ShapeModel {
	out := *m
	for i, s := range m.sizes {
		out.sizes[i] = fn(s)
	}
	return &out
}

// WithCornerSize returns a copy of the model with every corner set to
// the given size.
func (m *ShapeModel) WithCornerSize(s CornerSize) *ShapeModel {
	out := *m
	for i := range out.sizes {
		out.sizes[i] = s
	}
	return &out
}

// TopRightCorner returns the top right corner treatment.
func (m *ShapeModel) TopRightCorner() CornerTreatment { return m.corners[CornerTopRight] }

// BottomRightCorner returns the bottom right corner treatment.
func (m *ShapeModel) BottomRightCorner() CornerTreatment { return m.corners[CornerBottomRight] }

// BottomLeftCorner returns the bottom left corner treatment.
func (m *ShapeModel) BottomLeftCorner() CornerTreatment { return m.corners[CornerBottomLeft] }

// TopLeftCorner returns the top left corner treatment.
func (m *ShapeModel) TopLeftCorner() CornerTreatment { return m.corners[CornerTopLeft] }

// TopRightCornerSize returns the top right corner size.
func (m *ShapeModel) TopRightCornerSize() CornerSize { return m.sizes[CornerTopRight] }

// BottomRightCornerSize returns the bottom right corner size.
func (m *ShapeModel) BottomRightCornerSize() CornerSize { return m.sizes[CornerBottomRight] }

// BottomLeftCornerSize returns the bottom left corner size.
func (m *ShapeModel) BottomLeftCornerSize() CornerSize { return m.sizes[CornerBottomLeft] }

// TopLeftCornerSize returns the top left corner size.
func (m *ShapeModel) TopLeftCornerSize() CornerSize { return m.sizes[CornerTopLeft] }

// RightEdge returns the right edge treatment.
func (m *ShapeModel) RightEdge() EdgeTreatment { return m.edges[EdgeRight] }

// BottomEdge returns the bottom edge treatment.
func (m *ShapeModel) BottomEdge() EdgeTreatment { return m.edges[EdgeBottom] }

// LeftEdge returns the left edge treatment.
func (m *ShapeModel) LeftEdge() EdgeTreatment { return m.edges[EdgeLeft] }

// TopEdge returns the top edge treatment.
func (m *ShapeModel) TopEdge() EdgeTreatment { return m.edges[EdgeTop] }

// CornerTreatmentAt returns the treatment of corner index (0 to 3).
func (m *ShapeModel) CornerTreatmentAt(index int) CornerTreatment { return m.corners[index] }

// CornerSizeAt returns the size of corner index (0 to 3).
func (m *ShapeModel) CornerSizeAt(index int) CornerSize { return m.sizes[index] }

// EdgeTreatmentAt returns the treatment of edge index (0 to 3).
func (m *ShapeModel) EdgeTreatmentAt(index int) EdgeTreatment { return m.edges[index] }

// HasRoundedCorners reports whether all four corners use the rounded
// treatment.
func (m *ShapeModel) HasRoundedCorners() bool {
	for _, c := range m.corners {
		if _, ok := c.(RoundedCornerTreatment); !ok {
			return false
		}
	}
	return true
}

// AllCornerSizesEqual reports whether all four corner sizes resolve to
// the same value for the given bounds.
func (m *ShapeModel) AllCornerSizesEqual(bounds Rect) bool {
	size := m.sizes[0].Resolve(bounds)
	for _, s := range m.sizes[1:] {
		if s.Resolve(bounds) != size {
			return false
		}
	}
	return true
}

// hasStraightEdges reports whether all four edges are untreated.
func (m *ShapeModel) hasStraightEdges() bool {
	for _, e := range m.edges {
		if _, ok := e.(StraightEdgeTreatment); !ok {
			return false
		}
	}
	return true
}

// IsRoundRect reports whether the shape reduces to a rectangle with a
// single uniform rounded corner radius for the given bounds. Shapes that
// do can skip path synthesis entirely and render through the round-rect
// fast path.
func (m *ShapeModel) IsRoundRect(bounds Rect) bool {
	return m.hasStraightEdges() && m.HasRoundedCorners() && m.AllCornerSizesEqual(bounds)
}

// State is a bitmask of widget interaction states.
type State uint32

const (
	// StateEnabled is set while the widget accepts input.
	StateEnabled State = 1 << iota
	// StatePressed is set while the widget is pressed.
	StatePressed
	// StateFocused is set while the widget has input focus.
	StateFocused
	// StateHovered is set while a pointer hovers over the widget.
	StateHovered
	// StateSelected is set while the widget is selected.
	StateSelected
	// StateActivated is set while the widget is activated.
	StateActivated
)

// Contains reports whether every bit of spec is present in s.
func (s State) Contains(spec State) bool { return s&spec == spec }

type stateShapeEntry struct {
	spec  State
	model *ShapeModel
}

// StateShapeList maps widget states to shape models. Entries are matched
// in insertion order and the first entry whose state bits are all present
// wins, so more specific entries must be added before more general ones.
type StateShapeList struct {
	entries      []stateShapeEntry
	defaultModel *ShapeModel
}

// NewStateShapeList creates a list that falls back to defaultModel when
// no entry matches.
func NewStateShapeList(defaultModel *ShapeModel) *StateShapeList {
	return &StateShapeList{defaultModel: defaultModel}
}

// Add appends an entry matched when all bits of spec are set.
// Returns the list for chaining.
func (l *StateShapeList) Add(spec State, model *ShapeModel) *StateShapeList {
	l.entries = append(l.entries, stateShapeEntry{spec: spec, model: model})
	return l
}

// ModelFor returns the shape model for the given state.
func (l *StateShapeList) ModelFor(state State) *ShapeModel {
	for _, e := range l.entries {
		if state.Contains(e.spec) {
			return e.model
		}
	}
	return l.defaultModel
}
