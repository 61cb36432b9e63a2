package ui

// Boundary decides what Move does at either end of a group.
type Boundary int

const (
	// BoundaryWrap cycles from the last item to the first and back. Lists use it.
	BoundaryWrap Boundary = iota
	// BoundaryClamp stops at the ends. Form fields use it.
	BoundaryClamp
)

const defaultPageSize = 10

// FocusGroup is an ordered set of selectable items with a cursor and a
// scroll window. The index stays in [0, length) while the group is
// non-empty and is 0 when it is empty.
type FocusGroup struct {
	name     string
	index    int
	length   int
	offset   int
	pageSize int
	boundary Boundary
}

// NewFocusGroup returns a group positioned on its first item.
func NewFocusGroup(name string, length int, boundary Boundary) FocusGroup {
	if length < 0 {
		length = 0
	}
	return FocusGroup{
		name:     name,
		length:   length,
		pageSize: defaultPageSize,
		boundary: boundary,
	}
}

// Name identifies the collection the group navigates.
func (g FocusGroup) Name() string { return g.name }

// Index is the current position.
func (g FocusGroup) Index() int { return g.index }

// Len is the number of items.
func (g FocusGroup) Len() int { return g.length }

// Move shifts the cursor by delta, wrapping or clamping per the boundary.
func (g *FocusGroup) Move(delta int) {
	if g.length == 0 {
		g.index = 0
		g.offset = 0
		return
	}
	next := g.index + delta
	switch g.boundary {
	case BoundaryWrap:
		next %= g.length
		if next < 0 {
			next += g.length
		}
	default:
		next = clampIndex(next, g.length)
	}
	g.index = next
	g.scroll()
}

// SetIndex jumps to i, clamped into range.
func (g *FocusGroup) SetIndex(i int) {
	g.index = clampIndex(i, g.length)
	g.scroll()
}

// SetLen updates the item count and clamps the cursor into the new range.
func (g *FocusGroup) SetLen(n int) {
	if n < 0 {
		n = 0
	}
	g.length = n
	g.index = clampIndex(g.index, n)
	g.scroll()
}

// SetPageSize changes how many items the window shows.
func (g *FocusGroup) SetPageSize(n int) {
	if n < 1 {
		n = 1
	}
	g.pageSize = n
	g.scroll()
}

// Window returns the half-open range of visible item indexes.
func (g FocusGroup) Window() (start, end int) {
	if g.length == 0 {
		return 0, 0
	}
	page := g.pageSize
	if page < 1 {
		page = defaultPageSize
	}
	end = g.offset + page
	if end > g.length {
		end = g.length
	}
	return g.offset, end
}

func (g *FocusGroup) scroll() {
	page := g.pageSize
	if page < 1 {
		page = defaultPageSize
	}
	if g.index < g.offset {
		g.offset = g.index
	}
	if g.index >= g.offset+page {
		g.offset = g.index - page + 1
	}
	if maxOffset := g.length - page; g.offset > maxOffset {
		g.offset = maxOffset
	}
	if g.offset < 0 {
		g.offset = 0
	}
}

func clampIndex(i, length int) int {
	if length <= 0 || i < 0 {
		return 0
	}
	if i >= length {
		return length - 1
	}
	return i
}

// ActiveItem returns the item under the group's cursor.
func ActiveItem[T any](g FocusGroup, items []T) (T, bool) {
	var zero T
	if g.length == 0 || g.index >= len(items) {
		return zero, false
	}
	return items[g.index], true
}

// Focus owns the active group and the groups suspended beneath it. Rebind
// replaces the active group; Descend saves it so Return can restore the
// exact position later.
type Focus struct {
	active FocusGroup
	saved  []FocusGroup
}

// Active returns the group that currently receives Up/Down.
func (f Focus) Active() FocusGroup { return f.active }

// Depth is the number of suspended groups.
func (f Focus) Depth() int { return len(f.saved) }

// Rebind makes g the active group without saving the previous one.
func (f *Focus) Rebind(g FocusGroup) {
	f.active = g
}

// Descend suspends the active group and activates g.
func (f *Focus) Descend(g FocusGroup) {
	f.saved = append(f.saved, f.active)
	f.active = g
}

// Return restores the most recently suspended group.
func (f *Focus) Return() bool {
	if len(f.saved) == 0 {
		return false
	}
	f.active = f.saved[len(f.saved)-1]
	f.saved = f.saved[:len(f.saved)-1]
	return true
}

// ReturnAll restores the bottom group, dropping everything above it.
func (f *Focus) ReturnAll() {
	if len(f.saved) == 0 {
		return
	}
	f.active = f.saved[0]
	f.saved = nil
}

// Current gives mutable access to the active group.
func (f *Focus) Current() *FocusGroup {
	return &f.active
}
