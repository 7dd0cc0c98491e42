// Package selection holds the list cursor: an optional index that wraps at
// both ends of a list.
package selection

// Cursor is either unset (the zero value) or an index into a list.
type Cursor struct {
	index int
	set   bool
}

// At returns a cursor set to i.
func At(i int) Cursor { return Cursor{index: i, set: true} }

// Index reports the selected index, or false when nothing is selected.
func (c Cursor) Index() (int, bool) {
	return c.index, c.set
}

// IsSet reports whether an index is selected.
func (c Cursor) IsSet() bool { return c.set }

// Next moves to the following index of a list with n elements, wrapping from
// the last element to the first. An unset cursor lands on 0; an empty list
// always yields an unset cursor.
func (c Cursor) Next(n int) Cursor {
	if n <= 0 {
		return Cursor{}
	}
	if !c.inRange(n) {
		return At(0)
	}
	if c.index == n-1 {
		return At(0)
	}
	return At(c.index + 1)
}

// Prev moves to the preceding index, wrapping from the first element to the
// last. An unset cursor also lands on 0, not on the last element.
func (c Cursor) Prev(n int) Cursor {
	if n <= 0 {
		return Cursor{}
	}
	if !c.inRange(n) {
		return At(0)
	}
	if c.index == 0 {
		return At(n - 1)
	}
	return At(c.index - 1)
}

func (c Cursor) inRange(n int) bool {
	return c.set && c.index >= 0 && c.index < n
}
