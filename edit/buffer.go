// Copyright © 2015, The T Authors.

package edit

// lineBuffer is an index-addressable, growable sequence of Line handles.
// Positions are 1-based, matching the Document's own addressing.
//
// Growth is geometric, the same policy the original implementation's
// dynamic array uses (new_capacity = old_capacity + old_capacity/2 + 1),
// so that a long run of append calls costs amortized O(1) each rather
// than O(n) per grow.
type lineBuffer struct {
	lines []*Line
}

func newLineBuffer() *lineBuffer { return &lineBuffer{} }

// len returns the number of lines currently stored.
func (b *lineBuffer) len() int { return len(b.lines) }

// get returns the handle at position i. It requires 1 <= i <= len().
func (b *lineBuffer) get(i int) *Line { return b.lines[i-1] }

// grow ensures capacity for at least n total lines, following the
// geometric growth policy of the package.
func (b *lineBuffer) grow(n int) {
	if cap(b.lines) >= n {
		return
	}
	newCap := cap(b.lines) + cap(b.lines)/2 + 1
	if newCap < n {
		newCap = n
	}
	grown := make([]*Line, len(b.lines), newCap)
	copy(grown, b.lines)
	b.lines = grown
}

// append inserts h at position len()+1.
func (b *lineBuffer) append(h *Line) {
	b.grow(len(b.lines) + 1)
	b.lines = append(b.lines, h)
}

// insert inserts h at position i, shifting positions i..len() up by one.
// It requires 1 <= i <= len()+1.
func (b *lineBuffer) insert(i int, h *Line) {
	b.grow(len(b.lines) + 1)
	b.lines = append(b.lines, nil)
	copy(b.lines[i:], b.lines[i-1:len(b.lines)-1])
	b.lines[i-1] = h
}

// remove removes and returns the handle at position i, shifting positions
// i+1..len() down by one. It requires 1 <= i <= len().
func (b *lineBuffer) remove(i int) *Line {
	h := b.lines[i-1]
	copy(b.lines[i-1:], b.lines[i:])
	b.lines[len(b.lines)-1] = nil
	b.lines = b.lines[:len(b.lines)-1]
	return h
}

// replace swaps the handle at position i for h and returns the handle
// that was there. It requires 1 <= i <= len().
func (b *lineBuffer) replace(i int, h *Line) *Line {
	old := b.lines[i-1]
	b.lines[i-1] = h
	return old
}
