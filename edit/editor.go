// Copyright © 2015, The T Authors.

package edit

// A Document is the mutable state the history engine operates over: an
// ordered sequence of lines plus the undo/redo stacks and pending
// displacement counter that make changes to it reversible.
//
// A Document corresponds to the design document's singletons D, U, V,
// and P, bundled into one value so that, unlike the source program this
// repository generalizes, tests and callers can hold any number of
// independent Documents rather than sharing one process-wide instance.
type Document struct {
	buf  *lineBuffer
	hist *history
	pend pending
}

// NewDocument returns a new, empty Document.
func NewDocument() *Document {
	return &Document{buf: newLineBuffer(), hist: newHistory()}
}

// Len returns the number of lines currently in the Document, after
// draining any pending history displacement.
func (d *Document) Len() int {
	d.drain()
	return d.buf.len()
}

// validRange reports whether (a1,a2) is a valid address range against a
// document of the given length: a1 > 0, a2 >= a1, and either a1 is within
// the document or a1 == 1 (the exemption that lets an empty document
// accept its first change or delete at line 1).
func validRange(a1, a2, docLen int) bool {
	return a1 > 0 && a2 >= a1 && (a1 <= docLen || a1 == 1)
}

// Change replaces lines a1..a2 (inclusive) with the given payload lines,
// installing one payload line per requested position and appending any
// surplus past the end of the Document. len(payload) must equal
// a2-a1+1; the wire-level driver is responsible for reading exactly that
// many payload lines before the command is dispatched.
//
// Change drains any pending history displacement first, then clears the
// redo stack and pushes a new Change record onto the undo stack. If the
// range is invalid (per validRange, e.g. a2 < a1), Change pushes a
// no-op record — mirroring Delete's handling of an invalid range —
// rather than touching the buffer or payload.
func (d *Document) Change(a1, a2 int, payload [][]byte) {
	d.drain()
	d.hist.clearRedo()

	if !validRange(a1, a2, d.buf.len()) {
		d.hist.pushUndo(newChangeRecord(a1, a2, nil, nil))
		return
	}

	k := a2 - a1 + 1
	old := make([]*Line, 0, k)
	new := make([]*Line, 0, k)
	for j := 0; j < k; j++ {
		pos := a1 + j
		h := NewLine(payload[j])
		if pos <= d.buf.len() {
			old = append(old, d.buf.replace(pos, h))
		} else {
			d.buf.append(h)
		}
		new = append(new, h)
	}
	d.hist.pushUndo(newChangeRecord(a1, a2, old, new))
}

// Delete removes lines a1..a2 (inclusive). If the range is invalid (per
// validRange) or entirely beyond the end of the Document, Delete still
// pushes a record — with an empty Old side for an invalid range — so
// that the undo/redo timeline stays aligned with the number of mutating
// commands the client has issued.
//
// Delete drains any pending history displacement first, then clears the
// redo stack and pushes a new Delete record onto the undo stack.
func (d *Document) Delete(a1, a2 int) {
	d.drain()
	d.hist.clearRedo()

	if !validRange(a1, a2, d.buf.len()) {
		d.hist.pushUndo(newDeleteRecord(a1, a2, nil))
		return
	}

	last := a2
	if d.buf.len() < last {
		last = d.buf.len()
	}
	m := last - a1 + 1
	if m < 0 {
		m = 0
	}
	old := make([]*Line, 0, m)
	for i := 0; i < m; i++ {
		old = append(old, d.buf.remove(a1))
	}
	d.hist.pushUndo(newDeleteRecord(a1, a2, old))
}

// Print drains any pending history displacement, then returns one
// element per requested position in a1..a2 (inclusive): the Line at that
// position, or nil if the position falls outside the current Document.
// A nil element is the "missing-marker" output the design document's C6
// renders as a literal ".".
func (d *Document) Print(a1, a2 int) []*Line {
	d.drain()
	if a2 < a1 {
		return nil
	}
	out := make([]*Line, 0, a2-a1+1)
	for i := a1; i <= a2; i++ {
		if i >= 1 && i <= d.buf.len() {
			out = append(out, d.buf.get(i))
		} else {
			out = append(out, nil)
		}
	}
	return out
}

// Undo queues n undo tokens. The queue is coalesced with any previously
// queued displacement and is not applied until the next call to Change,
// Delete, Print, or Len.
func (d *Document) Undo(n int) { d.pend.u(d.hist, n) }

// Redo queues n redo tokens, unless no undo has been issued since the
// most recent fresh mutation, in which case the tokens are discarded.
func (d *Document) Redo(n int) { d.pend.r(d.hist, n) }

// drain applies the currently queued pending displacement, one record at
// a time, then resets the counter to zero.
func (d *Document) drain() {
	n := d.pend.net()
	switch {
	case n > 0:
		for i := 0; i < n; i++ {
			d.undo1()
		}
	case n < 0:
		for i := 0; i < -n; i++ {
			d.redo1()
		}
	}
	d.pend.reset()
}

// undo1 reverses the record at the top of the undo stack, moving it to
// the top of the redo stack. It is a no-op if the undo stack is empty.
func (d *Document) undo1() {
	r := d.hist.peekUndo()
	if r == nil {
		return
	}
	switch r.kind {
	case changeRecord:
		if len(r.new) == 0 {
			break // invalid change: undoing it is a no-op.
		}
		k := r.span()
		o := len(r.old)
		for j := 0; j < o; j++ {
			// The handle displaced here is exactly r.new[j], which
			// remains live in r.new for a subsequent redo.
			d.buf.replace(r.a1+j, r.old[j])
		}
		for j := o; j < k; j++ {
			d.buf.remove(d.buf.len())
		}
	case deleteRecord:
		if len(r.old) == 0 {
			break // invalid delete: undoing it is a no-op.
		}
		if r.a1 > d.buf.len() {
			for _, h := range r.old {
				d.buf.append(h)
			}
		} else {
			for j, h := range r.old {
				d.buf.insert(r.a1+j, h)
			}
		}
	}
	d.hist.swapUndoToRedo()
}

// redo1 re-applies the record at the top of the redo stack, moving it
// back to the top of the undo stack. It is a no-op if the redo stack is
// empty.
func (d *Document) redo1() {
	r := d.hist.peekRedo()
	if r == nil {
		return
	}
	switch r.kind {
	case changeRecord:
		if len(r.new) == 0 {
			break // the change this record came from was a no-op.
		}
		k := r.span()
		for j := 0; j < k; j++ {
			if r.a1+j <= d.buf.len() {
				d.buf.replace(r.a1+j, r.new[j])
			} else {
				d.buf.append(r.new[j])
			}
		}
	case deleteRecord:
		if !validRange(r.a1, r.a2, d.buf.len()) {
			break // the delete this record came from was a no-op.
		}
		last := r.a2
		if d.buf.len() < last {
			last = d.buf.len()
		}
		m := last - r.a1 + 1
		if m < 0 {
			m = 0
		}
		if m > len(r.old) {
			m = len(r.old)
		}
		for i := 0; i < m; i++ {
			r.old[i] = d.buf.remove(r.a1)
		}
	}
	d.hist.swapRedoToUndo()
}
