// Copyright © 2015, The T Authors.

// Package edit implements the in-memory, line-oriented document and its
// reversible history engine.
//
// A Document is an ordered, 1-indexed sequence of Lines. It is changed by
// Change and Delete, observed by Print, and its history is rewound or
// replayed by Undo and Redo. All mutation and replay is single-threaded:
// a Document's methods must not be called concurrently from more than one
// goroutine (see the package-level Non-goals in the design document this
// repository implements).
package edit

// MaxLine is the maximum number of bytes kept in a single Line body.
// Longer payload lines are truncated at this boundary rather than
// rejected, mirroring the fgets-style truncation of the original
// implementation this package is modeled on.
const MaxLine = 1024

// A Line is an immutable byte string held by reference.
//
// Lines are shared by pointer: the same Line may be referenced
// simultaneously by a Document and by any number of EditRecords in its
// undo or redo stacks. Go's garbage collector already implements the
// "valid while referenced" contract a manual arena or refcount scheme
// would otherwise need to provide by hand, so a Line carries no
// reference count of its own.
type Line struct {
	body []byte
}

// NewLine returns a new Line holding a copy of b, truncated to MaxLine
// bytes if necessary. The caller's slice is not retained.
func NewLine(b []byte) *Line {
	if len(b) > MaxLine {
		b = b[:MaxLine]
	}
	body := make([]byte, len(b))
	copy(body, b)
	return &Line{body: body}
}

// Bytes returns the Line's body. The returned slice must not be modified;
// Lines are immutable once created.
func (l *Line) Bytes() []byte {
	if l == nil {
		return nil
	}
	return l.body
}

// String returns the Line's body as a string.
func (l *Line) String() string { return string(l.Bytes()) }

// Equal reports whether l and m have the same body. Two Lines with equal
// bodies need not be the same handle.
func (l *Line) Equal(m *Line) bool {
	if l == m {
		return true
	}
	if l == nil || m == nil {
		return len(l.Bytes()) == 0 && len(m.Bytes()) == 0
	}
	return string(l.body) == string(m.body)
}
