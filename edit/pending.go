// Copyright © 2015, The T Authors.

package edit

// pending is the lazily-applied displacement counter of C5: a signed
// count of queued history moves, positive for undo, negative for redo.
//
// It is a three-state machine over (sign(p), redoable): Neutral (p==0),
// UndoPending (p>0, redoable), RedoPending (p<0, redoable). u and r move
// between these states; drain always returns to Neutral.
type pending struct {
	p int
}

// u queues n undos. It latches redoable and saturates p at the size of
// the undo stack.
func (p *pending) u(h *history, n int) {
	h.redoable = true
	p.p += n
	if p.p > h.undoLen() {
		p.p = h.undoLen()
	}
	if -p.p > h.redoLen() {
		p.p = -h.redoLen()
	}
}

// r queues n redos. If no undo has been issued since the last fresh
// mutation, the tokens are discarded (the redoable gate).
func (p *pending) r(h *history, n int) {
	if !h.redoable {
		return
	}
	p.p -= n
	if p.p > h.undoLen() {
		p.p = h.undoLen()
	}
	if -p.p > h.redoLen() {
		p.p = -h.redoLen()
	}
}

// net returns the current signed displacement without draining it.
func (p *pending) net() int { return p.p }

// reset zeroes the counter. Called once drain has applied every queued
// move.
func (p *pending) reset() { p.p = 0 }
