// Copyright © 2015, The T Authors.

package edit

// A history is the pair of undo/redo stacks described by the design
// document's C4. Both are LIFO stacks of *editRecord.
//
// swapUndoToRedo and swapRedoToUndo move the top record of one stack
// onto the other without
// touching the record's Old/New slices — the same handles that were
// live in the record before the move are live in it after, preserving
// the reference-sharing discipline between the document and its
// history entries.
type history struct {
	undo, redo []*editRecord
	// redoable tracks whether any undo has been issued since the most
	// recent fresh mutation. Redo tokens are ignored while this is false.
	redoable bool
}

func newHistory() *history { return &history{} }

// pushUndo pushes r onto the undo stack. It does not touch the redo
// stack; callers that are starting a fresh mutation must call clearRedo
// themselves (see Document.Change and Document.Delete).
func (h *history) pushUndo(r *editRecord) {
	h.undo = append(h.undo, r)
}

// clearRedo discards every record on the redo stack and clears the
// redoable latch.
func (h *history) clearRedo() {
	h.redo = h.redo[:0]
	h.redoable = false
}

// undoLen and redoLen report the number of records on each stack.
func (h *history) undoLen() int { return len(h.undo) }
func (h *history) redoLen() int { return len(h.redo) }

// peekUndo and peekRedo return the top record of each stack, or nil if
// the stack is empty.
func (h *history) peekUndo() *editRecord {
	if len(h.undo) == 0 {
		return nil
	}
	return h.undo[len(h.undo)-1]
}

func (h *history) peekRedo() *editRecord {
	if len(h.redo) == 0 {
		return nil
	}
	return h.redo[len(h.redo)-1]
}

// swapUndoToRedo detaches the top record of the undo stack and splices
// it onto the redo stack.
func (h *history) swapUndoToRedo() *editRecord {
	r := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, r)
	return r
}

// swapRedoToUndo detaches the top record of the redo stack and splices
// it onto the undo stack.
func (h *history) swapRedoToUndo() *editRecord {
	r := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, r)
	return r
}
