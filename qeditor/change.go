// Copyright © 2016, The T Authors.

package qeditor

import "github.com/eaburns/qed/wire"

// A ChangeEvent describes one drained mutation applied to a document: the
// command that caused it and the sequence number of that command within
// the document's lifetime. Seq lets a spectator (§14 of the design
// document) tell whether it has missed an event.
type ChangeEvent struct {
	Seq  int       `json:"seq"`
	Kind wire.Kind `json:"kind"`
	A1   int       `json:"a1,omitempty"`
	A2   int       `json:"a2,omitempty"`
	N    int       `json:"n,omitempty"`
}

// CommandResult is the response to a POST of one command: the lines a
// Print command produced, or nil for every other kind.
type CommandResult struct {
	Output []string `json:"output,omitempty"`
}

// apply dispatches one decoded command against d's document, publishing
// a ChangeEvent to every subscriber when the command mutates the
// document. It must be called with d.mu held.
func (d *document) apply(cmd wire.Command, payload [][]byte) CommandResult {
	var result CommandResult
	switch cmd.Kind {
	case wire.Change:
		d.doc.Change(cmd.A1, cmd.A2, payload)
		d.publishMutation(cmd)
	case wire.Delete:
		d.doc.Delete(cmd.A1, cmd.A2)
		d.publishMutation(cmd)
	case wire.Print:
		for _, line := range d.doc.Print(cmd.A1, cmd.A2) {
			if line == nil {
				result.Output = append(result.Output, wire.Missing)
			} else {
				result.Output = append(result.Output, line.String())
			}
		}
	case wire.Undo:
		d.doc.Undo(cmd.N)
	case wire.Redo:
		d.doc.Redo(cmd.N)
	}
	return result
}

func (d *document) publishMutation(cmd wire.Command) {
	d.seq++
	d.publish(ChangeEvent{Seq: d.seq, Kind: cmd.Kind, A1: cmd.A1, A2: cmd.A2, N: cmd.N})
}
