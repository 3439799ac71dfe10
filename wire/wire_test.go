// Copyright © 2015, The T Authors.

package wire

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		tok  string
		want Command
	}{
		{"1,3c", Command{Kind: Change, A1: 1, A2: 3}},
		{"2,3d", Command{Kind: Delete, A1: 2, A2: 3}},
		{"1,5p", Command{Kind: Print, A1: 1, A2: 5}},
		{"0,0p", Command{Kind: Print, A1: 0, A2: 0}},
		{"1u", Command{Kind: Undo, N: 1}},
		{"2r", Command{Kind: Redo, N: 2}},
		{"q", Command{Kind: Quit}},
	}
	for _, test := range tests {
		d := NewDecoder(strings.NewReader(test.tok + "\n"))
		got, err := d.Next()
		if err != nil {
			t.Errorf("parseCommand(%q): unexpected error %v", test.tok, err)
			continue
		}
		if got != test.want {
			t.Errorf("parseCommand(%q)=%+v, want %+v", test.tok, got, test.want)
		}
	}
}

func TestParseCommandMalformed(t *testing.T) {
	tests := []string{"", "x", "1,c", "1,2", "1,2x", "1uu", "1,", ",1c"}
	for _, tok := range tests {
		d := NewDecoder(strings.NewReader(tok + "\n"))
		if _, err := d.Next(); err == nil {
			t.Errorf("parseCommand(%q): got nil error, want a SyntaxError", tok)
		} else if _, ok := err.(*SyntaxError); !ok {
			t.Errorf("parseCommand(%q): got %T, want *SyntaxError", tok, err)
		}
	}
}

func TestNextEOF(t *testing.T) {
	d := NewDecoder(strings.NewReader(""))
	if _, err := d.Next(); err != io.EOF {
		t.Fatalf("Next() on empty input = %v, want io.EOF", err)
	}
}

func TestReadPayload(t *testing.T) {
	d := NewDecoder(strings.NewReader("A\nB\nC\n.\n"))
	payload, err := d.ReadPayload(3)
	if err != nil {
		t.Fatalf("ReadPayload(3)=%v", err)
	}
	want := []string{"A", "B", "C"}
	for i, w := range want {
		if string(payload[i]) != w {
			t.Errorf("payload[%d]=%q, want %q", i, payload[i], w)
		}
	}
}

func TestReadPayloadMissingTerminator(t *testing.T) {
	d := NewDecoder(strings.NewReader("A\nB\n"))
	if _, err := d.ReadPayload(1); err != ErrTerminatorExpected {
		t.Fatalf("ReadPayload()=%v, want ErrTerminatorExpected", err)
	}
}

func TestReadPayloadTruncatesLongLines(t *testing.T) {
	long := strings.Repeat("x", MaxLine+100)
	d := NewDecoder(strings.NewReader(long + "\n.\n"))
	payload, err := d.ReadPayload(1)
	if err != nil {
		t.Fatalf("ReadPayload(1)=%v", err)
	}
	if len(payload[0]) != MaxLine {
		t.Fatalf("len(payload[0])=%d, want %d", len(payload[0]), MaxLine)
	}
}

func TestReadPayloadNegativeCountReadsNone(t *testing.T) {
	d := NewDecoder(strings.NewReader(".\n"))
	payload, err := d.ReadPayload(-1)
	if err != nil {
		t.Fatalf("ReadPayload(-1)=%v", err)
	}
	if len(payload) != 0 {
		t.Fatalf("len(payload)=%d, want 0", len(payload))
	}
}

func TestWriterFirstEmitSuppressesLeadingNewline(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.Emit([]byte("A"), true)
	w.Emit([]byte("B"), true)
	w.Emit(nil, false)
	w.Flush()

	want := "A\nB\n."
	if buf.String() != want {
		t.Fatalf("output=%q, want %q", buf.String(), want)
	}
}
