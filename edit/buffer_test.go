// Copyright © 2015, The T Authors.

package edit

import "testing"

func linesOf(ss ...string) []*Line {
	ls := make([]*Line, len(ss))
	for i, s := range ss {
		ls[i] = NewLine([]byte(s))
	}
	return ls
}

func (b *lineBuffer) strings() []string {
	ss := make([]string, b.len())
	for i := range ss {
		ss[i] = b.get(i + 1).String()
	}
	return ss
}

func TestLineBufferAppend(t *testing.T) {
	b := newLineBuffer()
	for _, s := range []string{"a", "b", "c"} {
		b.append(NewLine([]byte(s)))
	}
	if got := b.strings(); !equalStrings(got, []string{"a", "b", "c"}) {
		t.Fatalf("b.strings()=%v, want [a b c]", got)
	}
}

func TestLineBufferInsert(t *testing.T) {
	b := newLineBuffer()
	for _, s := range []string{"a", "c"} {
		b.append(NewLine([]byte(s)))
	}
	b.insert(2, NewLine([]byte("b")))
	if got := b.strings(); !equalStrings(got, []string{"a", "b", "c"}) {
		t.Fatalf("b.strings()=%v, want [a b c]", got)
	}
	b.insert(1, NewLine([]byte("_")))
	if got := b.strings(); !equalStrings(got, []string{"_", "a", "b", "c"}) {
		t.Fatalf("b.strings()=%v, want [_ a b c]", got)
	}
	b.insert(b.len()+1, NewLine([]byte("$")))
	if got := b.strings(); !equalStrings(got, []string{"_", "a", "b", "c", "$"}) {
		t.Fatalf("b.strings()=%v, want [_ a b c $]", got)
	}
}

func TestLineBufferRemove(t *testing.T) {
	b := newLineBuffer()
	for _, s := range []string{"a", "b", "c", "d"} {
		b.append(NewLine([]byte(s)))
	}
	got := b.remove(2).String()
	if got != "b" {
		t.Fatalf("b.remove(2)=%q, want b", got)
	}
	if got := b.strings(); !equalStrings(got, []string{"a", "c", "d"}) {
		t.Fatalf("b.strings()=%v, want [a c d]", got)
	}
}

func TestLineBufferReplace(t *testing.T) {
	b := newLineBuffer()
	for _, s := range []string{"a", "b", "c"} {
		b.append(NewLine([]byte(s)))
	}
	old := b.replace(2, NewLine([]byte("B")))
	if old.String() != "b" {
		t.Fatalf("b.replace(2,...)=%q, want b", old.String())
	}
	if got := b.strings(); !equalStrings(got, []string{"a", "B", "c"}) {
		t.Fatalf("b.strings()=%v, want [a B c]", got)
	}
}

func TestLineBufferGrowthGeometric(t *testing.T) {
	b := newLineBuffer()
	prevCap := cap(b.lines)
	grew := false
	for i := 0; i < 64; i++ {
		b.append(NewLine([]byte("x")))
		if cap(b.lines) != prevCap {
			if prevCap > 0 && float64(cap(b.lines)) < float64(prevCap)*1.5 {
				t.Fatalf("capacity grew by less than 1.5x: %d -> %d", prevCap, cap(b.lines))
			}
			grew = true
			prevCap = cap(b.lines)
		}
	}
	if !grew {
		t.Fatal("lineBuffer capacity never grew")
	}
}

func TestLineTruncatesAtMaxLine(t *testing.T) {
	big := make([]byte, MaxLine+500)
	for i := range big {
		big[i] = 'x'
	}
	l := NewLine(big)
	if len(l.Bytes()) != MaxLine {
		t.Fatalf("len(l.Bytes())=%d, want %d", len(l.Bytes()), MaxLine)
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
