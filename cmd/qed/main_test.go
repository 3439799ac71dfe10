package main

import (
	"bytes"
	"strings"
	"testing"
)

func script(t *testing.T, in string) string {
	t.Helper()
	var out bytes.Buffer
	run(strings.NewReader(in), &out, nil)
	return out.String()
}

func TestEmptyDocChangeThenPrint(t *testing.T) {
	got := script(t, "1,3c\nA\nB\nC\n.\n1,3p\nq\n")
	if want := "A\nB\nC"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPrintPastEnd(t *testing.T) {
	got := script(t, "1,3c\nA\nB\nC\n.\n1,5p\nq\n")
	if want := "A\nB\nC\n.\n."; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDeleteMiddleAndUndo(t *testing.T) {
	got := script(t, "1,4c\nA\nB\nC\nD\n.\n2,3d\n1,4p\n1u\n1,4p\nq\n")
	if want := "A\nD\n.\n.\nA\nB\nC\nD"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestChangeExtendingThenUndo(t *testing.T) {
	got := script(t, "1,2c\nX\nY\n.\n1,4c\nP\nQ\nR\nS\n.\n1u\n1,4p\nq\n")
	if want := "X\nY\n.\n."; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRedoInvalidatedByNewMutation(t *testing.T) {
	got := script(t, "1,1c\nA\n.\n1u\n1,1c\nB\n.\n1r\n1,1p\nq\n")
	if want := "B"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestChangeWithInvertedRangeDoesNotPanic(t *testing.T) {
	got := script(t, "1,2c\nA\nB\n.\n3,1c\n.\n1,2p\nq\n")
	if want := "A\nB"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestMalformedCommandExitsNonZero(t *testing.T) {
	var out bytes.Buffer
	code := run(strings.NewReader("bogus\n"), &out, nil)
	if code == 0 {
		t.Fatal("run() on malformed input returned 0, want non-zero")
	}
}
