// Qed is a batch line editor. It reads a stream of change, delete,
// print, undo, redo, and quit commands from standard input in the wire
// format documented by github.com/eaburns/qed/wire, and writes the
// results of print commands to standard output.
//
// Qed edits a single in-memory document per process. It adds no
// commands beyond the six the wire format defines: there is no file
// save or load, matching the editor's No-persistence non-goal.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/eaburns/qed/edit"
	"github.com/eaburns/qed/wire"
)

var (
	logPath = flag.String("log", "", "a file to which all decoded commands are logged")
)

func main() {
	flag.Parse()

	var logw io.Writer
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "failed to open log:", err)
			os.Exit(1)
		}
		defer f.Close()
		logw = f
	}

	os.Exit(run(os.Stdin, os.Stdout, logw))
}

// run drives the command loop to completion and returns the process
// exit code: 0 on a clean "q", non-zero on a malformed command or I/O
// error.
func run(stdin io.Reader, stdout io.Writer, logw io.Writer) int {
	doc := edit.NewDocument()
	dec := wire.NewDecoder(stdin)
	out := wire.NewWriter(stdout)

	for {
		cmd, err := dec.Next()
		if err == io.EOF {
			return 0
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}

		switch cmd.Kind {
		case wire.Change:
			payload, err := dec.ReadPayload(cmd.A2 - cmd.A1 + 1)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return 1
			}
			doc.Change(cmd.A1, cmd.A2, payload)
		case wire.Delete:
			doc.Delete(cmd.A1, cmd.A2)
		case wire.Print:
			for _, line := range doc.Print(cmd.A1, cmd.A2) {
				if err := out.Emit(line.Bytes(), line != nil); err != nil {
					fmt.Fprintln(os.Stderr, err)
					return 1
				}
			}
			out.Flush()
		case wire.Undo:
			doc.Undo(cmd.N)
		case wire.Redo:
			doc.Redo(cmd.N)
		case wire.Quit:
			return 0
		}

		if logw != nil {
			fmt.Fprintf(logw, "%s %d,%d n=%d\n", cmd.Kind, cmd.A1, cmd.A2, cmd.N)
		}
	}
}
