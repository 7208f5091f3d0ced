package main

import (
	"io"
	"os"

	"github.com/zx06/pw/internal/app"
	"github.com/zx06/pw/internal/clipboard"
	"github.com/zx06/pw/internal/errors"
	"github.com/zx06/pw/internal/output"
)

func main() {
	exit := run()
	os.Exit(exit)
}

// Streams are the process-level collaborators a command talks to.
type Streams struct {
	In        io.Reader
	Out       io.Writer
	Err       io.Writer
	Clipboard clipboard.Sink
}

// run is the main entry point
func run() int {
	return runWith(os.Args[1:], Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr, Clipboard: clipboard.System()})
}

func runWith(args []string, s Streams) int {
	GlobalConfig = &Config{}

	// Initialize application
	a := app.New(version, commit, date)
	w := output.New(s.Out, s.Err)
	sess := &session{streams: s, w: &w}

	// Create root command
	root := NewRootCommand(sess)
	root.SetArgs(args)
	root.SetIn(s.In)
	root.SetOut(s.Out)
	root.SetErr(s.Err)

	// Add subcommands
	root.AddCommand(NewNewCommand(sess))
	root.AddCommand(NewListCommand(sess))
	root.AddCommand(NewShowCommand(sess))
	root.AddCommand(NewCopyCommand(sess))
	root.AddCommand(NewUnsupportedCommand(sess, "edit", "Edit a credential (not yet implemented)"))
	root.AddCommand(NewUnsupportedCommand(sess, "delete", "Delete a credential (not yet implemented)"))
	root.AddCommand(NewProfileCommand(sess))
	root.AddCommand(NewSpecCommand(&a, sess))
	root.AddCommand(NewVersionCommand(&a, sess))

	// Execute and handle errors
	if err := root.Execute(); err != nil {
		xe := normalizeErr(err)
		format := resolveFormatForError(GlobalConfig.FormatStr)
		_ = w.WriteError(format, xe)
		return int(errors.ExitCodeFor(xe.Code))
	}

	return int(errors.ExitOK)
}
