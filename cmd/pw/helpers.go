package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/zx06/pw/internal/app"
	"github.com/zx06/pw/internal/errors"
	"github.com/zx06/pw/internal/log"
	"github.com/zx06/pw/internal/output"
	"github.com/zx06/pw/internal/prompt"
	"github.com/zx06/pw/internal/store"
)

// session carries the per-invocation collaborators shared by all commands.
type session struct {
	streams Streams
	w       *output.Writer
	logger  *slog.Logger
	input   *prompt.Reader
}

func (s *session) log() *slog.Logger {
	if s.logger == nil {
		s.logger = log.New(s.streams.Err)
	}
	return s.logger
}

// chatter is where prompts and progress notices go: stdout for text output,
// stderr when stdout carries a machine-readable envelope.
func (s *session) chatter(format output.Format) io.Writer {
	if output.IsStructured(format) {
		return s.streams.Err
	}
	return s.streams.Out
}

// prompter returns the interactive reader, created once per invocation so
// buffered input is not lost between prompts.
func (s *session) prompter(format output.Format) *prompt.Reader {
	if s.input == nil {
		if f, ok := s.streams.In.(*os.File); ok {
			s.input = prompt.FromFile(f, s.chatter(format))
		} else {
			s.input = prompt.New(s.streams.In, s.chatter(format))
		}
	}
	return s.input
}

// openVault bootstraps the data file and wires a Vault around it.
// Bootstrap failures abort the command before it does anything else.
func (s *session) openVault(ctx context.Context, format output.Format) (*app.Vault, func(), error) {
	path, xe := GlobalConfig.Resolved.RequireDataPath()
	if xe != nil {
		return nil, nil, xe
	}
	st, xe := store.Open(ctx, path, s.log())
	if xe != nil {
		return nil, nil, xe
	}
	if s.log().Enabled(ctx, slog.LevelDebug) {
		if n, xe := st.Count(ctx); xe == nil {
			s.log().Debug("credential store ready", "path", st.Path(), "rows", n)
		}
	}
	v := app.NewVault(app.Deps{
		Store:     st,
		Input:     s.prompter(format),
		Clipboard: s.streams.Clipboard,
		Notices:   s.chatter(format),
		Logger:    s.log(),
	})
	return v, func() { _ = st.Close() }, nil
}

// usageArgs reports positional argument errors as PW_CFG_INVALID.
func usageArgs(v cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := v(cmd, args); err != nil {
			return errors.Wrap(errors.CodeCfgInvalid, err.Error(), map[string]any{"command": cmd.Name()}, err)
		}
		return nil
	}
}

// parseOutputFormat parses and validates the output format string
func parseOutputFormat(s string) (output.Format, error) {
	f := output.Format(s)
	if !output.IsValid(f) {
		return "", errors.New(errors.CodeCfgInvalid, "invalid output format", map[string]any{"format": s})
	}
	return f, nil
}

// resolveFormatForError resolves the format for error output
func resolveFormatForError(s string) output.Format {
	f := output.Format(s)
	if !output.IsValid(f) {
		return output.FormatText
	}
	return f
}

// normalizeErr normalizes any error to XError
func normalizeErr(err error) *errors.XError {
	if xe, ok := errors.As(err); ok {
		return xe
	}
	// Preserve original error message
	return errors.Wrap(errors.CodeInternal, err.Error(), nil, err)
}
