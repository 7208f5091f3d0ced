// Package prompt reads interactive input: free-text lines, secrets without
// echo when attached to a terminal, and a single keypress.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/zx06/pw/internal/errors"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// Reader reads answers from in and writes prompts to out.
type Reader struct {
	in  *bufio.Reader
	out io.Writer
	fd  int // terminal fd for no-echo reads; -1 when in is not a terminal
}

// New returns a Reader over arbitrary streams. Secrets are read as plain lines.
func New(in io.Reader, out io.Writer) *Reader {
	return &Reader{in: bufio.NewReader(in), out: out, fd: -1}
}

// FromFile returns a Reader over f that suppresses echo for secrets when f
// is a terminal.
func FromFile(f *os.File, out io.Writer) *Reader {
	r := New(f, out)
	if fd := int(f.Fd()); term.IsTerminal(fd) {
		r.fd = fd
	}
	return r
}

// ReadLine writes prompt and returns the next line without its line ending.
// End of input before any character yields PW_INPUT_MISSING.
func (r *Reader) ReadLine(prompt string) (string, *errors.XError) {
	if _, err := fmt.Fprint(r.out, prompt); err != nil {
		return "", errors.Wrap(errors.CodeInternal, "failed to write prompt", nil, err)
	}
	line, err := r.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && len(line) > 0 {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if err == io.EOF {
			return "", errors.New(errors.CodeInputMissing, "no input supplied", map[string]any{"prompt": strings.TrimSpace(prompt)})
		}
		return "", errors.Wrap(errors.CodeInputMissing, "failed to read input", map[string]any{"prompt": strings.TrimSpace(prompt)}, err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadSecret is ReadLine without echo when the reader is bound to a terminal.
func (r *Reader) ReadSecret(prompt string) (string, *errors.XError) {
	if r.fd < 0 {
		return r.ReadLine(prompt)
	}
	if _, err := fmt.Fprint(r.out, prompt); err != nil {
		return "", errors.Wrap(errors.CodeInternal, "failed to write prompt", nil, err)
	}
	b, err := readPassword(r.fd)
	fmt.Fprintln(r.out)
	if err != nil {
		return "", errors.Wrap(errors.CodeInputMissing, "failed to read input", map[string]any{"prompt": strings.TrimSpace(prompt)}, err)
	}
	return string(b), nil
}

// WaitKey writes message and blocks until one byte of input arrives.
// End of input releases the wait as well.
func (r *Reader) WaitKey(message string) *errors.XError {
	if _, err := fmt.Fprint(r.out, message); err != nil {
		return errors.Wrap(errors.CodeInternal, "failed to write prompt", nil, err)
	}
	if _, err := r.in.ReadByte(); err != nil && err != io.EOF {
		return errors.Wrap(errors.CodeInputMissing, "failed to read keypress", nil, err)
	}
	return nil
}
