// Package clipboard writes text to the system clipboard.
package clipboard

import (
	"sync"

	"github.com/atotto/clipboard"

	"github.com/zx06/pw/internal/errors"
)

// Sink receives clipboard contents.
type Sink interface {
	SetContents(text string) *errors.XError
}

// System returns the OS clipboard (pbcopy, xclip/xsel/wl-copy, or the Windows API).
func System() Sink { return systemSink{} }

type systemSink struct{}

func (systemSink) SetContents(text string) *errors.XError {
	if clipboard.Unsupported {
		return errors.New(errors.CodeClipboardFailed, "no clipboard utility available", nil)
	}
	if err := clipboard.WriteAll(text); err != nil {
		return errors.Wrap(errors.CodeClipboardFailed, "failed to write clipboard", nil, err)
	}
	return nil
}

// Memory is an in-process Sink for tests and headless use.
type Memory struct {
	mu       sync.Mutex
	contents string
	writes   int
	Err      *errors.XError // returned by SetContents when set
}

func (m *Memory) SetContents(text string) *errors.XError {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.contents = text
	m.writes++
	return nil
}

// Contents returns the last text written.
func (m *Memory) Contents() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.contents
}

// Writes returns how many successful writes happened.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
