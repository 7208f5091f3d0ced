package app

import (
	"fmt"
	"io"

	"github.com/zx06/pw/internal/credential"
)

// NewStatus tells whether New stored a credential or found the name taken.
type NewStatus string

const (
	NewCreated NewStatus = "created"
	NewExists  NewStatus = "exists"
)

type NewResult struct {
	Status   NewStatus `json:"status" yaml:"status"`
	ID       int64     `json:"id,omitempty" yaml:"id,omitempty"`
	Name     string    `json:"name" yaml:"name"`
	Category string    `json:"category" yaml:"category"`
}

func (r NewResult) RenderText(w io.Writer) error {
	msg := "Saved."
	if r.Status == NewExists {
		msg = "A credential with this name already exists."
	}
	_, err := fmt.Fprintln(w, msg)
	return err
}

// Listing is the ordered result of List.
type Listing struct {
	Entries []credential.Entry `json:"entries" yaml:"entries"`
}

// RenderText prints a "Category: <c>" header each time the category changes
// and every name indented beneath it. The running category starts as "", so
// uncategorized credentials at the top get no header.
func (l Listing) RenderText(w io.Writer) error {
	previous := ""
	for _, e := range l.Entries {
		if e.Category != previous {
			if _, err := fmt.Fprintf(w, "\nCategory: %s\n", e.Category); err != nil {
				return err
			}
			previous = e.Category
		}
		if _, err := fmt.Fprintf(w, "    %s\n", e.Name); err != nil {
			return err
		}
	}
	return nil
}

type CopyResult struct {
	Name  string           `json:"name" yaml:"name"`
	Field credential.Field `json:"field" yaml:"field"`
}

func (r CopyResult) RenderText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s %s copied to clipboard.\n", r.Name, r.Field)
	return err
}

// UnsupportedResult is returned by commands that are part of the command
// surface but have no behavior yet.
type UnsupportedResult struct {
	Command string `json:"command" yaml:"command"`
	Status  string `json:"status" yaml:"status"`
}

func (r UnsupportedResult) RenderText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s not yet implemented\n", capitalize(r.Command))
	return err
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if c := s[0]; c >= 'a' && c <= 'z' {
		return string(c-'a'+'A') + s[1:]
	}
	return s
}
