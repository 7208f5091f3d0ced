// Package credential defines the records kept by the store and the
// request types used to query them.
package credential

import (
	"fmt"
	"io"

	"github.com/zx06/pw/internal/errors"
)

// Credential is one named username/password pair. Category is "" when the
// credential is uncategorized.
type Credential struct {
	ID       int64  `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Category string `json:"category" yaml:"category"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
}

// RenderText prints the name followed by the indented username and password.
func (c Credential) RenderText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s:\n    %s\n    %s\n", c.Name, c.Username, c.Password)
	return err
}

// Entry is one row of a listing.
type Entry struct {
	Category string `json:"category" yaml:"category"`
	Name     string `json:"name" yaml:"name"`
}

// Filter restricts a listing to one category. The zero value matches every
// credential; InCategory("") matches only uncategorized ones.
type Filter struct {
	category string
	set      bool
}

// AnyCategory returns a filter that matches every credential.
func AnyCategory() Filter { return Filter{} }

// InCategory returns a filter that matches category c exactly.
func InCategory(c string) Filter { return Filter{category: c, set: true} }

// Category returns the filtered category and whether a filter is set.
func (f Filter) Category() (string, bool) { return f.category, f.set }

func (f Filter) String() string {
	if !f.set {
		return "*"
	}
	return fmt.Sprintf("%q", f.category)
}

// Field selects which half of a credential copy transfers.
type Field string

const (
	FieldUsername Field = "username"
	FieldPassword Field = "password"
)

// ParseField accepts the short selectors u/p as well as the full field names.
func ParseField(s string) (Field, error) {
	switch s {
	case "u", "username":
		return FieldUsername, nil
	case "p", "password":
		return FieldPassword, nil
	default:
		return "", errors.New(errors.CodeCfgInvalid, "field must be u (username) or p (password)", map[string]any{"field": s})
	}
}

// Value returns the selected field of c.
func (f Field) Value(c Credential) string {
	if f == FieldUsername {
		return c.Username
	}
	return c.Password
}
