package output

import (
	"io"

	"github.com/zx06/pw/internal/errors"
)

const SchemaVersion = 1

type ErrorObject struct {
	Code    errors.Code    `json:"code" yaml:"code"`
	Message string         `json:"message" yaml:"message"`
	Details map[string]any `json:"details,omitempty" yaml:"details,omitempty"`
}

type Envelope struct {
	OK            bool         `json:"ok" yaml:"ok"`
	SchemaVersion int          `json:"schema_version" yaml:"schema_version"`
	Error         *ErrorObject `json:"error,omitempty" yaml:"error,omitempty"`
	Data          any          `json:"data,omitempty" yaml:"data,omitempty"`
}

// TextRenderer is implemented by results that have a human-readable form.
// Data without one is rendered as YAML in text mode.
type TextRenderer interface {
	RenderText(w io.Writer) error
}
