package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zx06/pw/internal/errors"
)

type Writer struct {
	Out io.Writer
	Err io.Writer
}

func New(out, err io.Writer) Writer {
	return Writer{Out: out, Err: err}
}

func (w Writer) WriteOK(format Format, data any) error {
	if format == FormatText {
		return writeText(w.Out, data)
	}
	return w.write(format, Envelope{OK: true, SchemaVersion: SchemaVersion, Data: data})
}

func (w Writer) WriteError(format Format, xe *errors.XError) error {
	if format == FormatText {
		return writeTextError(w.Err, xe)
	}
	errObj := &ErrorObject{Code: xe.Code, Message: xe.Message, Details: xe.Details}
	return w.write(format, Envelope{OK: false, SchemaVersion: SchemaVersion, Error: errObj})
}

func (w Writer) write(format Format, env Envelope) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w.Out)
		enc.SetEscapeHTML(false)
		return enc.Encode(env)
	case FormatYAML:
		return writeYAML(w.Out, env)
	default:
		return errors.New(errors.CodeCfgInvalid, "invalid output format", map[string]any{"format": string(format)})
	}
}

func writeYAML(out io.Writer, v any) error {
	b, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = out.Write(b)
	if err != nil {
		return err
	}
	if len(b) == 0 || b[len(b)-1] != '\n' {
		_, _ = out.Write([]byte("\n"))
	}
	return nil
}

func writeText(out io.Writer, data any) error {
	if data == nil {
		return nil
	}
	if r, ok := data.(TextRenderer); ok {
		return r.RenderText(out)
	}
	return writeYAML(out, data)
}

func writeTextError(out io.Writer, xe *errors.XError) error {
	var b strings.Builder
	b.WriteString("Error: ")
	b.WriteString(xe.Message)
	if len(xe.Details) > 0 {
		keys := make([]string, 0, len(xe.Details))
		for k := range xe.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s=%v", k, xe.Details[k]))
		}
		b.WriteString(" (" + strings.Join(parts, ", ") + ")")
	}
	b.WriteString("\n")
	_, err := io.WriteString(out, b.String())
	return err
}
