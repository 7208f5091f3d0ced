package output

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func IsValid(f Format) bool {
	switch f {
	case FormatText, FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// IsStructured reports whether f carries the envelope (machine-readable output).
func IsStructured(f Format) bool {
	return f == FormatJSON || f == FormatYAML
}
