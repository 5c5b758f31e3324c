package output

type Format string

const (
	FormatAuto Format = "auto"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatText Format = "text"
)

func IsValid(f Format) bool {
	switch f {
	case FormatAuto, FormatJSON, FormatYAML, FormatText:
		return true
	default:
		return false
	}
}
