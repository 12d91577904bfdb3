package file

// QuestionMetadata is the long form of a question entry.
// It uses "mapstructure" tags to match the YAML/JSON keys.
type QuestionMetadata struct {
	// Type is "confirm", "password", or the expected value type
	// ("boolean", "number", "string"). Empty means any text.
	Type       string         `json:"type" mapstructure:"type"`
	Message    string         `json:"message" mapstructure:"message"`
	Default    any            `json:"default" mapstructure:"default"`
	AllowEmpty bool           `json:"allow_empty" mapstructure:"allow_empty"`
	Regex      string         `json:"regex" mapstructure:"regex"`
	Options    []any          `json:"options" mapstructure:"options"`
	Error      string         `json:"error" mapstructure:"error"`
	DependsOn  map[string]any `json:"depends_on" mapstructure:"depends_on"`
}

// Document is a parsed question file.
type Document struct {
	// Description is optional markdown shown before the first question.
	Description string
	Fields      []FieldSource
}

// FieldSource keeps the position of a field for error reporting.
type FieldSource struct {
	Key  string
	Line int
}
