package domain

// Result is the printable outcome of one evaluated command.
type Result struct {
	Op      string   `json:"op"`
	Input   []string `json:"input,omitempty"`
	Pattern string   `json:"pattern,omitempty"`

	// Value is the rendered answer: a formatted date/time, a count or a boolean.
	Value string `json:"value"`
	Unit  string `json:"unit,omitempty"`

	// Fallback is set when parsing only succeeded with the datetime pattern.
	Fallback bool `json:"fallback,omitempty"`
}
