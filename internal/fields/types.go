package fields

// Property is a JSON-Schema-like descriptor for one extractable field.
// Pattern is a search pattern (label + capture group) applied to the document
// text; it is not a value constraint.
type Property struct {
	Type        string   `yaml:"type" json:"type"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Pattern     string   `yaml:"pattern,omitempty" json:"pattern,omitempty"`
	Enum        []string `yaml:"enum,omitempty" json:"enum,omitempty"`
	MinLength   *int     `yaml:"minLength,omitempty" json:"minLength,omitempty"`
	MaxLength   *int     `yaml:"maxLength,omitempty" json:"maxLength,omitempty"`
	Minimum     *float64 `yaml:"minimum,omitempty" json:"minimum,omitempty"`
	Maximum     *float64 `yaml:"maximum,omitempty" json:"maximum,omitempty"`
}

// Schema declares the fields to extract and which of them are required.
type Schema struct {
	Required   []string            `yaml:"required,omitempty" json:"required,omitempty"`
	Properties map[string]Property `yaml:"properties" json:"properties"`
}

// ExtractionResult is the outcome of extracting one schema field.
// Invariant: Valid implies Value is non-nil and Errors is empty. The converse
// does not hold: a value may be present yet invalid due to an enum or range
// violation.
type ExtractionResult struct {
	FieldName  string   `json:"field_name"`
	Value      any      `json:"value"`
	Confidence float64  `json:"confidence"`
	Valid      bool     `json:"valid"`
	Errors     []string `json:"errors"`
}

// SemanticField is a field pulled out by context- or query-driven extraction.
type SemanticField struct {
	Name       string  `json:"name"`
	Value      string  `json:"value"`
	Confidence float64 `json:"confidence"`
	Context    string  `json:"context"`
	Reasoning  string  `json:"reasoning"`
}

// Entity is a typed span found anywhere in the document.
type Entity struct {
	Type       string  `json:"type"`
	Value      string  `json:"value"`
	Confidence float64 `json:"confidence"`
}
