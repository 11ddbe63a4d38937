package mapping

// Kind tags a CSS variable value.
type Kind string

const (
	// Literal values are emitted as text.
	Literal Kind = "literal"
	// Reference values point at an initial variable and are emitted as iv.$name.
	Reference Kind = "reference"
)

// ReferencePrefix is the namespace under which <theme>.scss imports initial-variables.scss.
const ReferencePrefix = "iv."

// CSSValue is the value of a registered CSS custom property.
type CSSValue struct {
	Kind  Kind   `json:"kind" jsonschema:"enum=literal,enum=reference"`
	Value string `json:"value" jsonschema:"description=Literal text or the sigil-prefixed initial variable name"`
}

// LiteralOf wraps raw value text.
func LiteralOf(text string) CSSValue {
	return CSSValue{Kind: Literal, Value: text}
}

// ReferenceTo points at the initial variable name, which must carry the sigil.
func ReferenceTo(name string) CSSValue {
	return CSSValue{Kind: Reference, Value: name}
}

// IsReference reports whether the value points at an initial variable.
func (v CSSValue) IsReference() bool {
	return v.Kind == Reference
}

// String renders references as cross-file expressions and literals verbatim.
func (v CSSValue) String() string {
	if v.IsReference() {
		return ReferencePrefix + v.Value
	}
	return v.Value
}
