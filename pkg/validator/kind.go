package validator

import "fmt"

// Kind identifies one rule of the catalog.
// The set is closed: every Kind has exactly one check and one argument shape.
type Kind uint8

const (
	Required Kind = iota
	Pattern
	Length
	MinLength
	MaxLength
	Range
	MinValue
	MaxValue
	Values
	Compare
)

// catalog lists every kind in declaration order.
// The order is the evaluation order and decides which message a caller sees first.
var catalog = [...]Kind{
	Required,
	Pattern,
	Length,
	MinLength,
	MaxLength,
	Range,
	MinValue,
	MaxValue,
	Values,
	Compare,
}

// Kinds returns all rule kinds in evaluation order.
func Kinds() []Kind {
	kinds := make([]Kind, len(catalog))
	copy(kinds, catalog[:])
	return kinds
}

// Shape describes how a rule argument is laid out.
type Shape uint8

const (
	// ShapeNone means the argument only marks the rule as active.
	ShapeNone Shape = iota
	// ShapeScalar is a single integer bound or a regular expression.
	ShapeScalar
	// ShapePair is "{min}-{max}" split by RangeSeparator.
	ShapePair
	// ShapeList is a ValuesSeparator-delimited list of literals.
	ShapeList
)

func (s Shape) String() string {
	switch s {
	case ShapeNone:
		return "none"
	case ShapeScalar:
		return "scalar"
	case ShapePair:
		return "pair"
	case ShapeList:
		return "list"
	}
	return fmt.Sprintf("Shape(%d)", uint8(s))
}

// String returns the resource keyword of the kind, e.g. "MinLength".
// It is the exact suffix used to build probe keys.
func (k Kind) String() string {
	switch k {
	case Required:
		return "Required"
	case Pattern:
		return "Pattern"
	case Length:
		return "Length"
	case MinLength:
		return "MinLength"
	case MaxLength:
		return "MaxLength"
	case Range:
		return "Range"
	case MinValue:
		return "MinValue"
	case MaxValue:
		return "MaxValue"
	case Values:
		return "Values"
	case Compare:
		return "Compare"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Shape returns the argument contract of the kind.
func (k Kind) Shape() Shape {
	switch k {
	case Pattern, MinLength, MaxLength, MinValue, MaxValue:
		return ShapeScalar
	case Length, Range:
		return ShapePair
	case Values:
		return ShapeList
	default:
		return ShapeNone
	}
}

// Valid reports whether k belongs to the catalog.
func (k Kind) Valid() bool {
	return k <= Compare
}

// MarshalText renders the kind as its keyword.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, uint8(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText parses a keyword produced by MarshalText.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseKind maps a keyword back to its Kind. Matching is exact.
func ParseKind(s string) (Kind, error) {
	for _, k := range catalog {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}
