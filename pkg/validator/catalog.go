package validator

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Separators shared by every runtime. They must never appear inside a legitimate argument value.
const (
	ValuesSeparator = ","
	RangeSeparator  = "-"
)

// compareTarget is the caller-supplied value a Compare rule is checked against.
type compareTarget struct {
	value string
	set   bool
}

// Check reports whether value satisfies kind k configured with argument.
// It is pure and never touches a Lookup. A malformed argument makes the check fail.
//
// Compare has no target through this entry point and therefore always fails;
// the validator supplies targets with WithCompareTo.
func Check(k Kind, value, argument string) bool {
	ok, _ := evaluate(k, value, argument, compareTarget{})
	return ok
}

// evaluate runs the check for k. The returned error is a configuration
// diagnostic only: it is non-nil when the argument itself is unusable, and the
// rule is reported as failed in that case too.
func evaluate(k Kind, value, argument string, target compareTarget) (bool, error) {
	switch k {
	case Required:
		return value != "", nil
	case Pattern:
		return checkPattern(value, argument)
	case Length:
		return checkLength(value, argument)
	case MinLength:
		return checkLengthBound(value, argument, func(n, bound int64) bool { return n >= bound })
	case MaxLength:
		return checkLengthBound(value, argument, func(n, bound int64) bool { return n <= bound })
	case Range:
		return checkRange(value, argument)
	case MinValue:
		return checkValueBound(value, argument, func(n, bound int64) bool { return n >= bound })
	case MaxValue:
		return checkValueBound(value, argument, func(n, bound int64) bool { return n <= bound })
	case Values:
		return checkValues(value, argument), nil
	case Compare:
		if !target.set {
			return false, ErrMissingCompareTarget
		}
		return value == target.value, nil
	}
	return false, fmt.Errorf("%w: %d", ErrUnknownKind, uint8(k))
}

func checkPattern(value, argument string) (bool, error) {
	re, err := patterns.compile(argument)
	if err != nil {
		return false, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, argument, err)
	}
	return value != "" && re.MatchString(value), nil
}

func checkLength(value, argument string) (bool, error) {
	lo, hi, err := parsePair(argument)
	if err != nil {
		return false, err
	}
	if value == "" {
		return false, nil
	}
	n := int64(utf8.RuneCountInString(value))
	return n >= lo && n <= hi, nil
}

func checkLengthBound(value, argument string, cmp func(n, bound int64) bool) (bool, error) {
	bound, err := parseBound(argument)
	if err != nil {
		return false, err
	}
	if value == "" {
		return false, nil
	}
	return cmp(int64(utf8.RuneCountInString(value)), bound), nil
}

func checkRange(value, argument string) (bool, error) {
	lo, hi, err := parsePair(argument)
	if err != nil {
		return false, err
	}
	n, ok := parseValue(value)
	if !ok {
		return false, nil
	}
	return n >= lo && n <= hi, nil
}

func checkValueBound(value, argument string, cmp func(n, bound int64) bool) (bool, error) {
	bound, err := parseBound(argument)
	if err != nil {
		return false, err
	}
	n, ok := parseValue(value)
	if !ok {
		return false, nil
	}
	return cmp(n, bound), nil
}

func checkValues(value, argument string) bool {
	if value == "" {
		return false
	}
	return slices.ContainsFunc(strings.Split(argument, ValuesSeparator), func(allowed string) bool {
		return strings.TrimSpace(allowed) == value
	})
}

// parseValue parses a candidate as a base-10 integer. Surrounding whitespace is ignored.
func parseValue(value string) (int64, bool) {
	if value == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	return n, err == nil
}

func parseBound(argument string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(argument), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrMalformedArgument, argument)
	}
	return n, nil
}

// parsePair splits "{min}-{max}". Exactly one separator is accepted.
func parsePair(argument string) (int64, int64, error) {
	parts := strings.Split(argument, RangeSeparator)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q must contain exactly one %q", ErrMalformedArgument, argument, RangeSeparator)
	}
	lo, err := parseBound(parts[0])
	if err != nil {
		return 0, 0, err
	}
	hi, err := parseBound(parts[1])
	if err != nil {
		return 0, 0, err
	}
	return lo, hi, nil
}
