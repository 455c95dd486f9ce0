package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/resxkit/pkg/validator"
)

// conformanceCase is one entry of the vector both runtimes must agree on.
type conformanceCase struct {
	name    string
	lookup  validator.MapLookup
	value   string
	target  *string
	ok      bool
	message string
}

const field = "Name"

func ptr(s string) *string { return &s }

func conformanceVector() []conformanceCase {
	required := validator.MapLookup{
		"NameRequired":        "",
		"NameRequiredMessage": "{0} required",
	}
	minLength := validator.MapLookup{
		"NameMinLength":        "2",
		"NameMinLengthMessage": "{0} length should be greater then {1}",
	}
	maxLength := validator.MapLookup{
		"NameMaxLength":        "10",
		"NameMaxLengthMessage": "Value length should be less then {1}",
	}
	length := validator.MapLookup{
		"NameLength":        "2- 10 ",
		"NameLengthMessage": "Length of the name must be {1} characters",
	}
	rng := validator.MapLookup{
		"NameRange":        "2- 50 ",
		"NameRangeMessage": "{0} must be in range: {1}",
		"NameDisplayName":  "Age",
	}
	values := validator.MapLookup{
		"NameValues":        "Adam, Eve ",
		"NameValuesMessage": "{0} is not valid. Possible values: {1}",
	}
	pattern := validator.MapLookup{
		"NamePattern":        ".+@.+",
		"NamePatternMessage": "{0} is not valid.",
		"NameDisplayName":    "User email",
	}
	minValue := validator.MapLookup{
		"NameMinValue":        "18",
		"NameMinValueMessage": "{0} should be greater then {1}",
	}
	maxValue := validator.MapLookup{
		"NameMaxValue":        "150",
		"NameMaxValueMessage": "Value should be less then {1}",
	}
	compare := validator.MapLookup{
		"NameCompare":        "Password",
		"NameCompareMessage": "Passwords must be the same",
	}
	ordered := validator.MapLookup{
		"NameRequired":         "",
		"NameRequiredMessage":  "{0} required",
		"NameMinLength":        "2",
		"NameMinLengthMessage": "{0} is too short",
		"NameDisplayName":      "User name",
	}

	return []conformanceCase{
		{name: "no rules, empty value", lookup: validator.MapLookup{}, value: "", ok: true},
		{name: "no rules, any value", lookup: validator.MapLookup{}, value: "anything", ok: true},
		{name: "unrelated field entries are ignored", lookup: validator.MapLookup{"EmailRequired": ""}, value: "", ok: true},

		{name: "required, empty", lookup: required, value: "", message: "NameDisplayName required"},
		{name: "required, non-empty", lookup: required, value: "a", ok: true},
		{name: "required, whitespace counts as a value", lookup: required, value: " ", ok: true},
		{name: "required, missing template", lookup: validator.MapLookup{"NameRequired": ""}, value: "", message: "NameRequiredMessage"},

		{name: "min length, empty", lookup: minLength, value: "", message: "NameDisplayName length should be greater then 2"},
		{name: "min length, 1", lookup: minLength, value: "a", message: "NameDisplayName length should be greater then 2"},
		{name: "min length, 2", lookup: minLength, value: "aa", ok: true},
		{name: "min length, 3", lookup: minLength, value: "aaa", ok: true},
		{name: "min length counts characters, not bytes", lookup: minLength, value: "я", message: "NameDisplayName length should be greater then 2"},

		{name: "max length, empty", lookup: maxLength, value: "", message: "Value length should be less then 10"},
		{name: "max length, 10", lookup: maxLength, value: strings.Repeat("a", 10), ok: true},
		{name: "max length, 11", lookup: maxLength, value: strings.Repeat("a", 11), message: "Value length should be less then 10"},
		{name: "max length does not match min length", lookup: maxLength, value: "a", ok: true},

		{name: "length, 1", lookup: length, value: "a", message: "Length of the name must be 2- 10  characters"},
		{name: "length, 2", lookup: length, value: "aa", ok: true},
		{name: "length, 10", lookup: length, value: strings.Repeat("a", 10), ok: true},
		{name: "length, 11", lookup: length, value: strings.Repeat("a", 11), message: "Length of the name must be 2- 10  characters"},

		{name: "range, 1", lookup: rng, value: "1", message: "Age must be in range: 2- 50 "},
		{name: "range, 2", lookup: rng, value: "2", ok: true},
		{name: "range, 50", lookup: rng, value: "50", ok: true},
		{name: "range, 51", lookup: rng, value: "51", message: "Age must be in range: 2- 50 "},
		{name: "range, non-numeric", lookup: rng, value: "abc", message: "Age must be in range: 2- 50 "},
		{name: "range, empty", lookup: rng, value: "", message: "Age must be in range: 2- 50 "},

		{name: "values, first", lookup: values, value: "Adam", ok: true},
		{name: "values, trimmed entry", lookup: values, value: "Eve", ok: true},
		{name: "values, unknown", lookup: values, value: "Cain", message: "NameDisplayName is not valid. Possible values: Adam, Eve "},
		{name: "values, candidate is not trimmed", lookup: values, value: " Eve", message: "NameDisplayName is not valid. Possible values: Adam, Eve "},
		{name: "values, empty", lookup: values, value: "", message: "NameDisplayName is not valid. Possible values: Adam, Eve "},

		{name: "pattern, match", lookup: pattern, value: "a@a.com", ok: true},
		{name: "pattern, mismatch", lookup: pattern, value: "a", message: "User email is not valid."},
		{name: "pattern, empty", lookup: pattern, value: "", message: "User email is not valid."},

		{name: "min value, below", lookup: minValue, value: "17", message: "NameDisplayName should be greater then 18"},
		{name: "min value, bound", lookup: minValue, value: "18", ok: true},
		{name: "min value, non-numeric", lookup: minValue, value: "a", message: "NameDisplayName should be greater then 18"},
		{name: "max value, bound", lookup: maxValue, value: "150", ok: true},
		{name: "max value, above", lookup: maxValue, value: "151", message: "Value should be less then 150"},

		{name: "compare, equal", lookup: compare, value: "secret", target: ptr("secret"), ok: true},
		{name: "compare, different", lookup: compare, value: "other", target: ptr("secret"), message: "Passwords must be the same"},
		{name: "compare, no target", lookup: compare, value: "secret", message: "Passwords must be the same"},

		{name: "order, required reported before min length", lookup: ordered, value: "", message: "User name required"},
		{name: "order, min length after required passes", lookup: ordered, value: "a", message: "User name is too short"},
		{name: "order, all pass", lookup: ordered, value: "ab", ok: true},

		{name: "malformed range argument fails", lookup: validator.MapLookup{"NameRange": "2"}, value: "5", message: "NameRangeMessage"},
		{name: "malformed min length argument fails", lookup: validator.MapLookup{"NameMinLength": "two"}, value: "abc", message: "NameMinLengthMessage"},
	}
}

func serverRuntime(tc conformanceCase) (bool, string) {
	var opts []validator.ValueOption
	if tc.target != nil {
		opts = append(opts, validator.WithCompareTo(*tc.target))
	}
	return validator.New(tc.lookup).IsValid(field, tc.value, opts...)
}

func clientRuntime(tc conformanceCase) (bool, string) {
	opts := validator.FieldOptions{}
	if tc.target != nil {
		target := *tc.target
		opts.Compared = func() (string, bool) { return target, true }
	}
	return validator.FirstFailure(validator.New(tc.lookup).Rules(field, opts), tc.value)
}

func TestConformance(t *testing.T) {
	t.Parallel()

	runtimes := map[string]func(conformanceCase) (bool, string){
		"server": serverRuntime,
		"client": clientRuntime,
	}

	for runtime, run := range runtimes {
		t.Run(runtime, func(t *testing.T) {
			t.Parallel()
			for _, tc := range conformanceVector() {
				t.Run(tc.name, func(t *testing.T) {
					ok, message := run(tc)
					assert.Equal(t, tc.ok, ok)
					assert.Equal(t, tc.message, message)
				})
			}
		})
	}
}

func TestConformance_RuntimesAgree(t *testing.T) {
	t.Parallel()

	for _, tc := range conformanceVector() {
		serverOK, serverMsg := serverRuntime(tc)
		clientOK, clientMsg := clientRuntime(tc)
		assert.Equal(t, serverOK, clientOK, tc.name)
		assert.Equal(t, serverMsg, clientMsg, tc.name)
	}
}

func TestConformance_Idempotent(t *testing.T) {
	t.Parallel()

	for _, tc := range conformanceVector() {
		firstOK, firstMsg := serverRuntime(tc)
		secondOK, secondMsg := serverRuntime(tc)
		assert.Equal(t, firstOK, secondOK, tc.name)
		assert.Equal(t, firstMsg, secondMsg, tc.name)
	}
}
