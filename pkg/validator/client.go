package validator

// RuleFunc checks one active rule against a live input value.
// It returns (true, "") when the rule passes, or (false, message) otherwise.
type RuleFunc func(value string) (bool, string)

// FieldOptions configures the rule functions built for a form field.
type FieldOptions struct {
	// Getter maps the raw input to the validated value. Defaults to identity.
	Getter func(string) string
	// Compared returns the current target of a Compare rule and whether one is set.
	// Defaults to a function reporting no target.
	Compared func() (string, bool)
}

func (o FieldOptions) withDefaults() FieldOptions {
	if o.Getter == nil {
		o.Getter = func(v string) string { return v }
	}
	if o.Compared == nil {
		o.Compared = func() (string, bool) { return "", false }
	}
	return o
}

// Rules builds one function per active rule of field, in catalog order, for
// form frameworks that run each function against live input and surface the
// first failure. Messages are formatted once, when the rules are built.
func (v *Validator) Rules(field string, opts FieldOptions) []RuleFunc {
	opts = opts.withDefaults()

	defs := Resolve(v.lookup, field)
	rules := make([]RuleFunc, 0, len(defs))
	for _, def := range defs {
		message := renderMessage(v.lookup, field, def)
		rules = append(rules, func(value string) (bool, string) {
			var target compareTarget
			if def.Kind == Compare {
				target.value, target.set = opts.Compared()
			}
			if v.check(field, def, opts.Getter(value), target) {
				return true, ""
			}
			return false, message
		})
	}
	return rules
}

// Rules is a shorthand for New(lookup).Rules.
func Rules(lookup Lookup, field string, opts FieldOptions) []RuleFunc {
	return New(lookup).Rules(field, opts)
}

// FirstFailure runs rules in order and returns the first failure.
// It returns (true, "") when every rule passes.
func FirstFailure(rules []RuleFunc, value string) (bool, string) {
	for _, rule := range rules {
		if ok, message := rule(value); !ok {
			return false, message
		}
	}
	return true, ""
}
