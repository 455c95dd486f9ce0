// Package validator resolves and evaluates field validation rules that live
// entirely in an external string store.
//
// Nothing about a rule is hard-coded: whether it applies to a field, its
// argument and its failure message are all discovered by probing a Lookup
// with keys built from the field name and the rule keyword. The same resource
// contents therefore produce the same decision wherever they are evaluated.
//
// # Key convention
//
//	{field}{Kind}          rule argument; presence activates the rule
//	{field}{Kind}Message   failure template, {0} = display name, {1} = argument
//	{field}DisplayName     label substituted into messages
//
// An empty argument still activates a rule, so "NameRequired" = "" turns the
// Required rule on for Name.
//
// # Rule catalog
//
// The closed set of kinds, in evaluation order: Required, Pattern, Length,
// MinLength, MaxLength, Range, MinValue, MaxValue, Values, Compare.
// Every kind except Required and Compare treats an empty value as a failure.
// Malformed arguments (unparsable bounds, a pair without exactly one "-")
// make the rule fail; install WithDiagnostics to see them.
//
// # Usage
//
//	lookup := validator.MapLookup{
//		"NameRequired":         "",
//		"NameRequiredMessage":  "{0} is required",
//		"NameLength":           "2-50",
//		"NameLengthMessage":    "{0} must be {1} characters",
//		"NameDisplayName":      "User name",
//	}
//
//	ok, msg := validator.IsValid(lookup, "Name", "A")
//	// ok == false, msg == "User name must be 2-50 characters"
//
// Server-style validation of several fields at once:
//
//	v := validator.New(lookup)
//	err := v.ValidateFields(
//		validator.Field{Name: "Password", Value: req.Password},
//		validator.Field{Name: "ConfirmPassword", Value: req.Confirm,
//			Options: []validator.ValueOption{validator.WithCompareTo(req.Password)}},
//	)
//
// Client-style rule functions for form frameworks:
//
//	rules := v.Rules("Password", validator.FieldOptions{})
//	ok, msg := validator.FirstFailure(rules, input)
//
// # Concurrency
//
// Validators hold no mutable state. Rules are re-resolved on every call, so
// a Lookup that is hot-reloaded takes effect immediately. Compiled Pattern
// arguments are memoized in a bounded LRU shared by the package.
package validator
