package validator

// Diagnostic reports a rule whose configuration could not be interpreted.
// The rule is still treated as failed; diagnostics only make the cause visible.
type Diagnostic struct {
	Field    string
	Kind     Kind
	Argument string
	Err      error
}

// DiagnosticFunc receives configuration diagnostics. It must not block.
type DiagnosticFunc func(Diagnostic)

// Option configures a Validator.
type Option func(*Validator)

// WithDiagnostics installs a hook for malformed rule arguments.
func WithDiagnostics(fn DiagnosticFunc) Option {
	return func(v *Validator) {
		if fn != nil {
			v.diagnostics = fn
		}
	}
}

// Validator evaluates resource-defined rules against candidate values.
// It holds no mutable state: every call re-probes the lookup, so the same
// Validator may be shared between goroutines when the lookup allows concurrent reads.
type Validator struct {
	lookup      Lookup
	diagnostics DiagnosticFunc
}

// New returns a Validator reading rules from lookup.
// A nil lookup behaves as an empty store: every field is valid.
func New(lookup Lookup, opts ...Option) *Validator {
	if lookup == nil {
		lookup = MapLookup(nil)
	}
	v := &Validator{lookup: lookup}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Result is the outcome of validating one field.
type Result struct {
	OK bool
	// Kind and Message describe the first failing rule; they are zero when OK is true.
	Kind    Kind
	Message string
}

// ValueOption tunes a single Validate call.
type ValueOption func(*compareTarget)

// WithCompareTo supplies the value a Compare rule checks equality against,
// e.g. the password when validating its confirmation.
func WithCompareTo(target string) ValueOption {
	return func(t *compareTarget) {
		t.value = target
		t.set = true
	}
}

// Validate resolves and evaluates the active rules of field against value.
// Rules run in catalog order and evaluation stops at the first failure.
func (v *Validator) Validate(field, value string, opts ...ValueOption) Result {
	var target compareTarget
	for _, opt := range opts {
		opt(&target)
	}

	for _, k := range catalog {
		def, ok := resolveKind(v.lookup, field, k)
		if !ok {
			continue
		}
		if v.check(field, def, value, target) {
			continue
		}
		return Result{
			Kind:    k,
			Message: renderMessage(v.lookup, field, def),
		}
	}

	return Result{OK: true}
}

// IsValid is Validate in the (ok, message) form used by request validation glue.
func (v *Validator) IsValid(field, value string, opts ...ValueOption) (bool, string) {
	res := v.Validate(field, value, opts...)
	return res.OK, res.Message
}

// Resolve returns the active rules of field.
func (v *Validator) Resolve(field string) []RuleDefinition {
	return Resolve(v.lookup, field)
}

// DisplayName returns the resolved label of field.
func (v *Validator) DisplayName(field string) string {
	return DisplayName(v.lookup, field)
}

func (v *Validator) check(field string, def RuleDefinition, value string, target compareTarget) bool {
	ok, err := evaluate(def.Kind, value, def.Argument, target)
	if err != nil && v.diagnostics != nil {
		v.diagnostics(Diagnostic{
			Field:    field,
			Kind:     def.Kind,
			Argument: def.Argument,
			Err:      err,
		})
	}
	return ok
}

// Validate is a shorthand for New(lookup).Validate.
func Validate(lookup Lookup, field, value string, opts ...ValueOption) Result {
	return New(lookup).Validate(field, value, opts...)
}

// IsValid is a shorthand for New(lookup).IsValid.
func IsValid(lookup Lookup, field, value string, opts ...ValueOption) (bool, string) {
	return New(lookup).IsValid(field, value, opts...)
}
