package validator

// RuleDefinition is an active rule resolved for one field.
// It lives for a single validation call and is never cached.
type RuleDefinition struct {
	Kind     Kind   `json:"kind"`
	Argument string `json:"argument"`
	// Message is the raw failure template, or the message key when HasTemplate is false.
	Message     string `json:"message"`
	MessageKey  string `json:"message_key"`
	HasTemplate bool   `json:"has_template"`
}

// Resolve probes lookup for every catalog kind on field and returns the active
// rules in evaluation order. Kinds without a {field}{Kind} entry are skipped.
func Resolve(lookup Lookup, field string) []RuleDefinition {
	var defs []RuleDefinition
	for _, k := range catalog {
		if def, ok := resolveKind(lookup, field, k); ok {
			defs = append(defs, def)
		}
	}
	return defs
}

// resolveKind probes a single kind. Probing is exact-key, so MinLength never
// matches a MaxLength entry and vice versa.
func resolveKind(lookup Lookup, field string, k Kind) (RuleDefinition, bool) {
	argument, ok := lookup.Get(ArgumentKey(field, k))
	if !ok {
		return RuleDefinition{}, false
	}

	def := RuleDefinition{
		Kind:       k,
		Argument:   argument,
		MessageKey: MessageKey(field, k),
	}
	if tmpl, ok := lookup.Get(def.MessageKey); ok {
		def.Message = tmpl
		def.HasTemplate = true
	} else {
		def.Message = def.MessageKey
	}
	return def, true
}
