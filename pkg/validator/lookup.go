package validator

// Lookup is the read-only resource store the engine probes.
// Get returns the stored string and true, or "" and false when the key is absent.
// Keys are matched exactly and case-sensitively.
//
// Implementations must be safe for concurrent reads when shared between
// simultaneous validation calls.
type Lookup interface {
	Get(key string) (string, bool)
}

// LookupFunc adapts an ordinary function to the Lookup interface.
type LookupFunc func(key string) (string, bool)

// Get implements Lookup.
func (f LookupFunc) Get(key string) (string, bool) {
	return f(key)
}

// MapLookup is an in-memory Lookup, mostly useful in tests and fixtures.
type MapLookup map[string]string

// Get implements Lookup.
func (m MapLookup) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Resource key suffixes shared by every runtime.
const (
	SuffixMessage     = "Message"
	SuffixDisplayName = "DisplayName"
)

// ArgumentKey is the probe key whose presence activates kind k on field.
func ArgumentKey(field string, k Kind) string {
	return field + k.String()
}

// MessageKey is the probe key holding the failure template of kind k on field.
func MessageKey(field string, k Kind) string {
	return field + k.String() + SuffixMessage
}

// DisplayNameKey is the probe key holding the human label of field.
func DisplayNameKey(field string) string {
	return field + SuffixDisplayName
}
