package sinkconfig

// Outcome maps a configuration key to the ordered violation messages
// recorded against it. A key that is absent, or present with an empty
// slice, is valid. Messages are kept in detection order and are never
// deduplicated: independent rules may each record a message against the
// same key and all of them must survive to the report.
type Outcome map[string][]string

// NewOutcome returns an empty outcome.
func NewOutcome() Outcome {
	return make(Outcome)
}

// Add records a violation message against a configuration key.
func (o Outcome) Add(key, message string) {
	o[key] = append(o[key], message)
}

// Merge appends every message from other onto this outcome, preserving
// per-key message order. The receiver is returned for chaining.
func (o Outcome) Merge(other Outcome) Outcome {
	for key, messages := range other {
		o[key] = append(o[key], messages...)
	}
	return o
}

// Messages returns the violation messages recorded against a key.
func (o Outcome) Messages(key string) []string {
	return o[key]
}

// Valid reports whether no key has any violation message. There is no
// single-boolean verdict beyond this: validity is every key's message
// sequence being empty.
func (o Outcome) Valid() bool {
	for _, messages := range o {
		if len(messages) > 0 {
			return false
		}
	}
	return true
}
