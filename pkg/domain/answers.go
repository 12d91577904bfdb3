package domain

// Answers maps field names to typed values: bool, float64, string, or nil.
// A nil entry means the field was reached but holds no value (e.g. skipped
// by an unmet dependency); a missing key means the field was never reached.
type Answers map[string]any

// Clone returns a shallow copy safe to hand to callbacks.
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Has reports whether the field was reached, even if it holds no value.
func (a Answers) Has(field string) bool {
	_, ok := a[field]
	return ok
}
