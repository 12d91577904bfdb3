package runtime

import (
	"fmt"

	"github.com/aretw0/inquire/pkg/domain"
)

// ValidationError describes a rejected reply. It never leaves the runtime:
// the sequencer shows it and asks the same question again.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field %q: %s", e.Field, e.Reason)
}

// Validate checks a coerced value against the question's constraints.
// The checks run in a fixed order and the first applicable one decides:
// empty, regex, options, confirm, declared type.
func Validate(field string, q domain.Question, value any, answers domain.Answers) error {
	if value == nil {
		if q.AllowEmpty || q.ResolveDefault(answers) != nil {
			return nil
		}
		return &ValidationError{Field: field, Reason: "a reply is required"}
	}

	if q.Regex != nil {
		if q.Regex.MatchString(domain.FormatValue(value)) {
			return nil
		}
		return &ValidationError{Field: field, Reason: fmt.Sprintf("does not match %s", q.Regex)}
	}

	if len(q.Options) > 0 {
		if domain.Contains(q.Options, value) {
			return nil
		}
		return &ValidationError{Field: field, Reason: "not one of the options"}
	}

	if q.Kind == domain.KindConfirm {
		if _, ok := value.(bool); ok {
			return nil
		}
		return &ValidationError{Field: field, Reason: "expected yes or no"}
	}

	if q.Type != domain.TypeAny && q.Kind != domain.KindPassword {
		if typeOf(value) == q.Type {
			return nil
		}
		return &ValidationError{Field: field, Reason: fmt.Sprintf("expected %s, got %s", q.Type, typeOf(value))}
	}

	return nil
}

func typeOf(v any) domain.ValueType {
	switch v.(type) {
	case bool:
		return domain.TypeBoolean
	case float64:
		return domain.TypeNumber
	case string:
		return domain.TypeString
	}
	return domain.TypeAny
}
