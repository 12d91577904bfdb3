package domain

import "fmt"

// Field pairs a field name with its definition.
type Field struct {
	Key        string
	Definition Definition
}

// QuestionSet is an ordered collection of question definitions.
// Insertion order is asking order.
type QuestionSet struct {
	fields []Field
	index  map[string]int
}

// NewQuestionSet creates a set from the given fields, in order.
// Well-formedness is checked by Validate, not here.
func NewQuestionSet(fields ...Field) *QuestionSet {
	s := &QuestionSet{index: make(map[string]int)}
	for _, f := range fields {
		s.Add(f.Key, f.Definition)
	}
	return s
}

// Add appends a definition. A duplicate key is kept so Validate can report it.
func (s *QuestionSet) Add(key string, def Definition) *QuestionSet {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if _, exists := s.index[key]; !exists {
		s.index[key] = len(s.fields)
	}
	s.fields = append(s.fields, Field{Key: key, Definition: def})
	return s
}

// Keys returns the field names in asking order.
func (s *QuestionSet) Keys() []string {
	keys := make([]string, len(s.fields))
	for i, f := range s.fields {
		keys[i] = f.Key
	}
	return keys
}

// Fields returns a copy of the ordered fields.
func (s *QuestionSet) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// Len returns the number of fields.
func (s *QuestionSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.fields)
}

// Validate checks that the set is a well-formed ordered mapping.
func (s *QuestionSet) Validate() error {
	if s == nil {
		return &InvalidOptionsError{Reason: "question set is nil"}
	}

	seen := make(map[string]int, len(s.fields))
	for i, f := range s.fields {
		if f.Key == "" {
			return &InvalidOptionsError{Reason: fmt.Sprintf("field %d has an empty name", i)}
		}
		if _, dup := seen[f.Key]; dup {
			return &InvalidOptionsError{Field: f.Key, Reason: "duplicate field"}
		}
		if f.Definition == nil {
			return &InvalidOptionsError{Field: f.Key, Reason: "missing definition"}
		}

		q := Normalize(f.Definition)
		switch q.Kind {
		case KindText, KindConfirm, KindPassword:
		default:
			return &InvalidOptionsError{Field: f.Key, Reason: fmt.Sprintf("unknown kind %q", q.Kind)}
		}
		switch q.Type {
		case TypeAny, TypeBoolean, TypeNumber, TypeString:
		default:
			return &InvalidOptionsError{Field: f.Key, Reason: fmt.Sprintf("unknown type %q", q.Type)}
		}

		for dep := range q.DependsOn {
			if _, earlier := seen[dep]; earlier {
				continue
			}
			if _, exists := s.index[dep]; exists {
				return &InvalidOptionsError{Field: f.Key, Reason: fmt.Sprintf("depends on later field %q", dep)}
			}
			return &InvalidOptionsError{Field: f.Key, Reason: fmt.Sprintf("depends on unknown field %q", dep)}
		}

		seen[f.Key] = i
	}
	return nil
}

// Questions returns the normalized questions in asking order.
// Call Validate first; a nil definition yields a zero Question.
func (s *QuestionSet) Questions() []Question {
	out := make([]Question, len(s.fields))
	for i, f := range s.fields {
		if f.Definition != nil {
			out[i] = Normalize(f.Definition)
		}
	}
	return out
}
