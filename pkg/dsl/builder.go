package dsl

import (
	"errors"
	"fmt"

	"github.com/aretw0/inquire/pkg/domain"
)

// Builder manages the question set construction.
type Builder struct {
	order  []string
	fields map[string]*QuestionBuilder
}

// New creates a new question set builder.
func New() *Builder {
	return &Builder{
		fields: make(map[string]*QuestionBuilder),
	}
}

// Add starts a full question, appended after the fields added so far.
// If the field already exists, it returns the existing builder.
func (b *Builder) Add(key string) *QuestionBuilder {
	if qb, ok := b.fields[key]; ok {
		return qb
	}
	qb := &QuestionBuilder{key: key}
	b.order = append(b.order, key)
	b.fields[key] = qb
	return qb
}

// Bare adds a field with only a default: no message and no validation.
// If the field already exists, it is turned into a bare field.
func (b *Builder) Bare(key string, value any) *Builder {
	qb := b.Add(key)
	qb.bare = true
	qb.value = value
	return b
}

// Build compiles the fields into a validated question set.
func (b *Builder) Build() (*domain.QuestionSet, error) {
	set := domain.NewQuestionSet()

	var errs []error
	for _, key := range b.order {
		qb := b.fields[key]
		if qb.err != nil {
			errs = append(errs, fmt.Errorf("field %q: %w", key, qb.err))
			continue
		}
		set.Add(key, qb.Definition())
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	if err := set.Validate(); err != nil {
		return nil, err
	}
	return set, nil
}
