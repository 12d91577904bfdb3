package dsl

import (
	"regexp"

	"github.com/aretw0/inquire/pkg/domain"
)

// QuestionBuilder provides a fluent API for configuring a question.
type QuestionBuilder struct {
	key   string
	q     domain.Question
	bare  bool
	value any
	err   error
}

// Message sets the text shown above the prompt.
func (qb *QuestionBuilder) Message(text string) *QuestionBuilder {
	qb.q.Message = text
	return qb
}

// Confirm turns the question into a yes/no question.
func (qb *QuestionBuilder) Confirm() *QuestionBuilder {
	qb.q.Kind = domain.KindConfirm
	return qb
}

// Password reads the reply with masked echo.
func (qb *QuestionBuilder) Password() *QuestionBuilder {
	qb.q.Kind = domain.KindPassword
	return qb
}

// Type requires the coerced reply to be of the given primitive type.
func (qb *QuestionBuilder) Type(t domain.ValueType) *QuestionBuilder {
	qb.q.Type = t
	return qb
}

// Default sets a static fallback for an empty reply.
func (qb *QuestionBuilder) Default(v any) *QuestionBuilder {
	qb.q.Default = domain.Static(v)
	return qb
}

// DefaultFunc computes the fallback from the answers given so far.
func (qb *QuestionBuilder) DefaultFunc(fn func(domain.Answers) any) *QuestionBuilder {
	qb.q.Default = domain.DefaultFunc(fn)
	return qb
}

// AllowEmpty accepts an empty reply without a default.
func (qb *QuestionBuilder) AllowEmpty() *QuestionBuilder {
	qb.q.AllowEmpty = true
	return qb
}

// Regex requires the reply to match pattern. A bad pattern fails Build.
func (qb *QuestionBuilder) Regex(pattern string) *QuestionBuilder {
	re, err := regexp.Compile(pattern)
	if err != nil {
		qb.err = err
		return qb
	}
	qb.q.Regex = re
	return qb
}

// Options restricts the reply to the given values.
func (qb *QuestionBuilder) Options(values ...any) *QuestionBuilder {
	qb.q.Options = append(qb.q.Options, values...)
	return qb
}

// Error replaces the generic "Invalid value." message.
func (qb *QuestionBuilder) Error(text string) *QuestionBuilder {
	qb.q.ErrorText = text
	return qb
}

// DependsOn asks the question only when cond holds for the answer to field.
// Calling it again adds another condition; all of them must hold.
func (qb *QuestionBuilder) DependsOn(field string, cond domain.Condition) *QuestionBuilder {
	if qb.q.DependsOn == nil {
		qb.q.DependsOn = make(map[string]domain.Condition)
	}
	qb.q.DependsOn[field] = cond
	return qb
}

// Definition returns the underlying domain definition.
// This is primarily used by the Builder, but exposed for advanced usage.
func (qb *QuestionBuilder) Definition() domain.Definition {
	if qb.bare {
		return domain.Bare{Value: qb.value}
	}
	return qb.q
}
