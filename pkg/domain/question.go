package domain

import (
	"regexp"
)

// Kind defines how a question is asked.
type Kind string

const (
	// KindText reads a regular line and coerces it to a typed value.
	KindText Kind = ""
	// KindConfirm asks a yes/no question; only boolean replies are accepted.
	KindConfirm Kind = "confirm"
	// KindPassword reads a masked secret line.
	KindPassword Kind = "password"
)

// ValueType is the primitive type a typed question expects.
type ValueType string

const (
	TypeAny     ValueType = ""
	TypeBoolean ValueType = "boolean"
	TypeNumber  ValueType = "number"
	TypeString  ValueType = "string"
)

// Default resolves the fallback value of a question given the answers so far.
// A nil result means "no default".
type Default interface {
	Resolve(answers Answers) any
}

// Static is a Default with a fixed value.
func Static(v any) Default {
	return staticDefault{value: NormalizeValue(v)}
}

type staticDefault struct {
	value any
}

func (s staticDefault) Resolve(Answers) any { return s.value }

// DefaultFunc adapts a function to the Default interface.
// The function must be pure with respect to the answers it receives.
type DefaultFunc func(answers Answers) any

func (f DefaultFunc) Resolve(answers Answers) any {
	return NormalizeValue(f(answers))
}

// Question is the full form of a question definition.
type Question struct {
	Kind    Kind
	Type    ValueType
	Message string

	// Default is consulted when the operator presses enter without a reply.
	Default Default

	// AllowEmpty accepts an empty reply even when no default resolves.
	AllowEmpty bool

	// Regex, when set, must match the string form of the reply.
	Regex *regexp.Regexp

	// Options is the finite set of accepted values.
	Options []any

	// ErrorText replaces the generic "Invalid value." message.
	ErrorText string

	// DependsOn gates the question on earlier answers. All conditions must hold.
	DependsOn map[string]Condition
}

// ResolveDefault returns the fallback for this question, or nil.
func (q Question) ResolveDefault(answers Answers) any {
	if q.Default == nil {
		return nil
	}
	return q.Default.Resolve(answers)
}

// Definition is either a Bare default or a full Question.
type Definition interface {
	question() Question
}

// Bare is the short form of a definition: just a default value.
type Bare struct {
	Value any
}

func (b Bare) question() Question {
	return Question{Default: Static(b.Value)}
}

func (q Question) question() Question {
	return q
}

// Normalize converts any Definition into its full Question form.
// A nil definition yields the zero Question.
func Normalize(def Definition) Question {
	if def == nil {
		return Question{}
	}
	q := def.question()
	if len(q.Options) > 0 {
		opts := make([]any, len(q.Options))
		for i, o := range q.Options {
			opts[i] = NormalizeValue(o)
		}
		q.Options = opts
	}
	return q
}
