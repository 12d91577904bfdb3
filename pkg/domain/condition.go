package domain

// Operator identifies how a Condition compares a prior answer.
type Operator string

const (
	OpEquals   Operator = "equals"
	OpNotEqual Operator = "not"
	OpIn       Operator = "in"
)

// Condition is a predicate over one previously collected answer.
type Condition struct {
	Op     Operator
	Value  any
	Values []any
}

// Equals requires the prior answer to be exactly v.
func Equals(v any) Condition {
	return Condition{Op: OpEquals, Value: NormalizeValue(v)}
}

// NotEqual requires the prior answer to differ from v.
func NotEqual(v any) Condition {
	return Condition{Op: OpNotEqual, Value: NormalizeValue(v)}
}

// OneOf requires the prior answer to be a member of values.
func OneOf(values ...any) Condition {
	normalized := make([]any, len(values))
	for i, v := range values {
		normalized[i] = NormalizeValue(v)
	}
	return Condition{Op: OpIn, Values: normalized}
}

// Holds reports whether the condition is satisfied by answer.
func (c Condition) Holds(answer any) bool {
	switch c.Op {
	case OpNotEqual:
		return !Equal(answer, c.Value)
	case OpIn:
		return Contains(c.Values, answer)
	default:
		return Equal(answer, c.Value)
	}
}

// String renders the condition as "= v", "!= v" or "in a, b".
func (c Condition) String() string {
	switch c.Op {
	case OpNotEqual:
		return "!= " + FormatValue(c.Value)
	case OpIn:
		return "in " + JoinValues(c.Values)
	default:
		return "= " + FormatValue(c.Value)
	}
}
