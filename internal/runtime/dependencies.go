package runtime

import "github.com/aretw0/inquire/pkg/domain"

// DependenciesMet reports whether every condition holds against the answers
// collected so far. A field that was never reached compares as nil.
func DependenciesMet(conds map[string]domain.Condition, answers domain.Answers) bool {
	for field, cond := range conds {
		if !cond.Holds(answers[field]) {
			return false
		}
	}
	return true
}
