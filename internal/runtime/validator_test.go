package runtime

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/inquire/pkg/domain"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		q     domain.Question
		value any
		valid bool
	}{
		{"Empty Without Default", domain.Question{}, nil, false},
		{"Empty Allowed", domain.Question{AllowEmpty: true}, nil, true},
		{"Empty With Default", domain.Question{Default: domain.Static("blue")}, nil, true},
		{"Empty With Empty String Default", domain.Question{Default: domain.Static("")}, nil, true},
		{"Regex Match", domain.Question{Regex: regexp.MustCompile(`^\d{3}$`)}, float64(123), true},
		{"Regex Mismatch", domain.Question{Regex: regexp.MustCompile(`^\d{3}$`)}, "12a", false},
		{"Option Member", domain.Question{Options: []any{"a", "b"}}, "b", true},
		{"Option Missing", domain.Question{Options: []any{"a", "b"}}, "c", false},
		{"Option Type Strict", domain.Question{Options: []any{"1"}}, float64(1), false},
		{"Option Number", domain.Normalize(domain.Question{Options: []any{1, 2}}), float64(2), true},
		{"Confirm Bool", domain.Question{Kind: domain.KindConfirm}, false, true},
		{"Confirm Text", domain.Question{Kind: domain.KindConfirm}, "maybe", false},
		{"Typed Number", domain.Question{Type: domain.TypeNumber}, float64(4), true},
		{"Typed Number Got String", domain.Question{Type: domain.TypeNumber}, "four", false},
		{"Typed String Got Bool", domain.Question{Type: domain.TypeString}, true, false},
		{"Typed Boolean", domain.Question{Type: domain.TypeBoolean}, true, true},
		{"Password Ignores Type", domain.Question{Kind: domain.KindPassword, Type: domain.TypeNumber}, "secret", true},
		{"Untyped", domain.Question{}, "anything", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate("field", tt.q, tt.value, domain.Answers{})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				var verr *ValidationError
				assert.ErrorAs(t, err, &verr)
				assert.Equal(t, "field", verr.Field)
			}
		})
	}
}

func TestValidate_RegexTakesPrecedenceOverOptions(t *testing.T) {
	q := domain.Question{
		Regex:   regexp.MustCompile(`^z`),
		Options: []any{"a", "b"},
	}

	assert.NoError(t, Validate("f", q, "zebra", nil), "regex decides even though value is not an option")
	assert.Error(t, Validate("f", q, "a", nil), "options are never consulted when a regex is set")
}

func TestValidate_DefaultFuncSeesAnswers(t *testing.T) {
	q := domain.Question{
		Default: domain.DefaultFunc(func(a domain.Answers) any {
			return a["name"]
		}),
	}

	assert.Error(t, Validate("f", q, nil, domain.Answers{}))
	assert.NoError(t, Validate("f", q, nil, domain.Answers{"name": "ana"}))
}
