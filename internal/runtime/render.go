package runtime

import (
	"strings"

	"github.com/aretw0/inquire/pkg/domain"
)

// DefaultErrorText is shown when a question has no ErrorText of its own.
const DefaultErrorText = "Invalid value."

// Styler decorates the two highlighted kinds of output line.
type Styler interface {
	// Message styles the question message and options line.
	Message(text string) string
	// Error styles a validation failure line.
	Error(text string) string
}

type plainStyler struct{}

func (plainStyler) Message(text string) string { return text }
func (plainStyler) Error(text string) string   { return text }

// renderMessage builds the line shown above the prompt, or "" if there is nothing to show.
func renderMessage(q domain.Question) string {
	var b strings.Builder
	if text := strings.TrimSpace(q.Message); text != "" {
		b.WriteString(text)
		b.WriteString(" ")
	}
	if len(q.Options) > 0 {
		b.WriteString("(options are ")
		b.WriteString(domain.JoinValues(q.Options))
		b.WriteString(")")
	}
	return b.String()
}

// renderPrompt builds the inline prompt the reply is typed after.
func renderPrompt(field string, q domain.Question, fallback any) string {
	prompt := " - " + field + ": "
	if q.Kind == domain.KindConfirm {
		prompt = " - yes/no: "
	}
	if fallback != nil {
		if s, isString := fallback.(string); !isString || s != "" {
			prompt += "[" + domain.FormatValue(fallback) + "] "
		}
	}
	return prompt
}

// renderError builds the text of a validation failure line.
func renderError(q domain.Question) string {
	text := q.ErrorText
	if text == "" {
		text = DefaultErrorText
	}
	if len(q.Options) > 0 {
		text += " (options are " + domain.JoinValues(q.Options) + ")"
	}
	return text
}
