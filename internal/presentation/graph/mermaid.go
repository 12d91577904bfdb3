package graph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aretw0/inquire/pkg/domain"
)

// AnswerOverlay marks the outcome of a run on the graph.
type AnswerOverlay struct {
	Answers domain.Answers
}

// GenerateMermaid produces a Mermaid flowchart of a question set. Fields
// are drawn in asking order and each dependency becomes an edge from the
// earlier field, labelled with its condition.
// Shapes:
// - Bare value: [Rectangle]
// - Confirm: {Rhombus}
// - Password: [[Subroutine]]
// - Typed question: [/Parallelogram/]
func GenerateMermaid(set *domain.QuestionSet, overlay *AnswerOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	fields := set.Fields()
	for _, f := range fields {
		safeID := sanitizeMermaidID(f.Key)

		opener, closer := "[/", "/]"
		if _, bare := f.Definition.(domain.Bare); bare {
			opener, closer = "[", "]"
		} else {
			switch domain.Normalize(f.Definition).Kind {
			case domain.KindConfirm:
				opener, closer = "{", "}"
			case domain.KindPassword:
				opener, closer = "[[", "]]"
			}
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", safeID, opener, escapeLabel(f.Key), closer)
	}

	for _, f := range fields {
		deps := domain.Normalize(f.Definition).DependsOn
		names := make([]string, 0, len(deps))
		for name := range deps {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			fmt.Fprintf(&sb, "    %s -- \"%s\" --> %s\n",
				sanitizeMermaidID(name), escapeLabel(deps[name].String()), sanitizeMermaidID(f.Key))
		}
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef answered fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef skipped fill:#eeeeee,stroke:#9e9e9e,stroke-dasharray:4,color:#000;\n")

		for _, f := range fields {
			value, ok := overlay.Answers[f.Key]
			if !ok {
				continue
			}
			class := "answered"
			if value == nil {
				class = "skipped"
			}
			fmt.Fprintf(&sb, "    class %s %s;\n", sanitizeMermaidID(f.Key), class)
		}
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
