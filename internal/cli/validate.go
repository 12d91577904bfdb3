package cli

import (
	"fmt"

	"github.com/aretw0/inquire/internal/presentation/graph"
	"github.com/aretw0/inquire/pkg/adapters/file"
)

// RunValidate checks a question file without asking anything.
func (s *Session) RunValidate(path string) error {
	_, set, err := file.Load(path)
	if err != nil {
		return &ExitError{Code: ExitFailure, Err: fmt.Errorf("validation failed: %w", err)}
	}
	fmt.Fprintf(s.Out, "%s is valid (%d fields)\n", path, set.Len())
	return nil
}

// RunGraph prints the dependency graph of a question file as Mermaid.
func (s *Session) RunGraph(path string) error {
	_, set, err := file.Load(path)
	if err != nil {
		return &ExitError{Code: ExitFailure, Err: err}
	}
	fmt.Fprint(s.Out, graph.GenerateMermaid(set, nil))
	return nil
}
