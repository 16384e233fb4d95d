package domain

import "fmt"

// Diagnostic describes a line that was skipped or only partially counted.
// Line is 1-based within its input block.
type Diagnostic struct {
	Source  InputSource
	Line    int
	Kind    DiagnosticKind
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s:%d [%s] %s", d.Source, d.Line, d.Kind, d.Message)
}
