package chart

import (
	"fmt"
	"os"
)

// RenderError reports a chart that could not be produced or written.
// Callers treat it as non-fatal: the computed totals remain valid.
type RenderError struct {
	Path string
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("chart %s: %v", e.Path, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// WriteFile renders slices with r and writes the result to path. When the
// total is zero nothing is written and the error is nil.
func WriteFile(path string, r Renderer, slices []Slice) error {
	if Total(slices) <= 0 {
		return nil
	}

	data, err := r.Render(slices)
	if err != nil {
		return &RenderError{Path: path, Err: fmt.Errorf("rendering: %w", err)}
	}
	if len(data) == 0 {
		return nil
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &RenderError{Path: path, Err: err}
	}
	return nil
}
