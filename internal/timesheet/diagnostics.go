package timesheet

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alexanderramin/gestemps/internal/domain"
)

// Diagnostics collects per-line problems found while parsing. Every
// recorded diagnostic is also logged at debug level when a logger is set.
// A nil *Diagnostics discards everything.
type Diagnostics struct {
	logger *slog.Logger
	items  []domain.Diagnostic
}

// NewDiagnostics returns a collector logging through logger (may be nil).
func NewDiagnostics(logger *slog.Logger) *Diagnostics {
	return &Diagnostics{logger: logger}
}

func (d *Diagnostics) add(source domain.InputSource, line int, kind domain.DiagnosticKind, format string, args ...any) {
	if d == nil {
		return
	}
	diag := domain.Diagnostic{
		Source:  source,
		Line:    line,
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
	d.items = append(d.items, diag)
	if d.logger != nil {
		d.logger.LogAttrs(context.Background(), slog.LevelDebug, "timesheet_line_skipped",
			slog.String("source", string(source)),
			slog.Int("line", line),
			slog.String("kind", string(kind)),
			slog.String("message", diag.Message),
		)
	}
}

// Items returns the recorded diagnostics in the order they were found.
func (d *Diagnostics) Items() []domain.Diagnostic {
	if d == nil {
		return nil
	}
	return d.items
}

func (d *Diagnostics) Len() int {
	if d == nil {
		return 0
	}
	return len(d.items)
}

// CountKind returns how many diagnostics of the given kind were recorded.
func (d *Diagnostics) CountKind(kind domain.DiagnosticKind) int {
	n := 0
	for _, item := range d.Items() {
		if item.Kind == kind {
			n++
		}
	}
	return n
}
