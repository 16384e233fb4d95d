package timesheet

import (
	"strconv"
	"strings"

	"github.com/alexanderramin/gestemps/internal/domain"
)

const (
	onClientMinFields = 6

	// onClientDateField is the positional column holding the work order
	// date. The export format carries no header we could validate against.
	onClientDateField = 8
)

var onClientSkipPrefixes = []string{"ABS", "Description"}

// ParseOnClient parses the on-client block and returns the work and travel
// totals. The two duration columns are the last two fields of each line and
// use a comma as decimal separator. Totals never depend on the date column;
// only the daily breakdown does.
func ParseOnClient(text string, daily *Daily, diags *Diagnostics) (work, travel float64) {
	for i, raw := range splitLines(text) {
		lineNo := i + 1
		line := strings.TrimSpace(raw)
		if line == "" || hasAnyPrefix(line, onClientSkipPrefixes) {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < onClientMinFields {
			diags.add(domain.SourceOnClient, lineNo, domain.DiagStructural,
				"expected at least %d tab-separated fields, got %d", onClientMinFields, len(fields))
			continue
		}

		var lineHours float64
		counted := false

		workRaw := fields[len(fields)-2]
		if w, err := parseDecimal(workRaw); err == nil {
			work += w
			lineHours += w
			counted = true
		} else {
			diags.add(domain.SourceOnClient, lineNo, domain.DiagNumericParse,
				"work duration %q is not a decimal number", strings.TrimSpace(workRaw))
		}

		travelRaw := fields[len(fields)-1]
		if t, err := parseDecimal(travelRaw); err == nil {
			travel += t
			lineHours += t
			counted = true
		} else {
			diags.add(domain.SourceOnClient, lineNo, domain.DiagNumericParse,
				"travel duration %q is not a decimal number", strings.TrimSpace(travelRaw))
		}

		if len(fields) <= onClientDateField {
			diags.add(domain.SourceOnClient, lineNo, domain.DiagDateParse,
				"no date column (field %d), line left out of the daily breakdown", onClientDateField+1)
			continue
		}
		day, ok := TryParse(fields[onClientDateField], OnClientDateLayouts)
		if !ok {
			diags.add(domain.SourceOnClient, lineNo, domain.DiagDateParse,
				"date %q matches no known layout, line left out of the daily breakdown",
				strings.TrimSpace(fields[onClientDateField]))
			continue
		}
		if counted {
			daily.Add(day, lineHours)
		}
	}

	return work, travel
}

// parseDecimal accepts both "1,3" and "1.3".
func parseDecimal(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	return strconv.ParseFloat(s, 64)
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
