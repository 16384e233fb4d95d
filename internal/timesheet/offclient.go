package timesheet

import (
	"strings"

	"github.com/alexanderramin/gestemps/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

const offClientMinFields = 4

// lunchBreak marks the only off-client activity that is never counted.
const lunchBreak = "pause déjeuner"

// ParseOffClient parses the off-client block, one code/description/start/end
// line per activity. Kept lines are returned in input order and their
// hours are folded into daily under the day of their start timestamp.
// Malformed lines are reported to diags and never abort the pass.
func ParseOffClient(text string, daily *Daily, diags *Diagnostics) []domain.OffClientEntry {
	var entries []domain.OffClientEntry
	lunch := foldText(lunchBreak)

	for i, raw := range splitLines(text) {
		lineNo := i + 1
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < offClientMinFields {
			diags.add(domain.SourceOffClient, lineNo, domain.DiagStructural,
				"expected at least %d tab-separated fields, got %d", offClientMinFields, len(fields))
			continue
		}

		description := strings.TrimSpace(fields[1])
		start := strings.TrimSpace(fields[2])
		end := strings.TrimSpace(fields[3])

		if strings.Contains(foldText(description), lunch) {
			continue
		}

		hours, ok := DurationHours(start, end)
		if !ok {
			diags.add(domain.SourceOffClient, lineNo, domain.DiagDateParse,
				"cannot compute duration between %q and %q", start, end)
		}

		if day, found := TryParse(start, OffClientDateLayouts); found {
			daily.Add(day, hours)
		} else {
			diags.add(domain.SourceOffClient, lineNo, domain.DiagDateParse,
				"start %q matches no known date layout, line left out of the daily breakdown", start)
		}

		entries = append(entries, domain.OffClientEntry{
			Description: description,
			Start:       start,
			End:         end,
			Hours:       hours,
		})
	}

	return entries
}

// foldText normalizes s for case-insensitive matching. Pasted text may
// carry decomposed accents, so it is composed before folding.
func foldText(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
