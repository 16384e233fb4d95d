package timesheet

import "github.com/alexanderramin/gestemps/internal/domain"

// Assemble builds the Result of one pass. The off-client total is always
// derived from the entries so it cannot drift from the detail list.
func Assemble(entries []domain.OffClientEntry, work, travel float64) domain.Result {
	var offClient float64
	for _, e := range entries {
		offClient += e.Hours
	}

	details := make([]domain.OffClientEntry, len(entries))
	copy(details, entries)

	return domain.Result{
		OffClient:        offClient,
		ClientWork:       work,
		Travel:           travel,
		OffClientDetails: details,
	}
}
