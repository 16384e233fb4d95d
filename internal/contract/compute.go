package contract

import "github.com/alexanderramin/gestemps/internal/domain"

// ComputeRequest carries the two raw timesheet blocks as pasted by the user.
type ComputeRequest struct {
	OffClientText string
	ClientText    string
}

// ComputeResponse is the outcome of one computation pass.
type ComputeResponse struct {
	Result      domain.Result
	Days        []domain.DayTotal
	Diagnostics []domain.Diagnostic
	Status      string
}

// DaysTotal returns the sum of the per-day breakdown. It differs from
// Result.Total() when some lines had no usable date.
func (r *ComputeResponse) DaysTotal() float64 {
	var total float64
	for _, d := range r.Days {
		total += d.Hours
	}
	return total
}
