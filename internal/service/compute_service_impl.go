package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/alexanderramin/gestemps/internal/contract"
	"github.com/alexanderramin/gestemps/internal/timesheet"
)

type computeService struct {
	daily    *timesheet.Daily
	last     *contract.ComputeResponse
	logger   *slog.Logger
	observer UseCaseObserver
}

// NewComputeService returns the compute session. logger receives per-line
// diagnostics at debug level and may be nil.
func NewComputeService(logger *slog.Logger, observers ...UseCaseObserver) ComputeService {
	return &computeService{
		daily:    timesheet.NewDaily(),
		logger:   logger,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *computeService) Compute(ctx context.Context, req contract.ComputeRequest) (resp *contract.ComputeResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "compute",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	s.daily.Reset()
	diags := timesheet.NewDiagnostics(s.logger)

	entries := timesheet.ParseOffClient(req.OffClientText, s.daily, diags)
	work, travel := timesheet.ParseOnClient(req.ClientText, s.daily, diags)
	result := timesheet.Assemble(entries, work, travel)

	resp = &contract.ComputeResponse{
		Result:      result,
		Days:        s.daily.Days(),
		Diagnostics: diags.Items(),
		Status:      statusMessage(len(entries), diags.Len()),
	}
	s.last = resp

	fields["off_client_entries"] = len(entries)
	fields["days"] = len(resp.Days)
	fields["diagnostics"] = diags.Len()
	fields["total_hours"] = result.Total()
	return resp, nil
}

func (s *computeService) Last() *contract.ComputeResponse {
	return s.last
}

// Reset clears the last result and the per-day map.
func (s *computeService) Reset() {
	s.daily.Reset()
	s.last = nil
}

func statusMessage(entries, diagnostics int) string {
	msg := fmt.Sprintf("Calcul terminé : %d activité(s) hors clientèle retenue(s)", entries)
	if diagnostics > 0 {
		msg += fmt.Sprintf(", %d ligne(s) signalée(s)", diagnostics)
	}
	return msg
}
