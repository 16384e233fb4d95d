package service

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/gestemps/internal/contract"
	"github.com/alexanderramin/gestemps/internal/db"
	"github.com/alexanderramin/gestemps/internal/domain"
	"github.com/alexanderramin/gestemps/internal/repository"
	"github.com/google/uuid"
)

// ErrNothingToSave is returned when Save is called without a computed result.
var ErrNothingToSave = errors.New("no computation to save")

type historyService struct {
	runs     repository.RunRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewHistoryService(runs repository.RunRepo, uow db.UnitOfWork, observers ...UseCaseObserver) HistoryService {
	return &historyService{runs: runs, uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *historyService) Save(ctx context.Context, resp *contract.ComputeResponse) (run *domain.Run, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "save-run",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if resp == nil {
		return nil, ErrNothingToSave
	}

	run = &domain.Run{
		ID:               uuid.New().String(),
		ComputedAt:       startedAt,
		Result:           resp.Result,
		Days:             resp.Days,
		DiagnosticsCount: len(resp.Diagnostics),
	}
	fields["run_id"] = run.ID
	fields["days"] = len(run.Days)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteRunRepo(tx).Create(ctx, run)
	})
	if err != nil {
		return nil, err
	}
	return run, nil
}

func (s *historyService) Get(ctx context.Context, id string) (*domain.Run, error) {
	return s.runs.GetByID(ctx, id)
}

func (s *historyService) List(ctx context.Context, limit int) ([]*domain.Run, error) {
	return s.runs.List(ctx, limit)
}

func (s *historyService) Delete(ctx context.Context, id string) error {
	return s.runs.Delete(ctx, id)
}
