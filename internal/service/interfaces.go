package service

import (
	"context"

	"github.com/alexanderramin/gestemps/internal/contract"
	"github.com/alexanderramin/gestemps/internal/domain"
)

// ComputeService is the single session owning the per-day map. Each
// Compute call starts from an empty map and replaces the previous result.
// Implementations are not safe for concurrent use.
type ComputeService interface {
	Compute(ctx context.Context, req contract.ComputeRequest) (*contract.ComputeResponse, error)
	Last() *contract.ComputeResponse
	Reset()
}

type HistoryService interface {
	Save(ctx context.Context, resp *contract.ComputeResponse) (*domain.Run, error)
	Get(ctx context.Context, id string) (*domain.Run, error)
	List(ctx context.Context, limit int) ([]*domain.Run, error)
	Delete(ctx context.Context, id string) error
}
