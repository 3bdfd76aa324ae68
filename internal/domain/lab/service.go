package lab

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	results Repository
}

func NewService(results Repository) *Service {
	return &Service{results: results}
}

func (s *Service) CreateResult(ctx context.Context, lr *LabResult) error {
	if lr.OrderingProviderID == uuid.Nil {
		return fmt.Errorf("ordering_provider_id is required")
	}
	if lr.TestName == "" {
		return fmt.Errorf("test_name is required")
	}
	if lr.ResultDate.IsZero() {
		lr.ResultDate = time.Now().UTC()
	}
	return s.results.Create(ctx, lr)
}

func (s *Service) GetResult(ctx context.Context, id uuid.UUID) (*LabResult, error) {
	return s.results.GetByID(ctx, id)
}

func (s *Service) DeleteResult(ctx context.Context, id uuid.UUID) error {
	return s.results.Delete(ctx, id)
}

func (s *Service) ListResultsByProvider(ctx context.Context, providerID uuid.UUID, limit, offset int) ([]*LabResult, int, error) {
	return s.results.ListByProvider(ctx, providerID, limit, offset)
}

// ResultsBetween returns results ordered by the provider within [from, to].
func (s *Service) ResultsBetween(ctx context.Context, providerID uuid.UUID, from, to time.Time) ([]*LabResult, error) {
	return s.results.ListByProviderBetween(ctx, providerID, from, to)
}
