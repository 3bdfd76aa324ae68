package lab

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, lr *LabResult) error
	GetByID(ctx context.Context, id uuid.UUID) (*LabResult, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByProvider(ctx context.Context, providerID uuid.UUID, limit, offset int) ([]*LabResult, int, error)
	ListByProviderBetween(ctx context.Context, providerID uuid.UUID, from, to time.Time) ([]*LabResult, error)
}
