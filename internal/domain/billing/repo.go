package billing

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the invoice data access contract.
type Repository interface {
	Create(ctx context.Context, inv *Invoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*Invoice, error)
	Update(ctx context.Context, inv *Invoice) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByDoctor(ctx context.Context, doctorID uuid.UUID, limit, offset int) ([]*Invoice, int, error)
	// AllByDoctor returns every invoice for a doctor with no date filtering.
	// The date columns are too unreliable to filter server-side; callers
	// filter locally on an effective date.
	AllByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*Invoice, error)
}
