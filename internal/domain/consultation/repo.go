package consultation

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, cons *Consultation) error
	GetByID(ctx context.Context, id uuid.UUID) (*Consultation, error)
	Update(ctx context.Context, cons *Consultation) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByDoctor(ctx context.Context, doctorID uuid.UUID, limit, offset int) ([]*Consultation, int, error)
	// AllByDoctor returns every consultation for the doctor; date filtering
	// is local because fecha_consulta is inconsistently populated.
	AllByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*Consultation, error)
}
