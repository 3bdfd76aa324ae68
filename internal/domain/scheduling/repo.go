package scheduling

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, appt *Appointment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error)
	Update(ctx context.Context, appt *Appointment) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByDoctor(ctx context.Context, doctorID uuid.UUID, limit, offset int) ([]*Appointment, int, error)
	// AllByDoctor returns every appointment for the doctor without date
	// filtering. fecha_cita is unreliable upstream, so range filtering is
	// done by the caller.
	AllByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*Appointment, error)
}
