package consultation

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Service struct {
	consultations Repository
}

func NewService(consultations Repository) *Service {
	return &Service{consultations: consultations}
}

func (s *Service) CreateConsultation(ctx context.Context, cons *Consultation) error {
	if cons.DoctorID == uuid.Nil {
		return fmt.Errorf("doctor_id is required")
	}
	return s.consultations.Create(ctx, cons)
}

func (s *Service) GetConsultation(ctx context.Context, id uuid.UUID) (*Consultation, error) {
	return s.consultations.GetByID(ctx, id)
}

func (s *Service) UpdateConsultation(ctx context.Context, cons *Consultation) error {
	return s.consultations.Update(ctx, cons)
}

func (s *Service) DeleteConsultation(ctx context.Context, id uuid.UUID) error {
	return s.consultations.Delete(ctx, id)
}

func (s *Service) ListConsultationsByDoctor(ctx context.Context, doctorID uuid.UUID, limit, offset int) ([]*Consultation, int, error) {
	return s.consultations.ListByDoctor(ctx, doctorID, limit, offset)
}

func (s *Service) AllConsultationsByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*Consultation, error) {
	return s.consultations.AllByDoctor(ctx, doctorID)
}
