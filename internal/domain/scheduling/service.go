package scheduling

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Service struct {
	appointments Repository
}

func NewService(appointments Repository) *Service {
	return &Service{appointments: appointments}
}

var validEstados = map[string]bool{
	EstadoProgramada: true,
	EstadoConfirmada: true,
	EstadoCompletada: true,
	EstadoCancelada:  true,
}

func (s *Service) CreateAppointment(ctx context.Context, appt *Appointment) error {
	if appt.DoctorID == uuid.Nil {
		return fmt.Errorf("doctor_id is required")
	}
	if appt.Estado == "" {
		appt.Estado = EstadoProgramada
	}
	if !validEstados[appt.Estado] {
		return fmt.Errorf("invalid estado: %s", appt.Estado)
	}
	return s.appointments.Create(ctx, appt)
}

func (s *Service) GetAppointment(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return s.appointments.GetByID(ctx, id)
}

func (s *Service) UpdateAppointment(ctx context.Context, appt *Appointment) error {
	if appt.Estado != "" && !validEstados[appt.Estado] {
		return fmt.Errorf("invalid estado: %s", appt.Estado)
	}
	return s.appointments.Update(ctx, appt)
}

func (s *Service) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	return s.appointments.Delete(ctx, id)
}

func (s *Service) ListAppointmentsByDoctor(ctx context.Context, doctorID uuid.UUID, limit, offset int) ([]*Appointment, int, error) {
	return s.appointments.ListByDoctor(ctx, doctorID, limit, offset)
}

func (s *Service) AllAppointmentsByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*Appointment, error) {
	return s.appointments.AllByDoctor(ctx, doctorID)
}
