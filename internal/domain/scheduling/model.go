package scheduling

import (
	"time"

	"github.com/google/uuid"
)

const (
	EstadoProgramada = "programada"
	EstadoConfirmada = "confirmada"
	EstadoCompletada = "completada"
	EstadoCancelada  = "cancelada"
)

// Appointment maps to the appointment table. fecha_cita is nullable in the
// legacy store, so consumers fall back to created_at when filtering by date.
type Appointment struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	DoctorID  uuid.UUID  `db:"doctor_id" json:"doctor_id"`
	PatientID *uuid.UUID `db:"patient_id" json:"patient_id,omitempty"`
	FechaCita *time.Time `db:"fecha_cita" json:"fecha_cita,omitempty"`
	Motivo    *string    `db:"motivo" json:"motivo,omitempty"`
	Estado    string     `db:"estado" json:"estado"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
}
