package consultation

import (
	"time"

	"github.com/google/uuid"
)

// Consultation maps to the consultation table. fecha_consulta is nullable in
// the legacy store; created_at is the fallback for date filtering.
type Consultation struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	DoctorID      uuid.UUID  `db:"doctor_id" json:"doctor_id"`
	PatientID     *uuid.UUID `db:"patient_id" json:"patient_id,omitempty"`
	FechaConsulta *time.Time `db:"fecha_consulta" json:"fecha_consulta,omitempty"`
	Motivo        *string    `db:"motivo" json:"motivo,omitempty"`
	Diagnosis     *string    `db:"diagnosis" json:"diagnosis,omitempty"`
	Tratamiento   *string    `db:"tratamiento" json:"tratamiento,omitempty"`
	Notas         *string    `db:"notas" json:"notas,omitempty"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
}
