package lab

import (
	"time"

	"github.com/google/uuid"
)

// LabResult maps to the lab_result table. Unlike billing, result_date is
// reliably populated, so date filtering happens in the store.
type LabResult struct {
	ID                 uuid.UUID  `db:"id" json:"id"`
	OrderingProviderID uuid.UUID  `db:"ordering_provider_id" json:"ordering_provider_id"`
	PatientID          *uuid.UUID `db:"patient_id" json:"patient_id,omitempty"`
	TestName           string     `db:"test_name" json:"test_name"`
	ResultValue        *string    `db:"result_value" json:"result_value,omitempty"`
	IsCritical         bool       `db:"is_critical" json:"is_critical"`
	ResultDate         time.Time  `db:"result_date" json:"result_date"`
	CreatedAt          time.Time  `db:"created_at" json:"created_at"`
}
