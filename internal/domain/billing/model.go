package billing

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Payment states for an invoice. Upstream data contains both the feminine and
// masculine spelling of "paid"; both count as income.
const (
	EstadoPendiente             = "pendiente"
	EstadoPendienteVerificacion = "pendiente_verificacion"
	EstadoPagada                = "pagada"
	EstadoPagado                = "pagado"
	EstadoAnulada               = "anulada"
)

// Invoice maps to the facturacion table. The backing store is loosely typed:
// total arrives as text and the date columns are inconsistently populated, so
// consumers coerce at the boundary instead of trusting upstream typing.
type Invoice struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	DoctorID     uuid.UUID  `db:"doctor_id" json:"doctor_id"`
	PatientID    *uuid.UUID `db:"patient_id" json:"patient_id,omitempty"`
	Total        string     `db:"total" json:"total"`
	Moneda       *string    `db:"moneda" json:"moneda,omitempty"`
	TipoCambio   *float64   `db:"tipo_cambio" json:"tipo_cambio,omitempty"`
	EstadoPago   string     `db:"estado_pago" json:"estado_pago"`
	MetodoPago   *string    `db:"metodo_pago" json:"metodo_pago,omitempty"`
	Notas        *string    `db:"notas" json:"notas,omitempty"`
	FechaPago    *time.Time `db:"fecha_pago" json:"fecha_pago,omitempty"`
	FechaEmision *time.Time `db:"fecha_emision" json:"fecha_emision,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

// IsPaid reports whether the invoice contributes to income.
func (i *Invoice) IsPaid() bool {
	return i.EstadoPago == EstadoPagada || i.EstadoPago == EstadoPagado
}

// Currency returns the invoice currency, defaulting to USD when absent.
func (i *Invoice) Currency() string {
	if i.Moneda == nil || *i.Moneda == "" {
		return "USD"
	}
	return *i.Moneda
}

// Amount coerces the raw total into a float64. Returns false for empty,
// non-numeric, NaN, or infinite values.
func (i *Invoice) Amount() (float64, bool) {
	return ParseAmount(i.Total)
}

// ParseAmount parses a loosely typed numeric string from the store.
func ParseAmount(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
