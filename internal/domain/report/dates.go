package report

import (
	"time"

	"github.com/medagenda/medagenda/internal/domain/billing"
	"github.com/medagenda/medagenda/internal/domain/consultation"
	"github.com/medagenda/medagenda/internal/domain/scheduling"
)

// FirstNonNull evaluates an ordered list of candidate dates and returns the
// first one that is present. Every record type carries its own candidate
// chain, so fallback policy lives here rather than inline at each call site.
func FirstNonNull(candidates ...*time.Time) (time.Time, bool) {
	for _, c := range candidates {
		if c != nil && !c.IsZero() {
			return *c, true
		}
	}
	return time.Time{}, false
}

// InvoiceEffectiveDate picks fecha_pago, then fecha_emision, then created_at.
func InvoiceEffectiveDate(inv *billing.Invoice) (time.Time, bool) {
	created := inv.CreatedAt
	return FirstNonNull(inv.FechaPago, inv.FechaEmision, &created)
}

// AppointmentEffectiveDate picks fecha_cita, then created_at.
func AppointmentEffectiveDate(appt *scheduling.Appointment) (time.Time, bool) {
	created := appt.CreatedAt
	return FirstNonNull(appt.FechaCita, &created)
}

// ConsultationEffectiveDate picks fecha_consulta, then created_at.
func ConsultationEffectiveDate(cons *consultation.Consultation) (time.Time, bool) {
	created := cons.CreatedAt
	return FirstNonNull(cons.FechaConsulta, &created)
}

// FilterInvoices keeps invoices whose effective date falls inside the range.
// Records with no usable date candidate are excluded.
func FilterInvoices(invs []*billing.Invoice, r Range) []*billing.Invoice {
	var out []*billing.Invoice
	for _, inv := range invs {
		if d, ok := InvoiceEffectiveDate(inv); ok && r.Contains(d) {
			out = append(out, inv)
		}
	}
	return out
}

func FilterAppointments(appts []*scheduling.Appointment, r Range) []*scheduling.Appointment {
	var out []*scheduling.Appointment
	for _, appt := range appts {
		if d, ok := AppointmentEffectiveDate(appt); ok && r.Contains(d) {
			out = append(out, appt)
		}
	}
	return out
}

func FilterConsultations(cons []*consultation.Consultation, r Range) []*consultation.Consultation {
	var out []*consultation.Consultation
	for _, c := range cons {
		if d, ok := ConsultationEffectiveDate(c); ok && r.Contains(d) {
			out = append(out, c)
		}
	}
	return out
}
