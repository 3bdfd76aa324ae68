package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/medagenda/medagenda/internal/domain/billing"
	"github.com/medagenda/medagenda/internal/domain/consultation"
	"github.com/medagenda/medagenda/internal/domain/lab"
	"github.com/medagenda/medagenda/internal/domain/scheduling"
)

// The report reads through the domain services. The store's date columns
// are inconsistently populated for appointments, consultations, and
// invoices, so those are fetched unfiltered and narrowed locally; lab
// results have a reliable result_date and are narrowed at the source.

type AppointmentSource interface {
	AllAppointmentsByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*scheduling.Appointment, error)
}

type ConsultationSource interface {
	AllConsultationsByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*consultation.Consultation, error)
}

type InvoiceSource interface {
	AllInvoicesByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*billing.Invoice, error)
}

type LabSource interface {
	ResultsBetween(ctx context.Context, providerID uuid.UUID, from, to time.Time) ([]*lab.LabResult, error)
}

type Service struct {
	appointments  AppointmentSource
	consultations ConsultationSource
	invoices      InvoiceSource
	labs          LabSource
	rates         RateSource
	log           zerolog.Logger
	now           func() time.Time
	maxLookups    int
}

// Options tunes report execution. Now exists so tests can pin the default
// date window; MaxRateLookups bounds the rate fan-out.
type Options struct {
	Now            func() time.Time
	MaxRateLookups int
}

func NewService(
	appointments AppointmentSource,
	consultations ConsultationSource,
	invoices InvoiceSource,
	labs LabSource,
	rateSource RateSource,
	log zerolog.Logger,
	opts Options,
) *Service {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.MaxRateLookups <= 0 {
		opts.MaxRateLookups = 8
	}
	return &Service{
		appointments:  appointments,
		consultations: consultations,
		invoices:      invoices,
		labs:          labs,
		rates:         rateSource,
		log:           log,
		now:           opts.Now,
		maxLookups:    opts.MaxRateLookups,
	}
}

// BuildReport assembles the revenue report for one doctor over the
// requested window. A fetch failure for any one entity type degrades to an
// empty set for that type; only a malformed date bound is returned as an
// error.
func (s *Service) BuildReport(ctx context.Context, doctorID uuid.UUID, startDate, endDate string) (*RevenueReport, error) {
	rng, err := NormalizeRange(startDate, endDate, s.now())
	if err != nil {
		return nil, err
	}

	appts, err := s.appointments.AllAppointmentsByDoctor(ctx, doctorID)
	if err != nil {
		s.log.Warn().Err(err).Str("doctor_id", doctorID.String()).Msg("appointment fetch failed, using empty set")
		appts = nil
	}
	cons, err := s.consultations.AllConsultationsByDoctor(ctx, doctorID)
	if err != nil {
		s.log.Warn().Err(err).Str("doctor_id", doctorID.String()).Msg("consultation fetch failed, using empty set")
		cons = nil
	}
	invs, err := s.invoices.AllInvoicesByDoctor(ctx, doctorID)
	if err != nil {
		s.log.Warn().Err(err).Str("doctor_id", doctorID.String()).Msg("invoice fetch failed, using empty set")
		invs = nil
	}
	labResults, err := s.labs.ResultsBetween(ctx, doctorID, rng.Start, rng.End)
	if err != nil {
		s.log.Warn().Err(err).Str("doctor_id", doctorID.String()).Msg("lab result fetch failed, using empty set")
		labResults = nil
	}

	apptsIn := FilterAppointments(appts, rng)
	consIn := FilterConsultations(cons, rng)
	invsIn := FilterInvoices(invs, rng)

	var paid []*billing.Invoice
	for _, inv := range invsIn {
		if inv.IsPaid() {
			paid = append(paid, inv)
		}
	}

	table := s.resolveRates(ctx, paid)
	income := s.aggregateIncome(paid, table)

	apptDates := make([]time.Time, 0, len(apptsIn))
	for _, a := range apptsIn {
		if d, ok := AppointmentEffectiveDate(a); ok {
			apptDates = append(apptDates, d)
		}
	}
	consDates := make([]time.Time, 0, len(consIn))
	for _, c := range consIn {
		if d, ok := ConsultationEffectiveDate(c); ok {
			consDates = append(consDates, d)
		}
	}

	criticals := 0
	for _, lr := range labResults {
		if lr.IsCritical {
			criticals++
		}
	}

	return &RevenueReport{
		AppointmentsByMonth:  countByMonth(apptDates),
		ConsultationsByMonth: countByMonth(consDates),
		TotalIncome:          income.TotalIncome,
		TotalIncomeUSD:       income.TotalIncomeUSD,
		TotalIncomeBS:        income.TotalIncomeBS,
		IncomeBreakdown:      income.Breakdown,
		TopDiagnoses:         topDiagnoses(consIn, 10),
		TotalOrders:          len(labResults),
		TotalCriticalResults: criticals,
		Stats: Stats{
			TotalAppointments:  len(apptsIn),
			TotalConsultations: len(consIn),
			TotalInvoices:      len(invsIn),
			PaidInvoices:       len(paid),
		},
	}, nil
}
