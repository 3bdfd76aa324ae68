package billing

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Service struct {
	invoices Repository
}

func NewService(invoices Repository) *Service {
	return &Service{invoices: invoices}
}

var validEstados = map[string]bool{
	EstadoPendiente:             true,
	EstadoPendienteVerificacion: true,
	EstadoPagada:                true,
	EstadoPagado:                true,
	EstadoAnulada:               true,
}

func (s *Service) CreateInvoice(ctx context.Context, inv *Invoice) error {
	if inv.DoctorID == uuid.Nil {
		return fmt.Errorf("doctor_id is required")
	}
	if _, ok := ParseAmount(inv.Total); !ok {
		return fmt.Errorf("total must be numeric, got %q", inv.Total)
	}
	if inv.EstadoPago == "" {
		inv.EstadoPago = EstadoPendiente
	}
	if !validEstados[inv.EstadoPago] {
		return fmt.Errorf("invalid estado_pago: %s", inv.EstadoPago)
	}
	return s.invoices.Create(ctx, inv)
}

func (s *Service) GetInvoice(ctx context.Context, id uuid.UUID) (*Invoice, error) {
	return s.invoices.GetByID(ctx, id)
}

func (s *Service) UpdateInvoice(ctx context.Context, inv *Invoice) error {
	if inv.EstadoPago != "" && !validEstados[inv.EstadoPago] {
		return fmt.Errorf("invalid estado_pago: %s", inv.EstadoPago)
	}
	if _, ok := ParseAmount(inv.Total); !ok {
		return fmt.Errorf("total must be numeric, got %q", inv.Total)
	}
	return s.invoices.Update(ctx, inv)
}

func (s *Service) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	return s.invoices.Delete(ctx, id)
}

func (s *Service) ListInvoicesByDoctor(ctx context.Context, doctorID uuid.UUID, limit, offset int) ([]*Invoice, int, error) {
	return s.invoices.ListByDoctor(ctx, doctorID, limit, offset)
}

// AllInvoicesByDoctor returns the full unfiltered invoice set for the
// reporting pipeline.
func (s *Service) AllInvoicesByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*Invoice, error) {
	return s.invoices.AllByDoctor(ctx, doctorID)
}
