package billing

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
)

type mockRepo struct {
	invoices map[uuid.UUID]*Invoice
}

func newMockRepo() *mockRepo {
	return &mockRepo{invoices: make(map[uuid.UUID]*Invoice)}
}

func (m *mockRepo) Create(_ context.Context, inv *Invoice) error {
	if inv.ID == uuid.Nil {
		inv.ID = uuid.New()
	}
	m.invoices[inv.ID] = inv
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Invoice, error) {
	inv, ok := m.invoices[id]
	if !ok {
		return nil, fmt.Errorf("invoice %s not found", id)
	}
	return inv, nil
}

func (m *mockRepo) Update(_ context.Context, inv *Invoice) error {
	if _, ok := m.invoices[inv.ID]; !ok {
		return fmt.Errorf("invoice %s not found", inv.ID)
	}
	m.invoices[inv.ID] = inv
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.invoices, id)
	return nil
}

func (m *mockRepo) ListByDoctor(_ context.Context, doctorID uuid.UUID, limit, offset int) ([]*Invoice, int, error) {
	all, _ := m.AllByDoctor(context.Background(), doctorID)
	total := len(all)
	if offset >= len(all) {
		return nil, total, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, total, nil
}

func (m *mockRepo) AllByDoctor(_ context.Context, doctorID uuid.UUID) ([]*Invoice, error) {
	var out []*Invoice
	for _, inv := range m.invoices {
		if inv.DoctorID == doctorID {
			out = append(out, inv)
		}
	}
	return out, nil
}

func TestCreateInvoice_DefaultsAndValidation(t *testing.T) {
	svc := NewService(newMockRepo())
	doctorID := uuid.New()

	inv := &Invoice{DoctorID: doctorID, Total: "150.00"}
	if err := svc.CreateInvoice(context.Background(), inv); err != nil {
		t.Fatalf("CreateInvoice: %v", err)
	}
	if inv.EstadoPago != EstadoPendiente {
		t.Errorf("estado_pago = %q, want %q", inv.EstadoPago, EstadoPendiente)
	}
	if inv.ID == uuid.Nil {
		t.Error("expected id to be assigned")
	}
}

func TestCreateInvoice_RequiresDoctor(t *testing.T) {
	svc := NewService(newMockRepo())
	err := svc.CreateInvoice(context.Background(), &Invoice{Total: "100"})
	if err == nil {
		t.Fatal("expected error for missing doctor_id")
	}
}

func TestCreateInvoice_RejectsNonNumericTotal(t *testing.T) {
	svc := NewService(newMockRepo())
	for _, total := range []string{"", "abc", "NaN"} {
		err := svc.CreateInvoice(context.Background(), &Invoice{DoctorID: uuid.New(), Total: total})
		if err == nil {
			t.Errorf("expected error for total %q", total)
		}
	}
}

func TestCreateInvoice_RejectsUnknownEstado(t *testing.T) {
	svc := NewService(newMockRepo())
	err := svc.CreateInvoice(context.Background(), &Invoice{
		DoctorID:   uuid.New(),
		Total:      "100",
		EstadoPago: "cobrada",
	})
	if err == nil {
		t.Fatal("expected error for unknown estado_pago")
	}
}

func TestUpdateInvoice_ValidatesEstado(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	inv := &Invoice{DoctorID: uuid.New(), Total: "100"}
	if err := svc.CreateInvoice(context.Background(), inv); err != nil {
		t.Fatalf("CreateInvoice: %v", err)
	}

	inv.EstadoPago = "bogus"
	if err := svc.UpdateInvoice(context.Background(), inv); err == nil {
		t.Fatal("expected error for invalid estado_pago")
	}

	inv.EstadoPago = EstadoPagada
	if err := svc.UpdateInvoice(context.Background(), inv); err != nil {
		t.Fatalf("UpdateInvoice: %v", err)
	}
}

func TestListInvoicesByDoctor_Paginates(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	doctorID := uuid.New()
	for i := 0; i < 5; i++ {
		if err := svc.CreateInvoice(context.Background(), &Invoice{DoctorID: doctorID, Total: "10"}); err != nil {
			t.Fatalf("CreateInvoice: %v", err)
		}
	}
	// another doctor's invoice stays out of the listing
	if err := svc.CreateInvoice(context.Background(), &Invoice{DoctorID: uuid.New(), Total: "10"}); err != nil {
		t.Fatalf("CreateInvoice: %v", err)
	}

	items, total, err := svc.ListInvoicesByDoctor(context.Background(), doctorID, 2, 0)
	if err != nil {
		t.Fatalf("ListInvoicesByDoctor: %v", err)
	}
	if total != 5 {
		t.Errorf("total = %d, want 5", total)
	}
	if len(items) != 2 {
		t.Errorf("len(items) = %d, want 2", len(items))
	}
}
