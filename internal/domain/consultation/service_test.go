package consultation

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
)

type mockRepo struct {
	consultations map[uuid.UUID]*Consultation
}

func newMockRepo() *mockRepo {
	return &mockRepo{consultations: make(map[uuid.UUID]*Consultation)}
}

func (m *mockRepo) Create(_ context.Context, cons *Consultation) error {
	if cons.ID == uuid.Nil {
		cons.ID = uuid.New()
	}
	m.consultations[cons.ID] = cons
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Consultation, error) {
	cons, ok := m.consultations[id]
	if !ok {
		return nil, fmt.Errorf("consultation %s not found", id)
	}
	return cons, nil
}

func (m *mockRepo) Update(_ context.Context, cons *Consultation) error {
	if _, ok := m.consultations[cons.ID]; !ok {
		return fmt.Errorf("consultation %s not found", cons.ID)
	}
	m.consultations[cons.ID] = cons
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.consultations, id)
	return nil
}

func (m *mockRepo) ListByDoctor(_ context.Context, doctorID uuid.UUID, limit, offset int) ([]*Consultation, int, error) {
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

func (m *mockRepo) AllByDoctor(_ context.Context, doctorID uuid.UUID) ([]*Consultation, error) {
	var out []*Consultation
	for _, cons := range m.consultations {
		if cons.DoctorID == doctorID {
			out = append(out, cons)
		}
	}
	return out, nil
}

func TestCreateConsultation_RequiresDoctor(t *testing.T) {
	svc := NewService(newMockRepo())
	if err := svc.CreateConsultation(context.Background(), &Consultation{}); err == nil {
		t.Error("expected error for missing doctor_id")
	}
}

func TestConsultationRoundTrip(t *testing.T) {
	svc := NewService(newMockRepo())
	diag := "hipertension"
	cons := &Consultation{DoctorID: uuid.New(), Diagnosis: &diag}
	if err := svc.CreateConsultation(context.Background(), cons); err != nil {
		t.Fatalf("CreateConsultation: %v", err)
	}

	got, err := svc.GetConsultation(context.Background(), cons.ID)
	if err != nil {
		t.Fatalf("GetConsultation: %v", err)
	}
	if got.Diagnosis == nil || *got.Diagnosis != diag {
		t.Errorf("diagnosis = %v, want %q", got.Diagnosis, diag)
	}

	if err := svc.DeleteConsultation(context.Background(), cons.ID); err != nil {
		t.Fatalf("DeleteConsultation: %v", err)
	}
	if _, err := svc.GetConsultation(context.Background(), cons.ID); err == nil {
		t.Error("expected consultation to be gone")
	}
}
