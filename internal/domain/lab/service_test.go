package lab

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
)

type mockRepo struct {
	results map[uuid.UUID]*LabResult
}

func newMockRepo() *mockRepo {
	return &mockRepo{results: make(map[uuid.UUID]*LabResult)}
}

func (m *mockRepo) Create(_ context.Context, lr *LabResult) error {
	if lr.ID == uuid.Nil {
		lr.ID = uuid.New()
	}
	m.results[lr.ID] = lr
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*LabResult, error) {
	lr, ok := m.results[id]
	if !ok {
		return nil, fmt.Errorf("lab result %s not found", id)
	}
	return lr, nil
}

func (m *mockRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.results, id)
	return nil
}

func (m *mockRepo) ListByProvider(_ context.Context, providerID uuid.UUID, limit, offset int) ([]*LabResult, int, error) {
	all, _ := m.ListByProviderBetween(context.Background(), providerID, time.Time{}, time.Now().AddDate(100, 0, 0))
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

func (m *mockRepo) ListByProviderBetween(_ context.Context, providerID uuid.UUID, from, to time.Time) ([]*LabResult, error) {
	var out []*LabResult
	for _, lr := range m.results {
		if lr.OrderingProviderID != providerID {
			continue
		}
		if lr.ResultDate.Before(from) || lr.ResultDate.After(to) {
			continue
		}
		out = append(out, lr)
	}
	return out, nil
}

func TestCreateResult_Validation(t *testing.T) {
	svc := NewService(newMockRepo())

	if err := svc.CreateResult(context.Background(), &LabResult{TestName: "CBC"}); err == nil {
		t.Error("expected error for missing provider")
	}
	if err := svc.CreateResult(context.Background(), &LabResult{OrderingProviderID: uuid.New()}); err == nil {
		t.Error("expected error for missing test_name")
	}

	lr := &LabResult{OrderingProviderID: uuid.New(), TestName: "CBC"}
	if err := svc.CreateResult(context.Background(), lr); err != nil {
		t.Fatalf("CreateResult: %v", err)
	}
	if lr.ResultDate.IsZero() {
		t.Error("expected result_date default")
	}
}

func TestResultsBetween_FiltersByRange(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	providerID := uuid.New()

	mk := func(day time.Time) {
		lr := &LabResult{OrderingProviderID: providerID, TestName: "Glucose", ResultDate: day}
		if err := svc.CreateResult(context.Background(), lr); err != nil {
			t.Fatalf("CreateResult: %v", err)
		}
	}
	mk(time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))
	mk(time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC))
	mk(time.Date(2025, 4, 2, 10, 0, 0, 0, time.UTC))

	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC)
	got, err := svc.ResultsBetween(context.Background(), providerID, from, to)
	if err != nil {
		t.Fatalf("ResultsBetween: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("len = %d, want 2", len(got))
	}
}
