package lab

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const labCols = `id, ordering_provider_id, patient_id, test_name, result_value, is_critical, result_date, created_at`

func scanResult(row pgx.Row) (*LabResult, error) {
	var lr LabResult
	err := row.Scan(&lr.ID, &lr.OrderingProviderID, &lr.PatientID, &lr.TestName,
		&lr.ResultValue, &lr.IsCritical, &lr.ResultDate, &lr.CreatedAt)
	return &lr, err
}

func (r *repoPG) Create(ctx context.Context, lr *LabResult) error {
	lr.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO lab_result (id, ordering_provider_id, patient_id, test_name, result_value, is_critical, result_date)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		lr.ID, lr.OrderingProviderID, lr.PatientID, lr.TestName, lr.ResultValue, lr.IsCritical, lr.ResultDate)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*LabResult, error) {
	return scanResult(r.pool.QueryRow(ctx, `SELECT `+labCols+` FROM lab_result WHERE id = $1`, id))
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM lab_result WHERE id = $1`, id)
	return err
}

func (r *repoPG) ListByProvider(ctx context.Context, providerID uuid.UUID, limit, offset int) ([]*LabResult, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM lab_result WHERE ordering_provider_id = $1`, providerID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+labCols+` FROM lab_result WHERE ordering_provider_id = $1 ORDER BY result_date DESC LIMIT $2 OFFSET $3`, providerID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*LabResult
	for rows.Next() {
		lr, err := scanResult(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, lr)
	}
	return items, total, rows.Err()
}

func (r *repoPG) ListByProviderBetween(ctx context.Context, providerID uuid.UUID, from, to time.Time) ([]*LabResult, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+labCols+` FROM lab_result
		WHERE ordering_provider_id = $1 AND result_date BETWEEN $2 AND $3
		ORDER BY result_date DESC`,
		providerID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*LabResult
	for rows.Next() {
		lr, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, lr)
	}
	return items, rows.Err()
}
