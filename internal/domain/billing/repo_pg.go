package billing

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

// total is selected as text so that malformed legacy values surface to the
// coercion layer instead of failing the scan.
const invoiceCols = `id, doctor_id, patient_id, total::text, moneda, tipo_cambio,
	estado_pago, metodo_pago, notas, fecha_pago, fecha_emision, created_at, updated_at`

func scanInvoice(row pgx.Row) (*Invoice, error) {
	var inv Invoice
	err := row.Scan(&inv.ID, &inv.DoctorID, &inv.PatientID, &inv.Total, &inv.Moneda, &inv.TipoCambio,
		&inv.EstadoPago, &inv.MetodoPago, &inv.Notas, &inv.FechaPago, &inv.FechaEmision, &inv.CreatedAt, &inv.UpdatedAt)
	return &inv, err
}

func (r *repoPG) Create(ctx context.Context, inv *Invoice) error {
	inv.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO facturacion (id, doctor_id, patient_id, total, moneda, tipo_cambio,
			estado_pago, metodo_pago, notas, fecha_pago, fecha_emision)
		VALUES ($1,$2,$3,$4::numeric,$5,$6,$7,$8,$9,$10,$11)`,
		inv.ID, inv.DoctorID, inv.PatientID, inv.Total, inv.Moneda, inv.TipoCambio,
		inv.EstadoPago, inv.MetodoPago, inv.Notas, inv.FechaPago, inv.FechaEmision)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Invoice, error) {
	return scanInvoice(r.pool.QueryRow(ctx, `SELECT `+invoiceCols+` FROM facturacion WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, inv *Invoice) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE facturacion SET total=$2::numeric, moneda=$3, tipo_cambio=$4, estado_pago=$5,
			metodo_pago=$6, notas=$7, fecha_pago=$8, fecha_emision=$9, updated_at=NOW()
		WHERE id = $1`,
		inv.ID, inv.Total, inv.Moneda, inv.TipoCambio, inv.EstadoPago,
		inv.MetodoPago, inv.Notas, inv.FechaPago, inv.FechaEmision)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM facturacion WHERE id = $1`, id)
	return err
}

func (r *repoPG) ListByDoctor(ctx context.Context, doctorID uuid.UUID, limit, offset int) ([]*Invoice, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM facturacion WHERE doctor_id = $1`, doctorID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+invoiceCols+` FROM facturacion WHERE doctor_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`, doctorID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, inv)
	}
	return items, total, rows.Err()
}

func (r *repoPG) AllByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*Invoice, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+invoiceCols+` FROM facturacion WHERE doctor_id = $1`, doctorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, inv)
	}
	return items, rows.Err()
}
