package scheduling

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const apptCols = `id, doctor_id, patient_id, fecha_cita, motivo, estado, created_at, updated_at`

func scanAppointment(row pgx.Row) (*Appointment, error) {
	var a Appointment
	err := row.Scan(&a.ID, &a.DoctorID, &a.PatientID, &a.FechaCita, &a.Motivo, &a.Estado, &a.CreatedAt, &a.UpdatedAt)
	return &a, err
}

func (r *repoPG) Create(ctx context.Context, appt *Appointment) error {
	appt.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO appointment (id, doctor_id, patient_id, fecha_cita, motivo, estado)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		appt.ID, appt.DoctorID, appt.PatientID, appt.FechaCita, appt.Motivo, appt.Estado)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return scanAppointment(r.pool.QueryRow(ctx, `SELECT `+apptCols+` FROM appointment WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, appt *Appointment) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE appointment SET patient_id=$2, fecha_cita=$3, motivo=$4, estado=$5, updated_at=NOW()
		WHERE id = $1`,
		appt.ID, appt.PatientID, appt.FechaCita, appt.Motivo, appt.Estado)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM appointment WHERE id = $1`, id)
	return err
}

func (r *repoPG) ListByDoctor(ctx context.Context, doctorID uuid.UUID, limit, offset int) ([]*Appointment, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM appointment WHERE doctor_id = $1`, doctorID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+apptCols+` FROM appointment WHERE doctor_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`, doctorID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, a)
	}
	return items, total, rows.Err()
}

func (r *repoPG) AllByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*Appointment, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+apptCols+` FROM appointment WHERE doctor_id = $1`, doctorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}
