package consultation

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const consultationCols = `id, doctor_id, patient_id, fecha_consulta, motivo, diagnosis, tratamiento, notas, created_at, updated_at`

func scanConsultation(row pgx.Row) (*Consultation, error) {
	var c Consultation
	err := row.Scan(&c.ID, &c.DoctorID, &c.PatientID, &c.FechaConsulta, &c.Motivo,
		&c.Diagnosis, &c.Tratamiento, &c.Notas, &c.CreatedAt, &c.UpdatedAt)
	return &c, err
}

func (r *repoPG) Create(ctx context.Context, cons *Consultation) error {
	cons.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO consultation (id, doctor_id, patient_id, fecha_consulta, motivo, diagnosis, tratamiento, notas)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		cons.ID, cons.DoctorID, cons.PatientID, cons.FechaConsulta, cons.Motivo,
		cons.Diagnosis, cons.Tratamiento, cons.Notas)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Consultation, error) {
	return scanConsultation(r.pool.QueryRow(ctx, `SELECT `+consultationCols+` FROM consultation WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, cons *Consultation) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE consultation SET patient_id=$2, fecha_consulta=$3, motivo=$4, diagnosis=$5,
			tratamiento=$6, notas=$7, updated_at=NOW()
		WHERE id = $1`,
		cons.ID, cons.PatientID, cons.FechaConsulta, cons.Motivo, cons.Diagnosis,
		cons.Tratamiento, cons.Notas)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM consultation WHERE id = $1`, id)
	return err
}

func (r *repoPG) ListByDoctor(ctx context.Context, doctorID uuid.UUID, limit, offset int) ([]*Consultation, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM consultation WHERE doctor_id = $1`, doctorID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+consultationCols+` FROM consultation WHERE doctor_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`, doctorID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Consultation
	for rows.Next() {
		c, err := scanConsultation(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, c)
	}
	return items, total, rows.Err()
}

func (r *repoPG) AllByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*Consultation, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+consultationCols+` FROM consultation WHERE doctor_id = $1`, doctorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Consultation
	for rows.Next() {
		c, err := scanConsultation(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}
