package postgres

import (
	"context"
	"fmt"

	"github.com/clinident/clinica-api/internal/domain"
	"github.com/clinident/clinica-api/internal/domain/entity"
	"github.com/clinident/clinica-api/internal/domain/repository"
)

var _ repository.VisitRepository = (*VisitRepo)(nil)

// VisitRepo implementación de VisitRepository sobre PostgreSQL (usable con pool o tx).
type VisitRepo struct {
	q Querier
}

// NewVisitRepository construye el adaptador de visitas. Pasar pool o tx (Querier).
func NewVisitRepository(q Querier) *VisitRepo {
	return &VisitRepo{q: q}
}

// InfoByPatientName join de visitas + líneas de servicio + pago de un paciente.
// Una fila por línea de servicio; visitas sin líneas salen con los campos de servicio NULL.
func (r *VisitRepo) InfoByPatientName(lastName, firstName string, patronymic *string) ([]repository.VisitInfoRow, error) {
	query := `
		SELECT
			v.id,
			TRIM(p.last_name || ' ' || p.first_name || ' ' || COALESCE(p.patronymic, '')),
			v.visit_date,
			to_char(v.time_start, 'HH24:MI'),
			to_char(v.time_end, 'HH24:MI'),
			TRIM(e.last_name || ' ' || e.first_name || ' ' || COALESCE(e.patronymic, '')),
			e.id,
			ds.id,
			ds.name,
			vs.quantity,
			ds.price,
			vs.total,
			v.discount,
			v.final_amount,
			COALESCE(vp.amount, 0),
			COALESCE(pm.name, ''),
			v.note,
			vss.name,
			vt.name
		FROM visits v
		JOIN patients p        ON p.id = v.patient_id
		JOIN employees e       ON e.id = v.employee_id
		JOIN visit_statuses vss ON vss.id = v.status_id
		JOIN visit_types vt    ON vt.id = v.type_id
		LEFT JOIN visit_services vs ON vs.visit_id = v.id
		LEFT JOIN dental_services ds ON ds.id = vs.service_id
		LEFT JOIN visit_payments vp ON vp.visit_id = v.id
		LEFT JOIN payment_methods pm ON pm.id = vp.method_id
		WHERE p.last_name = $1
		  AND p.first_name = $2
		  AND (p.patronymic = $3 OR $3 IS NULL OR p.patronymic IS NULL)
		ORDER BY v.visit_date DESC, v.time_start DESC`

	rows, err := r.q.Query(context.Background(), query, lastName, firstName, patronymic)
	if err != nil {
		return nil, fmt.Errorf("visit info: %w", err)
	}
	defer rows.Close()

	var list []repository.VisitInfoRow
	for rows.Next() {
		var row repository.VisitInfoRow
		if err := rows.Scan(
			&row.VisitID, &row.PatientName, &row.Date, &row.TimeStart, &row.TimeEnd,
			&row.DoctorName, &row.DoctorID, &row.ServiceID, &row.ServiceName,
			&row.Quantity, &row.ServicePrice, &row.ServiceTotal, &row.Discount,
			&row.FinalAmount, &row.PaymentAmount, &row.PaymentMethod, &row.Note,
			&row.Status, &row.VisitType,
		); err != nil {
			return nil, fmt.Errorf("scan visit info: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// Create inserta la visita con estado y tipo por defecto; devuelve el id asignado.
// Una FK rota (paciente o doctor inexistente) se reporta como ErrNotFound.
func (r *VisitRepo) Create(v *entity.Visit) (int64, error) {
	query := `
		INSERT INTO visits (
			patient_id, employee_id, visit_date, time_start, time_end,
			type_id, status_id, discount, final_amount
		) VALUES ($1, $2, $3, $4::time, $5::time, $6, $7, $8, $9)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(context.Background(), query,
		v.PatientID, v.EmployeeID, v.Date, v.TimeStart, v.TimeEnd,
		v.TypeID, v.StatusID, v.Discount, v.FinalAmount,
	).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, fmt.Errorf("create visit: %w", domain.ErrNotFound)
		}
		return 0, fmt.Errorf("create visit: %w", err)
	}
	return id, nil
}

// Update actualiza fecha, horario, doctor, descuento e importe final de la visita.
func (r *VisitRepo) Update(v *entity.Visit) error {
	query := `
		UPDATE visits SET
			visit_date = $1, time_start = $2::time, time_end = $3::time,
			employee_id = $4, discount = $5, final_amount = $6
		WHERE id = $7`
	tag, err := r.q.Exec(context.Background(), query,
		v.Date, v.TimeStart, v.TimeEnd, v.EmployeeID, v.Discount, v.FinalAmount, v.ID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("update visit: %w", domain.ErrNotFound)
		}
		return fmt.Errorf("update visit: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update visit %d: %w", v.ID, domain.ErrVisitNotFound)
	}
	return nil
}

// Exists indica si la visita existe.
func (r *VisitRepo) Exists(id int64) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM visits WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("visit exists: %w", err)
	}
	return exists, nil
}

// SetReceipt asocia el recibo de pago a la visita.
func (r *VisitRepo) SetReceipt(visitID, receiptID int64) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE visits SET receipt_id = $1 WHERE id = $2`, receiptID, visitID,
	)
	if err != nil {
		return fmt.Errorf("set receipt: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("set receipt on visit %d: %w", visitID, domain.ErrVisitNotFound)
	}
	return nil
}
