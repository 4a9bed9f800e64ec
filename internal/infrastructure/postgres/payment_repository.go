package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/clinident/clinica-api/internal/domain/entity"
	"github.com/clinident/clinica-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo recibos y pagos de visitas sobre PostgreSQL (usable con pool o tx).
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador de pagos. Pasar pool o tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

// CreateReceipt crea el recibo con fecha actual y devuelve su id.
func (r *PaymentRepo) CreateReceipt(rec *entity.PaymentReceipt) (int64, error) {
	var id int64
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO payment_receipts (number, created_on) VALUES ($1, CURRENT_DATE) RETURNING id`,
		rec.Number,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create receipt: %w", err)
	}
	return id, nil
}

// CreatePayment registra el pago de la visita y devuelve su id.
func (r *PaymentRepo) CreatePayment(p *entity.VisitPayment) (int64, error) {
	var id int64
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO visit_payments (amount, method_id, visit_id) VALUES ($1, $2, $3) RETURNING id`,
		p.Amount, p.MethodID, p.VisitID,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create payment: %w", err)
	}
	return id, nil
}

// GetReceiptDetails datos del recibo con pago, visita y paciente para el PDF. nil si no existe.
func (r *PaymentRepo) GetReceiptDetails(receiptID int64) (*repository.ReceiptDetails, error) {
	query := `
		SELECT
			pr.id,
			pr.number,
			pr.created_on,
			vp.amount,
			pm.name,
			v.id,
			v.visit_date,
			TRIM(p.last_name || ' ' || p.first_name || ' ' || COALESCE(p.patronymic, '')),
			TRIM(e.last_name || ' ' || e.first_name || ' ' || COALESCE(e.patronymic, ''))
		FROM payment_receipts pr
		JOIN visits v          ON v.receipt_id = pr.id
		JOIN visit_payments vp ON vp.visit_id = v.id
		JOIN payment_methods pm ON pm.id = vp.method_id
		JOIN patients p        ON p.id = v.patient_id
		JOIN employees e       ON e.id = v.employee_id
		WHERE pr.id = $1`
	var d repository.ReceiptDetails
	err := r.q.QueryRow(context.Background(), query, receiptID).Scan(
		&d.ReceiptID, &d.Number, &d.CreatedOn, &d.Amount, &d.Method,
		&d.VisitID, &d.VisitDate, &d.PatientName, &d.DoctorName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get receipt details: %w", err)
	}
	return &d, nil
}
