package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clinident/clinica-api/internal/application/payments"
	"github.com/clinident/clinica-api/internal/application/usecase"
	"github.com/clinident/clinica-api/internal/application/visits"
	"github.com/clinident/clinica-api/internal/domain/repository"
)

// Ensure TxRunner implements the application ports.
var _ visits.TxRunner = (*TxRunner)(nil)
var _ payments.TxRunner = (*TxRunner)(nil)
var _ usecase.PatientTxRunner = (*TxRunner)(nil)
var _ usecase.EmployeeTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
// Cada request adquiere como máximo una transacción; Rollback en cualquier
// salida con error, Commit solo si el callback termina sin error. Cada
// transacción corre bajo el deadline de consulta configurado.
type TxRunner struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

// NewTxRunner construye el runner con el pool y el deadline por transacción
// (0 desactiva el límite).
func NewTxRunner(pool *pgxpool.Pool, timeout time.Duration) *TxRunner {
	return &TxRunner{pool: pool, timeout: timeout}
}

func (r *TxRunner) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

// RunVisit inicia una transacción con los repos del flujo de visitas.
func (r *TxRunner) RunVisit(ctx context.Context, fn func(
	visitRepo repository.VisitRepository,
	serviceRepo repository.VisitServiceRepository,
	productRepo repository.VisitProductRepository,
	stockRepo repository.StockRepository,
) error) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewVisitRepository(tx), NewVisitServiceRepository(tx), NewVisitProductRepository(tx), NewStockRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunPatient inicia una transacción con el repo de pacientes (alta multi-tabla).
func (r *TxRunner) RunPatient(ctx context.Context, fn func(repository.PatientRepository) error) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewPatientRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunEmployee inicia una transacción con el repo de empleados (alta + agenda).
func (r *TxRunner) RunEmployee(ctx context.Context, fn func(repository.EmployeeRepository) error) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewEmployeeRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunPayment inicia una transacción con los repos de pagos y visitas.
func (r *TxRunner) RunPayment(ctx context.Context, fn func(
	paymentRepo repository.PaymentRepository,
	visitRepo repository.VisitRepository,
) error) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewPaymentRepository(tx), NewVisitRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
