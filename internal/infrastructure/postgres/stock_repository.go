package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/clinident/clinica-api/internal/domain/entity"
	"github.com/clinident/clinica-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo existencias de almacén sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// GetForUpdate obtiene la unidad y bloquea la fila (SELECT FOR UPDATE).
// Devuelve nil si la unidad no existe. El lock evita que dos guardados
// concurrentes pasen a la vez la comprobación de disponibilidad.
func (r *StockRepo) GetForUpdate(unitID int64) (*entity.StorageUnit, error) {
	query := `
		SELECT id, name, amount, updated_at
		FROM storage_units WHERE id = $1
		FOR UPDATE`
	var u entity.StorageUnit
	err := r.q.QueryRow(context.Background(), query, unitID).Scan(
		&u.ID, &u.Name, &u.Amount, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get unit for update: %w", err)
	}
	return &u, nil
}

// Restock suma qty a las existencias (restauración al editar una visita).
func (r *StockRepo) Restock(unitID int64, qty decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE storage_units SET amount = amount + $1, updated_at = now() WHERE id = $2`,
		qty, unitID,
	)
	if err != nil {
		return fmt.Errorf("restock unit: %w", err)
	}
	return nil
}

// SetAmount fija las existencias de la unidad. Llamar solo con la fila bloqueada.
func (r *StockRepo) SetAmount(unitID int64, amount decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE storage_units SET amount = $1, updated_at = now() WHERE id = $2`,
		amount, unitID,
	)
	if err != nil {
		return fmt.Errorf("set unit amount: %w", err)
	}
	return nil
}
