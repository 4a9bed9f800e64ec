package repository

import (
	"github.com/shopspring/decimal"

	"github.com/clinident/clinica-api/internal/domain/entity"
)

// StockRepository puerto para consultar/actualizar existencias de almacén.
// Usado dentro de transacciones para garantizar consistencia.
type StockRepository interface {
	// GetForUpdate obtiene la unidad y bloquea la fila (SELECT FOR UPDATE).
	// nil si la unidad no existe.
	GetForUpdate(unitID int64) (*entity.StorageUnit, error)
	// Restock suma qty a las existencias de la unidad (restauración al editar una visita).
	Restock(unitID int64, qty decimal.Decimal) error
	// SetAmount fija las existencias de la unidad (tras un decremento calculado bajo lock).
	SetAmount(unitID int64, amount decimal.Decimal) error
}
