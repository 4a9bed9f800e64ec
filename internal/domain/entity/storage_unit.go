package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StorageUnit producto de almacén con su contador de existencias.
// Amount es el único estado mutable que toca el flujo de guardado de visitas.
type StorageUnit struct {
	ID        int64
	Name      string
	Amount    decimal.Decimal
	UpdatedAt time.Time
}
