package entity

import "github.com/shopspring/decimal"

// DentalService entrada del catálogo de servicios (solo lectura para el flujo de visitas).
type DentalService struct {
	ID          int64
	Name        string
	Price       decimal.Decimal
	Warranty    *string
	Description *string
	CategoryID  *int64
}
