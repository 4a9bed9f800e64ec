package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Valores por defecto al crear una visita nueva desde el frontend.
const (
	DefaultVisitTypeID   int64 = 1 // primera consulta
	DefaultVisitStatusID int64 = 2 // planificada
)

// Visit encuentro paciente-doctor con sus totales de facturación.
type Visit struct {
	ID          int64
	PatientID   int64
	EmployeeID  int64
	Date        time.Time
	TimeStart   string // HH:MM
	TimeEnd     string // HH:MM
	TypeID      int64
	StatusID    int64
	Discount    decimal.Decimal
	FinalAmount decimal.Decimal
	ReceiptID   *int64
	Note        *string
}

// VisitService línea de servicio facturada dentro de una visita.
// Propiedad exclusiva de la visita: en cada guardado se reemplaza el conjunto completo.
type VisitService struct {
	ID        int64
	VisitID   int64
	ServiceID int64
	Quantity  int64
	Discount  decimal.Decimal
	Total     decimal.Decimal
}

// VisitProduct consumo de un producto de almacén dentro de una visita.
// Además de pertenecer a la visita, afecta el stock de storage_units.
type VisitProduct struct {
	ID        int64
	VisitID   int64
	UnitID    int64
	Quantity  decimal.Decimal
	CreatedAt time.Time
}
