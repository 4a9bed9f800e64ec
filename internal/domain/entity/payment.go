package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentReceipt recibo emitido al registrar el pago de una visita.
type PaymentReceipt struct {
	ID        int64
	Number    string // identificador externo (UUID) impreso en el PDF
	CreatedOn time.Time
}

// VisitPayment pago asociado a una visita.
type VisitPayment struct {
	ID       int64
	Amount   decimal.Decimal
	MethodID int64
	VisitID  int64
}
