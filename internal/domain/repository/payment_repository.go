package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/clinident/clinica-api/internal/domain/entity"
)

// ReceiptDetails datos agregados para imprimir el recibo de pago.
type ReceiptDetails struct {
	ReceiptID   int64
	Number      string
	CreatedOn   time.Time
	Amount      decimal.Decimal
	Method      string
	VisitID     int64
	VisitDate   time.Time
	PatientName string
	DoctorName  string
}

// PaymentRepository puerto de recibos y pagos de visitas.
type PaymentRepository interface {
	// CreateReceipt crea el recibo y devuelve su id.
	CreateReceipt(r *entity.PaymentReceipt) (int64, error)
	// CreatePayment registra el pago y devuelve su id.
	CreatePayment(p *entity.VisitPayment) (int64, error)
	// GetReceiptDetails datos del recibo con pago, visita y paciente. nil si no existe.
	GetReceiptDetails(receiptID int64) (*ReceiptDetails, error)
}
