package payments

import (
	"context"

	"github.com/clinident/clinica-api/internal/domain/repository"
)

// TxRunner transacción del flujo de pagos: recibo, pago y vínculo con la
// visita se confirman o deshacen juntos.
type TxRunner interface {
	RunPayment(ctx context.Context, fn func(
		paymentRepo repository.PaymentRepository,
		visitRepo repository.VisitRepository,
	) error) error
}

// PDFGenerator genera el recibo imprimible.
type PDFGenerator interface {
	ReceiptPDF(d *repository.ReceiptDetails) ([]byte, error)
}
