package payments

import (
	"github.com/clinident/clinica-api/internal/domain"
	"github.com/clinident/clinica-api/internal/domain/repository"
)

// ReceiptPDFUseCase genera el recibo de pago en PDF.
type ReceiptPDFUseCase struct {
	paymentRepo repository.PaymentRepository
	generator   PDFGenerator
}

// NewReceiptPDFUseCase construye el caso de uso.
func NewReceiptPDFUseCase(paymentRepo repository.PaymentRepository, generator PDFGenerator) *ReceiptPDFUseCase {
	return &ReceiptPDFUseCase{paymentRepo: paymentRepo, generator: generator}
}

// Generate busca el recibo y devuelve el documento PDF listo para servir.
func (uc *ReceiptPDFUseCase) Generate(receiptID int64) ([]byte, error) {
	if receiptID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	details, err := uc.paymentRepo.GetReceiptDetails(receiptID)
	if err != nil {
		return nil, err
	}
	if details == nil {
		return nil, domain.ErrNotFound
	}
	return uc.generator.ReceiptPDF(details)
}
