package payments

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/clinident/clinica-api/internal/application/dto"
	"github.com/clinident/clinica-api/internal/domain"
	"github.com/clinident/clinica-api/internal/domain/entity"
	"github.com/clinident/clinica-api/internal/domain/repository"
	"github.com/clinident/clinica-api/pkg/logger"
)

// ProcessPaymentUseCase registra el pago de una visita: emite el recibo,
// guarda el pago y enlaza el recibo con la visita en una sola transacción.
type ProcessPaymentUseCase struct {
	txRunner TxRunner
	log      *logger.Logger
}

// NewProcessPaymentUseCase construye el caso de uso.
func NewProcessPaymentUseCase(txRunner TxRunner, log *logger.Logger) *ProcessPaymentUseCase {
	return &ProcessPaymentUseCase{txRunner: txRunner, log: log}
}

// Process valida la petición y ejecuta el registro transaccional del pago.
func (uc *ProcessPaymentUseCase) Process(ctx context.Context, req dto.ProcessPaymentRequest) (*dto.ProcessPaymentResponse, error) {
	if req.VisitID <= 0 {
		return nil, fmt.Errorf("%w: visitId es obligatorio", domain.ErrInvalidInput)
	}
	if !req.Amount.GreaterThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount debe ser mayor que cero", domain.ErrInvalidInput)
	}
	if req.PaymentMethod <= 0 {
		return nil, fmt.Errorf("%w: paymentMethod es obligatorio", domain.ErrInvalidInput)
	}

	number := uuid.New().String()
	var receiptID, paymentID int64
	err := uc.txRunner.RunPayment(ctx, func(
		paymentRepo repository.PaymentRepository,
		visitRepo repository.VisitRepository,
	) error {
		exists, err := visitRepo.Exists(req.VisitID)
		if err != nil {
			return err
		}
		if !exists {
			return domain.ErrVisitNotFound
		}

		receiptID, err = paymentRepo.CreateReceipt(&entity.PaymentReceipt{Number: number})
		if err != nil {
			return err
		}
		payment := &entity.VisitPayment{
			Amount:   req.Amount,
			MethodID: req.PaymentMethod,
			VisitID:  req.VisitID,
		}
		paymentID, err = paymentRepo.CreatePayment(payment)
		if err != nil {
			return err
		}
		return visitRepo.SetReceipt(req.VisitID, receiptID)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Int64("visitId", req.VisitID).
		Int64("receiptId", receiptID).
		Str("amount", req.Amount.String()).
		Msg("pago registrado")

	return &dto.ProcessPaymentResponse{
		Status:        "ok",
		Message:       "Pago registrado",
		ReceiptID:     receiptID,
		PaymentID:     paymentID,
		ReceiptNumber: number,
	}, nil
}
