package http

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/clinident/clinica-api/internal/application/dto"
	"github.com/clinident/clinica-api/internal/application/payments"
	"github.com/clinident/clinica-api/internal/domain"
)

// PaymentHandler registro de pagos y descarga del recibo en PDF.
type PaymentHandler struct {
	processUC *payments.ProcessPaymentUseCase
	pdfUC     *payments.ReceiptPDFUseCase
}

// NewPaymentHandler construye el handler.
func NewPaymentHandler(processUC *payments.ProcessPaymentUseCase, pdfUC *payments.ReceiptPDFUseCase) *PaymentHandler {
	return &PaymentHandler{processUC: processUC, pdfUC: pdfUC}
}

// Process godoc
// @Summary      Registrar el pago de una visita
// @Description  Emite el recibo, guarda el pago y lo enlaza con la visita en
//
//	una sola transacción.
//
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProcessPaymentRequest  true  "visitId, amount, paymentMethod"
// @Success      200   {object}  dto.ProcessPaymentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /process-payment [post]
func (h *PaymentHandler) Process(c *fiber.Ctx) error {
	var req dto.ProcessPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	resp, err := h.processUC.Process(c.Context(), req)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(resp)
}

// ReceiptPDF godoc
// @Summary      Descargar el recibo de pago en PDF
// @Tags         payments
// @Produce      application/pdf
// @Param        receiptId  path  int  true  "id del recibo"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /payment-receipt/{receiptId} [get]
func (h *PaymentHandler) ReceiptPDF(c *fiber.Ctx) error {
	receiptID, err := strconv.ParseInt(c.Params("receiptId"), 10, 64)
	if err != nil {
		return mapError(c, fmt.Errorf("%w: receiptId inválido", domain.ErrInvalidInput))
	}
	pdfBytes, err := h.pdfUC.Generate(receiptID)
	if err != nil {
		return mapError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="recibo-%d.pdf"`, receiptID))
	return c.Send(pdfBytes)
}
