package dto

import "github.com/shopspring/decimal"

// ProcessPaymentRequest cuerpo de POST /process-payment.
type ProcessPaymentRequest struct {
	VisitID       int64           `json:"visitId"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod int64           `json:"paymentMethod"`
}

// ProcessPaymentResponse respuesta del registro de pago.
type ProcessPaymentResponse struct {
	Status        string `json:"status"`
	Message       string `json:"message"`
	ReceiptID     int64  `json:"receiptId"`
	PaymentID     int64  `json:"paymentId"`
	ReceiptNumber string `json:"receiptNumber"`
}
