package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePaymentRequest registra el pago de un periodo (paidFor = mes 1..12).
type CreatePaymentRequest struct {
	EmployeeID    string          `json:"employeeId"`
	Email         string          `json:"email"`
	Salary        decimal.Decimal `json:"salary"`
	PaidFor       int             `json:"paidFor"`
	Year          int             `json:"year"`
	TransactionID string          `json:"transactionId"`
}

// PaymentResponse representación pública de un pago.
type PaymentResponse struct {
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employeeId"`
	Email         string          `json:"email"`
	Salary        decimal.Decimal `json:"salary"`
	PaidFor       int             `json:"paidFor"`
	Year          int             `json:"year"`
	TransactionID string          `json:"transactionId"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// PaymentCountResponse total de pagos del solicitante.
type PaymentCountResponse struct {
	Count int64 `json:"count"`
}

// CreateIntentRequest monto en unidades de moneda (ej. 2550.75 USD).
type CreateIntentRequest struct {
	Salary decimal.Decimal `json:"salary"`
}

// CreateIntentResponse secret del payment intent para el frontend.
type CreateIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
