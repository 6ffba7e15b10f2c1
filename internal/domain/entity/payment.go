package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment cubre un periodo de pago (mes, año) de un empleado.
// Invariante: a lo sumo un pago por (EmployeeID, PaidFor, Year);
// lo garantiza un índice único en la tabla payments.
// Inmutable una vez creado.
type Payment struct {
	ID            string
	EmployeeID    string
	Email         string
	Salary        decimal.Decimal
	PaidFor       int // mes del periodo, 1..12
	Year          int
	TransactionID string
	CreatedAt     time.Time
}
