package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateWorkRequest entrada de hoja de trabajo; el email sale del token,
// no del cuerpo.
type CreateWorkRequest struct {
	Name  string          `json:"name"`
	Task  string          `json:"task"`
	Hours decimal.Decimal `json:"hours"`
	Date  time.Time       `json:"date"`
}

// WorkResponse representación pública de una entrada de trabajo.
type WorkResponse struct {
	ID    string          `json:"id"`
	Email string          `json:"email"`
	Name  string          `json:"name"`
	Task  string          `json:"task"`
	Hours decimal.Decimal `json:"hours"`
	Date  time.Time       `json:"date"`
	Month int             `json:"month"`
}
