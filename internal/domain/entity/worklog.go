package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkLog es una entrada de la hoja de trabajo de un empleado.
// Month se deriva de Date al crear, para poder filtrar por mes sin
// funciones de fecha en cada consulta.
type WorkLog struct {
	ID    string
	Email string
	Name  string
	Task  string
	Hours decimal.Decimal
	Date  time.Time
	Month int // 1..12, derivado de Date
}
