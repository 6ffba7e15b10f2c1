package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Los nombres de campo JSON preservan el contrato histórico del frontend,
// incluida la grafía "isVerfied".

// CreateUserRequest alta de usuario (idempotente por email).
type CreateUserRequest struct {
	Email       string          `json:"email"`
	Name        string          `json:"name"`
	Role        string          `json:"role"`
	Designation string          `json:"designation"`
	BankAccount string          `json:"bankAccount"`
	Photo       string          `json:"photo"`
	Salary      decimal.Decimal `json:"salary"`
}

// UserResponse representación pública de un usuario.
type UserResponse struct {
	ID          string          `json:"id"`
	Email       string          `json:"email"`
	Name        string          `json:"name"`
	Role        string          `json:"role"`
	Designation string          `json:"designation"`
	BankAccount string          `json:"bankAccount"`
	Photo       string          `json:"photo"`
	Salary      decimal.Decimal `json:"salary"`
	IsVerified  bool            `json:"isVerfied"`
	IsFired     bool            `json:"isFired"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// VerifyUserRequest estado objetivo del flag de verificación.
// El valor enviado es el que queda almacenado (sin negación implícita).
type VerifyUserRequest struct {
	IsVerified bool `json:"isVerfied"`
}

// PromoteRequest cambia el rol entre HR y Employee.
type PromoteRequest struct {
	IsHR bool `json:"isHR"`
}

// FireRequest estado objetivo del flag de despido.
type FireRequest struct {
	Fired bool `json:"fired"`
}

// SalaryUpdateRequest nuevo salario del empleado.
type SalaryUpdateRequest struct {
	NewSalary decimal.Decimal `json:"newSalary"`
}

// TokenRequest claims mínimos para emitir un token.
type TokenRequest struct {
	Email string `json:"email"`
}

// TokenResponse token firmado.
type TokenResponse struct {
	Token string `json:"token"`
}
