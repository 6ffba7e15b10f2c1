package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Roles válidos para User. Los strings son parte del contrato con el frontend.
const (
	RoleEmployee = "Employee"
	RoleHR       = "HR"
	RoleAdmin    = "Admin"
)

// ValidRole indica si s es uno de los roles conocidos.
func ValidRole(s string) bool {
	return s == RoleEmployee || s == RoleHR || s == RoleAdmin
}

// User representa una persona dentro del sistema de nómina.
// Nunca se elimina físicamente: despedir es un flag, no un delete.
type User struct {
	ID          string
	Email       string // único
	Name        string
	Role        string // Employee, HR, Admin
	Designation string
	BankAccount string
	Photo       string
	Salary      decimal.Decimal
	IsVerified  bool
	IsFired     bool
	CreatedAt   time.Time
}
