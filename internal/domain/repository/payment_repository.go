package repository

import "github.com/tekup-hr/payroll-api/internal/domain/entity"

// PaymentRepository puerto de persistencia para pagos de nómina.
type PaymentRepository interface {
	// Create persiste un pago. Devuelve domain.ErrPaymentExists si ya hay un
	// pago para (EmployeeID, PaidFor, Year) — índice único en la tabla.
	Create(payment *entity.Payment) error
	GetByPeriod(employeeID string, paidFor, year int) (*entity.Payment, error)
	// ListByEmail lista pagos del empleado ordenados por year desc, paid_for desc.
	ListByEmail(email string, limit, offset int) ([]*entity.Payment, error)
	// ListByEmployee lista los pagos más recientes del empleado (mismo orden).
	ListByEmployee(employeeID string, limit int) ([]*entity.Payment, error)
	CountByEmail(email string) (int64, error)
}
