package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tekup-hr/payroll-api/internal/domain"
	"github.com/tekup-hr/payroll-api/internal/domain/entity"
	"github.com/tekup-hr/payroll-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

const paymentColumns = `id, employee_id, email, salary, paid_for, year, transaction_id, created_at`

// PaymentRepo implementación del puerto PaymentRepository sobre PostgreSQL.
// El índice único payments_period_key (employee_id, paid_for, year) hace
// imposible duplicar un periodo aunque dos inserts lleguen a la vez.
type PaymentRepo struct {
	pool *pgxpool.Pool
}

// NewPaymentRepository construye el adaptador de persistencia para pagos.
func NewPaymentRepository(pool *pgxpool.Pool) *PaymentRepo {
	return &PaymentRepo{pool: pool}
}

// Create persiste un pago nuevo.
func (r *PaymentRepo) Create(payment *entity.Payment) error {
	query := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(context.Background(), query,
		payment.ID, payment.EmployeeID, payment.Email, payment.Salary,
		payment.PaidFor, payment.Year, payment.TransactionID, payment.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrPaymentExists
		}
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// GetByPeriod obtiene el pago de un empleado para un periodo (mes, año).
func (r *PaymentRepo) GetByPeriod(employeeID string, paidFor, year int) (*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments
		WHERE employee_id = $1 AND paid_for = $2 AND year = $3`
	var p entity.Payment
	err := r.pool.QueryRow(context.Background(), query, employeeID, paidFor, year).Scan(
		&p.ID, &p.EmployeeID, &p.Email, &p.Salary, &p.PaidFor, &p.Year, &p.TransactionID, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment by period: %w", err)
	}
	return &p, nil
}

// ListByEmail lista pagos del empleado, año desc y mes desc, con paginación.
func (r *PaymentRepo) ListByEmail(email string, limit, offset int) ([]*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments
		WHERE email = $1 ORDER BY year DESC, paid_for DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(context.Background(), query, email, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list payments by email: %w", err)
	}
	return r.scanAll(rows)
}

// ListByEmployee lista los pagos más recientes de un empleado por ID.
func (r *PaymentRepo) ListByEmployee(employeeID string, limit int) ([]*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments
		WHERE employee_id = $1 ORDER BY year DESC, paid_for DESC LIMIT $2`
	rows, err := r.pool.Query(context.Background(), query, employeeID, limit)
	if err != nil {
		return nil, fmt.Errorf("list payments by employee: %w", err)
	}
	return r.scanAll(rows)
}

// CountByEmail cuenta los pagos registrados para un email.
func (r *PaymentRepo) CountByEmail(email string) (int64, error) {
	var count int64
	err := r.pool.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM payments WHERE email = $1`, email).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count payments: %w", err)
	}
	return count, nil
}

func (r *PaymentRepo) scanAll(rows pgx.Rows) ([]*entity.Payment, error) {
	defer rows.Close()
	var list []*entity.Payment
	for rows.Next() {
		var p entity.Payment
		if err := rows.Scan(&p.ID, &p.EmployeeID, &p.Email, &p.Salary, &p.PaidFor,
			&p.Year, &p.TransactionID, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
