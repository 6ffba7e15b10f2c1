package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tekup-hr/payroll-api/internal/domain/entity"
	"github.com/tekup-hr/payroll-api/internal/domain/repository"
)

var _ repository.WorkRepository = (*WorkRepo)(nil)

const workColumns = `id, email, name, task, hours, date, month`

// WorkRepo implementación del puerto WorkRepository sobre PostgreSQL.
type WorkRepo struct {
	pool *pgxpool.Pool
}

// NewWorkRepository construye el adaptador de persistencia para hojas de trabajo.
func NewWorkRepository(pool *pgxpool.Pool) *WorkRepo {
	return &WorkRepo{pool: pool}
}

// Create persiste una entrada de trabajo.
func (r *WorkRepo) Create(work *entity.WorkLog) error {
	query := `
		INSERT INTO work_logs (` + workColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(context.Background(), query,
		work.ID, work.Email, work.Name, work.Task, work.Hours, work.Date, work.Month,
	)
	if err != nil {
		return fmt.Errorf("insert work log: %w", err)
	}
	return nil
}

// ListByEmail lista las entradas del empleado, fecha desc.
func (r *WorkRepo) ListByEmail(email string) ([]*entity.WorkLog, error) {
	query := `SELECT ` + workColumns + ` FROM work_logs WHERE email = $1 ORDER BY date DESC`
	rows, err := r.pool.Query(context.Background(), query, email)
	if err != nil {
		return nil, fmt.Errorf("list work logs by email: %w", err)
	}
	return r.scanAll(rows)
}

// ListFiltered lista entradas de todos los empleados con filtros opcionales
// por nombre y mes (cadena vacía / 0 = sin filtro), fecha desc.
func (r *WorkRepo) ListFiltered(name string, month int) ([]*entity.WorkLog, error) {
	query := `SELECT ` + workColumns + ` FROM work_logs
		WHERE ($1 = '' OR name = $1) AND ($2 = 0 OR month = $2)
		ORDER BY date DESC`
	rows, err := r.pool.Query(context.Background(), query, name, month)
	if err != nil {
		return nil, fmt.Errorf("list work logs filtered: %w", err)
	}
	return r.scanAll(rows)
}

func (r *WorkRepo) scanAll(rows pgx.Rows) ([]*entity.WorkLog, error) {
	defer rows.Close()
	var list []*entity.WorkLog
	for rows.Next() {
		var w entity.WorkLog
		if err := rows.Scan(&w.ID, &w.Email, &w.Name, &w.Task, &w.Hours, &w.Date, &w.Month); err != nil {
			return nil, fmt.Errorf("scan work log: %w", err)
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}
