package repository

import "github.com/tekup-hr/payroll-api/internal/domain/entity"

// WorkRepository puerto de persistencia para hojas de trabajo.
type WorkRepository interface {
	Create(work *entity.WorkLog) error
	// ListByEmail lista las entradas del empleado ordenadas por fecha desc.
	ListByEmail(email string) ([]*entity.WorkLog, error)
	// ListFiltered lista entradas de todos los empleados, opcionalmente
	// filtradas por nombre exacto y/o mes (0 = sin filtro), fecha desc.
	ListFiltered(name string, month int) ([]*entity.WorkLog, error)
}
