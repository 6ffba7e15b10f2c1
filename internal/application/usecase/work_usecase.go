package usecase

import (
	"github.com/google/uuid"
	"github.com/tekup-hr/payroll-api/internal/application/dto"
	"github.com/tekup-hr/payroll-api/internal/domain"
	"github.com/tekup-hr/payroll-api/internal/domain/entity"
	"github.com/tekup-hr/payroll-api/internal/domain/repository"
)

// WorkUseCase hoja de trabajo: alta por el empleado y lecturas filtradas.
type WorkUseCase struct {
	repo repository.WorkRepository
}

// NewWorkUseCase construye el caso de uso.
func NewWorkUseCase(repo repository.WorkRepository) *WorkUseCase {
	return &WorkUseCase{repo: repo}
}

// Create registra una entrada para el empleado autenticado.
// El mes se deriva de la fecha al persistir.
func (uc *WorkUseCase) Create(email string, in dto.CreateWorkRequest) (*dto.WorkResponse, error) {
	if in.Task == "" || in.Date.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	if !in.Hours.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	work := &entity.WorkLog{
		ID:    uuid.New().String(),
		Email: email,
		Name:  in.Name,
		Task:  in.Task,
		Hours: in.Hours,
		Date:  in.Date,
		Month: int(in.Date.Month()),
	}
	if err := uc.repo.Create(work); err != nil {
		return nil, err
	}
	return toWorkResponse(work), nil
}

// ListByEmail devuelve las entradas del empleado, más recientes primero.
func (uc *WorkUseCase) ListByEmail(email string) ([]dto.WorkResponse, error) {
	list, err := uc.repo.ListByEmail(email)
	if err != nil {
		return nil, err
	}
	return toWorkResponses(list), nil
}

// ListAll devuelve las entradas de todos los empleados con filtros
// opcionales por nombre y mes (0 = sin filtro de mes). Vista de HR.
func (uc *WorkUseCase) ListAll(name string, month int) ([]dto.WorkResponse, error) {
	if month < 0 || month > 12 {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.ListFiltered(name, month)
	if err != nil {
		return nil, err
	}
	return toWorkResponses(list), nil
}

func toWorkResponse(w *entity.WorkLog) *dto.WorkResponse {
	if w == nil {
		return nil
	}
	return &dto.WorkResponse{
		ID:    w.ID,
		Email: w.Email,
		Name:  w.Name,
		Task:  w.Task,
		Hours: w.Hours,
		Date:  w.Date,
		Month: w.Month,
	}
}

func toWorkResponses(list []*entity.WorkLog) []dto.WorkResponse {
	items := make([]dto.WorkResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWorkResponse(w))
	}
	return items
}
