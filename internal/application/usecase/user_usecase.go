package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tekup-hr/payroll-api/internal/application/dto"
	"github.com/tekup-hr/payroll-api/internal/domain"
	"github.com/tekup-hr/payroll-api/internal/domain/entity"
	"github.com/tekup-hr/payroll-api/internal/domain/repository"
)

// UserUseCase casos de uso sobre usuarios: alta idempotente por email,
// verificación, cambio de rol, despido y salario.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Register crea un usuario. Devuelve ErrUserAlreadyExists si el email ya
// está registrado; el índice único de la tabla cubre la carrera entre el
// pre-chequeo y el insert.
func (uc *UserUseCase) Register(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUserAlreadyExists
	}
	role := in.Role
	if role == "" {
		role = entity.RoleEmployee
	}
	if !entity.ValidRole(role) {
		return nil, domain.ErrInvalidInput
	}
	user := &entity.User{
		ID:          uuid.New().String(),
		Email:       in.Email,
		Name:        in.Name,
		Role:        role,
		Designation: in.Designation,
		BankAccount: in.BankAccount,
		Photo:       in.Photo,
		Salary:      in.Salary,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// List devuelve todos los usuarios.
func (uc *UserUseCase) List() ([]dto.UserResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return toUserResponses(list), nil
}

// GetByEmail devuelve el usuario con ese email, o nil si no existe.
func (uc *UserUseCase) GetByEmail(email string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// RoleByEmail devuelve el rol del usuario, o cadena vacía si no existe.
// Es la consulta que hace el guard de roles en cada petición protegida.
func (uc *UserUseCase) RoleByEmail(email string) (string, error) {
	user, err := uc.repo.GetByEmail(email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", nil
	}
	return user.Role, nil
}

// ListStaff devuelve empleados y HR (para la vista de HR).
func (uc *UserUseCase) ListStaff() ([]dto.UserResponse, error) {
	list, err := uc.repo.ListByRoles([]string{entity.RoleEmployee, entity.RoleHR}, false)
	if err != nil {
		return nil, err
	}
	return toUserResponses(list), nil
}

// ListVerifiedStaff devuelve empleados y HR verificados (para la vista de Admin).
func (uc *UserUseCase) ListVerifiedStaff() ([]dto.UserResponse, error) {
	list, err := uc.repo.ListByRoles([]string{entity.RoleEmployee, entity.RoleHR}, true)
	if err != nil {
		return nil, err
	}
	return toUserResponses(list), nil
}

// SetVerified fija el flag de verificación al valor pedido.
// Devuelve nil si el id no existe (el handler responde 404; sin upsert).
func (uc *UserUseCase) SetVerified(id string, verified bool) (*dto.UserResponse, error) {
	return uc.mutate(id, func(u *entity.User) error {
		u.IsVerified = verified
		return nil
	})
}

// SetHR cambia el rol a HR o lo regresa a Employee.
func (uc *UserUseCase) SetHR(id string, isHR bool) (*dto.UserResponse, error) {
	return uc.mutate(id, func(u *entity.User) error {
		if isHR {
			u.Role = entity.RoleHR
		} else {
			u.Role = entity.RoleEmployee
		}
		return nil
	})
}

// SetFired fija el flag de despido al valor pedido.
func (uc *UserUseCase) SetFired(id string, fired bool) (*dto.UserResponse, error) {
	return uc.mutate(id, func(u *entity.User) error {
		u.IsFired = fired
		return nil
	})
}

// UpdateSalary fija el salario. Solo se permiten aumentos.
func (uc *UserUseCase) UpdateSalary(id string, newSalary decimal.Decimal) (*dto.UserResponse, error) {
	return uc.mutate(id, func(u *entity.User) error {
		if newSalary.LessThan(u.Salary) {
			return domain.ErrInvalidInput
		}
		u.Salary = newSalary
		return nil
	})
}

func (uc *UserUseCase) mutate(id string, fn func(*entity.User) error) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if err := fn(user); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		Role:        u.Role,
		Designation: u.Designation,
		BankAccount: u.BankAccount,
		Photo:       u.Photo,
		Salary:      u.Salary,
		IsVerified:  u.IsVerified,
		IsFired:     u.IsFired,
		CreatedAt:   u.CreatedAt,
	}
}

func toUserResponses(list []*entity.User) []dto.UserResponse {
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUserResponse(u))
	}
	return items
}
