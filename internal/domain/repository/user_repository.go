package repository

import "github.com/tekup-hr/payroll-api/internal/domain/entity"

// UserRepository puerto de persistencia para usuarios.
// Los Get* devuelven (nil, nil) cuando no hay fila; los errores son de infraestructura.
type UserRepository interface {
	// Create persiste un usuario nuevo. Devuelve domain.ErrUserAlreadyExists
	// si el email ya está registrado (constraint único, no check-then-insert).
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	// Update reemplaza los campos mutables del usuario identificado por ID.
	// No hace upsert: si el ID no existe no crea nada.
	Update(user *entity.User) error
	List() ([]*entity.User, error)
	// ListByRoles lista usuarios cuyo rol está en roles; con onlyVerified
	// limita a los verificados.
	ListByRoles(roles []string, onlyVerified bool) ([]*entity.User, error)
}
