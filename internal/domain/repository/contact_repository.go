package repository

import "github.com/tekup-hr/payroll-api/internal/domain/entity"

// ContactRepository puerto de persistencia para mensajes de contacto.
type ContactRepository interface {
	Create(msg *entity.ContactMessage) error
	// List devuelve todos los mensajes, más recientes primero.
	List() ([]*entity.ContactMessage, error)
}
