package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tekup-hr/payroll-api/internal/application/dto"
	"github.com/tekup-hr/payroll-api/internal/domain"
	"github.com/tekup-hr/payroll-api/internal/domain/entity"
	"github.com/tekup-hr/payroll-api/internal/domain/repository"
)

// ContactUseCase mensajes del formulario público.
type ContactUseCase struct {
	repo repository.ContactRepository
}

// NewContactUseCase construye el caso de uso.
func NewContactUseCase(repo repository.ContactRepository) *ContactUseCase {
	return &ContactUseCase{repo: repo}
}

// Create guarda un mensaje de un visitante anónimo.
func (uc *ContactUseCase) Create(in dto.CreateContactRequest) (*dto.ContactResponse, error) {
	if in.Message == "" {
		return nil, domain.ErrInvalidInput
	}
	msg := &entity.ContactMessage{
		ID:        uuid.New().String(),
		Email:     in.Email,
		Message:   in.Message,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(msg); err != nil {
		return nil, err
	}
	return toContactResponse(msg), nil
}

// List devuelve todos los mensajes, más recientes primero. Solo Admin.
func (uc *ContactUseCase) List() ([]dto.ContactResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ContactResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toContactResponse(m))
	}
	return items, nil
}

func toContactResponse(m *entity.ContactMessage) *dto.ContactResponse {
	if m == nil {
		return nil
	}
	return &dto.ContactResponse{
		ID:        m.ID,
		Email:     m.Email,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
}
