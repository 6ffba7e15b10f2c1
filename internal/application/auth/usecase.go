package auth

import (
	"strings"

	"github.com/tekup-hr/payroll-api/internal/application/dto"
	"github.com/tekup-hr/payroll-api/internal/domain"
	"github.com/tekup-hr/payroll-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase emite tokens de sesión. La identidad viene del proveedor de
// auth del frontend, así que aquí solo se firma el email como sujeto.
type AuthUseCase struct {
	cfg JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(cfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{cfg: cfg}
}

// Token firma un JWT de vida corta para el email dado.
func (uc *AuthUseCase) Token(in dto.TokenRequest) (*dto.TokenResponse, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, domain.ErrInvalidInput
	}
	token, err := jwt.Generate(uc.cfg.Secret, email, uc.cfg.Issuer, uc.cfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{Token: token}, nil
}
