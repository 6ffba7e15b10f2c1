package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tekup-hr/payroll-api/internal/application/dto"
	"github.com/tekup-hr/payroll-api/internal/application/ports"
	"github.com/tekup-hr/payroll-api/internal/domain"
	"github.com/tekup-hr/payroll-api/internal/domain/entity"
	"github.com/tekup-hr/payroll-api/internal/domain/repository"
)

// Tamaños de página del historial, heredados del contrato del frontend.
const (
	historyPageSize   = 5
	employeeViewLimit = 6
)

// PaymentUseCase registra pagos de nómina y crea payment intents.
type PaymentUseCase struct {
	repo     repository.PaymentRepository
	intents  ports.PaymentIntents
	currency string
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(repo repository.PaymentRepository, intents ports.PaymentIntents, currency string) *PaymentUseCase {
	if currency == "" {
		currency = "usd"
	}
	return &PaymentUseCase{repo: repo, intents: intents, currency: currency}
}

// Create registra el pago de un periodo. Devuelve ErrPaymentExists si el
// periodo ya fue pagado; el índice único de la tabla cubre inserts concurrentes.
func (uc *PaymentUseCase) Create(in dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	if in.EmployeeID == "" || in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.PaidFor < 1 || in.PaidFor > 12 || in.Year < 2000 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByPeriod(in.EmployeeID, in.PaidFor, in.Year)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrPaymentExists
	}
	payment := &entity.Payment{
		ID:            uuid.New().String(),
		EmployeeID:    in.EmployeeID,
		Email:         in.Email,
		Salary:        in.Salary,
		PaidFor:       in.PaidFor,
		Year:          in.Year,
		TransactionID: in.TransactionID,
		CreatedAt:     time.Now(),
	}
	if err := uc.repo.Create(payment); err != nil {
		return nil, err
	}
	return toPaymentResponse(payment), nil
}

// History devuelve la página pedida del historial del solicitante,
// año desc y mes desc. page=0 trae los 5 más recientes, page=1 los
// siguientes 5 (skip = page*5).
func (uc *PaymentUseCase) History(email string, page int) ([]dto.PaymentResponse, error) {
	if page < 0 {
		page = 0
	}
	list, err := uc.repo.ListByEmail(email, historyPageSize, page*historyPageSize)
	if err != nil {
		return nil, err
	}
	return toPaymentResponses(list), nil
}

// HistoryByEmployee devuelve hasta 6 pagos recientes del empleado indicado.
func (uc *PaymentUseCase) HistoryByEmployee(employeeID string) ([]dto.PaymentResponse, error) {
	list, err := uc.repo.ListByEmployee(employeeID, employeeViewLimit)
	if err != nil {
		return nil, err
	}
	return toPaymentResponses(list), nil
}

// Count cuenta los pagos del solicitante.
func (uc *PaymentUseCase) Count(email string) (int64, error) {
	return uc.repo.CountByEmail(email)
}

// CreateIntent convierte el salario a unidades menores (x100) y pide un
// payment intent al colaborador de pagos. Devuelve ErrUpstream si el
// colaborador rechaza la petición.
func (uc *PaymentUseCase) CreateIntent(in dto.CreateIntentRequest) (*dto.CreateIntentResponse, error) {
	if !in.Salary.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	amountMinor := in.Salary.Mul(decimal.NewFromInt(100)).IntPart()
	secret, err := uc.intents.CreateIntent(amountMinor, uc.currency)
	if err != nil {
		return nil, domain.ErrUpstream
	}
	return &dto.CreateIntentResponse{ClientSecret: secret}, nil
}

func toPaymentResponse(p *entity.Payment) *dto.PaymentResponse {
	if p == nil {
		return nil
	}
	return &dto.PaymentResponse{
		ID:            p.ID,
		EmployeeID:    p.EmployeeID,
		Email:         p.Email,
		Salary:        p.Salary,
		PaidFor:       p.PaidFor,
		Year:          p.Year,
		TransactionID: p.TransactionID,
		CreatedAt:     p.CreatedAt,
	}
}

func toPaymentResponses(list []*entity.Payment) []dto.PaymentResponse {
	items := make([]dto.PaymentResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPaymentResponse(p))
	}
	return items
}
