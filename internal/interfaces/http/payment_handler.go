package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tekup-hr/payroll-api/internal/application/dto"
	"github.com/tekup-hr/payroll-api/internal/application/usecase"
	"github.com/tekup-hr/payroll-api/internal/domain"
)

// PaymentHandler maneja pagos de nómina y payment intents.
type PaymentHandler struct {
	uc *usecase.PaymentUseCase
}

// NewPaymentHandler construye el handler.
func NewPaymentHandler(uc *usecase.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar pago de un periodo
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePaymentRequest  true  "employeeId, paidFor (mes), year, salary"
// @Success      201   {object}  dto.PaymentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /payments [post]
func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		switch err {
		case domain.ErrPaymentExists:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "DUPLICATE_PAYMENT", Message: "el periodo ya fue pagado"})
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "employeeId, email, paidFor (1-12) y year son requeridos"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// History godoc
// @Summary      Historial de pagos del solicitante
// @Tags         payments
// @Security     Bearer
// @Produce      json
// @Param        page  query  int  false  "Página (5 por página)"  default(0)
// @Success      200   {array}  dto.PaymentResponse
// @Router       /payment-history [get]
func (h *PaymentHandler) History(c *fiber.Ctx) error {
	page := c.QueryInt("page", 0)
	out, err := h.uc.History(GetEmail(c), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// HistoryByEmployee godoc
// @Summary      Últimos pagos de un empleado
// @Tags         payments
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del empleado"
// @Success      200  {array}  dto.PaymentResponse
// @Router       /payment-history/{id} [get]
func (h *PaymentHandler) HistoryByEmployee(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.HistoryByEmployee(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Count godoc
// @Summary      Total de pagos del solicitante
// @Tags         payments
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PaymentCountResponse
// @Router       /paymentCount [get]
func (h *PaymentHandler) Count(c *fiber.Ctx) error {
	count, err := h.uc.Count(GetEmail(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.PaymentCountResponse{Count: count})
}

// CreateIntent godoc
// @Summary      Crear payment intent por el salario indicado
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateIntentRequest  true  "salary en unidades de moneda"
// @Success      200   {object}  dto.CreateIntentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /create-payment-intent [post]
func (h *PaymentHandler) CreateIntent(c *fiber.Ctx) error {
	var in dto.CreateIntentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateIntent(in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "salary debe ser mayor que cero"})
		case domain.ErrUpstream:
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "UPSTREAM", Message: "el procesador de pagos rechazó la petición"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(out)
}
