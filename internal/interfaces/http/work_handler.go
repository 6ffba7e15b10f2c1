package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tekup-hr/payroll-api/internal/application/dto"
	"github.com/tekup-hr/payroll-api/internal/application/usecase"
	"github.com/tekup-hr/payroll-api/internal/domain"
)

// WorkHandler maneja la hoja de trabajo.
type WorkHandler struct {
	uc *usecase.WorkUseCase
}

// NewWorkHandler construye el handler.
func NewWorkHandler(uc *usecase.WorkUseCase) *WorkHandler {
	return &WorkHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar entrada de trabajo del solicitante
// @Tags         works
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWorkRequest  true  "task, hours, date"
// @Success      201   {object}  dto.WorkResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /works [post]
func (h *WorkHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWorkRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(GetEmail(c), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "task, hours positivas y date son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMine godoc
// @Summary      Entradas del solicitante, fecha desc
// @Tags         works
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.WorkResponse
// @Router       /works [get]
func (h *WorkHandler) ListMine(c *fiber.Ctx) error {
	out, err := h.uc.ListByEmail(GetEmail(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListAll godoc
// @Summary      Entradas de todos los empleados (vista de HR)
// @Tags         works
// @Security     Bearer
// @Produce      json
// @Param        selectedName   query  string  false  "Filtro por nombre exacto"
// @Param        selectedMonth  query  int     false  "Filtro por mes 1-12"
// @Success      200  {array}  dto.WorkResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /allworks [get]
func (h *WorkHandler) ListAll(c *fiber.Ctx) error {
	name := c.Query("selectedName")
	month := c.QueryInt("selectedMonth", 0)
	out, err := h.uc.ListAll(name, month)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "selectedMonth debe estar entre 1 y 12"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
