package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tekup-hr/payroll-api/internal/application/dto"
	"github.com/tekup-hr/payroll-api/internal/application/usecase"
	"github.com/tekup-hr/payroll-api/internal/domain"
)

// UserHandler maneja las peticiones HTTP sobre usuarios.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar usuario (idempotente por email)
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "Datos del usuario"
// @Success      201   {object}  dto.UserResponse
// @Success      200   {object}  dto.MessageResponse  "email ya registrado"
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /users [post]
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Register(in)
	if err != nil {
		switch err {
		case domain.ErrUserAlreadyExists:
			// Contrato heredado: el segundo registro con el mismo email no es
			// un error para el frontend, solo un aviso.
			return c.JSON(dto.MessageResponse{Message: "user already exists"})
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y role válidos son requeridos"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar todos los usuarios
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.UserResponse
// @Router       /users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Me godoc
// @Summary      Usuario del token
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /user [get]
func (h *UserHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.GetByEmail(GetEmail(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
	}
	return c.JSON(out)
}

// GetByEmail godoc
// @Summary      Consultar usuario por email (probe de despido)
// @Tags         users
// @Produce      json
// @Param        email  path  string  true  "Email"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /users/isFired/{email} [get]
func (h *UserHandler) GetByEmail(c *fiber.Ctx) error {
	email := c.Params("email")
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "email es requerido"})
	}
	out, err := h.uc.GetByEmail(email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
	}
	return c.JSON(out)
}

// Verify godoc
// @Summary      Fijar el flag de verificación
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del usuario"
// @Param        body  body  dto.VerifyUserRequest  true  "isVerfied es el estado objetivo"
// @Success      200   {object}  dto.UserResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /users/{id} [patch]
func (h *UserHandler) Verify(c *fiber.Ctx) error {
	var in dto.VerifyUserRequest
	return h.patch(c, &in, func(id string) (*dto.UserResponse, error) {
		return h.uc.SetVerified(id, in.IsVerified)
	})
}

// ListStaff godoc
// @Summary      Empleados y HR (vista de HR)
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.UserResponse
// @Router       /users/employees [get]
func (h *UserHandler) ListStaff(c *fiber.Ctx) error {
	out, err := h.uc.ListStaff()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListVerifiedStaff godoc
// @Summary      Empleados y HR verificados (vista de Admin)
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.UserResponse
// @Router       /employees [get]
func (h *UserHandler) ListVerifiedStaff(c *fiber.Ctx) error {
	out, err := h.uc.ListVerifiedStaff()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Promote godoc
// @Summary      Cambiar rol HR/Employee
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del usuario"
// @Param        body  body  dto.PromoteRequest  true  "isHR"
// @Success      200   {object}  dto.UserResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /employees/{id} [patch]
func (h *UserHandler) Promote(c *fiber.Ctx) error {
	var in dto.PromoteRequest
	return h.patch(c, &in, func(id string) (*dto.UserResponse, error) {
		return h.uc.SetHR(id, in.IsHR)
	})
}

// Fire godoc
// @Summary      Fijar el flag de despido
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del usuario"
// @Param        body  body  dto.FireRequest  true  "fired es el estado objetivo"
// @Success      200   {object}  dto.UserResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /employees/fire/{id} [patch]
func (h *UserHandler) Fire(c *fiber.Ctx) error {
	var in dto.FireRequest
	return h.patch(c, &in, func(id string) (*dto.UserResponse, error) {
		return h.uc.SetFired(id, in.Fired)
	})
}

// UpdateSalary godoc
// @Summary      Actualizar salario (solo aumentos)
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del usuario"
// @Param        body  body  dto.SalaryUpdateRequest  true  "newSalary"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /employee/salary/{id} [patch]
func (h *UserHandler) UpdateSalary(c *fiber.Ctx) error {
	var in dto.SalaryUpdateRequest
	return h.patch(c, &in, func(id string) (*dto.UserResponse, error) {
		return h.uc.UpdateSalary(id, in.NewSalary)
	})
}

// patch factoriza el ciclo común de los PATCH: id de la ruta, cuerpo parseado,
// mutación vía usecase, 404 si el id no existe (sin upsert).
func (h *UserHandler) patch(c *fiber.Ctx, in interface{}, fn func(id string) (*dto.UserResponse, error)) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := c.BodyParser(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := fn(id)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "valor no permitido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
	}
	return c.JSON(out)
}
