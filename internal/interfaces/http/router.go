package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tekup-hr/payroll-api/internal/application/auth"
	"github.com/tekup-hr/payroll-api/internal/application/usecase"
	"github.com/tekup-hr/payroll-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	UserUC    *usecase.UserUseCase
	PaymentUC *usecase.PaymentUseCase
	WorkUC    *usecase.WorkUseCase
	ContactUC *usecase.ContactUseCase
	JWTSecret string
	AppName   string
}

// Router registra las rutas de la API. Los paths son el contrato histórico
// con el frontend y no llevan prefijo /api.
func Router(app *fiber.App, deps RouterDeps) {
	authRequired := AuthMiddleware(deps.JWTSecret)
	hrOnly := RequireRole(deps.UserUC, entity.RoleHR)
	adminOnly := RequireRole(deps.UserUC, entity.RoleAdmin)

	// Liveness
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(deps.AppName + " server is running")
	})

	// Auth (público): emite el token de sesión
	authHandler := NewAuthHandler(deps.AuthUC)
	app.Post("/jwt", authHandler.Token)

	// Usuarios
	userHandler := NewUserHandler(deps.UserUC)
	app.Get("/users", authRequired, userHandler.List)
	app.Get("/user", authRequired, userHandler.Me)
	app.Post("/users", userHandler.Register)
	app.Get("/users/employees", authRequired, hrOnly, userHandler.ListStaff)
	app.Get("/users/isFired/:email", userHandler.GetByEmail)
	app.Patch("/users/:id", userHandler.Verify)
	app.Get("/employees", authRequired, adminOnly, userHandler.ListVerifiedStaff)
	app.Patch("/employees/fire/:id", authRequired, adminOnly, userHandler.Fire)
	app.Patch("/employees/:id", authRequired, adminOnly, userHandler.Promote)
	app.Patch("/employee/salary/:id", authRequired, userHandler.UpdateSalary)

	// Pagos
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	app.Post("/create-payment-intent", paymentHandler.CreateIntent)
	app.Post("/payments", paymentHandler.Create)
	app.Get("/payment-history", authRequired, paymentHandler.History)
	app.Get("/payment-history/:id", authRequired, paymentHandler.HistoryByEmployee)
	app.Get("/paymentCount", authRequired, paymentHandler.Count)

	// Hoja de trabajo
	workHandler := NewWorkHandler(deps.WorkUC)
	app.Post("/works", authRequired, workHandler.Create)
	app.Get("/works", authRequired, workHandler.ListMine)
	app.Get("/allworks", authRequired, hrOnly, workHandler.ListAll)

	// Contacto
	contactHandler := NewContactHandler(deps.ContactUC)
	app.Get("/contactUs", authRequired, adminOnly, contactHandler.List)
	app.Post("/contactUs", contactHandler.Create)
}
