package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/jhoicas/distribuidora-api/internal/application/auth"
	"github.com/jhoicas/distribuidora-api/internal/application/inventory"
	"github.com/jhoicas/distribuidora-api/internal/application/report"
	"github.com/jhoicas/distribuidora-api/internal/application/usecase"
	"github.com/jhoicas/distribuidora-api/internal/domain/entity"
	"github.com/jhoicas/distribuidora-api/internal/domain/repository"
	"github.com/jhoicas/distribuidora-api/pkg/logger"
)

// defaultLoginLimit intentos de login por minuto e IP.
const defaultLoginLimit = 10

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	ProductUC     *usecase.ProductUseCase
	UserUC        *usecase.UserUseCase
	RegisterSale  *inventory.RegisterSaleUseCase
	RegisterEntry *inventory.RegisterEntryUseCase
	SalesHistory  *inventory.SalesHistoryUseCase
	ReportUC      *report.ReportUseCase
	ExportUC      *report.ExportUseCase
	Health        repository.HealthChecker
	Session       SessionConfig
	ServiceName   string
	// LoginLimit máximo de intentos de login por minuto e IP (0 = defaultLoginLimit).
	LoginLimit int
	Log        *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	loginLimit := deps.LoginLimit
	if loginLimit <= 0 {
		loginLimit = defaultLoginLimit
	}

	system := NewSystemHandler(deps.Health, deps.ServiceName, log.Named("system"))
	app.Get("/", system.Info)
	app.Get("/health", system.Health)

	api := app.Group("/api")
	api.Get("/test-db", system.TestDB)

	requireSession := AuthMiddleware(deps.Session)
	currentUser := RefreshSession(deps.AuthUC, log.Named("sesion"))
	adminOnly := RequireRole(entity.RoleAdmin)

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC, deps.Session, log.Named("auth"))
	authGroup := api.Group("/auth")
	authGroup.Post("/login", limiter.New(limiter.Config{
		Max:        loginLimit,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			return errorJSON(c, fiber.StatusTooManyRequests, "TOO_MANY_REQUESTS", "Demasiados intentos de login, intente más tarde")
		},
	}), authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/verify", requireSession, authHandler.Verify)
	authGroup.Get("/me", requireSession, authHandler.Me)

	// Productos (sesión)
	productHandler := NewProductHandler(deps.ProductUC, log.Named("productos"))
	products := api.Group("/productos", requireSession, currentUser)
	products.Get("/", productHandler.List)
	products.Get("/buscar/:termino", productHandler.Search)
	products.Get("/validar-codigo/:codigo", productHandler.CheckCode)
	products.Get("/stock-bajo", productHandler.LowStock)
	products.Post("/nuevo", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Usuarios (solo Administrador)
	userHandler := NewUserHandler(deps.UserUC, log.Named("usuarios"))
	users := api.Group("/usuarios", requireSession, currentUser, adminOnly)
	users.Get("/", userHandler.List)
	users.Post("/nuevo", userHandler.Create)
	users.Put("/:id", userHandler.Update)
	users.Put("/:id/estado", userHandler.UpdateStatus)

	// Ventas (sesión)
	saleHandler := NewSaleHandler(deps.RegisterSale, deps.SalesHistory, log.Named("ventas"))
	sales := api.Group("/ventas", requireSession, currentUser)
	sales.Post("/", saleHandler.Register)
	sales.Get("/historial", saleHandler.History)

	// Entradas de inventario (solo Administrador)
	entryHandler := NewEntryHandler(deps.RegisterEntry, log.Named("inventario"))
	inv := api.Group("/inventario", requireSession, currentUser, adminOnly)
	inv.Post("/entradas", entryHandler.Register)

	// Reportes (sesión)
	reportHandler := NewReportHandler(deps.ReportUC, deps.ExportUC, log.Named("reportes"))
	reports := api.Group("/reportes", requireSession, currentUser)
	reports.Get("/resumen", reportHandler.Summary)
	reports.Get("/ventas/pdf", reportHandler.PDF)
	reports.Get("/ventas/excel", reportHandler.Excel)
}
