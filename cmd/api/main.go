package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	_ "github.com/jhoicas/distribuidora-api/docs"
	"github.com/jhoicas/distribuidora-api/internal/application/auth"
	"github.com/jhoicas/distribuidora-api/internal/application/inventory"
	"github.com/jhoicas/distribuidora-api/internal/application/report"
	"github.com/jhoicas/distribuidora-api/internal/application/usecase"
	"github.com/jhoicas/distribuidora-api/internal/infrastructure/excel"
	infrapdf "github.com/jhoicas/distribuidora-api/internal/infrastructure/pdf"
	"github.com/jhoicas/distribuidora-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/distribuidora-api/internal/interfaces/http"
	"github.com/jhoicas/distribuidora-api/pkg/config"
	"github.com/jhoicas/distribuidora-api/pkg/logger"
)

// @title       Distribuidora Martín API
// @version     2.0.0
// @description Inventario, ventas y reportes de Distribuidora Martín.
// @BasePath    /
//
// @securityDefinitions.apikey Bearer
// @in                         header
// @name                       Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.Log.Level,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("driver", cfg.DB.Driver).
		Msg("iniciando aplicación")
	if cfg.Session.DevSecret {
		log.Warn().Msg("SESSION_SECRET no definido: usando secreto de desarrollo")
	}

	ctx := context.Background()
	store, err := storage.Open(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer store.Close()

	authUC := auth.NewAuthUseCase(store.Users, auth.JWTConfig{
		Secret:     cfg.Session.Secret,
		ExpMinutes: cfg.Session.ExpirationMinutes,
		Issuer:     cfg.Session.Issuer,
	})
	productUC := usecase.NewProductUseCase(store.Products, store.Movements)
	userUC := usecase.NewUserUseCase(store.Users)
	registerSaleUC := inventory.NewRegisterSaleUseCase(store.Tx, log.Named("ventas"))
	registerEntryUC := inventory.NewRegisterEntryUseCase(store.Tx, log.Named("entradas"))
	salesHistoryUC := inventory.NewSalesHistoryUseCase(store.Movements)

	reportUC := report.NewReportUseCase(store.Reports)
	exportUC := report.NewExportUseCase(reportUC, infrapdf.NewMarotoPDFGenerator(), excel.NewReportWorkbook())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(httpRouter.RequestLogger(log.Named("http")))

	// Swagger UI: http://localhost:<port>/docs
	if cfg.Swagger.Enabled {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.Swagger.FilePath,
			Path:     "docs",
			Title:    "Distribuidora Martín API",
		}))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		ProductUC:     productUC,
		UserUC:        userUC,
		RegisterSale:  registerSaleUC,
		RegisterEntry: registerEntryUC,
		SalesHistory:  salesHistoryUC,
		ReportUC:      reportUC,
		ExportUC:      exportUC,
		Health:        store.Health,
		Session: httpRouter.SessionConfig{
			Secret:       cfg.Session.Secret,
			Issuer:       cfg.Session.Issuer,
			CookieName:   cfg.Session.CookieName,
			CookieSecure: cfg.Session.CookieSecure,
		},
		ServiceName: cfg.App.Name,
		Log:         log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
