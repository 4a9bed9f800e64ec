package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/clinident/clinica-api/internal/application/auth"
	"github.com/clinident/clinica-api/internal/application/i18n"
	"github.com/clinident/clinica-api/internal/application/payments"
	"github.com/clinident/clinica-api/internal/application/usecase"
	"github.com/clinident/clinica-api/internal/application/visits"
	infrapdf "github.com/clinident/clinica-api/internal/infrastructure/pdf"
	"github.com/clinident/clinica-api/internal/infrastructure/postgres"
	httpRouter "github.com/clinident/clinica-api/internal/interfaces/http"
	"github.com/clinident/clinica-api/pkg/config"
	"github.com/clinident/clinica-api/pkg/logger"
)

func main() {
	// .env local si existe; las env vars reales tienen prioridad en Viper
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.Migrate {
		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("aplicar migraciones")
		}
		log.Info().Msg("migraciones aplicadas")
	}

	locale := i18n.Match(cfg.App.Locale)

	patientRepo := postgres.NewPatientRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	serviceRepo := postgres.NewServiceRepository(pool)
	visitRepo := postgres.NewVisitRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	queryTimeout := time.Duration(cfg.DB.QueryTimeout) * time.Second
	txRunner := postgres.NewTxRunner(pool, queryTimeout)

	patientUC := usecase.NewPatientUseCase(txRunner, patientRepo, log)
	employeeUC := usecase.NewEmployeeUseCase(txRunner, employeeRepo, log)
	serviceUC := usecase.NewServiceUseCase(serviceRepo)
	analyticsUC := usecase.NewAnalyticsUseCase(analyticsRepo, locale, queryTimeout)
	saveVisitUC := visits.NewSaveVisitUseCase(txRunner, log)
	cleanupUC := visits.NewCleanupDuplicatesUseCase(txRunner, log)
	visitInfoUC := visits.NewInfoUseCase(visitRepo, locale)
	processPaymentUC := payments.NewProcessPaymentUseCase(txRunner, log)

	// PDF: recibo de pago descargable desde el frontend
	receiptGenerator := infrapdf.NewReceiptGenerator(cfg.App.Name, cfg.App.Locale)
	receiptPDFUC := payments.NewReceiptPDFUseCase(paymentRepo, receiptGenerator)

	authUC := auth.NewUseCase(auth.Config{
		APIKey:     cfg.Auth.APIKey,
		JWTSecret:  cfg.Auth.JWTSecret,
		ExpMinutes: cfg.Auth.JWTExpMinutes,
		Issuer:     cfg.Auth.JWTIssuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeout) * time.Second,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Allow-list de orígenes del constructor de páginas; peticiones sin
	// cabecera Origin (server a server) pasan siempre.
	if len(cfg.CORS.AllowedOrigins) > 0 {
		app.Use(cors.New(cors.Config{
			AllowOrigins: strings.Join(cfg.CORS.AllowedOrigins, ","),
			AllowMethods: "GET,POST,PUT,OPTIONS",
			AllowHeaders: "Content-Type,Authorization,X-Api-Key",
		}))
	}

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Clínica API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		PatientUC:   patientUC,
		EmployeeUC:  employeeUC,
		ServiceUC:   serviceUC,
		AnalyticsUC: analyticsUC,
		SaveVisit:   saveVisitUC,
		Cleanup:     cleanupUC,
		VisitInfo:   visitInfoUC,
		Payment:     processPaymentUC,
		ReceiptPDF:  receiptPDFUC,
		AuthUC:      authUC,
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
