package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/inventorywise/api/docs"
	"github.com/inventorywise/api/internal/application/apikey"
	"github.com/inventorywise/api/internal/application/auth"
	appreport "github.com/inventorywise/api/internal/application/report"
	"github.com/inventorywise/api/internal/application/usecase"
	"github.com/inventorywise/api/internal/infrastructure/mail"
	infrapdf "github.com/inventorywise/api/internal/infrastructure/pdf"
	"github.com/inventorywise/api/internal/infrastructure/postgres"
	infraredis "github.com/inventorywise/api/internal/infrastructure/redis"
	httpRouter "github.com/inventorywise/api/internal/interfaces/http"
	"github.com/inventorywise/api/pkg/config"
	"github.com/inventorywise/api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
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

	redisClient := infraredis.NewClient(cfg.Redis)
	defer redisClient.Close()

	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	apiKeyRepo := postgres.NewAPIKeyRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, inventoryRepo, txRunner)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:        cfg.JWT.Secret,
		AccessMinutes: cfg.JWT.AccessMinutes,
		RefreshDays:   cfg.JWT.RefreshDays,
		Issuer:        cfg.JWT.Issuer,
	})
	apiKeyUC := apikey.NewUseCase(apiKeyRepo, infraredis.NewRateCounter(redisClient))

	// Reporte de stock: PDF con Maroto, envío por SMTP
	mailer, err := mail.NewGomailSender(cfg.SMTP)
	if err != nil {
		log.Fatal().Err(err).Msg("configurar envío de correo")
	}
	reportUC := appreport.NewStockReportUseCase(
		productRepo, userRepo,
		infrapdf.NewMarotoPDFGenerator(), mailer,
		appreport.Config{
			CompanyName: cfg.App.CompanyName,
			MaxRetries:  cfg.Report.MaxRetries,
		},
		log,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "InventoryWise API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:  productUC,
		CategoryUC: categoryUC,
		AuthUC:     authUC,
		APIKeyUC:   apiKeyUC,
		ReportUC:   reportUC,
		JWTSecret:  cfg.JWT.Secret,
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
