// Reporter: proceso que dispara periódicamente el reporte de stock bajo.
// Equivale al worker de tareas programadas; el intervalo se configura con
// REPORT_INTERVAL_HOURS.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	appreport "github.com/inventorywise/api/internal/application/report"
	"github.com/inventorywise/api/internal/infrastructure/mail"
	infrapdf "github.com/inventorywise/api/internal/infrastructure/pdf"
	"github.com/inventorywise/api/internal/infrastructure/postgres"
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
		Int("interval_hours", cfg.Report.IntervalHours).
		Msg("iniciando reporter de stock")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	mailer, err := mail.NewGomailSender(cfg.SMTP)
	if err != nil {
		log.Fatal().Err(err).Msg("configurar envío de correo")
	}

	reportUC := appreport.NewStockReportUseCase(
		postgres.NewProductRepository(pool),
		postgres.NewUserRepository(pool),
		infrapdf.NewMarotoPDFGenerator(),
		mailer,
		appreport.Config{
			CompanyName: cfg.App.CompanyName,
			MaxRetries:  cfg.Report.MaxRetries,
		},
		log,
	)

	run := func() {
		resp, err := reportUC.Send(ctx)
		if err != nil {
			log.Error().Err(err).Msg("ciclo del reporte fallido")
			return
		}
		log.Info().
			Bool("sent", resp.Sent).
			Int("low_stock_count", resp.LowStockCount).
			Msg("ciclo del reporte completado")
	}

	// Primer ciclo inmediato; después, uno por intervalo.
	run()

	interval := time.Duration(cfg.Report.IntervalHours) * time.Hour
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			run()
		case <-ctx.Done():
			log.Info().Msg("señal de apagado recibida, deteniendo reporter")
			return
		}
	}
}
