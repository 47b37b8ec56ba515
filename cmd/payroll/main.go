package main

import (
	"os"

	apppayroll "github.com/jhoicas/payroll-demo/internal/application/payroll"
	domainpayroll "github.com/jhoicas/payroll-demo/internal/domain/payroll"
	"github.com/jhoicas/payroll-demo/internal/infrastructure/console"
	"github.com/jhoicas/payroll-demo/pkg/config"
	"github.com/jhoicas/payroll-demo/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	runUC := apppayroll.NewRunUseCase(
		console.NewPrinter(os.Stdout),
		log.Zerolog(),
		domainpayroll.DefaultEmployee(),
	)
	if _, err := runUC.Run(); err != nil {
		log.Fatal().Err(err).Msg("liquidación")
	}
}
