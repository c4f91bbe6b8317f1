package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"HospitalRecords/cache"
	"HospitalRecords/cli"
	"HospitalRecords/config"
	"HospitalRecords/database"
	"HospitalRecords/repositories"
	"HospitalRecords/services"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hospitalrecords",
		Short: "Hospital records management CLI",
		Long:  "Interactive CLI for managing patients, doctors, services, appointments and billing.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
		SilenceUsage: true,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("exiting")
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	setupLogger(cfg)
	log.Info().Str("session_id", uuid.NewString()).Str("env", cfg.Env).Msg("starting hospital records CLI")

	db, err := database.InitDB(ctx, cfg.DatabaseURL, cfg.IsDev())
	if err != nil {
		return err
	}

	var c *cache.Cache
	if cfg.CacheEnabled() {
		client, err := database.NewRedisClient(database.DefaultRedisConfig(cfg.RedisURL))
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, running without cache")
		} else if c, err = cache.NewCache(client); err != nil {
			log.Warn().Err(err).Msg("cache setup failed, running without cache")
		} else {
			log.Info().Msg("redis cache enabled")
		}
	}

	patientRepo := repositories.NewPatientRepository(db, c)
	doctorRepo := repositories.NewDoctorRepository(db, c)
	serviceRepo := repositories.NewServiceRepository(db, c)
	usageRepo := repositories.NewServiceUsageRepository(db)
	appointmentRepo := repositories.NewAppointmentRepository(db, c)
	billingRepo := repositories.NewBillingRepository(db, c, usageRepo)

	smtp := services.SMTPSettings{}
	if cfg.SMTPConfigured() {
		smtp = services.SMTPSettings{
			Host: cfg.SMTPHost,
			Port: cfg.SMTPPort,
			User: cfg.SMTPUser,
			Pass: cfg.SMTPPass,
		}
	}

	menu := cli.NewMenu(
		os.Stdin,
		os.Stdout,
		services.NewPatientService(patientRepo),
		services.NewDoctorService(doctorRepo),
		services.NewCatalogService(serviceRepo),
		services.NewServiceUsageService(usageRepo),
		services.NewAppointmentService(appointmentRepo),
		services.NewBillingService(billingRepo),
		services.NewInvoiceService(billingRepo, patientRepo, cfg.InvoiceDir, smtp),
		services.NewExportService(billingRepo, appointmentRepo),
	)
	menu.Run(ctx)
	return nil
}

func setupLogger(cfg *config.AppConfig) {
	zerolog.TimeFieldFormat = time.RFC3339
	level := zerolog.InfoLevel
	if cfg.IsDev() {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}
