package main

import (
	"context"
	"database/sql"
	"flag"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/segundorentals/rent-reminder/internal/config"
	"github.com/segundorentals/rent-reminder/internal/infra/database"
	"github.com/segundorentals/rent-reminder/internal/infra/http/handlers"
	"github.com/segundorentals/rent-reminder/internal/infra/http/middleware"
	"github.com/segundorentals/rent-reminder/internal/infra/mail"
	"github.com/segundorentals/rent-reminder/internal/usecase"
)

func main() {
	serve := flag.Bool("serve", false, "expose the pipeline over HTTP instead of running once")
	addr := flag.String("addr", ":8080", "listen address for -serve")
	flag.Parse()

	godotenv.Load()

	// Todo log vai para o arquivo (append) e para o stdout ao mesmo tempo.
	if logFile := openLogFile(config.DefaultLogPath); logFile != nil {
		defer logFile.Close()
		log.SetOutput(io.MultiWriter(os.Stdout, logFile))
	}

	log.Println("Rent reminder started.")

	cfg, err := config.Load()
	if err != nil {
		log.Printf("ERROR: %v", err)
		os.Exit(1)
	}

	// 1. Fonte de tenants: Postgres quando DATABASE_URL estiver presente,
	// senão a lista vinda do ambiente.
	var source usecase.TenantSource = &config.StaticTenantSource{Tenants: cfg.Tenants}
	var db *sql.DB
	if cfg.DatabaseURL != "" {
		db, err = database.NewDBConnection(cfg.DatabaseURL)
		if err != nil {
			// Config degradada, não fatal: a fase de log ainda precisa rodar.
			log.Printf("ERROR: failed to connect to database, falling back to TENANTS: %v", err)
			db = nil
		} else {
			defer db.Close()
			source = database.NewTenantRepository(db)
		}
	}

	// 2. Sender e renderer
	sender := mail.NewEmailSender(
		cfg.SMTPServer, cfg.SMTPPort, cfg.EmailAddress, cfg.EmailPassword, cfg.EmailAddress,
	)
	renderer := usecase.NewReminderRenderer()

	// 3. UseCases
	pipeline := usecase.NewPipeline(
		usecase.NewSendRemindersUseCase(source, renderer, sender),
		usecase.NewSendRunLogUseCase(sender, cfg.LandlordEmail, cfg.LogPath),
	)

	if *serve {
		runServer(*addr, pipeline, db, cfg)
		return
	}

	pipeline.Run(context.Background())
	log.Println("Run execution completed.")
}

func openLogFile(path string) *os.File {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		log.Printf("WARN: could not open log file %s: %v", path, err)
		return nil
	}
	return f
}

func runServer(addr string, pipeline *usecase.Pipeline, db *sql.DB, cfg *config.Config) {
	runHandler := handlers.NewRunHandler(pipeline)
	healthHandler := handlers.NewHealthHandler(db, cfg.SMTPServer)

	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
	}))

	r.Post("/run", runHandler.Handle)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	log.Printf("🔥 Rent reminder rodando na porta %s", addr)
	http.ListenAndServe(addr, r)
}
