package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/rokhoon/geo-briefing/internal/config"
	"github.com/rokhoon/geo-briefing/internal/handler"
	"github.com/rokhoon/geo-briefing/internal/model/competitor"
	"github.com/rokhoon/geo-briefing/internal/model/history"
	"github.com/rokhoon/geo-briefing/internal/model/persona"
	"github.com/rokhoon/geo-briefing/internal/model/question"
	"github.com/rokhoon/geo-briefing/internal/model/recipient"
	briefingService "github.com/rokhoon/geo-briefing/internal/service/briefing"
	"github.com/rokhoon/geo-briefing/internal/service/mail"
	"github.com/rokhoon/geo-briefing/internal/service/provider"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		log.Fatalf("failed to create data directory %s: %v", cfg.DataDir, err)
	}

	stores := handler.Stores{
		Questions:   question.NewStore(cfg.DataDir),
		Recipients:  recipient.NewStore(cfg.DataDir),
		Personas:    persona.NewStore(cfg.DataDir),
		Competitors: competitor.NewStore(cfg.DataDir),
		History:     history.NewStore(cfg.DataDir),
	}

	providers := []provider.Client{
		provider.NewGemini(cfg.Providers.GeminiAPIKey, cfg.Providers.GeminiModel),
		provider.NewGPT(cfg.Providers.OpenAIAPIKey, cfg.Providers.OpenAIModel),
	}
	if err := cfg.Providers.Validate(); err != nil {
		log.Printf("warning: %v", err)
		log.Println("briefing runs will be refused until provider credentials are configured")
	}
	if err := cfg.Mail.Validate(); err != nil {
		log.Printf("warning: %v", err)
		log.Println("email delivery will be refused until SMTP credentials are configured")
	}

	orchestrator := briefingService.New(providers, stores.Questions, stores.Personas, stores.Competitors, stores.History)
	mailer := mail.NewSender(cfg.Mail)

	router := handler.NewRouter(stores, orchestrator, mailer)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("GEO briefing backend listening on %s", serverCfg.Addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
