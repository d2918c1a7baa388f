package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mindmate-ai/backend/internal/config"
	"github.com/mindmate-ai/backend/internal/handler"
	"github.com/mindmate-ai/backend/internal/kv"
	"github.com/mindmate-ai/backend/internal/llm/anthropic"
	"github.com/mindmate-ai/backend/internal/service/journal"
	"github.com/mindmate-ai/backend/internal/service/relay"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Logger = zerolog.New(os.Stdout).With().
		Str("service", "mindmate-backend").
		Timestamp().
		Logger()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("no .env file loaded, using system environment only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	store := newStore(cfg.Store)
	defer store.Close()

	if cfg.AI.APIKey == "" {
		log.Warn().Msg("CLAUDE_API_KEY not set, chat requests will report a configuration error")
	}

	llmClient := anthropic.NewClient(anthropic.Config{
		APIKey:    cfg.AI.APIKey,
		BaseURL:   cfg.AI.BaseURL,
		Model:     cfg.AI.Model,
		MaxTokens: cfg.AI.MaxTokens,
	})

	relayService := relay.NewService(llmClient, relay.Config{
		APIKey:       cfg.AI.APIKey,
		HistoryLimit: cfg.AI.HistoryLimit,
	})
	journalService := journal.NewService(store)

	router := handler.NewRouter(relayService, journalService)

	startServer(ctx, cfg.Server, router)
}

// newStore selects the journal backend: Redis when an address is
// configured, otherwise the in-process store.
func newStore(cfg config.StoreConfig) kv.Store {
	if cfg.Addr == "" {
		log.Info().Msg("REDIS_ADDR not set, using in-memory mood store")
		return kv.NewMemoryStore()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	log.Info().Str("addr", cfg.Addr).Msg("using Redis mood store")
	return kv.NewRedisStore(client)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Info().Str("addr", serverCfg.Addr).Msg("MindMate backend listening")
	if err := runServer(ctx, srv); err != nil {
		log.Fatal().Err(err).Msg("server error")
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
