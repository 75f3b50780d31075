// Package app wires the components into a running service.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"

	"github.com/jennylabs/jenny/internal/config"
	"github.com/jennylabs/jenny/internal/connectors/telegram"
	"github.com/jennylabs/jenny/internal/corpus"
	"github.com/jennylabs/jenny/internal/gateway"
	"github.com/jennylabs/jenny/internal/httpapi"
	"github.com/jennylabs/jenny/internal/llm"
	"github.com/jennylabs/jenny/internal/llm/gemini"
	"github.com/jennylabs/jenny/internal/profile"
	"github.com/jennylabs/jenny/internal/session"
)

const shutdownTimeout = 10 * time.Second

type Runtime struct {
	cfg      config.Config
	server   *http.Server
	cron     *cron.Cron
	sessions *session.Store
	logger   *slog.Logger
}

func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Runtime, error) {
	if logger == nil {
		logger = slog.Default()
	}

	prof, err := profile.Load(cfg.ProfilePath)
	if err != nil {
		return nil, fmt.Errorf("app: load profile: %w", err)
	}

	corpusStore := corpus.NewStore(cfg.CorpusPath, logger)
	sessions := session.New(prof.SessionTimeout(), prof.HistorySize)

	var responder llm.Responder
	if cfg.GeminiAPIKey != "" {
		client, err := gemini.New(ctx, gemini.Config{
			APIKey:  cfg.GeminiAPIKey,
			Model:   cfg.GeminiModel,
			Timeout: cfg.GeminiTimeout,
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("app: init gemini: %w", err)
		}
		responder = client
	} else {
		logger.Warn("no gemini api key configured, replies will apologize")
	}

	sender := telegram.NewClient(cfg.TelegramToken, cfg.TelegramAPI, logger)

	gw := gateway.New(gateway.Config{
		Greeting:               prof.Greeting,
		Persona:                prof.Persona,
		MaxContextParagraphs:   prof.MaxContextParagraphs,
		HistoryEnabled:         prof.HistoryOn(),
		CorpusUnavailableReply: prof.CorpusUnavailableReply,
		ModelFailedReply:       prof.ModelFailedReply,
		BlockedReply:           prof.BlockedReply,
	}, corpusStore, sessions, responder, sender, logger)

	router := httpapi.NewRouter(httpapi.Dependencies{
		Gateway: gw,
		Logger:  logger,
	})

	rt := &Runtime{
		cfg: cfg,
		server: &http.Server{
			Addr:    cfg.HTTPAddr,
			Handler: router,
		},
		cron:     cron.New(),
		sessions: sessions,
		logger:   logger.With("component", "app"),
	}

	if _, err := rt.cron.AddFunc(cfg.SessionSweepSpec, rt.sweepSessions); err != nil {
		return nil, fmt.Errorf("app: schedule session sweep %q: %w", cfg.SessionSweepSpec, err)
	}
	return rt, nil
}

func (rt *Runtime) sweepSessions() {
	if dropped := rt.sessions.Sweep(); dropped > 0 {
		rt.logger.Info("swept idle sessions", "dropped", dropped)
	}
}

// Run serves until ctx is canceled, then shuts the HTTP server down
// gracefully and stops the sweep scheduler.
func (rt *Runtime) Run(ctx context.Context) error {
	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		rt.logger.Info("http server listening", "addr", rt.cfg.HTTPAddr, "env", rt.cfg.Environment)
		if err := rt.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	group.Go(func() error {
		rt.cron.Start()
		<-ctx.Done()
		<-rt.cron.Stop().Done()
		return nil
	})

	group.Go(func() error {
		<-ctx.Done()
		rt.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return rt.server.Shutdown(shutdownCtx)
	})

	return group.Wait()
}
