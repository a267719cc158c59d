package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	bulletinservice "agora/contexts/civic-communication/bulletin-service"
	bulletinpostgres "agora/contexts/civic-communication/bulletin-service/adapters/postgres"
	agendaservice "agora/contexts/meeting-governance/agenda-service"
	agendapostgres "agora/contexts/meeting-governance/agenda-service/adapters/postgres"
	meetingservice "agora/contexts/meeting-governance/meeting-service"
	meetingpostgres "agora/contexts/meeting-governance/meeting-service/adapters/postgres"
	votingservice "agora/contexts/meeting-governance/voting-service"
	votingpostgres "agora/contexts/meeting-governance/voting-service/adapters/postgres"
	votingworkers "agora/contexts/meeting-governance/voting-service/application/workers"
	"agora/internal/platform/config"
	"agora/internal/platform/db"
	"agora/internal/platform/httpserver"
	"agora/internal/platform/messaging"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

type WorkerApp struct {
	postgres     *db.Postgres
	outboxRelay  votingworkers.OutboxRelay
	relayEnabled bool
	pollInterval time.Duration
	logger       *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN, logger)
	if err != nil {
		return nil, err
	}

	agendaRepo := agendapostgres.NewRepository(pg.DB, logger)
	agendaModule := agendaservice.NewModule(agendaservice.Dependencies{
		Agenda:   agendaRepo,
		Comments: agendaRepo,
		Logger:   logger,
	})

	votingRepo := votingpostgres.NewRepository(pg.DB, logger)
	votingModule := votingservice.NewModule(votingservice.Dependencies{
		Ballots:   votingRepo,
		Results:   votingRepo,
		Outbox:    votingRepo,
		OutboxLog: votingRepo,
		Clock:     votingpostgres.SystemClock{},
		IDs:       votingpostgres.UUIDGenerator{},
		Logger:    logger,
	})

	meetingRepo := meetingpostgres.NewRepository(pg.DB, logger)
	meetingModule := meetingservice.NewModule(meetingservice.Dependencies{
		Committees: meetingRepo,
		Meetings:   meetingRepo,
		Logger:     logger,
	})

	bulletinRepo := bulletinpostgres.NewRepository(pg.DB, logger)
	bulletinModule := bulletinservice.NewModule(bulletinservice.Dependencies{
		Announcements: bulletinRepo,
		Tasks:         bulletinRepo,
		Logger:        logger,
	})

	server := httpserver.New(
		agendaModule,
		votingModule,
		meetingModule,
		bulletinModule,
		logger,
		normalizeAddr(cfg.HTTPPort),
	)
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func BuildWorker() (*WorkerApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "worker")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN, logger)
	if err != nil {
		return nil, err
	}

	kafka, err := messaging.NewKafka(cfg.KafkaBrokers, logger)
	if err != nil {
		return nil, err
	}

	votingRepo := votingpostgres.NewRepository(pg.DB, logger)
	return &WorkerApp{
		postgres: pg,
		outboxRelay: votingworkers.OutboxRelay{
			Outbox:    votingRepo,
			Publisher: kafka,
			Clock:     votingpostgres.SystemClock{},
			BatchSize: 100,
			Logger:    logger,
		},
		relayEnabled: cfg.EnableVotingOutboxRelay,
		pollInterval: 2 * time.Second,
		logger:       logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func (w *WorkerApp) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.logger.Info("worker app started",
		"event", "bootstrap_worker_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"poll_interval", w.pollInterval.String(),
		"relay_enabled", w.relayEnabled,
	)

	for {
		if w.relayEnabled {
			if err := w.outboxRelay.RunOnce(ctx); err != nil {
				return err
			}
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (w *WorkerApp) Close() error {
	if w.postgres != nil {
		return w.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
