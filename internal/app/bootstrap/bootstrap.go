package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"gorm.io/gorm"

	identityservice "vyaparkendra/contexts/identity-access/identity-service"
	identitypostgres "vyaparkendra/contexts/identity-access/identity-service/adapters/postgres"
	identityports "vyaparkendra/contexts/identity-access/identity-service/ports"
	advisoryservice "vyaparkendra/contexts/insights/advisory-service"
	auditservice "vyaparkendra/contexts/internal-ops/audit-service"
	auditpostgres "vyaparkendra/contexts/internal-ops/audit-service/adapters/postgres"
	loanservice "vyaparkendra/contexts/lending/loan-service"
	loanpostgres "vyaparkendra/contexts/lending/loan-service/adapters/postgres"
	commissionledger "vyaparkendra/contexts/marketplace-core/commission-ledger"
	ledgerpostgres "vyaparkendra/contexts/marketplace-core/commission-ledger/adapters/postgres"
	requestlifecycle "vyaparkendra/contexts/marketplace-core/request-lifecycle"
	requestmemory "vyaparkendra/contexts/marketplace-core/request-lifecycle/adapters/memory"
	requestpostgres "vyaparkendra/contexts/marketplace-core/request-lifecycle/adapters/postgres"
	"vyaparkendra/contexts/marketplace-core/request-lifecycle/application/workers"
	requesterrors "vyaparkendra/contexts/marketplace-core/request-lifecycle/domain/errors"
	requestports "vyaparkendra/contexts/marketplace-core/request-lifecycle/ports"
	servicecatalog "vyaparkendra/contexts/marketplace-core/service-catalog"
	catalogpostgres "vyaparkendra/contexts/marketplace-core/service-catalog/adapters/postgres"
	catalogapp "vyaparkendra/contexts/marketplace-core/service-catalog/application"
	catalogerrors "vyaparkendra/contexts/marketplace-core/service-catalog/domain/errors"
	stateanalytics "vyaparkendra/contexts/marketplace-core/state-analytics"
	analyticspostgres "vyaparkendra/contexts/marketplace-core/state-analytics/adapters/postgres"
	"vyaparkendra/internal/platform/config"
	"vyaparkendra/internal/platform/db"
	"vyaparkendra/internal/platform/httpserver"
	"vyaparkendra/internal/platform/messaging"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

type WorkerApp struct {
	postgres *db.Postgres
	relay    workers.OutboxRelay
	logger   *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")

	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		server, err := buildInMemoryServer(cfg, logger)
		if err != nil {
			return nil, err
		}
		return &APIApp{server: server, logger: logger}, nil
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	identityRepo := identitypostgres.NewRepository(pg.DB, logger)
	catalogRepo := catalogpostgres.NewRepository(pg.DB, logger)
	ledgerRepo := ledgerpostgres.NewRepository(pg.DB, logger)
	analyticsRepo := analyticspostgres.NewRepository(pg.DB, logger)
	requestRepo := requestpostgres.NewRepository(pg.DB, logger)
	loanRepo := loanpostgres.NewRepository(pg.DB, logger)
	auditRepo := auditpostgres.NewRepository(pg.DB, logger)

	for _, migrate := range []func(*gorm.DB) error{
		identitypostgres.Migrate,
		catalogpostgres.Migrate,
		ledgerpostgres.Migrate,
		analyticspostgres.Migrate,
		requestpostgres.Migrate,
		loanpostgres.Migrate,
		auditpostgres.Migrate,
	} {
		if err := migrate(pg.DB); err != nil {
			_ = pg.Close()
			return nil, err
		}
	}

	identityModule := identityservice.NewModule(identityservice.Dependencies{
		Repository: identityRepo,
		JWTSecret:  []byte(cfg.JWTSecret),
		TokenTTL:   cfg.TokenTTL,
		Logger:     logger,
	})
	catalogModule := servicecatalog.NewModule(servicecatalog.Dependencies{
		Repository: catalogRepo,
		Logger:     logger,
	})
	ledgerModule := commissionledger.NewModule(commissionledger.Dependencies{
		Repository: ledgerRepo,
		Logger:     logger,
	})
	analyticsModule := stateanalytics.NewModule(stateanalytics.Dependencies{
		Repository: analyticsRepo,
		Logger:     logger,
	})
	requestModule := requestlifecycle.NewModule(requestlifecycle.Dependencies{
		Repository: requestRepo,
		Catalog:    catalogGateway{catalog: catalogModule.Service},
		Ledger:     ledgerModule.Service,
		Analytics:  analyticsModule.Service,
		UnitOfWork: pg,
		Outbox:     requestRepo,
		Clock:      requestpostgres.SystemClock{},
		IDGen:      requestpostgres.UUIDGenerator{},

		DisableCompletionEventEmission: !cfg.EnableCompletionEvents,

		Logger: logger,
	})
	loanModule := loanservice.NewModule(loanservice.Dependencies{
		Loans:    loanRepo,
		Partners: loanRepo,
		Logger:   logger,
	})
	auditModule := auditservice.NewModule(auditservice.Dependencies{
		Repository: auditRepo,
		Tenants:    identityTenantResolver{users: identityRepo},
		Logger:     logger,
	})
	advisoryModule := advisoryservice.NewModule(logger)

	server := httpserver.New(normalizeAddr(cfg.HTTPPort), httpserver.Modules{
		Identity:  identityModule,
		Catalog:   catalogModule,
		Requests:  requestModule,
		Ledger:    ledgerModule,
		Analytics: analyticsModule,
		Loans:     loanModule,
		Audit:     auditModule,
		Advisory:  advisoryModule,
	}, logger)

	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

// buildInMemoryServer wires every module against its memory adapter. The
// request lifecycle enlists the ledger and analytics stores in its unit of
// work so failed completions roll all three back.
func buildInMemoryServer(cfg config.Config, logger *slog.Logger) (*httpserver.Server, error) {
	identityModule := identityservice.NewInMemoryModule([]byte(cfg.JWTSecret), cfg.TokenTTL, logger)
	catalogModule := servicecatalog.NewInMemoryModule(logger)
	ledgerModule := commissionledger.NewInMemoryModule(logger)
	analyticsModule := stateanalytics.NewInMemoryModule(logger)
	requestModule := requestlifecycle.NewInMemoryModule(requestlifecycle.InMemoryDependencies{
		Catalog:   catalogGateway{catalog: catalogModule.Service},
		Ledger:    ledgerModule.Service,
		Analytics: analyticsModule.Service,
		Participants: []requestmemory.Transactional{
			ledgerModule.Store,
			analyticsModule.Store,
		},

		DisableCompletionEventEmission: !cfg.EnableCompletionEvents,

		Logger: logger,
	})
	loanModule := loanservice.NewInMemoryModule(logger)
	auditModule := auditservice.NewInMemoryModule(identityTenantResolver{users: identityModule.Store}, logger)
	advisoryModule := advisoryservice.NewModule(logger)

	return httpserver.New(normalizeAddr(cfg.HTTPPort), httpserver.Modules{
		Identity:  identityModule,
		Catalog:   catalogModule,
		Requests:  requestModule,
		Ledger:    ledgerModule,
		Analytics: analyticsModule,
		Loans:     loanModule,
		Audit:     auditModule,
		Advisory:  advisoryModule,
	}, logger), nil
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

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	kafka, err := messaging.NewKafka(cfg.KafkaBrokers, logger)
	if err != nil {
		_ = pg.Close()
		return nil, err
	}

	requestRepo := requestpostgres.NewRepository(pg.DB, logger)
	return &WorkerApp{
		postgres: pg,
		relay: workers.OutboxRelay{
			Outbox:       requestRepo,
			Publisher:    kafka,
			Clock:        requestpostgres.SystemClock{},
			PollInterval: cfg.WorkerPollInterval,
			Logger:       logger,
		},
		logger: logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	a.logger.Info("api app started",
		"event", "bootstrap_api_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
	)
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func (w *WorkerApp) Run(ctx context.Context) error {
	w.logger.Info("worker app started",
		"event", "bootstrap_worker_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
	)
	w.relay.Run(ctx)
	return nil
}

func (w *WorkerApp) Close() error {
	if w.postgres != nil {
		return w.postgres.Close()
	}
	return nil
}

// catalogGateway adapts the catalog module to the lifecycle's read port
// and translates its not-found into the lifecycle's own sentinel.
type catalogGateway struct {
	catalog catalogapp.Service
}

func (g catalogGateway) PricedService(ctx context.Context, serviceID string) (requestports.PricedService, error) {
	service, err := g.catalog.GetService(ctx, serviceID)
	if errors.Is(err, catalogerrors.ErrServiceNotFound) || errors.Is(err, catalogerrors.ErrInvalidServiceInput) {
		return requestports.PricedService{}, requesterrors.ErrServiceMissing
	}
	if err != nil {
		return requestports.PricedService{}, err
	}
	return requestports.PricedService{
		ServiceID:       service.ServiceID,
		Price:           service.Price,
		MitraCommission: service.MitraCommission,
		Tenant:          service.Tenant,
	}, nil
}

// identityTenantResolver lets the audit trail denormalize the actor's
// tenant without coupling it to identity's module surface.
type identityTenantResolver struct {
	users identityports.Repository
}

func (r identityTenantResolver) TenantOf(ctx context.Context, userID string) (string, error) {
	user, err := r.users.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	return user.Tenant, nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		value = "8080"
	}
	if strings.Contains(value, ":") {
		return value
	}
	return ":" + value
}
