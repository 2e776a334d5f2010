package requestlifecycle

import (
	"log/slog"

	httpadapter "vyaparkendra/contexts/marketplace-core/request-lifecycle/adapters/http"
	"vyaparkendra/contexts/marketplace-core/request-lifecycle/adapters/memory"
	"vyaparkendra/contexts/marketplace-core/request-lifecycle/application"
	"vyaparkendra/contexts/marketplace-core/request-lifecycle/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service *application.Service
	Store   *memory.Store
}

type Dependencies struct {
	Repository ports.Repository
	Catalog    ports.ServiceCatalog
	Ledger     ports.LedgerRecorder
	Analytics  ports.AnalyticsBumper
	UnitOfWork ports.UnitOfWork
	Outbox     ports.OutboxWriter
	Clock      ports.Clock
	IDGen      ports.IDGenerator

	DisableCompletionEventEmission bool

	Logger *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := &application.Service{
		Requests:  deps.Repository,
		Catalog:   deps.Catalog,
		Ledger:    deps.Ledger,
		Analytics: deps.Analytics,
		UoW:       deps.UnitOfWork,
		Outbox:    deps.Outbox,
		Clock:     deps.Clock,
		IDGen:     deps.IDGen,

		DisableCompletionEventEmission: deps.DisableCompletionEventEmission,

		Logger: deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
		Service: service,
	}
}

type InMemoryDependencies struct {
	Catalog   ports.ServiceCatalog
	Ledger    ports.LedgerRecorder
	Analytics ports.AnalyticsBumper
	// Participants are the sibling in-memory stores whose state must roll
	// back with a failed completion.
	Participants []memory.Transactional

	DisableCompletionEventEmission bool

	Logger *slog.Logger
}

func NewInMemoryModule(deps InMemoryDependencies) Module {
	store := memory.NewStore()
	participants := append([]memory.Transactional{store}, deps.Participants...)

	module := NewModule(Dependencies{
		Repository: store,
		Catalog:    deps.Catalog,
		Ledger:     deps.Ledger,
		Analytics:  deps.Analytics,
		UnitOfWork: memory.NewUnitOfWork(participants...),
		Outbox:     store,
		Clock:      memory.SystemClock{},
		IDGen:      memory.UUIDGenerator{},

		DisableCompletionEventEmission: deps.DisableCompletionEventEmission,

		Logger: deps.Logger,
	})
	module.Store = store
	return module
}
