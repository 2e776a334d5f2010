package servicecatalog

import (
	"log/slog"

	httpadapter "vyaparkendra/contexts/marketplace-core/service-catalog/adapters/http"
	"vyaparkendra/contexts/marketplace-core/service-catalog/adapters/memory"
	"vyaparkendra/contexts/marketplace-core/service-catalog/application"
	"vyaparkendra/contexts/marketplace-core/service-catalog/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

type Dependencies struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:   deps.Repository,
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

func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repository: store,
		Logger:     logger,
	})
	module.Store = store
	return module
}
