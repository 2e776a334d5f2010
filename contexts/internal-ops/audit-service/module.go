package auditservice

import (
	"log/slog"

	httpadapter "vyaparkendra/contexts/internal-ops/audit-service/adapters/http"
	"vyaparkendra/contexts/internal-ops/audit-service/adapters/memory"
	"vyaparkendra/contexts/internal-ops/audit-service/application"
	"vyaparkendra/contexts/internal-ops/audit-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

type Dependencies struct {
	Repository ports.Repository
	Tenants    ports.TenantResolver
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:    deps.Repository,
		Tenants: deps.Tenants,
		Logger:  deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
		Service: service,
	}
}

func NewInMemoryModule(tenants ports.TenantResolver, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repository: store,
		Tenants:    tenants,
		Logger:     logger,
	})
	module.Store = store
	return module
}
