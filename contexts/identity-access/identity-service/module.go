package identityservice

import (
	"log/slog"
	"time"

	httpadapter "vyaparkendra/contexts/identity-access/identity-service/adapters/http"
	"vyaparkendra/contexts/identity-access/identity-service/adapters/memory"
	"vyaparkendra/contexts/identity-access/identity-service/application"
	"vyaparkendra/contexts/identity-access/identity-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

type Dependencies struct {
	Repository ports.Repository
	JWTSecret  []byte
	TokenTTL   time.Duration
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:      deps.Repository,
		JWTSecret: deps.JWTSecret,
		TokenTTL:  deps.TokenTTL,
		Logger:    deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
		Service: service,
	}
}

func NewInMemoryModule(jwtSecret []byte, tokenTTL time.Duration, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repository: store,
		JWTSecret:  jwtSecret,
		TokenTTL:   tokenTTL,
		Logger:     logger,
	})
	module.Store = store
	return module
}
