package loanservice

import (
	"log/slog"

	httpadapter "vyaparkendra/contexts/lending/loan-service/adapters/http"
	"vyaparkendra/contexts/lending/loan-service/adapters/memory"
	"vyaparkendra/contexts/lending/loan-service/application"
	"vyaparkendra/contexts/lending/loan-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

type Dependencies struct {
	Loans    ports.LoanRepository
	Partners ports.PartnerRepository
	Logger   *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Loans:    deps.Loans,
		Partners: deps.Partners,
		Logger:   deps.Logger,
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
		Loans:    store,
		Partners: store,
		Logger:   logger,
	})
	module.Store = store
	return module
}
