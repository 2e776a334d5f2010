package advisoryservice

import (
	"log/slog"

	httpadapter "vyaparkendra/contexts/insights/advisory-service/adapters/http"
	"vyaparkendra/contexts/insights/advisory-service/application"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
}

func NewModule(logger *slog.Logger) Module {
	service := application.Service{Logger: logger}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  logger,
		},
		Service: service,
	}
}
