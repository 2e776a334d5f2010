package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	identityservice "vyaparkendra/contexts/identity-access/identity-service"
	identityerrors "vyaparkendra/contexts/identity-access/identity-service/domain/errors"
	advisoryservice "vyaparkendra/contexts/insights/advisory-service"
	advisoryerrors "vyaparkendra/contexts/insights/advisory-service/domain/errors"
	auditservice "vyaparkendra/contexts/internal-ops/audit-service"
	auditerrors "vyaparkendra/contexts/internal-ops/audit-service/domain/errors"
	loanservice "vyaparkendra/contexts/lending/loan-service"
	loanerrors "vyaparkendra/contexts/lending/loan-service/domain/errors"
	commissionledger "vyaparkendra/contexts/marketplace-core/commission-ledger"
	ledgererrors "vyaparkendra/contexts/marketplace-core/commission-ledger/domain/errors"
	requestlifecycle "vyaparkendra/contexts/marketplace-core/request-lifecycle"
	requesterrors "vyaparkendra/contexts/marketplace-core/request-lifecycle/domain/errors"
	servicecatalog "vyaparkendra/contexts/marketplace-core/service-catalog"
	catalogerrors "vyaparkendra/contexts/marketplace-core/service-catalog/domain/errors"
	stateanalytics "vyaparkendra/contexts/marketplace-core/state-analytics"
	analyticserrors "vyaparkendra/contexts/marketplace-core/state-analytics/domain/errors"
	_ "vyaparkendra/internal/platform/httpserver/docs"
	"vyaparkendra/internal/platform/metrics"
)

// Modules bundles every mounted bounded-context module.
type Modules struct {
	Identity  identityservice.Module
	Catalog   servicecatalog.Module
	Requests  requestlifecycle.Module
	Ledger    commissionledger.Module
	Analytics stateanalytics.Module
	Loans     loanservice.Module
	Audit     auditservice.Module
	Advisory  advisoryservice.Module
}

type Server struct {
	http    *http.Server
	mux     *http.ServeMux
	modules Modules
	logger  *slog.Logger
}

func New(addr string, modules Modules, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	mux := http.NewServeMux()
	server := &Server{
		http: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		mux:     mux,
		modules: modules,
		logger:  logger,
	}
	server.registerRoutes()
	return server
}

func (s *Server) registerRoutes() {
	s.handlePublic("GET /", s.platformInfoHandler)
	s.mux.Handle("GET /metrics", metrics.Handler())
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.registerIdentityRoutes()
	s.registerCatalogRoutes()
	s.registerMarketplaceRoutes()
	s.registerLendingRoutes()
	s.registerOversightRoutes()
	s.registerAdvisoryRoutes()
}

func (s *Server) Start() error {
	s.logger.Info("http server listening",
		"event", "http_server_started",
		"module", "platform/httpserver",
		"layer", "transport",
		"addr", s.http.Addr,
	)
	err := s.http.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type errorResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

// writeError maps domain sentinels to transport codes. Unknown errors are
// 500s with a generic body; the detail stays in the server log.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, identityerrors.ErrInvalidCredentials),
		errors.Is(err, identityerrors.ErrTokenInvalid),
		errors.Is(err, identityerrors.ErrTokenExpired):
		status, message = http.StatusUnauthorized, err.Error()
	case errors.Is(err, identityerrors.ErrUserNotFound),
		errors.Is(err, identityerrors.ErrMitraNotFound),
		errors.Is(err, catalogerrors.ErrServiceNotFound),
		errors.Is(err, requesterrors.ErrServiceMissing),
		errors.Is(err, loanerrors.ErrLoanNotFound),
		errors.Is(err, analyticserrors.ErrStateNotTracked):
		status, message = http.StatusNotFound, err.Error()
	case errors.Is(err, identityerrors.ErrInvalidUserInput),
		errors.Is(err, identityerrors.ErrUnknownRole),
		errors.Is(err, identityerrors.ErrEmailTaken),
		errors.Is(err, catalogerrors.ErrInvalidServiceInput),
		errors.Is(err, requesterrors.ErrInvalidRequestInput),
		errors.Is(err, requesterrors.ErrRequestNotFound),
		errors.Is(err, ledgererrors.ErrInvalidEntryInput),
		errors.Is(err, analyticserrors.ErrInvalidBumpInput),
		errors.Is(err, loanerrors.ErrInvalidLoanInput),
		errors.Is(err, loanerrors.ErrInvalidLoanStatus),
		errors.Is(err, loanerrors.ErrInvalidPartnerInput),
		errors.Is(err, auditerrors.ErrInvalidAuditInput),
		errors.Is(err, advisoryerrors.ErrEmptyAdvisoryInput):
		status, message = http.StatusBadRequest, err.Error()
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("request failed",
			"event", "http_request_failed",
			"module", "platform/httpserver",
			"layer", "transport",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err.Error(),
		)
	}

	writeJSON(w, status, errorResponse{Status: "error", Error: message})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Status: "error", Error: "request body is not valid json"})
		return false
	}
	return true
}

func (s *Server) platformInfoHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeJSON(w, http.StatusNotFound, errorResponse{Status: "error", Error: "not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"platform": "VyaparKendra",
		"status":   "running",
		"docs":     "/swagger/index.html",
	})
}
