package httpserver

import (
	"net/http"

	identityentities "vyaparkendra/contexts/identity-access/identity-service/domain/entities"
	httptransport "vyaparkendra/contexts/marketplace-core/request-lifecycle/transport/http"
	"vyaparkendra/internal/platform/metrics"
)

func (s *Server) registerMarketplaceRoutes() {
	s.handle("POST /marketplace/requests", identityentities.CapWorkRequests, s.createRequestHandler)
	s.handle("GET /marketplace/requests", identityentities.CapWorkRequests, s.listRequestsHandler)
	s.handle("POST /marketplace/requests/{id}/complete", identityentities.CapWorkRequests, s.completeRequestHandler)
	s.handle("GET /marketplace/wallet", identityentities.CapViewWallet, s.walletHandler)
	s.handle("GET /marketplace/wallet/statement", identityentities.CapViewWallet, s.walletStatementHandler)
}

func (s *Server) createRequestHandler(w http.ResponseWriter, r *http.Request) {
	principal, _ := principalFrom(r.Context())

	var body httptransport.CreateRequestRequest
	if !decodeBody(w, r, &body) {
		return
	}

	resp, err := s.modules.Requests.Handler.CreateRequestHandler(r.Context(), body, principal.UserID, principal.Tenant)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) listRequestsHandler(w http.ResponseWriter, r *http.Request) {
	principal, _ := principalFrom(r.Context())

	resp, err := s.modules.Requests.Handler.ListRequestsHandler(r.Context(), principal.UserID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) completeRequestHandler(w http.ResponseWriter, r *http.Request) {
	principal, _ := principalFrom(r.Context())

	resp, err := s.modules.Requests.Handler.CompleteRequestHandler(r.Context(), r.PathValue("id"), principal.UserID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	metrics.RequestsCompleted.Inc()
	metrics.CommissionCredited.Add(resp.CommissionEarned)

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) walletHandler(w http.ResponseWriter, r *http.Request) {
	principal, _ := principalFrom(r.Context())

	resp, err := s.modules.Ledger.Handler.WalletHandler(r.Context(), principal.UserID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) walletStatementHandler(w http.ResponseWriter, r *http.Request) {
	principal, _ := principalFrom(r.Context())

	resp, err := s.modules.Ledger.Handler.StatementHandler(r.Context(), principal.UserID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
