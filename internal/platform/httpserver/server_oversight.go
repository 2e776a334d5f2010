package httpserver

import (
	"net/http"
	"strconv"

	identityentities "vyaparkendra/contexts/identity-access/identity-service/domain/entities"
	analyticstransport "vyaparkendra/contexts/marketplace-core/state-analytics/transport/http"
)

func (s *Server) registerOversightRoutes() {
	s.handle("GET /admin/analytics", identityentities.CapViewPlatformRollup, s.adminAnalyticsHandler)
	s.handle("GET /admin/audit-logs", identityentities.CapViewAuditLogs, s.adminAuditLogsHandler)
	s.handle("GET /govt/analytics", identityentities.CapViewStateAnalytics, s.govtAnalyticsHandler)
	s.handle("GET /govt/compliance-logs", identityentities.CapViewComplianceLogs, s.govtComplianceLogsHandler)
}

type adminAnalyticsResponse struct {
	Status        string                                 `json:"status"`
	TotalMitras   int64                                  `json:"total_mitras"`
	TotalRequests int64                                  `json:"total_requests"`
	TotalRevenue  float64                                `json:"total_revenue"`
	States        []analyticstransport.StateAnalyticsDTO `json:"states"`
}

// adminAnalyticsHandler composes the platform rollup from its owning
// modules: head count from identity, volume from the request lifecycle,
// revenue from the ledger and the per-state rows from analytics.
func (s *Server) adminAnalyticsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	totalMitras, err := s.modules.Identity.Service.CountByRole(ctx, identityentities.RoleMitra)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	totalRequests, err := s.modules.Requests.Service.CountRequests(ctx)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	totalRevenue, err := s.modules.Ledger.Handler.TotalCreditedHandler(ctx)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	states, err := s.modules.Analytics.Handler.ListAllHandler(ctx)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, adminAnalyticsResponse{
		Status:        "success",
		TotalMitras:   totalMitras,
		TotalRequests: totalRequests,
		TotalRevenue:  totalRevenue,
		States:        states.Data,
	})
}

func (s *Server) adminAuditLogsHandler(w http.ResponseWriter, r *http.Request) {
	resp, err := s.modules.Audit.Handler.RecentHandler(r.Context(), queryLimit(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// govtAnalyticsHandler returns the caller's own tenant row only.
func (s *Server) govtAnalyticsHandler(w http.ResponseWriter, r *http.Request) {
	principal, _ := principalFrom(r.Context())

	resp, err := s.modules.Analytics.Handler.GetStateHandler(r.Context(), principal.Tenant)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) govtComplianceLogsHandler(w http.ResponseWriter, r *http.Request) {
	principal, _ := principalFrom(r.Context())

	resp, err := s.modules.Audit.Handler.ComplianceHandler(r.Context(), principal.Tenant, queryLimit(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func queryLimit(r *http.Request) int {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		return 0
	}
	return limit
}
