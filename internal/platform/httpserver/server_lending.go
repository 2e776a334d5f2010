package httpserver

import (
	"net/http"

	identityentities "vyaparkendra/contexts/identity-access/identity-service/domain/entities"
	httptransport "vyaparkendra/contexts/lending/loan-service/transport/http"
)

func (s *Server) registerLendingRoutes() {
	s.handle("POST /loans/apply", identityentities.CapApplyLoans, s.applyLoanHandler)
	s.handle("GET /loans/mine", identityentities.CapApplyLoans, s.myLoansHandler)
	s.handle("GET /nbfc/loans", identityentities.CapReviewLoans, s.nbfcInboxHandler)
	s.handle("PATCH /nbfc/loans/{id}/status", identityentities.CapReviewLoans, s.updateLoanStatusHandler)
	s.handle("POST /admin/nbfc-partners", identityentities.CapManagePartners, s.addPartnerHandler)
	s.handle("GET /admin/nbfc-partners", identityentities.CapManagePartners, s.listPartnersHandler)
	s.handle("GET /msme/credit-score", identityentities.CapCheckCreditScore, s.creditScoreHandler)
}

func (s *Server) applyLoanHandler(w http.ResponseWriter, r *http.Request) {
	principal, _ := principalFrom(r.Context())

	var body httptransport.ApplyLoanRequest
	if !decodeBody(w, r, &body) {
		return
	}

	resp, err := s.modules.Loans.Handler.ApplyLoanHandler(r.Context(), body, principal.UserID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) myLoansHandler(w http.ResponseWriter, r *http.Request) {
	principal, _ := principalFrom(r.Context())

	resp, err := s.modules.Loans.Handler.ListLoansByMitraHandler(r.Context(), principal.UserID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) nbfcInboxHandler(w http.ResponseWriter, r *http.Request) {
	resp, err := s.modules.Loans.Handler.ListSubmittedLoansHandler(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) updateLoanStatusHandler(w http.ResponseWriter, r *http.Request) {
	resp, err := s.modules.Loans.Handler.UpdateLoanStatusHandler(r.Context(), r.PathValue("id"), r.URL.Query().Get("status"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) addPartnerHandler(w http.ResponseWriter, r *http.Request) {
	var body httptransport.AddPartnerRequest
	if !decodeBody(w, r, &body) {
		return
	}

	resp, err := s.modules.Loans.Handler.AddPartnerHandler(r.Context(), body)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) listPartnersHandler(w http.ResponseWriter, r *http.Request) {
	resp, err := s.modules.Loans.Handler.ListPartnersHandler(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) creditScoreHandler(w http.ResponseWriter, r *http.Request) {
	resp := s.modules.Loans.Handler.CreditScoreHandler(r.Context(), r.URL.Query().Get("gstin"))
	writeJSON(w, http.StatusOK, resp)
}
