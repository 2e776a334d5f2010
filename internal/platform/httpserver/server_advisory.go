package httpserver

import (
	"net/http"

	identityentities "vyaparkendra/contexts/identity-access/identity-service/domain/entities"
	httptransport "vyaparkendra/contexts/insights/advisory-service/transport/http"
)

func (s *Server) registerAdvisoryRoutes() {
	s.handle("POST /advisory/gst-analysis", identityentities.CapUseAdvisory, s.gstAnalysisHandler)
	s.handle("POST /advisory/credit-prediction", identityentities.CapUseAdvisory, s.creditPredictionHandler)
}

func (s *Server) gstAnalysisHandler(w http.ResponseWriter, r *http.Request) {
	var body httptransport.AdvisoryRequest
	if !decodeBody(w, r, &body) {
		return
	}

	resp, err := s.modules.Advisory.Handler.GSTAnalysisHandler(r.Context(), body)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) creditPredictionHandler(w http.ResponseWriter, r *http.Request) {
	var body httptransport.AdvisoryRequest
	if !decodeBody(w, r, &body) {
		return
	}

	resp, err := s.modules.Advisory.Handler.CreditPredictionHandler(r.Context(), body)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
