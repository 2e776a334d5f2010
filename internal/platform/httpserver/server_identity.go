package httpserver

import (
	"net/http"

	"vyaparkendra/contexts/identity-access/identity-service/domain/entities"
	httptransport "vyaparkendra/contexts/identity-access/identity-service/transport/http"
)

func (s *Server) registerIdentityRoutes() {
	s.handlePublic("POST /auth/register", s.registerHandler)
	s.handlePublic("POST /auth/login", s.loginHandler)
	s.handle("POST /admin/mitras/{id}/approve", entities.CapApproveKYC, s.approveMitraHandler)
}

func (s *Server) registerHandler(w http.ResponseWriter, r *http.Request) {
	var body httptransport.RegisterRequest
	if !decodeBody(w, r, &body) {
		return
	}

	resp, err := s.modules.Identity.Handler.RegisterHandler(r.Context(), body)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) loginHandler(w http.ResponseWriter, r *http.Request) {
	var body httptransport.LoginRequest
	if !decodeBody(w, r, &body) {
		return
	}

	resp, err := s.modules.Identity.Handler.LoginHandler(r.Context(), body)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) approveMitraHandler(w http.ResponseWriter, r *http.Request) {
	resp, err := s.modules.Identity.Handler.ApproveMitraHandler(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
