package httpserver

import (
	"net/http"

	identityentities "vyaparkendra/contexts/identity-access/identity-service/domain/entities"
	httptransport "vyaparkendra/contexts/marketplace-core/service-catalog/transport/http"
)

func (s *Server) registerCatalogRoutes() {
	s.handle("POST /admin/services", identityentities.CapManageCatalog, s.addServiceHandler)
	s.handle("GET /admin/services", identityentities.CapManageCatalog, s.adminListServicesHandler)
	s.handle("GET /marketplace/services", identityentities.CapBrowseCatalog, s.browseServicesHandler)
}

func (s *Server) addServiceHandler(w http.ResponseWriter, r *http.Request) {
	var body httptransport.AddServiceRequest
	if !decodeBody(w, r, &body) {
		return
	}

	resp, err := s.modules.Catalog.Handler.AddServiceHandler(r.Context(), body)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) adminListServicesHandler(w http.ResponseWriter, r *http.Request) {
	resp, err := s.modules.Catalog.Handler.ListServicesHandler(r.Context(), r.URL.Query().Get("tenant"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// browseServicesHandler lists the caller's own tenant's catalog.
func (s *Server) browseServicesHandler(w http.ResponseWriter, r *http.Request) {
	principal, _ := principalFrom(r.Context())

	resp, err := s.modules.Catalog.Handler.ListServicesHandler(r.Context(), principal.Tenant)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
