package httpserver

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"strings"

	"vyaparkendra/contexts/identity-access/identity-service/domain/entities"
	identityerrors "vyaparkendra/contexts/identity-access/identity-service/domain/errors"
	"vyaparkendra/contexts/identity-access/identity-service/domain/services"
	"vyaparkendra/internal/platform/metrics"
)

type principalContextKey struct{}

func principalFrom(ctx context.Context) (entities.Principal, bool) {
	principal, ok := ctx.Value(principalContextKey{}).(entities.Principal)
	return principal, ok
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// handle mounts a capability-guarded route: bearer token -> principal ->
// capability check -> audit line -> handler, with a request counter keyed
// by the route pattern.
func (s *Server) handle(pattern string, capability entities.Capability, next http.HandlerFunc) {
	s.mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		defer func() {
			metrics.HTTPRequests.WithLabelValues(r.Method, pattern, strconv.Itoa(recorder.status)).Inc()
		}()

		principal, err := s.authenticate(r)
		if err != nil {
			s.writeError(recorder, r, err)
			return
		}
		if !services.Allows(principal.Role, capability) {
			writeJSON(recorder, http.StatusForbidden, errorResponse{
				Status: "error",
				Error:  "role is not permitted to perform this operation",
			})
			return
		}

		s.recordAudit(r, principal)

		next(recorder, r.WithContext(context.WithValue(r.Context(), principalContextKey{}, principal)))
	})
}

// handlePublic mounts an unauthenticated route with the same metrics and
// an anonymous audit line.
func (s *Server) handlePublic(pattern string, next http.HandlerFunc) {
	s.mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		defer func() {
			metrics.HTTPRequests.WithLabelValues(r.Method, pattern, strconv.Itoa(recorder.status)).Inc()
		}()

		s.recordAudit(r, entities.Principal{})

		next(recorder, r)
	})
}

func (s *Server) authenticate(r *http.Request) (entities.Principal, error) {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(token) == "" {
		return entities.Principal{}, identityerrors.ErrTokenInvalid
	}
	return s.modules.Identity.Service.VerifyToken(r.Context(), strings.TrimSpace(token))
}

func (s *Server) recordAudit(r *http.Request, principal entities.Principal) {
	action := r.Method + " " + r.URL.Path
	if err := s.modules.Audit.Service.Record(r.Context(), principal.UserID, string(principal.Role), action, clientIP(r)); err != nil {
		s.logger.Warn("audit record failed",
			"event", "audit_record_failed",
			"module", "platform/httpserver",
			"layer", "transport",
			"action", action,
			"error", err.Error(),
		)
	}
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
