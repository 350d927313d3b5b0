package handlers

import (
	"encoding/json"
	"net"
	"net/http"

	"go.uber.org/zap"

	"clinicore/internal/apperr"
	"clinicore/internal/auth"
	"clinicore/internal/services"
)

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

// respondError maps the error kind to a status code and returns the
// user-facing message. Causes of internal failures are logged, never
// returned.
func respondError(w http.ResponseWriter, lg *zap.SugaredLogger, err error) {
	kind := apperr.KindOf(err)
	message, details := apperr.UserMessage(err)
	if kind == apperr.KindInternal {
		lg.Errorw("request failed", "error", err)
		if message == "" {
			message = "A apărut o eroare internă"
		}
	}
	body := map[string]interface{}{"error": message}
	if details != "" {
		body["details"] = details
	}
	respondJSON(w, statusForKind(kind), body)
}

func statusForKind(kind apperr.Kind) int {
	switch kind {
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindUnauthenticated:
		return http.StatusUnauthorized
	case apperr.KindForbidden:
		return http.StatusForbidden
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

var errBadBody = apperr.New(apperr.KindValidation, "Date de intrare invalide")

// decodeBody parses the JSON request body into dst.
func decodeBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errBadBody
	}
	return nil
}

// auditFrom builds the post-success audit entry for the current
// request; body is the already-decoded payload snapshot.
func auditFrom(r *http.Request, action, entityType, entityID string, body interface{}) services.AuditEntry {
	id := auth.IdentityFromContext(r.Context())
	var userID *string
	if uid := id.UserID(); uid != "" {
		userID = &uid
	}
	changes := map[string]interface{}{
		"path":   r.URL.Path,
		"method": r.Method,
	}
	if body != nil {
		changes["body"] = body
	}
	return services.AuditEntry{
		ClinicID:   id.ClinicID(),
		UserID:     userID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Changes:    changes,
		IPAddress:  remoteIP(r),
		UserAgent:  r.UserAgent(),
	}
}

func remoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
