package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"clinicore/internal/auth"
	"clinicore/internal/models"
	"clinicore/internal/services"
)

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Login(svc *services.AuthService, audit *services.AuditService, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginReq
		if err := decodeBody(r, &req); err != nil {
			respondError(w, lg, err)
			return
		}
		res, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			respondError(w, lg, err)
			return
		}
		// the password never reaches the audit trail
		entry := auditFrom(r, models.ActionLogin, "user", res.User.ID, map[string]any{"email": req.Email})
		entry.ClinicID = res.User.Clinic.ID
		entry.UserID = &res.User.ID
		audit.Record(entry)
		respondJSON(w, http.StatusOK, res)
	}
}

// Me returns the authenticated user together with its clinic summary.
// The summary is the response body itself, not wrapped in an envelope.
func Me(lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := auth.IdentityFromContext(r.Context())
		respondJSON(w, http.StatusOK, services.Summarize(id.User, id.Clinic))
	}
}

type changePasswordReq struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func ChangePassword(svc *services.AuthService, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req changePasswordReq
		if err := decodeBody(r, &req); err != nil {
			respondError(w, lg, err)
			return
		}
		id := auth.IdentityFromContext(r.Context())
		if err := svc.ChangePassword(r.Context(), id.User, req.CurrentPassword, req.NewPassword); err != nil {
			respondError(w, lg, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{"message": "Parola a fost schimbată cu succes"})
	}
}
