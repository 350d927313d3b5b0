package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"clinicore/internal/models"
	"clinicore/internal/repositories"
)

// Authenticate validates the bearer credential, resolves the acting
// user and clinic, rejects disabled accounts and clinics, and attaches
// the identity to the request context. It must run before any other
// component on every protected operation.
func Authenticate(issuer *TokenIssuer, users repositories.UserRepository, clinics repositories.ClinicRepository, lg *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if !strings.HasPrefix(h, "Bearer ") {
				writeError(w, http.StatusUnauthorized, "Token de autentificare lipsă")
				return
			}
			claims, err := issuer.Verify(strings.TrimPrefix(h, "Bearer "))
			if err != nil {
				if errors.Is(err, ErrTokenExpired) {
					writeError(w, http.StatusForbidden, "Token expirat")
				} else {
					writeError(w, http.StatusForbidden, "Token invalid")
				}
				return
			}

			user, err := users.FindByID(r.Context(), claims.UserID)
			if err != nil {
				lg.Errorw("authentication user lookup failed", "error", err)
				writeError(w, http.StatusInternalServerError, "Eroare de autentificare")
				return
			}
			if user == nil || !user.IsActive {
				writeError(w, http.StatusUnauthorized, "Utilizator invalid sau inactiv")
				return
			}

			clinic, err := clinics.FindByID(r.Context(), user.ClinicID)
			if err != nil {
				lg.Errorw("authentication clinic lookup failed", "error", err)
				writeError(w, http.StatusInternalServerError, "Eroare de autentificare")
				return
			}
			if clinic == nil || !clinic.IsActive {
				writeError(w, http.StatusForbidden, "Clinica este inactivă")
				return
			}

			id := Identity{User: user, Clinic: clinic}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
		})
	}
}

// RequireRole rejects requests whose acting user's role is not in the
// allowed set.
func RequireRole(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !IdentityFromContext(r.Context()).HasRole(roles...) {
				writeError(w, http.StatusForbidden, "Nu aveți permisiunile necesare pentru această acțiune")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
