package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"clinicore/internal/auth"
	"clinicore/internal/httpserver/handlers"
	"clinicore/internal/models"
	"clinicore/internal/repositories"
	"clinicore/internal/services"
)

// Deps carries everything the router wires into handlers.
type Deps struct {
	DB      *gorm.DB
	Issuer  *auth.TokenIssuer
	Users   repositories.UserRepository
	Clinics repositories.ClinicRepository

	Auth        *services.AuthService
	Patients    *services.PatientService
	Evaluations *services.EvaluationService
	Clinic      *services.ClinicService
	Search      *services.SearchService
	Audit       *services.AuditService

	Log *zap.SugaredLogger
}

func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer, middleware.Logger)

	lg := d.Log

	r.Route("/api", func(api chi.Router) {
		api.Post("/auth/login", handlers.Login(d.Auth, d.Audit, lg))
		api.Get("/health", handlers.Health(d.DB, lg))

		api.Group(func(protected chi.Router) {
			protected.Use(auth.Authenticate(d.Issuer, d.Users, d.Clinics, lg))

			protected.Get("/auth/me", handlers.Me(lg))
			protected.Post("/auth/change-password", handlers.ChangePassword(d.Auth, lg))

			protected.Post("/patients", handlers.CreatePatient(d.Patients, d.Audit, lg))
			protected.Get("/patients", handlers.ListPatients(d.Patients, lg))
			protected.Get("/patients/{id}", handlers.GetPatient(d.Patients, d.Audit, lg))
			protected.Put("/patients/{id}", handlers.UpdatePatient(d.Patients, d.Audit, lg))

			protected.Post("/evaluations", handlers.CreateEvaluation(d.Evaluations, d.Audit, lg))
			protected.Get("/evaluations", handlers.ListEvaluations(d.Evaluations, lg))
			protected.Get("/evaluations/{id}", handlers.GetEvaluation(d.Evaluations, d.Audit, lg))

			protected.Get("/clinics/current", handlers.GetClinic(d.Clinic, lg))

			protected.Get("/search", handlers.Search(d.Search, d.Audit, lg))

			// archival and clinical edits are reserved for clinicians
			protected.Group(func(clinical chi.Router) {
				clinical.Use(auth.RequireRole(models.RoleAdmin, models.RoleDoctor))
				clinical.Post("/patients/{id}/archive", handlers.ArchivePatient(d.Patients, d.Audit, lg))
				clinical.Post("/patients/{id}/unarchive", handlers.UnarchivePatient(d.Patients, d.Audit, lg))
				clinical.Put("/evaluations/{id}", handlers.UpdateEvaluation(d.Evaluations, d.Audit, lg))
				clinical.Post("/evaluations/{id}/archive", handlers.ArchiveEvaluation(d.Evaluations, d.Audit, lg))
			})

			protected.Group(func(admin chi.Router) {
				admin.Use(auth.RequireRole(models.RoleAdmin))
				admin.Put("/clinics/current", handlers.UpdateClinic(d.Clinic, d.Audit, lg))
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Endpoint-ul nu a fost găsit"}`))
	})
	return r
}
