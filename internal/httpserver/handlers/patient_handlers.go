package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"clinicore/internal/auth"
	"clinicore/internal/models"
	"clinicore/internal/repositories"
	"clinicore/internal/services"
	"clinicore/pkg/pagination"
)

func CreatePatient(svc *services.PatientService, audit *services.AuditService, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in services.CreatePatientInput
		if err := decodeBody(r, &in); err != nil {
			respondError(w, lg, err)
			return
		}
		id := auth.IdentityFromContext(r.Context())
		p, err := svc.Create(r.Context(), id.ClinicID(), in)
		if err != nil {
			respondError(w, lg, err)
			return
		}
		audit.Record(auditFrom(r, models.ActionCreate, "patient", p.ID, map[string]any{
			"firstName": p.FirstName, "lastName": p.LastName,
		}))
		respondJSON(w, http.StatusCreated, p)
	}
}

func ListPatients(svc *services.PatientService, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := auth.IdentityFromContext(r.Context())
		q := repositories.PatientListQuery{
			Search:   r.URL.Query().Get("search"),
			Archived: r.URL.Query().Get("archived") == "true",
			Page:     pagination.FromRequest(r),
		}
		patients, meta, err := svc.List(r.Context(), id.ClinicID(), q)
		if err != nil {
			respondError(w, lg, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{
			"patients":   patients,
			"pagination": meta,
		})
	}
}

func GetPatient(svc *services.PatientService, audit *services.AuditService, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := auth.IdentityFromContext(r.Context())
		patientID := chi.URLParam(r, "id")
		p, err := svc.Get(r.Context(), id.ClinicID(), patientID)
		if err != nil {
			respondError(w, lg, err)
			return
		}
		audit.Record(auditFrom(r, models.ActionRead, "patient", p.ID, nil))
		respondJSON(w, http.StatusOK, p)
	}
}

func UpdatePatient(svc *services.PatientService, audit *services.AuditService, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var fields map[string]any
		if err := decodeBody(r, &fields); err != nil {
			respondError(w, lg, err)
			return
		}
		id := auth.IdentityFromContext(r.Context())
		p, err := svc.Update(r.Context(), id.ClinicID(), chi.URLParam(r, "id"), fields)
		if err != nil {
			respondError(w, lg, err)
			return
		}
		audit.Record(auditFrom(r, models.ActionUpdate, "patient", p.ID, fields))
		respondJSON(w, http.StatusOK, p)
	}
}

func ArchivePatient(svc *services.PatientService, audit *services.AuditService, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := auth.IdentityFromContext(r.Context())
		p, err := svc.Archive(r.Context(), id.ClinicID(), chi.URLParam(r, "id"))
		if err != nil {
			respondError(w, lg, err)
			return
		}
		audit.Record(auditFrom(r, models.ActionUpdate, "patient", p.ID, map[string]any{"isArchived": true}))
		respondJSON(w, http.StatusOK, p)
	}
}

func UnarchivePatient(svc *services.PatientService, audit *services.AuditService, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := auth.IdentityFromContext(r.Context())
		p, err := svc.Unarchive(r.Context(), id.ClinicID(), chi.URLParam(r, "id"))
		if err != nil {
			respondError(w, lg, err)
			return
		}
		audit.Record(auditFrom(r, models.ActionUpdate, "patient", p.ID, map[string]any{"isArchived": false}))
		respondJSON(w, http.StatusOK, p)
	}
}
