package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"clinicore/internal/auth"
	"clinicore/internal/models"
	"clinicore/internal/repositories"
	"clinicore/internal/services"
	"clinicore/pkg/pagination"
)

type createEvaluationReq struct {
	PatientID string `json:"patientId"`
	models.EvaluationForm
}

func CreateEvaluation(svc *services.EvaluationService, audit *services.AuditService, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createEvaluationReq
		if err := decodeBody(r, &req); err != nil {
			respondError(w, lg, err)
			return
		}
		id := auth.IdentityFromContext(r.Context())
		ev, err := svc.Create(r.Context(), id.ClinicID(), id.User, req.PatientID, req.EvaluationForm)
		if err != nil {
			respondError(w, lg, err)
			return
		}
		audit.Record(auditFrom(r, models.ActionCreate, "evaluation", ev.ID, map[string]any{
			"patientId":      ev.PatientID,
			"evaluationType": ev.EvaluationType,
		}))
		respondJSON(w, http.StatusCreated, ev)
	}
}

// parseDateParam accepts RFC 3339 timestamps and plain dates.
func parseDateParam(s string) *time.Time {
	if s == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t
	}
	return nil
}

func ListEvaluations(svc *services.EvaluationService, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := auth.IdentityFromContext(r.Context())
		params := r.URL.Query()
		q := repositories.EvaluationListQuery{
			PatientID:      params.Get("patientId"),
			EvaluationType: params.Get("evaluationType"),
			StartDate:      parseDateParam(params.Get("startDate")),
			EndDate:        parseDateParam(params.Get("endDate")),
			Archived:       params.Get("archived") == "true",
			Page:           pagination.FromRequest(r),
		}
		evaluations, meta, err := svc.List(r.Context(), id.ClinicID(), q)
		if err != nil {
			respondError(w, lg, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{
			"evaluations": evaluations,
			"pagination":  meta,
		})
	}
}

func GetEvaluation(svc *services.EvaluationService, audit *services.AuditService, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := auth.IdentityFromContext(r.Context())
		ev, err := svc.Get(r.Context(), id.ClinicID(), chi.URLParam(r, "id"))
		if err != nil {
			respondError(w, lg, err)
			return
		}
		audit.Record(auditFrom(r, models.ActionRead, "evaluation", ev.ID, nil))
		respondJSON(w, http.StatusOK, ev)
	}
}

func UpdateEvaluation(svc *services.EvaluationService, audit *services.AuditService, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var fields map[string]any
		if err := decodeBody(r, &fields); err != nil {
			respondError(w, lg, err)
			return
		}
		id := auth.IdentityFromContext(r.Context())
		ev, err := svc.Update(r.Context(), id.ClinicID(), chi.URLParam(r, "id"), fields)
		if err != nil {
			respondError(w, lg, err)
			return
		}
		audit.Record(auditFrom(r, models.ActionUpdate, "evaluation", ev.ID, fields))
		respondJSON(w, http.StatusOK, ev)
	}
}

func ArchiveEvaluation(svc *services.EvaluationService, audit *services.AuditService, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := auth.IdentityFromContext(r.Context())
		ev, err := svc.Archive(r.Context(), id.ClinicID(), chi.URLParam(r, "id"))
		if err != nil {
			respondError(w, lg, err)
			return
		}
		audit.Record(auditFrom(r, models.ActionUpdate, "evaluation", ev.ID, map[string]any{"isArchived": true}))
		respondJSON(w, http.StatusOK, ev)
	}
}
