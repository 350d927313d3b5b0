package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"clinicore/internal/auth"
	"clinicore/internal/models"
	"clinicore/internal/services"
)

func GetClinic(svc *services.ClinicService, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := auth.IdentityFromContext(r.Context())
		info, err := svc.GetCurrent(r.Context(), id.ClinicID())
		if err != nil {
			respondError(w, lg, err)
			return
		}
		respondJSON(w, http.StatusOK, info)
	}
}

func UpdateClinic(svc *services.ClinicService, audit *services.AuditService, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var fields map[string]any
		if err := decodeBody(r, &fields); err != nil {
			respondError(w, lg, err)
			return
		}
		id := auth.IdentityFromContext(r.Context())
		clinic, err := svc.UpdateCurrent(r.Context(), id.ClinicID(), fields)
		if err != nil {
			respondError(w, lg, err)
			return
		}
		audit.Record(auditFrom(r, models.ActionUpdate, "clinic", clinic.ID, fields))
		respondJSON(w, http.StatusOK, clinic)
	}
}
