package handlers

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"clinicore/internal/auth"
	"clinicore/internal/models"
	"clinicore/internal/services"
)

func Search(svc *services.SearchService, audit *services.AuditService, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := r.URL.Query()
		query := params.Get("query")
		scope := params.Get("type")
		if scope == "" {
			scope = services.SearchAll
		}
		limit, _ := strconv.Atoi(params.Get("limit"))

		id := auth.IdentityFromContext(r.Context())
		results, err := svc.Search(r.Context(), id.ClinicID(), query, scope, limit)
		if err != nil {
			respondError(w, lg, err)
			return
		}
		audit.Record(auditFrom(r, models.ActionRead, "search", "", map[string]any{
			"query": query, "type": scope,
		}))
		respondJSON(w, http.StatusOK, results)
	}
}
