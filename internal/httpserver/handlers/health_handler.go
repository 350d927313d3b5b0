package handlers

import (
	"net/http"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Health reports liveness and database reachability.
func Health(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := time.Now().UTC().Format(time.RFC3339)
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(r.Context())
		}
		if err != nil {
			lg.Errorw("health check failed", "error", err)
			respondJSON(w, http.StatusServiceUnavailable, map[string]any{
				"status":    "unhealthy",
				"timestamp": now,
				"database":  "disconnected",
			})
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{
			"status":    "healthy",
			"timestamp": now,
			"database":  "connected",
		})
	}
}
