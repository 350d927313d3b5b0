package services

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"clinicore/internal/models"
	"clinicore/internal/repositories"
)

// AuditEntry describes one action to record. Changes is an opaque
// snapshot of the request, stored verbatim.
type AuditEntry struct {
	ClinicID   string
	UserID     *string
	Action     string
	EntityType string
	EntityID   string
	Changes    any
	IPAddress  string
	UserAgent  string
}

// AuditService appends audit entries best-effort: a failed write is
// logged and swallowed, never propagated to the primary operation.
// Handlers invoke Record only after the primary operation succeeded.
type AuditService struct {
	repo    repositories.AuditRepository
	lg      *zap.SugaredLogger
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewAuditService(repo repositories.AuditRepository, lg *zap.SugaredLogger) *AuditService {
	return &AuditService{repo: repo, lg: lg, timeout: 5 * time.Second}
}

// Record appends asynchronously and returns immediately; the primary
// response is never blocked on the audit write.
func (s *AuditService) Record(e AuditEntry) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		entry := &models.AuditLog{
			ClinicID:   e.ClinicID,
			UserID:     e.UserID,
			Action:     e.Action,
			EntityType: e.EntityType,
			EntityID:   e.EntityID,
			Changes:    models.NewJSONB(e.Changes),
			IPAddress:  e.IPAddress,
			UserAgent:  e.UserAgent,
			CreatedAt:  time.Now(),
		}
		if err := s.repo.Create(ctx, entry); err != nil {
			s.lg.Errorw("audit log write failed",
				"action", e.Action,
				"entityType", e.EntityType,
				"entityId", e.EntityID,
				"error", err,
			)
		}
	}()
}

// Drain waits for in-flight appends; called on shutdown.
func (s *AuditService) Drain() {
	s.wg.Wait()
}
