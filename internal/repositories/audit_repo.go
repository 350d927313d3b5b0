package repositories

import (
	"context"

	"gorm.io/gorm"

	"clinicore/internal/models"
)

// AuditRepository only appends; entries are never updated or deleted
// by the application.
type AuditRepository interface {
	Create(ctx context.Context, entry *models.AuditLog) error
}

type auditRepo struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &auditRepo{db: db}
}

func (r *auditRepo) Create(ctx context.Context, entry *models.AuditLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}
