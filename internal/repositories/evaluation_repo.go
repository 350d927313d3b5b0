package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"clinicore/internal/models"
	"clinicore/pkg/pagination"
)

// EvaluationListQuery narrows a clinic-scoped evaluation listing.
type EvaluationListQuery struct {
	PatientID      string
	EvaluationType string
	StartDate      *time.Time
	EndDate        *time.Time
	Archived       bool
	Page           pagination.Params
}

type EvaluationRepository interface {
	Create(ctx context.Context, ev *models.Evaluation) error
	// FindByID returns (nil, nil) when absent or owned by another
	// clinic; the patient and author associations are populated.
	FindByID(ctx context.Context, clinicID, id string) (*models.Evaluation, error)
	List(ctx context.Context, clinicID string, q EvaluationListQuery) ([]models.Evaluation, int64, error)
	// RecentByPatient returns the newest evaluations of one patient
	// with the author populated.
	RecentByPatient(ctx context.Context, clinicID, patientID string, limit int) ([]models.Evaluation, error)
	// SearchByPatient matches evaluations whose patient matches the
	// term, excluding archived ones, newest evaluation first.
	SearchByPatient(ctx context.Context, clinicID, term string, limit int) ([]models.Evaluation, error)
	Update(ctx context.Context, ev *models.Evaluation) error
}

type evaluationRepo struct {
	db *gorm.DB
}

func NewEvaluationRepository(db *gorm.DB) EvaluationRepository {
	return &evaluationRepo{db: db}
}

func (r *evaluationRepo) Create(ctx context.Context, ev *models.Evaluation) error {
	return r.db.WithContext(ctx).Create(ev).Error
}

func (r *evaluationRepo) FindByID(ctx context.Context, clinicID, id string) (*models.Evaluation, error) {
	var ev models.Evaluation
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("User").
		First(&ev, "id = ? AND clinic_id = ?", id, clinicID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

func (r *evaluationRepo) List(ctx context.Context, clinicID string, q EvaluationListQuery) ([]models.Evaluation, int64, error) {
	tx := r.db.WithContext(ctx).Model(&models.Evaluation{}).
		Where("clinic_id = ? AND is_archived = ?", clinicID, q.Archived)
	if q.PatientID != "" {
		tx = tx.Where("patient_id = ?", q.PatientID)
	}
	if q.EvaluationType != "" {
		tx = tx.Where("evaluation_type = ?", q.EvaluationType)
	}
	if q.StartDate != nil {
		tx = tx.Where("evaluation_date >= ?", *q.StartDate)
	}
	if q.EndDate != nil {
		tx = tx.Where("evaluation_date <= ?", *q.EndDate)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var evs []models.Evaluation
	err := tx.Preload("Patient").Preload("User").
		Order("evaluation_date DESC").
		Limit(q.Page.Limit).Offset(q.Page.Offset()).
		Find(&evs).Error
	return evs, total, err
}

func (r *evaluationRepo) RecentByPatient(ctx context.Context, clinicID, patientID string, limit int) ([]models.Evaluation, error) {
	var evs []models.Evaluation
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("clinic_id = ? AND patient_id = ?", clinicID, patientID).
		Order("evaluation_date DESC").
		Limit(limit).
		Find(&evs).Error
	return evs, err
}

func (r *evaluationRepo) SearchByPatient(ctx context.Context, clinicID, term string, limit int) ([]models.Evaluation, error) {
	like := "%" + term + "%"
	var evs []models.Evaluation
	err := r.db.WithContext(ctx).
		Joins("JOIN patients ON patients.id = evaluations.patient_id").
		Where("evaluations.clinic_id = ? AND evaluations.is_archived = FALSE", clinicID).
		Where("patients.first_name ILIKE ? OR patients.last_name ILIKE ? OR patients.cnp LIKE ?", like, like, like).
		Preload("Patient").
		Preload("User").
		Order("evaluations.evaluation_date DESC").
		Limit(limit).
		Find(&evs).Error
	return evs, err
}

func (r *evaluationRepo) Update(ctx context.Context, ev *models.Evaluation) error {
	return r.db.WithContext(ctx).Save(ev).Error
}
