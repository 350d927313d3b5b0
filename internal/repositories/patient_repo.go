package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"clinicore/internal/models"
	"clinicore/pkg/pagination"
)

// ErrDuplicate is returned when a create violates a database
// uniqueness constraint; the constraint is the authoritative guard
// against races between the application-level existence check and the
// insert.
var ErrDuplicate = errors.New("duplicate record")

// PatientListQuery narrows a clinic-scoped patient listing.
type PatientListQuery struct {
	Search   string
	Archived bool
	Page     pagination.Params
}

// EvaluationCount is the relation-count payload attached to search
// hits.
type EvaluationCount struct {
	Evaluations int64 `json:"evaluations"`
}

// PatientMatch is a search hit together with the number of evaluations
// the patient has on record.
type PatientMatch struct {
	models.Patient
	Count EvaluationCount `gorm:"-" json:"_count"`
}

type PatientRepository interface {
	Create(ctx context.Context, p *models.Patient) error
	// FindByID returns (nil, nil) when no patient with the id exists
	// under the clinic; cross-tenant ids are indistinguishable from
	// absent ones.
	FindByID(ctx context.Context, clinicID, id string) (*models.Patient, error)
	FindByCNP(ctx context.Context, clinicID, cnp string) (*models.Patient, error)
	List(ctx context.Context, clinicID string, q PatientListQuery) ([]models.Patient, int64, error)
	Search(ctx context.Context, clinicID, term string, limit int) ([]PatientMatch, error)
	Update(ctx context.Context, p *models.Patient) error
}

type patientRepo struct {
	db *gorm.DB
}

func NewPatientRepository(db *gorm.DB) PatientRepository {
	return &patientRepo{db: db}
}

func (r *patientRepo) Create(ctx context.Context, p *models.Patient) error {
	err := r.db.WithContext(ctx).Create(p).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}

func (r *patientRepo) FindByID(ctx context.Context, clinicID, id string) (*models.Patient, error) {
	var p models.Patient
	err := r.db.WithContext(ctx).
		First(&p, "id = ? AND clinic_id = ?", id, clinicID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *patientRepo) FindByCNP(ctx context.Context, clinicID, cnp string) (*models.Patient, error) {
	var p models.Patient
	err := r.db.WithContext(ctx).
		First(&p, "clinic_id = ? AND cnp = ?", clinicID, cnp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *patientRepo) List(ctx context.Context, clinicID string, q PatientListQuery) ([]models.Patient, int64, error) {
	tx := r.db.WithContext(ctx).Model(&models.Patient{}).
		Where("clinic_id = ? AND is_archived = ?", clinicID, q.Archived)
	if q.Search != "" {
		term := "%" + q.Search + "%"
		tx = tx.Where("first_name ILIKE ? OR last_name ILIKE ? OR cnp LIKE ?", term, term, term)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var patients []models.Patient
	err := tx.Order("created_at DESC").
		Limit(q.Page.Limit).Offset(q.Page.Offset()).
		Find(&patients).Error
	return patients, total, err
}

func (r *patientRepo) Search(ctx context.Context, clinicID, term string, limit int) ([]PatientMatch, error) {
	like := "%" + term + "%"
	var patients []models.Patient
	err := r.db.WithContext(ctx).
		Where("clinic_id = ? AND is_archived = FALSE", clinicID).
		Where("first_name ILIKE ? OR last_name ILIKE ? OR cnp LIKE ? OR phone LIKE ?", like, like, like, like).
		Order("created_at DESC").
		Limit(limit).
		Find(&patients).Error
	if err != nil || len(patients) == 0 {
		return nil, err
	}

	ids := make([]string, len(patients))
	for i, p := range patients {
		ids[i] = p.ID
	}
	var rows []struct {
		PatientID string
		N         int64
	}
	err = r.db.WithContext(ctx).Model(&models.Evaluation{}).
		Select("patient_id, COUNT(*) AS n").
		Where("patient_id IN ?", ids).
		Group("patient_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.PatientID] = row.N
	}

	matches := make([]PatientMatch, len(patients))
	for i, p := range patients {
		matches[i] = PatientMatch{Patient: p, Count: EvaluationCount{Evaluations: counts[p.ID]}}
	}
	return matches, nil
}

func (r *patientRepo) Update(ctx context.Context, p *models.Patient) error {
	return r.db.WithContext(ctx).Save(p).Error
}
