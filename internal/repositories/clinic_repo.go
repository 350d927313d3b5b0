package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"clinicore/internal/models"
)

// ClinicCounts summarizes how much data a clinic owns.
type ClinicCounts struct {
	Users       int64 `json:"users"`
	Patients    int64 `json:"patients"`
	Evaluations int64 `json:"evaluations"`
}

type ClinicRepository interface {
	FindByID(ctx context.Context, id string) (*models.Clinic, error)
	Update(ctx context.Context, c *models.Clinic) error
	Counts(ctx context.Context, clinicID string) (ClinicCounts, error)
}

type clinicRepo struct {
	db *gorm.DB
}

func NewClinicRepository(db *gorm.DB) ClinicRepository {
	return &clinicRepo{db: db}
}

func (r *clinicRepo) FindByID(ctx context.Context, id string) (*models.Clinic, error) {
	var c models.Clinic
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *clinicRepo) Update(ctx context.Context, c *models.Clinic) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *clinicRepo) Counts(ctx context.Context, clinicID string) (ClinicCounts, error) {
	var counts ClinicCounts
	db := r.db.WithContext(ctx)
	if err := db.Model(&models.User{}).Where("clinic_id = ?", clinicID).Count(&counts.Users).Error; err != nil {
		return counts, err
	}
	if err := db.Model(&models.Patient{}).Where("clinic_id = ?", clinicID).Count(&counts.Patients).Error; err != nil {
		return counts, err
	}
	if err := db.Model(&models.Evaluation{}).Where("clinic_id = ?", clinicID).Count(&counts.Evaluations).Error; err != nil {
		return counts, err
	}
	return counts, nil
}
