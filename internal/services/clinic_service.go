package services

import (
	"context"

	"go.uber.org/zap"

	"clinicore/internal/apperr"
	"clinicore/internal/models"
	"clinicore/internal/repositories"
)

// ClinicInfo is the clinic record plus how much data it owns.
type ClinicInfo struct {
	models.Clinic
	Count repositories.ClinicCounts `json:"_count"`
}

type ClinicService struct {
	clinics repositories.ClinicRepository
	lg      *zap.SugaredLogger
}

func NewClinicService(clinics repositories.ClinicRepository, lg *zap.SugaredLogger) *ClinicService {
	return &ClinicService{clinics: clinics, lg: lg}
}

func (s *ClinicService) GetCurrent(ctx context.Context, clinicID string) (*ClinicInfo, error) {
	clinic, err := s.clinics.FindByID(ctx, clinicID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Eroare la obținerea informațiilor clinicii", err)
	}
	if clinic == nil {
		return nil, apperr.New(apperr.KindNotFound, "Clinica nu a fost găsită")
	}
	counts, err := s.clinics.Counts(ctx, clinicID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Eroare la obținerea informațiilor clinicii", err)
	}
	return &ClinicInfo{Clinic: *clinic, Count: counts}, nil
}

// UpdateCurrent merges the provided fields over the clinic record; the
// id and creation time are immutable.
func (s *ClinicService) UpdateCurrent(ctx context.Context, clinicID string, fields map[string]any) (*models.Clinic, error) {
	delete(fields, "id")
	delete(fields, "createdAt")

	clinic, err := s.clinics.FindByID(ctx, clinicID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Eroare la actualizarea clinicii", err)
	}
	if clinic == nil {
		return nil, apperr.New(apperr.KindNotFound, "Clinica nu a fost găsită")
	}

	if err := mergeFields(clinic, fields); err != nil {
		return nil, apperr.WithDetails(apperr.KindValidation, "Date de intrare invalide", err.Error())
	}
	if err := s.clinics.Update(ctx, clinic); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Eroare la actualizarea clinicii", err)
	}
	return clinic, nil
}
