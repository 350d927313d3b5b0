package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"clinicore/internal/apperr"
	"clinicore/internal/models"
	"clinicore/internal/repositories"
	"clinicore/pkg/pagination"
)

type EvaluationService struct {
	evaluations repositories.EvaluationRepository
	patients    repositories.PatientRepository
	lg          *zap.SugaredLogger
}

func NewEvaluationService(evaluations repositories.EvaluationRepository, patients repositories.PatientRepository, lg *zap.SugaredLogger) *EvaluationService {
	return &EvaluationService{evaluations: evaluations, patients: patients, lg: lg}
}

// Create records a new evaluation for a patient visit. The patient
// must belong to the author's clinic; the clinic, author and
// evaluation date are stamped server-side. Section fields are
// persisted exactly as provided: gate/detail consistency is
// deliberately not enforced.
func (s *EvaluationService) Create(ctx context.Context, clinicID string, author *models.User, patientID string, form models.EvaluationForm) (*models.Evaluation, error) {
	if patientID == "" {
		return nil, apperr.New(apperr.KindValidation, "ID-ul pacientului este obligatoriu")
	}
	patient, err := s.patients.FindByID(ctx, clinicID, patientID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Eroare la crearea evaluării medicale", err)
	}
	if patient == nil {
		return nil, apperr.New(apperr.KindNotFound, "Pacientul nu a fost găsit")
	}

	ev := &models.Evaluation{
		ID:             uuid.NewString(),
		ClinicID:       clinicID,
		PatientID:      patientID,
		UserID:         author.ID,
		EvaluationDate: time.Now(),
		EvaluationForm: form,
	}
	if err := s.evaluations.Create(ctx, ev); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Eroare la crearea evaluării medicale", err)
	}
	ev.Patient = patient
	ev.User = author
	return ev, nil
}

func (s *EvaluationService) List(ctx context.Context, clinicID string, q repositories.EvaluationListQuery) ([]models.Evaluation, pagination.Meta, error) {
	evs, total, err := s.evaluations.List(ctx, clinicID, q)
	if err != nil {
		return nil, pagination.Meta{}, apperr.Wrap(apperr.KindInternal, "Eroare la obținerea evaluărilor", err)
	}
	if evs == nil {
		evs = []models.Evaluation{}
	}
	return evs, pagination.NewMeta(total, q.Page), nil
}

func (s *EvaluationService) Get(ctx context.Context, clinicID, id string) (*models.Evaluation, error) {
	ev, err := s.evaluations.FindByID(ctx, clinicID, id)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Eroare la obținerea evaluării", err)
	}
	if ev == nil {
		return nil, apperr.New(apperr.KindNotFound, "Evaluarea nu a fost găsită")
	}
	return ev, nil
}

// Update merges the provided fields over the stored evaluation. The
// id, clinic, patient, author and creation time are immutable and are
// stripped before the merge.
func (s *EvaluationService) Update(ctx context.Context, clinicID, id string, fields map[string]any) (*models.Evaluation, error) {
	delete(fields, "id")
	delete(fields, "clinicId")
	delete(fields, "patientId")
	delete(fields, "userId")
	delete(fields, "createdAt")

	ev, err := s.evaluations.FindByID(ctx, clinicID, id)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Eroare la actualizarea evaluării", err)
	}
	if ev == nil {
		return nil, apperr.New(apperr.KindNotFound, "Evaluarea nu a fost găsită")
	}

	if err := mergeFields(ev, fields); err != nil {
		return nil, apperr.WithDetails(apperr.KindValidation, "Date de intrare invalide", err.Error())
	}
	if err := s.evaluations.Update(ctx, ev); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Eroare la actualizarea evaluării", err)
	}
	return ev, nil
}

// Archive soft-deletes the evaluation; evaluations are never hard
// deleted.
func (s *EvaluationService) Archive(ctx context.Context, clinicID, id string) (*models.Evaluation, error) {
	ev, err := s.evaluations.FindByID(ctx, clinicID, id)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Eroare la arhivarea evaluării", err)
	}
	if ev == nil {
		return nil, apperr.New(apperr.KindNotFound, "Evaluarea nu a fost găsită")
	}
	now := time.Now()
	ev.IsArchived = true
	ev.ArchivedAt = &now
	if err := s.evaluations.Update(ctx, ev); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Eroare la arhivarea evaluării", err)
	}
	return ev, nil
}
