package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"clinicore/internal/apperr"
	"clinicore/internal/models"
	"clinicore/internal/repositories"
	"clinicore/pkg/pagination"
)

// How many of a patient's newest evaluations come back with the
// patient detail view.
const recentEvaluationCount = 10

// CreatePatientInput is the operator-entered registration form.
type CreatePatientInput struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	CNP         string `json:"cnp"`
	Address     string `json:"address"`
	City        string `json:"city"`
	County      string `json:"county"`
	IDType      string `json:"idType"`
	IDSeries    string `json:"idSeries"`
	IDNumber    string `json:"idNumber"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	GDPRConsent bool   `json:"gdprConsent"`
}

type PatientService struct {
	patients    repositories.PatientRepository
	evaluations repositories.EvaluationRepository
	lg          *zap.SugaredLogger
}

func NewPatientService(patients repositories.PatientRepository, evaluations repositories.EvaluationRepository, lg *zap.SugaredLogger) *PatientService {
	return &PatientService{patients: patients, evaluations: evaluations, lg: lg}
}

// Create registers a patient under the clinic. Consent is mandatory
// and its timestamp is recorded at creation; the (clinic, CNP) pair
// must be unique, with the application-level check serving as the
// fast-path error and the database constraint as the authoritative
// guard.
func (s *PatientService) Create(ctx context.Context, clinicID string, in CreatePatientInput) (*models.Patient, error) {
	if in.FirstName == "" || in.LastName == "" || in.CNP == "" || in.Address == "" {
		return nil, apperr.New(apperr.KindValidation, "Numele, prenumele, CNP și adresa sunt obligatorii")
	}
	if !in.GDPRConsent {
		return nil, apperr.New(apperr.KindValidation, "Consimțământul GDPR este obligatoriu")
	}

	existing, err := s.patients.FindByCNP(ctx, clinicID, in.CNP)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Eroare la crearea pacientului", err)
	}
	if existing != nil {
		return nil, apperr.New(apperr.KindConflict, "Un pacient cu acest CNP există deja în această clinică")
	}

	now := time.Now()
	p := &models.Patient{
		ID:              uuid.NewString(),
		ClinicID:        clinicID,
		FirstName:       in.FirstName,
		LastName:        in.LastName,
		CNP:             in.CNP,
		Address:         in.Address,
		City:            in.City,
		County:          in.County,
		IDType:          in.IDType,
		IDSeries:        in.IDSeries,
		IDNumber:        in.IDNumber,
		Phone:           in.Phone,
		Email:           in.Email,
		GDPRConsent:     true,
		GDPRConsentDate: &now,
	}
	if err := s.patients.Create(ctx, p); err != nil {
		if err == repositories.ErrDuplicate {
			return nil, apperr.New(apperr.KindConflict, "Un pacient cu acest CNP există deja în această clinică")
		}
		return nil, apperr.Wrap(apperr.KindInternal, "Eroare la crearea pacientului", err)
	}
	return p, nil
}

// Get returns the patient with the newest evaluations attached. An id
// owned by another clinic reports NotFound, never the record.
func (s *PatientService) Get(ctx context.Context, clinicID, id string) (*models.Patient, error) {
	p, err := s.patients.FindByID(ctx, clinicID, id)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Eroare la obținerea pacientului", err)
	}
	if p == nil {
		return nil, apperr.New(apperr.KindNotFound, "Pacientul nu a fost găsit")
	}
	evs, err := s.evaluations.RecentByPatient(ctx, clinicID, p.ID, recentEvaluationCount)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Eroare la obținerea pacientului", err)
	}
	p.Evaluations = evs
	return p, nil
}

func (s *PatientService) List(ctx context.Context, clinicID string, q repositories.PatientListQuery) ([]models.Patient, pagination.Meta, error) {
	patients, total, err := s.patients.List(ctx, clinicID, q)
	if err != nil {
		return nil, pagination.Meta{}, apperr.Wrap(apperr.KindInternal, "Eroare la obținerea pacienților", err)
	}
	if patients == nil {
		patients = []models.Patient{}
	}
	return patients, pagination.NewMeta(total, q.Page), nil
}

// Update merges the provided fields over the stored record. The id,
// clinic and CNP are immutable through this path and are stripped
// before the merge.
func (s *PatientService) Update(ctx context.Context, clinicID, id string, fields map[string]any) (*models.Patient, error) {
	delete(fields, "id")
	delete(fields, "clinicId")
	delete(fields, "cnp")

	p, err := s.patients.FindByID(ctx, clinicID, id)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Eroare la actualizarea pacientului", err)
	}
	if p == nil {
		return nil, apperr.New(apperr.KindNotFound, "Pacientul nu a fost găsit")
	}

	if err := mergeFields(p, fields); err != nil {
		return nil, apperr.WithDetails(apperr.KindValidation, "Date de intrare invalide", err.Error())
	}
	if err := s.patients.Update(ctx, p); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Eroare la actualizarea pacientului", err)
	}
	return p, nil
}

// Archive soft-deletes the patient: the record stays for audit and
// history but drops out of default listings.
func (s *PatientService) Archive(ctx context.Context, clinicID, id string) (*models.Patient, error) {
	return s.setArchived(ctx, clinicID, id, true)
}

// Unarchive restores the patient and clears the archival timestamp.
func (s *PatientService) Unarchive(ctx context.Context, clinicID, id string) (*models.Patient, error) {
	return s.setArchived(ctx, clinicID, id, false)
}

func (s *PatientService) setArchived(ctx context.Context, clinicID, id string, archived bool) (*models.Patient, error) {
	p, err := s.patients.FindByID(ctx, clinicID, id)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Eroare la arhivarea pacientului", err)
	}
	if p == nil {
		return nil, apperr.New(apperr.KindNotFound, "Pacientul nu a fost găsit")
	}
	p.IsArchived = archived
	if archived {
		now := time.Now()
		p.ArchivedAt = &now
	} else {
		p.ArchivedAt = nil
	}
	if err := s.patients.Update(ctx, p); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Eroare la arhivarea pacientului", err)
	}
	return p, nil
}

// mergeFields overlays a partial JSON object onto dst, leaving absent
// fields untouched.
func mergeFields(dst any, fields map[string]any) error {
	b, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, dst)
}
