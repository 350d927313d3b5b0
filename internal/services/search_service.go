package services

import (
	"context"
	"sync"
	"unicode/utf8"

	"go.uber.org/zap"

	"clinicore/internal/apperr"
	"clinicore/internal/models"
	"clinicore/internal/repositories"
	"clinicore/pkg/pagination"
)

// Search scopes.
const (
	SearchAll         = "all"
	SearchPatients    = "patients"
	SearchEvaluations = "evaluations"
)

const minQueryLength = 2

// SearchResults carries the two subsearch result lists; they are
// never merged or ranked together. Patient hits include the number of
// evaluations on record.
type SearchResults struct {
	Patients    []repositories.PatientMatch `json:"patients"`
	Evaluations []models.Evaluation         `json:"evaluations"`
}

type SearchService struct {
	patients    repositories.PatientRepository
	evaluations repositories.EvaluationRepository
	lg          *zap.SugaredLogger
}

func NewSearchService(patients repositories.PatientRepository, evaluations repositories.EvaluationRepository, lg *zap.SugaredLogger) *SearchService {
	return &SearchService{patients: patients, evaluations: evaluations, lg: lg}
}

// Search runs the patient and evaluation subsearches concurrently,
// each scoped to the clinic and excluding archived records.
func (s *SearchService) Search(ctx context.Context, clinicID, query, scope string, limit int) (*SearchResults, error) {
	if utf8.RuneCountInString(query) < minQueryLength {
		return nil, apperr.New(apperr.KindValidation, "Interogarea trebuie să conțină cel puțin 2 caractere")
	}
	if limit <= 0 {
		limit = pagination.DefaultLimit
	}
	if limit > pagination.MaxLimit {
		limit = pagination.MaxLimit
	}
	if scope == "" {
		scope = SearchAll
	}

	results := &SearchResults{
		Patients:    []repositories.PatientMatch{},
		Evaluations: []models.Evaluation{},
	}

	var wg sync.WaitGroup
	var patientErr, evaluationErr error

	if scope == SearchAll || scope == SearchPatients {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var found []repositories.PatientMatch
			found, patientErr = s.patients.Search(ctx, clinicID, query, limit)
			if len(found) > 0 {
				results.Patients = found
			}
		}()
	}
	if scope == SearchAll || scope == SearchEvaluations {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var found []models.Evaluation
			found, evaluationErr = s.evaluations.SearchByPatient(ctx, clinicID, query, limit)
			if len(found) > 0 {
				results.Evaluations = found
			}
		}()
	}
	wg.Wait()

	if patientErr != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Eroare la căutare", patientErr)
	}
	if evaluationErr != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Eroare la căutare", evaluationErr)
	}
	return results, nil
}
