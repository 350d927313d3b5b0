package services

import (
	"context"
	"sync/atomic"

	"clinicore/internal/models"
	"clinicore/internal/repositories"
)

var _ repositories.PatientRepository = (*mockPatientRepo)(nil)

type mockPatientRepo struct {
	CreateFunc    func(ctx context.Context, p *models.Patient) error
	FindByIDFunc  func(ctx context.Context, clinicID, id string) (*models.Patient, error)
	FindByCNPFunc func(ctx context.Context, clinicID, cnp string) (*models.Patient, error)
	ListFunc      func(ctx context.Context, clinicID string, q repositories.PatientListQuery) ([]models.Patient, int64, error)
	SearchFunc    func(ctx context.Context, clinicID, term string, limit int) ([]repositories.PatientMatch, error)
	UpdateFunc    func(ctx context.Context, p *models.Patient) error

	CreateCalls int32
	UpdateCalls int32
}

func (m *mockPatientRepo) Create(ctx context.Context, p *models.Patient) error {
	atomic.AddInt32(&m.CreateCalls, 1)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return nil
}

func (m *mockPatientRepo) FindByID(ctx context.Context, clinicID, id string) (*models.Patient, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, clinicID, id)
	}
	return nil, nil
}

func (m *mockPatientRepo) FindByCNP(ctx context.Context, clinicID, cnp string) (*models.Patient, error) {
	if m.FindByCNPFunc != nil {
		return m.FindByCNPFunc(ctx, clinicID, cnp)
	}
	return nil, nil
}

func (m *mockPatientRepo) List(ctx context.Context, clinicID string, q repositories.PatientListQuery) ([]models.Patient, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, clinicID, q)
	}
	return nil, 0, nil
}

func (m *mockPatientRepo) Search(ctx context.Context, clinicID, term string, limit int) ([]repositories.PatientMatch, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, clinicID, term, limit)
	}
	return nil, nil
}

func (m *mockPatientRepo) Update(ctx context.Context, p *models.Patient) error {
	atomic.AddInt32(&m.UpdateCalls, 1)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

var _ repositories.EvaluationRepository = (*mockEvaluationRepo)(nil)

type mockEvaluationRepo struct {
	CreateFunc          func(ctx context.Context, ev *models.Evaluation) error
	FindByIDFunc        func(ctx context.Context, clinicID, id string) (*models.Evaluation, error)
	ListFunc            func(ctx context.Context, clinicID string, q repositories.EvaluationListQuery) ([]models.Evaluation, int64, error)
	RecentByPatientFunc func(ctx context.Context, clinicID, patientID string, limit int) ([]models.Evaluation, error)
	SearchByPatientFunc func(ctx context.Context, clinicID, term string, limit int) ([]models.Evaluation, error)
	UpdateFunc          func(ctx context.Context, ev *models.Evaluation) error

	CreateCalls int32
}

func (m *mockEvaluationRepo) Create(ctx context.Context, ev *models.Evaluation) error {
	atomic.AddInt32(&m.CreateCalls, 1)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, ev)
	}
	return nil
}

func (m *mockEvaluationRepo) FindByID(ctx context.Context, clinicID, id string) (*models.Evaluation, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, clinicID, id)
	}
	return nil, nil
}

func (m *mockEvaluationRepo) List(ctx context.Context, clinicID string, q repositories.EvaluationListQuery) ([]models.Evaluation, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, clinicID, q)
	}
	return nil, 0, nil
}

func (m *mockEvaluationRepo) RecentByPatient(ctx context.Context, clinicID, patientID string, limit int) ([]models.Evaluation, error) {
	if m.RecentByPatientFunc != nil {
		return m.RecentByPatientFunc(ctx, clinicID, patientID, limit)
	}
	return nil, nil
}

func (m *mockEvaluationRepo) SearchByPatient(ctx context.Context, clinicID, term string, limit int) ([]models.Evaluation, error) {
	if m.SearchByPatientFunc != nil {
		return m.SearchByPatientFunc(ctx, clinicID, term, limit)
	}
	return nil, nil
}

func (m *mockEvaluationRepo) Update(ctx context.Context, ev *models.Evaluation) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, ev)
	}
	return nil
}

var _ repositories.UserRepository = (*mockUserRepo)(nil)

type mockUserRepo struct {
	FindByEmailFunc func(ctx context.Context, email string) (*models.User, error)
	FindByIDFunc    func(ctx context.Context, id string) (*models.User, error)
	UpdateFunc      func(ctx context.Context, u *models.User) error

	UpdateCalls int32
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) Update(ctx context.Context, u *models.User) error {
	atomic.AddInt32(&m.UpdateCalls, 1)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

var _ repositories.ClinicRepository = (*mockClinicRepo)(nil)

type mockClinicRepo struct {
	FindByIDFunc func(ctx context.Context, id string) (*models.Clinic, error)
	UpdateFunc   func(ctx context.Context, c *models.Clinic) error
	CountsFunc   func(ctx context.Context, clinicID string) (repositories.ClinicCounts, error)
}

func (m *mockClinicRepo) FindByID(ctx context.Context, id string) (*models.Clinic, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockClinicRepo) Update(ctx context.Context, c *models.Clinic) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockClinicRepo) Counts(ctx context.Context, clinicID string) (repositories.ClinicCounts, error) {
	if m.CountsFunc != nil {
		return m.CountsFunc(ctx, clinicID)
	}
	return repositories.ClinicCounts{}, nil
}

var _ repositories.AuditRepository = (*mockAuditRepo)(nil)

type mockAuditRepo struct {
	CreateFunc func(ctx context.Context, entry *models.AuditLog) error
}

func (m *mockAuditRepo) Create(ctx context.Context, entry *models.AuditLog) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, entry)
	}
	return nil
}
