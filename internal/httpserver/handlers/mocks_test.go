package handlers

import (
	"context"

	"clinicore/internal/models"
	"clinicore/internal/repositories"
)

var _ repositories.PatientRepository = (*mockPatientRepo)(nil)

type mockPatientRepo struct {
	FindByIDFunc func(ctx context.Context, clinicID, id string) (*models.Patient, error)
	UpdateFunc   func(ctx context.Context, p *models.Patient) error
}

func (m *mockPatientRepo) Create(context.Context, *models.Patient) error { return nil }

func (m *mockPatientRepo) FindByID(ctx context.Context, clinicID, id string) (*models.Patient, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, clinicID, id)
	}
	return nil, nil
}

func (m *mockPatientRepo) FindByCNP(context.Context, string, string) (*models.Patient, error) {
	return nil, nil
}

func (m *mockPatientRepo) List(context.Context, string, repositories.PatientListQuery) ([]models.Patient, int64, error) {
	return nil, 0, nil
}

func (m *mockPatientRepo) Search(context.Context, string, string, int) ([]repositories.PatientMatch, error) {
	return nil, nil
}

func (m *mockPatientRepo) Update(ctx context.Context, p *models.Patient) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

var _ repositories.EvaluationRepository = (*mockEvaluationRepo)(nil)

type mockEvaluationRepo struct {
	FindByIDFunc func(ctx context.Context, clinicID, id string) (*models.Evaluation, error)
	UpdateFunc   func(ctx context.Context, ev *models.Evaluation) error
}

func (m *mockEvaluationRepo) Create(context.Context, *models.Evaluation) error { return nil }

func (m *mockEvaluationRepo) FindByID(ctx context.Context, clinicID, id string) (*models.Evaluation, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, clinicID, id)
	}
	return nil, nil
}

func (m *mockEvaluationRepo) List(context.Context, string, repositories.EvaluationListQuery) ([]models.Evaluation, int64, error) {
	return nil, 0, nil
}

func (m *mockEvaluationRepo) RecentByPatient(context.Context, string, string, int) ([]models.Evaluation, error) {
	return nil, nil
}

func (m *mockEvaluationRepo) SearchByPatient(context.Context, string, string, int) ([]models.Evaluation, error) {
	return nil, nil
}

func (m *mockEvaluationRepo) Update(ctx context.Context, ev *models.Evaluation) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, ev)
	}
	return nil
}

var _ repositories.AuditRepository = (*nopAuditRepo)(nil)

type nopAuditRepo struct{}

func (nopAuditRepo) Create(context.Context, *models.AuditLog) error { return nil }
