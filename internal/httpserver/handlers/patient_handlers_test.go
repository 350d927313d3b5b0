package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"clinicore/internal/auth"
	"clinicore/internal/models"
	"clinicore/internal/services"
)

func testIdentity() auth.Identity {
	return auth.Identity{
		User:   &models.User{ID: "u1", Role: models.RoleDoctor},
		Clinic: &models.Clinic{ID: "c1", IsActive: true},
	}
}

func TestArchivePatientReturnsRecordAlone(t *testing.T) {
	lg := zap.NewNop().Sugar()
	patients := &mockPatientRepo{
		FindByIDFunc: func(_ context.Context, clinicID, id string) (*models.Patient, error) {
			return &models.Patient{ID: id, ClinicID: clinicID, FirstName: "Ion", LastName: "Pop"}, nil
		},
	}
	svc := services.NewPatientService(patients, &mockEvaluationRepo{}, lg)
	audit := services.NewAuditService(nopAuditRepo{}, lg)

	router := chi.NewRouter()
	router.Post("/patients/{id}/archive", ArchivePatient(svc, audit, lg))

	r := httptest.NewRequest("POST", "/patients/p1/archive", nil)
	r = r.WithContext(auth.WithIdentity(r.Context(), testIdentity()))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	audit.Drain()

	assert.Equal(t, 200, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	// the updated record is the body itself, no message envelope
	assert.Equal(t, "p1", body["id"])
	assert.Equal(t, true, body["isArchived"])
	assert.NotContains(t, body, "message")
	assert.NotContains(t, body, "patient")
}

func TestUnarchivePatientReturnsRecordAlone(t *testing.T) {
	lg := zap.NewNop().Sugar()
	patients := &mockPatientRepo{
		FindByIDFunc: func(_ context.Context, clinicID, id string) (*models.Patient, error) {
			return &models.Patient{ID: id, ClinicID: clinicID, IsArchived: true}, nil
		},
	}
	svc := services.NewPatientService(patients, &mockEvaluationRepo{}, lg)
	audit := services.NewAuditService(nopAuditRepo{}, lg)

	router := chi.NewRouter()
	router.Post("/patients/{id}/unarchive", UnarchivePatient(svc, audit, lg))

	r := httptest.NewRequest("POST", "/patients/p1/unarchive", nil)
	r = r.WithContext(auth.WithIdentity(r.Context(), testIdentity()))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	audit.Drain()

	assert.Equal(t, 200, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "p1", body["id"])
	assert.Equal(t, false, body["isArchived"])
	assert.NotContains(t, body, "message")
}
