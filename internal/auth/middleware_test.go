package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"clinicore/internal/models"
	"clinicore/internal/repositories"
)

var _ repositories.UserRepository = (*mockUserRepo)(nil)

type mockUserRepo struct {
	FindByEmailFunc func(ctx context.Context, email string) (*models.User, error)
	FindByIDFunc    func(ctx context.Context, id string) (*models.User, error)
	UpdateFunc      func(ctx context.Context, u *models.User) error
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

func activeFixtures() (*mockUserRepo, *mockClinicRepo) {
	users := &mockUserRepo{
		FindByIDFunc: func(_ context.Context, id string) (*models.User, error) {
			return &models.User{ID: id, ClinicID: "clinic-1", Role: models.RoleDoctor, IsActive: true}, nil
		},
	}
	clinics := &mockClinicRepo{
		FindByIDFunc: func(_ context.Context, id string) (*models.Clinic, error) {
			return &models.Clinic{ID: id, Name: "Clinica Demo", IsActive: true}, nil
		},
	}
	return users, clinics
}

func authHandler(t *testing.T, issuer *TokenIssuer, users repositories.UserRepository, clinics repositories.ClinicRepository) http.Handler {
	t.Helper()
	mw := Authenticate(issuer, users, clinics, zap.NewNop().Sugar())
	return mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := IdentityFromContext(r.Context())
		assert.Equal(t, "clinic-1", id.ClinicID())
		w.WriteHeader(http.StatusOK)
	}))
}

func TestAuthenticateMissingToken(t *testing.T) {
	issuer := NewTokenIssuer("s", time.Hour)
	users, clinics := activeFixtures()

	rec := httptest.NewRecorder()
	authHandler(t, issuer, users, clinics).ServeHTTP(rec, httptest.NewRequest("GET", "/api/patients", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Token de autentificare lipsă")
}

func TestAuthenticateInvalidToken(t *testing.T) {
	issuer := NewTokenIssuer("s", time.Hour)
	users, clinics := activeFixtures()

	req := httptest.NewRequest("GET", "/api/patients", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	rec := httptest.NewRecorder()
	authHandler(t, issuer, users, clinics).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Token invalid")
}

func TestAuthenticateExpiredToken(t *testing.T) {
	issuer := NewTokenIssuer("s", -time.Minute)
	users, clinics := activeFixtures()

	tok, err := issuer.Sign("user-1", "clinic-1")
	require.NoError(t, err)
	req := httptest.NewRequest("GET", "/api/patients", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	authHandler(t, issuer, users, clinics).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Token expirat")
}

func TestAuthenticateInactiveUser(t *testing.T) {
	issuer := NewTokenIssuer("s", time.Hour)
	users, clinics := activeFixtures()
	users.FindByIDFunc = func(_ context.Context, id string) (*models.User, error) {
		return &models.User{ID: id, ClinicID: "clinic-1", IsActive: false}, nil
	}

	tok, _ := issuer.Sign("user-1", "clinic-1")
	req := httptest.NewRequest("GET", "/api/patients", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	authHandler(t, issuer, users, clinics).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Utilizator invalid sau inactiv")
}

func TestAuthenticateInactiveClinic(t *testing.T) {
	issuer := NewTokenIssuer("s", time.Hour)
	users, clinics := activeFixtures()
	clinics.FindByIDFunc = func(_ context.Context, id string) (*models.Clinic, error) {
		return &models.Clinic{ID: id, IsActive: false}, nil
	}

	tok, _ := issuer.Sign("user-1", "clinic-1")
	req := httptest.NewRequest("GET", "/api/patients", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	authHandler(t, issuer, users, clinics).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Clinica este inactivă")
}

func TestAuthenticateSuccessAttachesIdentity(t *testing.T) {
	issuer := NewTokenIssuer("s", time.Hour)
	users, clinics := activeFixtures()

	tok, _ := issuer.Sign("user-1", "clinic-1")
	req := httptest.NewRequest("GET", "/api/patients", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	authHandler(t, issuer, users, clinics).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRole(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	guarded := RequireRole(models.RoleAdmin, models.RoleDoctor)(next)

	run := func(role models.Role) int {
		id := Identity{User: &models.User{ID: "u", Role: role}}
		req := httptest.NewRequest("POST", "/api/patients/p1/archive", nil)
		req = req.WithContext(WithIdentity(req.Context(), id))
		rec := httptest.NewRecorder()
		guarded.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, run(models.RoleAdmin))
	assert.Equal(t, http.StatusOK, run(models.RoleDoctor))
	assert.Equal(t, http.StatusForbidden, run(models.RoleAssistant))
}

func TestRequireRoleNoIdentity(t *testing.T) {
	guarded := RequireRole(models.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	rec := httptest.NewRecorder()
	guarded.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
