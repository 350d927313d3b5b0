package services

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"clinicore/internal/apperr"
	"clinicore/internal/auth"
	"clinicore/internal/models"
	"clinicore/internal/repositories"
)

const minPasswordLength = 8

// ClinicSummary is the clinic slice of a login/me response.
type ClinicSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UserSummary is the user+clinic payload returned on login and from
// the "me" endpoint. It never carries the password hash.
type UserSummary struct {
	ID        string        `json:"id"`
	Email     string        `json:"email"`
	FirstName string        `json:"firstName"`
	LastName  string        `json:"lastName"`
	Role      models.Role   `json:"role"`
	Clinic    ClinicSummary `json:"clinic"`
}

type LoginResult struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}

type AuthService struct {
	users   repositories.UserRepository
	clinics repositories.ClinicRepository
	issuer  *auth.TokenIssuer
	lg      *zap.SugaredLogger
}

func NewAuthService(users repositories.UserRepository, clinics repositories.ClinicRepository, issuer *auth.TokenIssuer, lg *zap.SugaredLogger) *AuthService {
	return &AuthService{users: users, clinics: clinics, issuer: issuer, lg: lg}
}

// Login verifies the credentials and issues a bearer token scoped to
// the user's clinic. Unknown emails and wrong passwords are
// indistinguishable to the caller; inactive accounts and clinics are
// rejected even with correct credentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if email == "" || password == "" {
		return nil, apperr.New(apperr.KindValidation, "Email și parolă sunt obligatorii")
	}

	user, err := s.users.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Eroare la autentificare", err)
	}
	if user == nil {
		return nil, apperr.New(apperr.KindUnauthenticated, "Credențiale invalide")
	}
	if err := auth.CheckPassword(user.PasswordHash, password); err != nil {
		return nil, apperr.New(apperr.KindUnauthenticated, "Credențiale invalide")
	}
	if !user.IsActive {
		return nil, apperr.New(apperr.KindForbidden, "Contul este inactiv")
	}

	clinic, err := s.clinics.FindByID(ctx, user.ClinicID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Eroare la autentificare", err)
	}
	if clinic == nil || !clinic.IsActive {
		return nil, apperr.New(apperr.KindForbidden, "Clinica este inactivă")
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := s.users.Update(ctx, user); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Eroare la autentificare", err)
	}

	token, err := s.issuer.Sign(user.ID, user.ClinicID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Eroare la autentificare", err)
	}
	return &LoginResult{Token: token, User: Summarize(user, clinic)}, nil
}

// ChangePassword replaces the acting user's password after verifying
// the current one.
func (s *AuthService) ChangePassword(ctx context.Context, user *models.User, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return apperr.New(apperr.KindValidation, "Ambele parole sunt obligatorii")
	}
	if utf8.RuneCountInString(newPassword) < minPasswordLength {
		return apperr.New(apperr.KindValidation, "Parola nouă trebuie să aibă cel puțin 8 caractere")
	}
	if err := auth.CheckPassword(user.PasswordHash, currentPassword); err != nil {
		return apperr.New(apperr.KindUnauthenticated, "Parola curentă este incorectă")
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "Eroare la schimbarea parolei", err)
	}
	user.PasswordHash = hash
	if err := s.users.Update(ctx, user); err != nil {
		return apperr.Wrap(apperr.KindInternal, "Eroare la schimbarea parolei", err)
	}
	return nil
}

// Summarize builds the user+clinic summary exposed over the API.
func Summarize(user *models.User, clinic *models.Clinic) UserSummary {
	return UserSummary{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
		Clinic:    ClinicSummary{ID: clinic.ID, Name: clinic.Name},
	}
}
