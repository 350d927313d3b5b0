package auth

import (
	"context"

	"clinicore/internal/models"
)

type ctxKey string

const identityKey ctxKey = "identity"

// Identity is the resolved acting user and their clinic, attached to
// the request context by the authentication middleware. It is the
// sole source of tenant scope for everything downstream.
type Identity struct {
	User   *models.User
	Clinic *models.Clinic
}

func (id Identity) ClinicID() string {
	if id.Clinic == nil {
		return ""
	}
	return id.Clinic.ID
}

func (id Identity) UserID() string {
	if id.User == nil {
		return ""
	}
	return id.User.ID
}

func (id Identity) HasRole(roles ...models.Role) bool {
	if id.User == nil {
		return false
	}
	for _, r := range roles {
		if id.User.Role == r {
			return true
		}
	}
	return false
}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

func IdentityFromContext(ctx context.Context) Identity {
	if v, ok := ctx.Value(identityKey).(Identity); ok {
		return v
	}
	return Identity{}
}
