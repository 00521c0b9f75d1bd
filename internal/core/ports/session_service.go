package ports

import (
	"context"

	"github.com/bloodchain/portal/internal/core/domain"
)

// SessionService implements login, logout and role selection on top of a SessionStore.
type SessionService interface {
	Current(ctx context.Context, sid string) (domain.Session, error)
	Login(ctx context.Context, sid string, role domain.Role, identifier string) (domain.Session, error)
	Logout(ctx context.Context, sid string) error
	SwitchRole(ctx context.Context, sid string, role domain.Role) (domain.Session, error)
}
