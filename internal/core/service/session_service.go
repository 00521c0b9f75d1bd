package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bloodchain/portal/internal/core/domain"
	"github.com/bloodchain/portal/internal/core/ports"
)

// SessionService reads and writes the portal session through a SessionStore.
type SessionService struct {
	store       ports.SessionStore
	defaultRole domain.Role
	log         zerolog.Logger
}

func NewSessionService(store ports.SessionStore, defaultRole domain.Role, log zerolog.Logger) *SessionService {
	if !defaultRole.Valid() {
		defaultRole = domain.RoleDonor
	}
	return &SessionService{store: store, defaultRole: defaultRole, log: log}
}

// DefaultRole is the role assumed when nothing valid is stored.
func (s *SessionService) DefaultRole() domain.Role { return s.defaultRole }

// Current rebuilds the session from the store. Missing or malformed fields
// yield the default role, logged out.
func (s *SessionService) Current(ctx context.Context, sid string) (domain.Session, error) {
	fields, err := s.store.Read(ctx, sid)
	if err != nil {
		return domain.AnonymousSession(s.defaultRole), fmt.Errorf("read session: %w", err)
	}
	return domain.SessionFromFields(fields, s.defaultRole), nil
}

// Login records role and identifier and marks the session logged in.
func (s *SessionService) Login(ctx context.Context, sid string, role domain.Role, identifier string) (domain.Session, error) {
	if !role.Valid() {
		return domain.Session{}, domain.ErrInvalidRole
	}

	sess := domain.Session{Role: role, LoggedIn: true, User: identifier}
	if err := s.store.Write(ctx, sid, sess.Fields()); err != nil {
		s.log.Error().Err(err).Str("role", string(role)).Msg("failed to persist login")
		return domain.Session{}, fmt.Errorf("login: %w", err)
	}

	s.log.Info().Str("role", string(role)).Str("user", identifier).Msg("logged in")
	return sess, nil
}

// Logout removes all three persisted fields.
func (s *SessionService) Logout(ctx context.Context, sid string) error {
	if err := s.store.Clear(ctx, sid); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	s.log.Info().Msg("logged out")
	return nil
}

// SwitchRole changes the active role of a logged-in session and persists it.
func (s *SessionService) SwitchRole(ctx context.Context, sid string, role domain.Role) (domain.Session, error) {
	if !role.Valid() {
		return domain.Session{}, domain.ErrInvalidRole
	}

	sess, err := s.Current(ctx, sid)
	if err != nil {
		return domain.Session{}, err
	}
	if !sess.LoggedIn {
		return sess, domain.ErrNotLoggedIn
	}

	from := sess.Role
	sess.Role = role
	if err := s.store.Write(ctx, sid, sess.Fields()); err != nil {
		return domain.Session{}, fmt.Errorf("switch role: %w", err)
	}

	s.log.Info().Str("from", string(from)).Str("to", string(role)).Msg("role switched")
	return sess, nil
}
