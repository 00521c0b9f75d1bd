package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bloodchain/portal/internal/core/domain"
	"github.com/bloodchain/portal/internal/core/ports"
)

// UserService manages the admin's in-memory user directory.
type UserService struct {
	workspaces ports.WorkspaceStore
	log        zerolog.Logger
}

func NewUserService(workspaces ports.WorkspaceStore, log zerolog.Logger) *UserService {
	return &UserService{workspaces: workspaces, log: log}
}

func (s *UserService) Users(ctx context.Context, sid string) ([]domain.User, error) {
	var users []domain.User
	err := s.workspaces.Update(ctx, sid, func(ws *domain.Workspace) error {
		users = append([]domain.User(nil), ws.Data.Users...)
		return nil
	})
	return users, err
}

func (s *UserService) User(ctx context.Context, sid, id string) (domain.User, error) {
	var user domain.User
	err := s.workspaces.Update(ctx, sid, func(ws *domain.Workspace) error {
		u, ok := domain.FindUser(ws.Data.Users, id)
		if !ok {
			return domain.ErrUserNotFound
		}
		user = u
		return nil
	})
	return user, err
}

// Save replaces the user with the edit's id.
func (s *UserService) Save(ctx context.Context, sid string, edit domain.UserEdit) (domain.User, error) {
	if strings.TrimSpace(edit.Name) == "" || strings.TrimSpace(edit.Email) == "" || !edit.Role.Valid() {
		return domain.User{}, domain.ErrMissingFields
	}

	var user domain.User
	err := s.workspaces.Update(ctx, sid, func(ws *domain.Workspace) error {
		var err error
		user, err = domain.ReplaceUser(ws.Data.Users, edit)
		return err
	})
	if err != nil {
		return domain.User{}, err
	}
	s.log.Info().Str("user", user.ID).Str("role", string(user.Role)).Msg("user updated")
	return user, nil
}
