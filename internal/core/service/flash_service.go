package service

import (
	"context"

	"github.com/bloodchain/portal/internal/core/domain"
	"github.com/bloodchain/portal/internal/core/ports"
)

// FlashService queues one-shot messages in the session workspace.
type FlashService struct {
	workspaces ports.WorkspaceStore
}

func NewFlashService(workspaces ports.WorkspaceStore) *FlashService {
	return &FlashService{workspaces: workspaces}
}

func (s *FlashService) AddFlash(ctx context.Context, sid, kind, msg string) error {
	return s.workspaces.Update(ctx, sid, func(ws *domain.Workspace) error {
		ws.AddFlash(kind, msg)
		return nil
	})
}

func (s *FlashService) TakeFlashes(ctx context.Context, sid string) ([]domain.Flash, error) {
	var flashes []domain.Flash
	err := s.workspaces.Update(ctx, sid, func(ws *domain.Workspace) error {
		flashes = ws.TakeFlashes()
		return nil
	})
	return flashes, err
}
