package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bloodchain/portal/internal/core/domain"
	"github.com/bloodchain/portal/internal/core/ports"
)

// TrackingService looks donations up by id.
type TrackingService struct {
	workspaces ports.WorkspaceStore
	log        zerolog.Logger
}

func NewTrackingService(workspaces ports.WorkspaceStore, log zerolog.Logger) *TrackingService {
	return &TrackingService{workspaces: workspaces, log: log}
}

func (s *TrackingService) Track(ctx context.Context, sid, id string) (ports.TrackingView, error) {
	var v ports.TrackingView
	err := s.workspaces.Update(ctx, sid, func(ws *domain.Workspace) error {
		d, err := domain.FindDonation(ws.Data.Donations, id)
		if err != nil {
			return err
		}
		v = ports.TrackingView{Donation: d, Timeline: d.Timeline(), Progress: d.Status.Progress()}
		return nil
	})
	if err != nil {
		s.log.Debug().Err(err).Str("donation", id).Msg("tracking lookup failed")
		return ports.TrackingView{}, err
	}
	return v, nil
}
