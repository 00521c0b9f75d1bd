package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/bloodchain/portal/internal/core/domain"
	"github.com/bloodchain/portal/internal/core/ports"
)

// RequestService handles the recipient's blood request form.
type RequestService struct {
	workspaces ports.WorkspaceStore
	now        func() time.Time
	log        zerolog.Logger
}

func NewRequestService(workspaces ports.WorkspaceStore, log zerolog.Logger) *RequestService {
	return &RequestService{workspaces: workspaces, now: time.Now, log: log}
}

// WithClock replaces the time source used for request ids.
func (s *RequestService) WithClock(now func() time.Time) *RequestService {
	s.now = now
	return s
}

func (s *RequestService) Request(ctx context.Context, sid string) (ports.RequestView, error) {
	var v ports.RequestView
	err := s.workspaces.Update(ctx, sid, func(ws *domain.Workspace) error {
		v = ports.RequestView{
			Draft:     ws.Request.Draft,
			Submitted: ws.Request.Submitted,
			RequestID: ws.Request.RequestID,
		}
		return nil
	})
	return v, err
}

func (s *RequestService) Submit(ctx context.Context, sid string, draft domain.BloodRequest) (string, error) {
	var id string
	err := s.workspaces.Update(ctx, sid, func(ws *domain.Workspace) error {
		ws.Request.Draft = draft
		if err := draft.Validate(); err != nil {
			return err
		}
		id = domain.RequestID(s.now())
		ws.Request.Submitted = true
		ws.Request.RequestID = id
		return nil
	})
	if err != nil {
		return "", err
	}
	s.log.Info().
		Str("request_id", id).
		Str("blood_type", draft.BloodType).
		Str("urgency", draft.UrgencyLevel).
		Int("units", draft.UnitsNeeded).
		Msg("blood request submitted")
	return id, nil
}

// Reset clears the draft and the confirmation ("submit another").
func (s *RequestService) Reset(ctx context.Context, sid string) error {
	return s.workspaces.Update(ctx, sid, func(ws *domain.Workspace) error {
		ws.Request = domain.NewRequestState()
		return nil
	})
}
