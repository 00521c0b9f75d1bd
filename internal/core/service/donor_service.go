package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bloodchain/portal/internal/core/domain"
	"github.com/bloodchain/portal/internal/core/ports"
)

// DonorService serves the donor dashboard, history, schedule and rewards pages
// from the session workspace.
type DonorService struct {
	workspaces ports.WorkspaceStore
	log        zerolog.Logger
}

func NewDonorService(workspaces ports.WorkspaceStore, log zerolog.Logger) *DonorService {
	return &DonorService{workspaces: workspaces, log: log}
}

func (s *DonorService) Dashboard(ctx context.Context, sid string) (ports.DashboardView, error) {
	var v ports.DashboardView
	err := s.workspaces.Update(ctx, sid, func(ws *domain.Workspace) error {
		v.Profile = ws.Data.DonorProfile
		return nil
	})
	return v, err
}

// History returns the donations with the points total and the badge it earns.
func (s *DonorService) History(ctx context.Context, sid string) (ports.HistoryView, error) {
	var v ports.HistoryView
	err := s.workspaces.Update(ctx, sid, func(ws *domain.Workspace) error {
		v.Donations = append([]domain.DonationRecord(nil), ws.Data.History...)
		v.TotalPoints = domain.TotalPoints(ws.Data.History)
		v.Badge = domain.BadgeFor(v.TotalPoints)
		v.Levels = domain.BadgeLevels
		return nil
	})
	return v, err
}

func (s *DonorService) Schedule(ctx context.Context, sid string) (ports.ScheduleView, error) {
	var v ports.ScheduleView
	err := s.workspaces.Update(ctx, sid, func(ws *domain.Workspace) error {
		v.Slots = append([]domain.Slot(nil), ws.Data.Slots...)
		v.Selected = ws.Schedule.Selected
		v.Confirmed = ws.Schedule.Confirmed
		v.Slot, _ = ws.Schedule.SelectedSlot(ws.Data.Slots)
		return nil
	})
	return v, err
}

func (s *DonorService) SelectSlot(ctx context.Context, sid string, index int) error {
	return s.workspaces.Update(ctx, sid, func(ws *domain.Workspace) error {
		return ws.Schedule.Select(ws.Data.Slots, index)
	})
}

// ConfirmSlot books the selected slot. Without a selection it fails with
// domain.ErrNoSlotSelected and leaves the state as it was.
func (s *DonorService) ConfirmSlot(ctx context.Context, sid string) (domain.Slot, error) {
	var slot domain.Slot
	err := s.workspaces.Update(ctx, sid, func(ws *domain.Workspace) error {
		var err error
		slot, err = ws.Schedule.Confirm(ws.Data.Slots)
		return err
	})
	if err != nil {
		return domain.Slot{}, err
	}
	s.log.Info().Str("date", slot.Date).Str("time", slot.Time).Msg("donation scheduled")
	return slot, nil
}

func (s *DonorService) ResetSchedule(ctx context.Context, sid string) error {
	return s.workspaces.Update(ctx, sid, func(ws *domain.Workspace) error {
		ws.Schedule.Reset()
		return nil
	})
}

func (s *DonorService) Rewards(ctx context.Context, sid string) (ports.RewardsView, error) {
	var v ports.RewardsView
	err := s.workspaces.Update(ctx, sid, func(ws *domain.Workspace) error {
		v.Balance = ws.Wallet.Balance
		v.Redeemed = append([]domain.Reward(nil), ws.Wallet.Redeemed...)
		v.Rewards = make([]ports.RewardOption, 0, len(ws.Data.Rewards))
		for _, r := range ws.Data.Rewards {
			v.Rewards = append(v.Rewards, ports.RewardOption{Reward: r, Affordable: ws.Wallet.CanAfford(r)})
		}
		return nil
	})
	return v, err
}

// Redeem spends points on a catalogue item. An unaffordable item fails with
// domain.ErrInsufficientPoints and the balance is unchanged.
func (s *DonorService) Redeem(ctx context.Context, sid, rewardID string) (domain.Reward, error) {
	var reward domain.Reward
	var balance int
	err := s.workspaces.Update(ctx, sid, func(ws *domain.Workspace) error {
		r, err := domain.FindReward(ws.Data.Rewards, rewardID)
		if err != nil {
			return err
		}
		if err := ws.Wallet.Redeem(r); err != nil {
			return err
		}
		reward, balance = r, ws.Wallet.Balance
		return nil
	})
	if err != nil {
		return domain.Reward{}, err
	}
	s.log.Info().Str("reward", reward.ID).Int("balance", balance).Msg("reward redeemed")
	return reward, nil
}
