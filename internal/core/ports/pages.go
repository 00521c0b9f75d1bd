package ports

import (
	"context"

	"github.com/bloodchain/portal/internal/core/domain"
)

// DashboardView feeds the donor dashboard.
type DashboardView struct {
	Profile domain.DonorProfile
}

// ScheduleView is the schedule page state. Selected is -1 when nothing is chosen.
type ScheduleView struct {
	Slots     []domain.Slot
	Selected  int
	Confirmed bool
	Slot      domain.Slot
}

// HistoryView is the donation history with its derived totals.
type HistoryView struct {
	Donations   []domain.DonationRecord
	TotalPoints int
	Badge       domain.Badge
	Levels      []domain.Badge
}

// RewardOption is a catalogue entry annotated with affordability.
type RewardOption struct {
	domain.Reward
	Affordable bool
}

// RewardsView is the rewards page state.
type RewardsView struct {
	Balance  int
	Rewards  []RewardOption
	Redeemed []domain.Reward
}

// DonorService backs the donor pages.
type DonorService interface {
	Dashboard(ctx context.Context, sid string) (DashboardView, error)
	History(ctx context.Context, sid string) (HistoryView, error)
	Schedule(ctx context.Context, sid string) (ScheduleView, error)
	SelectSlot(ctx context.Context, sid string, index int) error
	ConfirmSlot(ctx context.Context, sid string) (domain.Slot, error)
	ResetSchedule(ctx context.Context, sid string) error
	Rewards(ctx context.Context, sid string) (RewardsView, error)
	Redeem(ctx context.Context, sid, rewardID string) (domain.Reward, error)
}

// RequestView is the blood request page state.
type RequestView struct {
	Draft     domain.BloodRequest
	Submitted bool
	RequestID string
}

// RequestService backs the blood request page.
type RequestService interface {
	Request(ctx context.Context, sid string) (RequestView, error)
	// Submit stores the draft and, when it is complete, marks it submitted and
	// returns the new request id. An incomplete draft is kept for the next render.
	Submit(ctx context.Context, sid string, draft domain.BloodRequest) (string, error)
	Reset(ctx context.Context, sid string) error
}

// UnitView is a unit annotated with its expiry countdown.
type UnitView struct {
	domain.BloodUnit
	DaysUntilExpiry int
	ExpiringSoon    bool
}

// InventoryView is the filtered unit list plus whole-inventory stats.
type InventoryView struct {
	Filter domain.InventoryFilter
	Units  []UnitView
	Stats  domain.InventoryStats
}

// InventoryService backs the inventory pages.
type InventoryService interface {
	Inventory(ctx context.Context, sid string, filter domain.InventoryFilter) (InventoryView, error)
	Unit(ctx context.Context, sid, id string) (domain.BloodUnit, error)
	UpdateUnit(ctx context.Context, sid string, upd domain.InventoryUpdate) (domain.BloodUnit, error)
}

// TrackingView is a found donation with its rendered timeline.
type TrackingView struct {
	Donation domain.TrackedDonation
	Timeline []domain.StageView
	Progress int
}

// TrackingService backs the tracking pages.
type TrackingService interface {
	Track(ctx context.Context, sid, id string) (TrackingView, error)
}

// UserService backs the admin user directory.
type UserService interface {
	Users(ctx context.Context, sid string) ([]domain.User, error)
	User(ctx context.Context, sid, id string) (domain.User, error)
	Save(ctx context.Context, sid string, edit domain.UserEdit) (domain.User, error)
}

// FlashQueue carries one-shot messages across a redirect.
type FlashQueue interface {
	AddFlash(ctx context.Context, sid, kind, msg string) error
	TakeFlashes(ctx context.Context, sid string) ([]domain.Flash, error)
}
