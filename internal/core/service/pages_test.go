package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/bloodchain/portal/internal/core/domain"
)

func TestDonorService_History(t *testing.T) {
	svc := NewDonorService(newStubWorkspaces(testFixtures()), zerolog.Nop())

	v, err := svc.History(context.Background(), "sid")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if v.TotalPoints != 250 || v.Badge.Name != "Gold Donor" || len(v.Donations) != 5 {
		t.Fatalf("unexpected history view %+v", v)
	}
}

func TestDonorService_Schedule(t *testing.T) {
	svc := NewDonorService(newStubWorkspaces(testFixtures()), zerolog.Nop())
	ctx := context.Background()

	if _, err := svc.ConfirmSlot(ctx, "sid"); !errors.Is(err, domain.ErrNoSlotSelected) {
		t.Fatalf("expected ErrNoSlotSelected, got %v", err)
	}
	if err := svc.SelectSlot(ctx, "sid", 9); !errors.Is(err, domain.ErrInvalidSlot) {
		t.Fatalf("expected ErrInvalidSlot, got %v", err)
	}
	if err := svc.SelectSlot(ctx, "sid", 1); err != nil {
		t.Fatalf("select: %v", err)
	}
	slot, err := svc.ConfirmSlot(ctx, "sid")
	if err != nil || slot.Location != "Red Cross Center" {
		t.Fatalf("unexpected confirm result %+v, %v", slot, err)
	}

	v, _ := svc.Schedule(ctx, "sid")
	if !v.Confirmed || v.Selected != 1 || v.Slot.Date != "2025-06-12" {
		t.Fatalf("unexpected schedule view %+v", v)
	}

	if err := svc.ResetSchedule(ctx, "sid"); err != nil {
		t.Fatalf("reset: %v", err)
	}
	v, _ = svc.Schedule(ctx, "sid")
	if v.Confirmed || v.Selected != -1 {
		t.Fatalf("reset did not clear schedule %+v", v)
	}
}

func TestDonorService_Redeem(t *testing.T) {
	svc := NewDonorService(newStubWorkspaces(testFixtures()), zerolog.Nop())
	ctx := context.Background()

	v, _ := svc.Rewards(ctx, "sid")
	if v.Balance != 250 || !v.Rewards[0].Affordable || v.Rewards[2].Affordable {
		t.Fatalf("unexpected initial rewards view %+v", v)
	}

	if _, err := svc.Redeem(ctx, "sid", "r006"); !errors.Is(err, domain.ErrInsufficientPoints) {
		t.Fatalf("expected ErrInsufficientPoints, got %v", err)
	}
	if _, err := svc.Redeem(ctx, "sid", "r002"); err != nil {
		t.Fatalf("redeem r002: %v", err)
	}
	if _, err := svc.Redeem(ctx, "sid", "r001"); err != nil {
		t.Fatalf("redeem r001: %v", err)
	}
	if _, err := svc.Redeem(ctx, "sid", "r001"); !errors.Is(err, domain.ErrInsufficientPoints) {
		t.Fatalf("expected ErrInsufficientPoints at zero balance, got %v", err)
	}
	if _, err := svc.Redeem(ctx, "sid", "nope"); !errors.Is(err, domain.ErrRewardNotFound) {
		t.Fatalf("expected ErrRewardNotFound, got %v", err)
	}

	v, _ = svc.Rewards(ctx, "sid")
	if v.Balance != 0 || len(v.Redeemed) != 2 {
		t.Fatalf("unexpected final rewards view %+v", v)
	}
}

func TestDonorService_SessionsAreIsolated(t *testing.T) {
	svc := NewDonorService(newStubWorkspaces(testFixtures()), zerolog.Nop())
	ctx := context.Background()

	if _, err := svc.Redeem(ctx, "a", "r002"); err != nil {
		t.Fatalf("redeem: %v", err)
	}
	v, _ := svc.Rewards(ctx, "b")
	if v.Balance != 250 {
		t.Fatalf("other session affected, balance %d", v.Balance)
	}
}

func TestRequestService_Submit(t *testing.T) {
	fixed := time.UnixMilli(1718000654321)
	svc := NewRequestService(newStubWorkspaces(testFixtures()), zerolog.Nop()).
		WithClock(func() time.Time { return fixed })
	ctx := context.Background()

	incomplete := domain.BloodRequest{PatientName: "Ana", UnitsNeeded: 3}
	if _, err := svc.Submit(ctx, "sid", incomplete); !errors.Is(err, domain.ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
	v, _ := svc.Request(ctx, "sid")
	if v.Submitted || v.Draft.PatientName != "Ana" || v.Draft.UnitsNeeded != 3 {
		t.Fatalf("draft should survive a failed submit, got %+v", v)
	}

	complete := domain.BloodRequest{
		PatientName: "Ana", BloodType: "O-", UrgencyLevel: "Critical", UnitsNeeded: 2,
		HospitalName: "City Hospital", ContactNumber: "555", RequiredBy: "2025-07-01",
	}
	id, err := svc.Submit(ctx, "sid", complete)
	if err != nil || id != "BR654321" {
		t.Fatalf("unexpected submit result %q, %v", id, err)
	}

	if err := svc.Reset(ctx, "sid"); err != nil {
		t.Fatalf("reset: %v", err)
	}
	v, _ = svc.Request(ctx, "sid")
	if v.Submitted || v.RequestID != "" || v.Draft.PatientName != "" || v.Draft.UnitsNeeded != 1 {
		t.Fatalf("reset should restore an empty draft, got %+v", v)
	}
}

func TestInventoryService(t *testing.T) {
	now := time.Date(2025, 1, 5, 12, 0, 0, 0, time.UTC)
	svc := NewInventoryService(newStubWorkspaces(testFixtures()), zerolog.Nop()).
		WithClock(func() time.Time { return now })
	ctx := context.Background()

	v, err := svc.Inventory(ctx, "sid", domain.InventoryFilter{Status: "Available"})
	if err != nil {
		t.Fatalf("inventory: %v", err)
	}
	if len(v.Units) != 1 || v.Units[0].ID != "BU001" || v.Units[0].DaysUntilExpiry != 9 {
		t.Fatalf("unexpected filtered units %+v", v.Units)
	}
	if v.Stats.Total != 3 || v.Stats.ExpiringSoon != 1 || v.Stats.Expired != 1 {
		t.Fatalf("stats must cover the whole inventory, got %+v", v.Stats)
	}

	unit, err := svc.UpdateUnit(ctx, "sid", domain.InventoryUpdate{UnitID: "BU002", Action: domain.ActionUse, Reason: "surgery"})
	if err != nil || unit.Status != domain.UnitUsed {
		t.Fatalf("unexpected update result %+v, %v", unit, err)
	}
	if got, _ := svc.Unit(ctx, "sid", "BU002"); got.Status != domain.UnitUsed {
		t.Fatalf("update not persisted, got %+v", got)
	}

	if _, err := svc.UpdateUnit(ctx, "sid", domain.InventoryUpdate{UnitID: "BU999", Action: domain.ActionUse, Reason: "x"}); !errors.Is(err, domain.ErrUnitNotFound) {
		t.Fatalf("expected ErrUnitNotFound, got %v", err)
	}
	if _, err := svc.Unit(ctx, "sid", "BU999"); !errors.Is(err, domain.ErrUnitNotFound) {
		t.Fatalf("expected ErrUnitNotFound, got %v", err)
	}
}

func TestTrackingService(t *testing.T) {
	svc := NewTrackingService(newStubWorkspaces(testFixtures()), zerolog.Nop())
	ctx := context.Background()

	v, err := svc.Track(ctx, "sid", "don001")
	if err != nil {
		t.Fatalf("track: %v", err)
	}
	if v.Progress != 83 || len(v.Timeline) != 6 || !v.Donation.TestsPassed() {
		t.Fatalf("unexpected tracking view %+v", v)
	}

	if _, err := svc.Track(ctx, "sid", ""); !errors.Is(err, domain.ErrEmptyDonationID) {
		t.Fatalf("expected ErrEmptyDonationID, got %v", err)
	}
	if _, err := svc.Track(ctx, "sid", "DON404"); !errors.Is(err, domain.ErrDonationNotFound) {
		t.Fatalf("expected ErrDonationNotFound, got %v", err)
	}
}

func TestUserService_Save(t *testing.T) {
	svc := NewUserService(newStubWorkspaces(testFixtures()), zerolog.Nop())
	ctx := context.Background()

	u, err := svc.Save(ctx, "sid", domain.UserEdit{ID: "U001", Name: "Johnny", Email: "j@x.com", Role: domain.RoleDonor, BloodType: "O-"})
	if err != nil || u.Name != "Johnny" {
		t.Fatalf("unexpected save result %+v, %v", u, err)
	}
	users, _ := svc.Users(ctx, "sid")
	if users[0].BloodType != "O-" {
		t.Fatalf("user not replaced, got %+v", users[0])
	}

	if _, err := svc.Save(ctx, "sid", domain.UserEdit{ID: "U001", Role: domain.RoleDonor}); !errors.Is(err, domain.ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
	if _, err := svc.User(ctx, "sid", "U404"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestFlashService(t *testing.T) {
	svc := NewFlashService(newStubWorkspaces(testFixtures()))
	ctx := context.Background()

	_ = svc.AddFlash(ctx, "sid", domain.FlashSuccess, "saved")
	got, err := svc.TakeFlashes(ctx, "sid")
	if err != nil || len(got) != 1 || got[0].Message != "saved" {
		t.Fatalf("unexpected flashes %+v, %v", got, err)
	}
	if again, _ := svc.TakeFlashes(ctx, "sid"); len(again) != 0 {
		t.Fatalf("flashes should be consumed, got %+v", again)
	}
}
