package service

import (
	"context"
	"errors"

	"github.com/bloodchain/portal/internal/core/domain"
	"github.com/bloodchain/portal/internal/core/ports"
)

var (
	_ ports.SessionService   = (*SessionService)(nil)
	_ ports.Navigator        = (*Gate)(nil)
	_ ports.DonorService     = (*DonorService)(nil)
	_ ports.RequestService   = (*RequestService)(nil)
	_ ports.InventoryService = (*InventoryService)(nil)
	_ ports.TrackingService  = (*TrackingService)(nil)
	_ ports.UserService      = (*UserService)(nil)
	_ ports.FlashQueue       = (*FlashService)(nil)
)

// ---------------------------------------------------------------------------
// In-memory stub session store
// ---------------------------------------------------------------------------

type stubSessionStore struct {
	data     map[string]map[string]string
	writeErr error
	readErr  error
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{data: make(map[string]map[string]string)}
}

func (s *stubSessionStore) Read(_ context.Context, sid string) (map[string]string, error) {
	if s.readErr != nil {
		return nil, s.readErr
	}
	out := make(map[string]string, len(s.data[sid]))
	for k, v := range s.data[sid] {
		out[k] = v
	}
	return out, nil
}

func (s *stubSessionStore) Write(_ context.Context, sid string, fields map[string]string) error {
	if s.writeErr != nil {
		return s.writeErr
	}
	m := make(map[string]string, len(fields))
	s.data[sid] = m
	for k, v := range fields {
		m[k] = v
	}
	return nil
}

func (s *stubSessionStore) Clear(_ context.Context, sid string) error {
	delete(s.data, sid)
	return nil
}

// ---------------------------------------------------------------------------
// Stub workspace store
// ---------------------------------------------------------------------------

type stubWorkspaces struct {
	fixtures domain.Fixtures
	byID     map[string]*domain.Workspace
}

func newStubWorkspaces(f domain.Fixtures) *stubWorkspaces {
	return &stubWorkspaces{fixtures: f, byID: make(map[string]*domain.Workspace)}
}

func (s *stubWorkspaces) Update(_ context.Context, sid string, fn func(*domain.Workspace) error) error {
	ws, ok := s.byID[sid]
	if !ok {
		ws = domain.NewWorkspace(s.fixtures)
		s.byID[sid] = ws
	}
	return fn(ws)
}

func (s *stubWorkspaces) Drop(_ context.Context, sid string) error {
	delete(s.byID, sid)
	return nil
}

var errStoreDown = errors.New("store down")

func testFixtures() domain.Fixtures {
	return domain.Fixtures{
		Slots: []domain.Slot{
			{Date: "2025-06-10", Time: "10:00 AM", Location: "City Hospital"},
			{Date: "2025-06-12", Time: "02:00 PM", Location: "Red Cross Center"},
		},
		History: []domain.DonationRecord{
			{ID: "1", PointsEarned: 50}, {ID: "2", PointsEarned: 50}, {ID: "3", PointsEarned: 50},
			{ID: "4", PointsEarned: 50}, {ID: "5", PointsEarned: 50},
		},
		Rewards: []domain.Reward{
			{ID: "r001", Name: "Coffee Voucher", PointsRequired: 100},
			{ID: "r002", Name: "Movie Ticket", PointsRequired: 150},
			{ID: "r006", Name: "Spa Day", PointsRequired: 400},
		},
		RewardPoints: 250,
		Inventory: []domain.BloodUnit{
			{ID: "BU001", BloodType: "O+", ExpiryDate: "2025-01-14", Status: domain.UnitAvailable, DonorID: "DON001"},
			{ID: "BU002", BloodType: "A+", ExpiryDate: "2025-01-09", Status: domain.UnitReserved, DonorID: "DON002"},
			{ID: "BU004", BloodType: "AB+", ExpiryDate: "2024-12-25", Status: domain.UnitExpired, DonorID: "DON004"},
		},
		Donations: []domain.TrackedDonation{
			{ID: "DON001", DonorName: "John Doe", Status: domain.StageAvailable, TestResults: "All tests passed - Safe for transfusion"},
		},
		Users: []domain.User{
			{ID: "U001", Name: "John Doe", Email: "john@example.com", Role: domain.RoleDonor, BloodType: "O+"},
		},
		DonorProfile: domain.DonorProfile{Name: "John Doe", TotalDonations: 5, RewardPoints: 250},
	}
}
