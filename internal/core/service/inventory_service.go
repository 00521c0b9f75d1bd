package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/bloodchain/portal/internal/core/domain"
	"github.com/bloodchain/portal/internal/core/ports"
)

// InventoryService filters and updates the session's blood unit list.
type InventoryService struct {
	workspaces ports.WorkspaceStore
	now        func() time.Time
	log        zerolog.Logger
}

func NewInventoryService(workspaces ports.WorkspaceStore, log zerolog.Logger) *InventoryService {
	return &InventoryService{workspaces: workspaces, now: time.Now, log: log}
}

// WithClock replaces the time source used for expiry calculations.
func (s *InventoryService) WithClock(now func() time.Time) *InventoryService {
	s.now = now
	return s
}

// Inventory returns the units matching filter. Stats always cover the whole inventory.
func (s *InventoryService) Inventory(ctx context.Context, sid string, filter domain.InventoryFilter) (ports.InventoryView, error) {
	now := s.now()
	v := ports.InventoryView{Filter: filter}
	err := s.workspaces.Update(ctx, sid, func(ws *domain.Workspace) error {
		units := domain.FilterUnits(ws.Data.Inventory, filter)
		v.Units = make([]ports.UnitView, 0, len(units))
		for _, u := range units {
			v.Units = append(v.Units, ports.UnitView{
				BloodUnit:       u,
				DaysUntilExpiry: u.DaysUntilExpiry(now),
				ExpiringSoon:    u.ExpiringSoon(now),
			})
		}
		v.Stats = domain.ComputeStats(ws.Data.Inventory, now)
		return nil
	})
	return v, err
}

func (s *InventoryService) Unit(ctx context.Context, sid, id string) (domain.BloodUnit, error) {
	var unit domain.BloodUnit
	err := s.workspaces.Update(ctx, sid, func(ws *domain.Workspace) error {
		u, ok := domain.FindUnit(ws.Data.Inventory, id)
		if !ok {
			return domain.ErrUnitNotFound
		}
		unit = u
		return nil
	})
	return unit, err
}

// UpdateUnit applies an operator action, replacing the unit in place.
func (s *InventoryService) UpdateUnit(ctx context.Context, sid string, upd domain.InventoryUpdate) (domain.BloodUnit, error) {
	var unit domain.BloodUnit
	err := s.workspaces.Update(ctx, sid, func(ws *domain.Workspace) error {
		var err error
		unit, err = domain.ApplyUpdate(ws.Data.Inventory, upd)
		return err
	})
	if err != nil {
		return domain.BloodUnit{}, err
	}
	s.log.Info().
		Str("unit", unit.ID).
		Str("action", string(upd.Action)).
		Str("status", string(unit.Status)).
		Str("reason", upd.Reason).
		Msg("inventory updated")
	return unit, nil
}
