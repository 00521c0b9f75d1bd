package domain

import (
	"math"
	"strings"
	"time"
)

// UnitStatus is the lifecycle state of a stored blood unit.
type UnitStatus string

const (
	UnitAvailable UnitStatus = "Available"
	UnitReserved  UnitStatus = "Reserved"
	UnitUsed      UnitStatus = "Used"
	UnitExpired   UnitStatus = "Expired"
)

// UnitStatuses lists the statuses in display order.
var UnitStatuses = []UnitStatus{UnitAvailable, UnitReserved, UnitUsed, UnitExpired}

// InventoryAction is an operator action on a unit.
type InventoryAction string

const (
	ActionReserve InventoryAction = "reserve"
	ActionUse     InventoryAction = "use"
	ActionExpire  InventoryAction = "expire"
	ActionReturn  InventoryAction = "return"
)

// InventoryActions lists the actions with their form labels.
var InventoryActions = []Option{
	{Value: string(ActionReserve), Label: "Reserve Unit"},
	{Value: string(ActionUse), Label: "Mark as Used"},
	{Value: string(ActionExpire), Label: "Mark as Expired"},
	{Value: string(ActionReturn), Label: "Return to Available"},
}

var actionResult = map[InventoryAction]UnitStatus{
	ActionReserve: UnitReserved,
	ActionUse:     UnitUsed,
	ActionExpire:  UnitExpired,
	ActionReturn:  UnitAvailable,
}

// ResultingStatus maps an action to the status it produces.
func (a InventoryAction) ResultingStatus() (UnitStatus, error) {
	s, ok := actionResult[a]
	if !ok {
		return "", ErrInvalidAction
	}
	return s, nil
}

const expiryDateLayout = "2006-01-02"

// ExpiringWindowDays is how close to expiry a unit is flagged.
const ExpiringWindowDays = 7

// BloodUnit is one stored unit.
type BloodUnit struct {
	ID           string     `json:"id" yaml:"id" bson:"id"`
	BloodType    string     `json:"blood_type" yaml:"blood_type" bson:"blood_type"`
	DonationDate string     `json:"donation_date" yaml:"donation_date" bson:"donation_date"`
	ExpiryDate   string     `json:"expiry_date" yaml:"expiry_date" bson:"expiry_date"`
	Status       UnitStatus `json:"status" yaml:"status" bson:"status"`
	DonorID      string     `json:"donor_id" yaml:"donor_id" bson:"donor_id"`
	Location     string     `json:"location" yaml:"location" bson:"location"`
	TestStatus   string     `json:"test_status" yaml:"test_status" bson:"test_status"`
}

// DaysUntilExpiry rounds up to whole days; an unparseable date reports zero.
func (u BloodUnit) DaysUntilExpiry(now time.Time) int {
	expiry, err := time.ParseInLocation(expiryDateLayout, u.ExpiryDate, time.UTC)
	if err != nil {
		return 0
	}
	return int(math.Ceil(expiry.Sub(now).Hours() / 24))
}

// ExpiringSoon reports whether the unit is within the expiry window and not already marked expired.
func (u BloodUnit) ExpiringSoon(now time.Time) bool {
	return u.DaysUntilExpiry(now) <= ExpiringWindowDays && u.Status != UnitExpired
}

// InventoryFilter narrows the unit list. Empty fields match everything.
type InventoryFilter struct {
	BloodType string
	Status    string
	Search    string
}

// Matches applies all criteria conjunctively.
func (f InventoryFilter) Matches(u BloodUnit) bool {
	if f.BloodType != "" && u.BloodType != f.BloodType {
		return false
	}
	if f.Status != "" && string(u.Status) != f.Status {
		return false
	}
	if q := strings.ToLower(strings.TrimSpace(f.Search)); q != "" {
		if !strings.Contains(strings.ToLower(u.ID), q) && !strings.Contains(strings.ToLower(u.DonorID), q) {
			return false
		}
	}
	return true
}

// FilterUnits returns the units matching f, in order.
func FilterUnits(units []BloodUnit, f InventoryFilter) []BloodUnit {
	out := make([]BloodUnit, 0, len(units))
	for _, u := range units {
		if f.Matches(u) {
			out = append(out, u)
		}
	}
	return out
}

// InventoryStats summarises the whole inventory.
type InventoryStats struct {
	Total        int `json:"total"`
	Available    int `json:"available"`
	Reserved     int `json:"reserved"`
	ExpiringSoon int `json:"expiring_soon"`
	Expired      int `json:"expired"`
}

// ComputeStats walks units once.
func ComputeStats(units []BloodUnit, now time.Time) InventoryStats {
	s := InventoryStats{Total: len(units)}
	for _, u := range units {
		switch u.Status {
		case UnitAvailable:
			s.Available++
		case UnitReserved:
			s.Reserved++
		case UnitExpired:
			s.Expired++
		}
		if u.ExpiringSoon(now) {
			s.ExpiringSoon++
		}
	}
	return s
}

// InventoryUpdate is an operator request to change a unit's status.
type InventoryUpdate struct {
	UnitID string
	Action InventoryAction
	Reason string
}

// ApplyUpdate replaces the target unit in place with its new status.
func ApplyUpdate(units []BloodUnit, upd InventoryUpdate) (BloodUnit, error) {
	if strings.TrimSpace(upd.Reason) == "" {
		return BloodUnit{}, ErrReasonRequired
	}
	status, err := upd.Action.ResultingStatus()
	if err != nil {
		return BloodUnit{}, err
	}
	for i := range units {
		if units[i].ID == upd.UnitID {
			units[i].Status = status
			return units[i], nil
		}
	}
	return BloodUnit{}, ErrUnitNotFound
}

// FindUnit looks a unit up by exact id.
func FindUnit(units []BloodUnit, id string) (BloodUnit, bool) {
	for _, u := range units {
		if u.ID == id {
			return u, true
		}
	}
	return BloodUnit{}, false
}
