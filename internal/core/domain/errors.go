package domain

import "errors"

var (
	ErrInvalidRole      = errors.New("invalid role")
	ErrNotLoggedIn      = errors.New("not logged in")
	ErrMissingFields    = errors.New("please fill in all required fields")
	ErrPasswordMismatch = errors.New("passwords don't match")
	ErrInvalidUnits     = errors.New("units needed must be between 1 and 10")

	ErrInvalidSlot    = errors.New("invalid donation slot")
	ErrNoSlotSelected = errors.New("please select a donation slot")

	ErrRewardNotFound     = errors.New("reward not found")
	ErrInsufficientPoints = errors.New("you don't have enough points to redeem this item")

	ErrUnitNotFound   = errors.New("blood unit not found")
	ErrInvalidAction  = errors.New("invalid inventory action")
	ErrReasonRequired = errors.New("a reason is required for inventory updates")

	ErrEmptyDonationID  = errors.New("please enter a donation ID")
	ErrDonationNotFound = errors.New("donation not found")

	ErrUserNotFound = errors.New("user not found")
)
