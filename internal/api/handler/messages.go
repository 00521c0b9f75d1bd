package handler

import (
	"errors"
	"strings"

	"github.com/bloodchain/portal/internal/core/domain"
)

var userMessages = []struct {
	err error
	msg string
}{
	{domain.ErrInvalidRole, "Please select a valid role."},
	{domain.ErrNotLoggedIn, "Please sign in first."},
	{domain.ErrMissingFields, "Please fill in all required fields."},
	{domain.ErrInvalidUnits, "Units needed must be between 1 and 10."},
	{domain.ErrPasswordMismatch, "Passwords don't match!"},
	{domain.ErrInvalidSlot, "That donation slot is not available."},
	{domain.ErrNoSlotSelected, "Please select a donation slot."},
	{domain.ErrRewardNotFound, "That reward is no longer available."},
	{domain.ErrInsufficientPoints, "You don't have enough points to redeem this item."},
	{domain.ErrUnitNotFound, "Blood unit not found."},
	{domain.ErrInvalidAction, "Please choose an update action."},
	{domain.ErrReasonRequired, "Please provide a reason for this update."},
	{domain.ErrEmptyDonationID, "Please enter a donation ID"},
	{domain.ErrDonationNotFound, "Donation not found. Please check your donation ID and try again."},
	{domain.ErrUserNotFound, "User not found."},
}

// userMessage returns the text shown for an input error. ok is false for
// errors the user cannot fix.
func userMessage(err error) (string, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		for _, m := range ve.Messages {
			if m == mismatchMessage {
				return m, true
			}
		}
		return capitalize(strings.Join(ve.Messages, "; ")) + ".", true
	}
	for _, um := range userMessages {
		if errors.Is(err, um.err) {
			return um.msg, true
		}
	}
	return "", false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
