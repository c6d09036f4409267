// Package entities contains core business entities.
package entities

import "time"

// TeamInvitation is a time-bounded, unaccepted offer of membership at a given role.
type TeamInvitation struct {
	ID         string
	TeamID     string
	Email      string
	Role       TeamRole
	InvitedBy  string
	ExpiresAt  time.Time
	AcceptedAt *time.Time
	CreatedAt  time.Time
}

// Pending reports whether the invitation is still actionable at the given instant.
func (i TeamInvitation) Pending(now time.Time) bool {
	return i.AcceptedAt == nil && i.ExpiresAt.After(now)
}

// Expired reports whether the invitation lapsed without being accepted.
func (i TeamInvitation) Expired(now time.Time) bool {
	return i.AcceptedAt == nil && !i.ExpiresAt.After(now)
}
