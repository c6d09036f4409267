// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotAuthenticated signals a missing or unresolved actor.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrPermissionDenied signals the actor's role does not allow the operation.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrTeamNotFound signals missing team.
	ErrTeamNotFound = errors.New("team not found")
	// ErrMemberNotFound signals the user has no membership in the team.
	ErrMemberNotFound = errors.New("member not found")
	// ErrProfileNotFound signals an unknown user id.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrInvitationNotFound signals missing invitation.
	ErrInvitationNotFound = errors.New("invitation not found")
	// ErrDuplicateMember signals a (team, user) membership conflict.
	ErrDuplicateMember = errors.New("member exists")
	// ErrAlreadyMember signals inviting an email that already belongs to the team.
	ErrAlreadyMember = errors.New("email already belongs to a member")
	// ErrInvitationAccepted signals a second accept on the same invitation.
	ErrInvitationAccepted = errors.New("invitation already accepted")
	// ErrInvitationExpired signals accepting past expires_at.
	ErrInvitationExpired = errors.New("invitation expired")
	// ErrLastOwner signals removing or demoting the only owner of a team.
	ErrLastOwner = errors.New("team must keep an owner")
)
