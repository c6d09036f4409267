// Package entities contains core business entities.
package entities

import "time"

// ProjectVisibility enumerates default visibility for team projects.
type ProjectVisibility string

const (
	// VisibilityPrivate restricts projects to explicit members.
	VisibilityPrivate ProjectVisibility = "private"
	// VisibilityTeam shares projects with the whole team.
	VisibilityTeam ProjectVisibility = "team"
	// VisibilityPublic makes projects world-readable.
	VisibilityPublic ProjectVisibility = "public"
)

// Valid reports whether v is a known visibility value.
func (v ProjectVisibility) Valid() bool {
	switch v {
	case VisibilityPrivate, VisibilityTeam, VisibilityPublic:
		return true
	}
	return false
}

// TeamSettings holds per-team policy knobs, mutable by admins and the owner.
type TeamSettings struct {
	IsPublic                 bool
	AllowMemberInvites       bool
	DefaultProjectVisibility ProjectVisibility
	RequireApprovalForJoin   bool
}

// DefaultTeamSettings returns the settings applied when a team is created without explicit ones.
func DefaultTeamSettings() TeamSettings {
	return TeamSettings{
		IsPublic:                 false,
		AllowMemberInvites:       false,
		DefaultProjectVisibility: VisibilityTeam,
		RequireApprovalForJoin:   false,
	}
}

// Team is a named collaboration boundary owning members and settings.
type Team struct {
	ID          string
	Name        string
	Description *string
	OwnerID     string
	AvatarURL   *string
	Settings    TeamSettings
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TeamDraft carries the caller-supplied fields for team creation.
// Absent settings fall back to DefaultTeamSettings.
type TeamDraft struct {
	Name        string
	Description *string
	AvatarURL   *string
	Settings    *TeamSettingsPatch
}

// TeamSettingsPatch carries optional settings updates; nil fields stay unchanged.
type TeamSettingsPatch struct {
	IsPublic                 *bool
	AllowMemberInvites       *bool
	DefaultProjectVisibility *ProjectVisibility
	RequireApprovalForJoin   *bool
}

// TeamPatch carries optional team updates; nil fields stay unchanged.
type TeamPatch struct {
	Name        *string
	Description *string
	AvatarURL   *string
	Settings    *TeamSettingsPatch
}
