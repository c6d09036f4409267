// Package api defines the JSON transport contract of the service.
package api

import "time"

// ErrorCode enumerates machine-readable error identifiers.
type ErrorCode string

// Error codes returned by the API.
const (
	INVALIDARGUMENT  ErrorCode = "INVALID_ARGUMENT"
	NOTAUTHENTICATED ErrorCode = "NOT_AUTHENTICATED"
	PERMISSIONDENIED ErrorCode = "PERMISSION_DENIED"
	NOTFOUND         ErrorCode = "NOT_FOUND"
	MEMBEREXISTS     ErrorCode = "MEMBER_EXISTS"
	ALREADYMEMBER    ErrorCode = "ALREADY_MEMBER"
	ALREADYACCEPTED  ErrorCode = "ALREADY_ACCEPTED"
	LASTOWNER        ErrorCode = "LAST_OWNER"
	EXPIRED          ErrorCode = "EXPIRED"
	INTERNAL         ErrorCode = "INTERNAL"
)

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries the code and human-readable message of a failure.
type ErrorBody struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// TeamSettings mirrors per-team policy knobs.
type TeamSettings struct {
	IsPublic                 bool   `json:"is_public"`
	AllowMemberInvites       bool   `json:"allow_member_invites"`
	DefaultProjectVisibility string `json:"default_project_visibility"`
	RequireApprovalForJoin   bool   `json:"require_approval_for_join"`
}

// TeamSettingsPatch updates settings; absent fields stay unchanged.
type TeamSettingsPatch struct {
	IsPublic                 *bool   `json:"is_public,omitempty"`
	AllowMemberInvites       *bool   `json:"allow_member_invites,omitempty"`
	DefaultProjectVisibility *string `json:"default_project_visibility,omitempty"`
	RequireApprovalForJoin   *bool   `json:"require_approval_for_join,omitempty"`
}

// Team is the transport shape of a team.
type Team struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description *string      `json:"description,omitempty"`
	OwnerID     string       `json:"owner_id"`
	AvatarURL   *string      `json:"avatar_url,omitempty"`
	Settings    TeamSettings `json:"settings"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// CreateTeamRequest is the body of POST /teams.
type CreateTeamRequest struct {
	Name        string             `json:"name"`
	Description *string            `json:"description,omitempty"`
	AvatarURL   *string            `json:"avatar_url,omitempty"`
	Settings    *TeamSettingsPatch `json:"settings,omitempty"`
}

// UpdateTeamRequest is the body of PATCH /teams/:teamID.
type UpdateTeamRequest struct {
	Name        *string            `json:"name,omitempty"`
	Description *string            `json:"description,omitempty"`
	AvatarURL   *string            `json:"avatar_url,omitempty"`
	Settings    *TeamSettingsPatch `json:"settings,omitempty"`
}

// TeamMember is the transport shape of a membership row.
type TeamMember struct {
	ID        string    `json:"id"`
	TeamID    string    `json:"team_id"`
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	JoinedAt  time.Time `json:"joined_at"`
	InvitedBy *string   `json:"invited_by,omitempty"`
}

// Member is a membership row enriched with profile display fields.
type Member struct {
	TeamMember
	Email       string  `json:"email"`
	DisplayName string  `json:"display_name"`
	AvatarURL   *string `json:"avatar_url,omitempty"`
}

// AddMemberRequest is the body of POST /teams/:teamID/members.
type AddMemberRequest struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// UpdateMemberRoleRequest is the body of PATCH /teams/:teamID/members/:userID.
type UpdateMemberRoleRequest struct {
	Role string `json:"role"`
}

// Invitation is the transport shape of a team invitation.
type Invitation struct {
	ID         string     `json:"id"`
	TeamID     string     `json:"team_id"`
	Email      string     `json:"email"`
	Role       string     `json:"role"`
	InvitedBy  string     `json:"invited_by"`
	ExpiresAt  time.Time  `json:"expires_at"`
	AcceptedAt *time.Time `json:"accepted_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// InviteRequest is the body of POST /teams/:teamID/invitations.
type InviteRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// ActivityEntry is one audit record enriched with actor display fields.
type ActivityEntry struct {
	ID           string         `json:"id"`
	UserID       string         `json:"user_id"`
	Action       string         `json:"action"`
	ResourceType string         `json:"resource_type"`
	ResourceID   *string        `json:"resource_id,omitempty"`
	TeamID       *string        `json:"team_id,omitempty"`
	ProjectID    *string        `json:"project_id,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	ActorName    string         `json:"actor_name"`
	ActorEmail   string         `json:"actor_email"`
	ActorAvatar  *string        `json:"actor_avatar,omitempty"`
}
