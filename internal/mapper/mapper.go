// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"team-membership-service/internal/api"
	"team-membership-service/internal/entities"
)

// FromAPISettingsPatch builds a domain settings patch from transport input.
func FromAPISettingsPatch(src *api.TeamSettingsPatch) *entities.TeamSettingsPatch {
	if src == nil {
		return nil
	}
	patch := &entities.TeamSettingsPatch{
		IsPublic:               src.IsPublic,
		AllowMemberInvites:     src.AllowMemberInvites,
		RequireApprovalForJoin: src.RequireApprovalForJoin,
	}
	if src.DefaultProjectVisibility != nil {
		v := entities.ProjectVisibility(*src.DefaultProjectVisibility)
		patch.DefaultProjectVisibility = &v
	}
	return patch
}

// FromAPITeamDraft builds an entities.TeamDraft from transport DTO.
func FromAPITeamDraft(src api.CreateTeamRequest) entities.TeamDraft {
	return entities.TeamDraft{
		Name:        src.Name,
		Description: src.Description,
		AvatarURL:   src.AvatarURL,
		Settings:    FromAPISettingsPatch(src.Settings),
	}
}

// FromAPITeamPatch builds an entities.TeamPatch from transport DTO.
func FromAPITeamPatch(src api.UpdateTeamRequest) entities.TeamPatch {
	return entities.TeamPatch{
		Name:        src.Name,
		Description: src.Description,
		AvatarURL:   src.AvatarURL,
		Settings:    FromAPISettingsPatch(src.Settings),
	}
}

// ToAPITeam maps entities.Team to transport model.
func ToAPITeam(team entities.Team) api.Team {
	return api.Team{
		ID:          team.ID,
		Name:        team.Name,
		Description: team.Description,
		OwnerID:     team.OwnerID,
		AvatarURL:   team.AvatarURL,
		Settings: api.TeamSettings{
			IsPublic:                 team.Settings.IsPublic,
			AllowMemberInvites:       team.Settings.AllowMemberInvites,
			DefaultProjectVisibility: string(team.Settings.DefaultProjectVisibility),
			RequireApprovalForJoin:   team.Settings.RequireApprovalForJoin,
		},
		CreatedAt: team.CreatedAt,
		UpdatedAt: team.UpdatedAt,
	}
}

// ToAPITeamList maps a slice of teams to transport slice.
func ToAPITeamList(list []entities.Team) []api.Team {
	res := make([]api.Team, 0, len(list))
	for _, t := range list {
		res = append(res, ToAPITeam(t))
	}
	return res
}

// ToAPITeamMember maps a bare membership row to transport model.
func ToAPITeamMember(m entities.TeamMember) api.TeamMember {
	return api.TeamMember{
		ID:        m.ID,
		TeamID:    m.TeamID,
		UserID:    m.UserID,
		Role:      string(m.Role),
		JoinedAt:  m.JoinedAt,
		InvitedBy: m.InvitedBy,
	}
}

// ToAPIMember maps an enriched member row to transport model.
func ToAPIMember(m entities.MemberProfile) api.Member {
	return api.Member{
		TeamMember:  ToAPITeamMember(m.TeamMember),
		Email:       m.Email,
		DisplayName: m.DisplayName,
		AvatarURL:   m.AvatarURL,
	}
}

// ToAPIMemberList maps a slice of enriched member rows to transport slice.
func ToAPIMemberList(list []entities.MemberProfile) []api.Member {
	res := make([]api.Member, 0, len(list))
	for _, m := range list {
		res = append(res, ToAPIMember(m))
	}
	return res
}

// ToAPIInvitation maps entities.TeamInvitation to transport model.
func ToAPIInvitation(inv entities.TeamInvitation) api.Invitation {
	return api.Invitation{
		ID:         inv.ID,
		TeamID:     inv.TeamID,
		Email:      inv.Email,
		Role:       string(inv.Role),
		InvitedBy:  inv.InvitedBy,
		ExpiresAt:  inv.ExpiresAt,
		AcceptedAt: inv.AcceptedAt,
		CreatedAt:  inv.CreatedAt,
	}
}

// ToAPIInvitationList maps a slice of invitations to transport slice.
func ToAPIInvitationList(list []entities.TeamInvitation) []api.Invitation {
	res := make([]api.Invitation, 0, len(list))
	for _, inv := range list {
		res = append(res, ToAPIInvitation(inv))
	}
	return res
}

// ToAPIActivityEntry maps an enriched audit row to transport model.
func ToAPIActivityEntry(e entities.ActivityEntry) api.ActivityEntry {
	return api.ActivityEntry{
		ID:           e.ID,
		UserID:       e.UserID,
		Action:       e.Action,
		ResourceType: e.ResourceType,
		ResourceID:   e.ResourceID,
		TeamID:       e.TeamID,
		ProjectID:    e.ProjectID,
		Metadata:     e.Metadata,
		CreatedAt:    e.CreatedAt,
		ActorName:    e.ActorName,
		ActorEmail:   e.ActorEmail,
		ActorAvatar:  e.ActorAvatar,
	}
}

// ToAPIActivityList maps a slice of audit rows to transport slice.
func ToAPIActivityList(list []entities.ActivityEntry) []api.ActivityEntry {
	res := make([]api.ActivityEntry, 0, len(list))
	for _, e := range list {
		res = append(res, ToAPIActivityEntry(e))
	}
	return res
}
