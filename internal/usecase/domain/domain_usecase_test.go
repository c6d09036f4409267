package domain

import (
	"context"
	"testing"
	"time"

	"team-membership-service/internal/entities"
	"team-membership-service/internal/repository"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type repoMock struct{ mock.Mock }

var _ repository.Repository = (*repoMock)(nil)

func (m *repoMock) OnStart(_ context.Context) error { return nil }
func (m *repoMock) OnStop(_ context.Context) error  { return nil }

func (m *repoMock) UpsertProfile(ctx context.Context, profile entities.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *repoMock) GetProfile(ctx context.Context, userID string) (*entities.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Profile), args.Error(1)
}

func (m *repoMock) CreateTeam(ctx context.Context, team entities.Team, owner entities.TeamMember) (*entities.Team, error) {
	args := m.Called(ctx, team, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *repoMock) GetTeam(ctx context.Context, teamID string) (*entities.Team, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *repoMock) ListTeamsForUser(ctx context.Context, userID string) ([]entities.Team, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Team), args.Error(1)
}

func (m *repoMock) UpdateTeam(ctx context.Context, teamID string, patch entities.TeamPatch) (*entities.Team, error) {
	args := m.Called(ctx, teamID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *repoMock) DeleteTeam(ctx context.Context, teamID string) error {
	args := m.Called(ctx, teamID)
	return args.Error(0)
}

func (m *repoMock) GetMember(ctx context.Context, teamID, userID string) (*entities.TeamMember, error) {
	args := m.Called(ctx, teamID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.TeamMember), args.Error(1)
}

func (m *repoMock) GetMemberByEmail(ctx context.Context, teamID, email string) (*entities.TeamMember, error) {
	args := m.Called(ctx, teamID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.TeamMember), args.Error(1)
}

func (m *repoMock) ListMembers(ctx context.Context, teamID string) ([]entities.MemberProfile, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.MemberProfile), args.Error(1)
}

func (m *repoMock) AddMember(ctx context.Context, member entities.TeamMember) (*entities.TeamMember, error) {
	args := m.Called(ctx, member)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.TeamMember), args.Error(1)
}

func (m *repoMock) UpdateMemberRole(ctx context.Context, teamID, userID string, role entities.TeamRole) (*entities.TeamMember, error) {
	args := m.Called(ctx, teamID, userID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.TeamMember), args.Error(1)
}

func (m *repoMock) RemoveMember(ctx context.Context, teamID, userID string) error {
	args := m.Called(ctx, teamID, userID)
	return args.Error(0)
}

func (m *repoMock) CountMembersWithRole(ctx context.Context, teamID string, role entities.TeamRole) (int64, error) {
	args := m.Called(ctx, teamID, role)
	return args.Get(0).(int64), args.Error(1)
}

func (m *repoMock) CreateInvitation(ctx context.Context, inv entities.TeamInvitation) (*entities.TeamInvitation, error) {
	args := m.Called(ctx, inv)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.TeamInvitation), args.Error(1)
}

func (m *repoMock) GetInvitation(ctx context.Context, invitationID string) (*entities.TeamInvitation, error) {
	args := m.Called(ctx, invitationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.TeamInvitation), args.Error(1)
}

func (m *repoMock) ListPendingForTeam(ctx context.Context, teamID string, now time.Time) ([]entities.TeamInvitation, error) {
	args := m.Called(ctx, teamID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.TeamInvitation), args.Error(1)
}

func (m *repoMock) ListPendingForEmail(ctx context.Context, email string, now time.Time) ([]entities.TeamInvitation, error) {
	args := m.Called(ctx, email, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.TeamInvitation), args.Error(1)
}

func (m *repoMock) AcceptInvitation(ctx context.Context, invitationID string, member entities.TeamMember, now time.Time) (*entities.TeamMember, error) {
	args := m.Called(ctx, invitationID, member, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.TeamMember), args.Error(1)
}

func (m *repoMock) DeleteInvitation(ctx context.Context, invitationID string) error {
	args := m.Called(ctx, invitationID)
	return args.Error(0)
}

func (m *repoMock) AppendActivity(ctx context.Context, entry entities.ActivityLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *repoMock) ListActivityForTeam(ctx context.Context, teamID string, limit int) ([]entities.ActivityEntry, error) {
	args := m.Called(ctx, teamID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.ActivityEntry), args.Error(1)
}

type auditRecorder struct {
	entries []entities.ActivityLog
}

func (a *auditRecorder) Record(entry entities.ActivityLog) {
	a.entries = append(a.entries, entry)
}

func (a *auditRecorder) actions() []string {
	out := make([]string, 0, len(a.entries))
	for _, e := range a.entries {
		out = append(out, e.Action)
	}
	return out
}

const weekTTL = 7 * 24 * time.Hour

func newUsecase(repo *repoMock, audit *auditRecorder) *Usecase {
	return New(zap.NewNop().Sugar(), context.Background(), repo, audit, time.Second, weekTTL)
}

var (
	alice = entities.Actor{ID: "u1", Email: "alice@acme.test"}
	bob   = entities.Actor{ID: "u2", Email: "bob@acme.test"}
)

func memberWithRole(teamID, userID string, role entities.TeamRole) *entities.TeamMember {
	return &entities.TeamMember{ID: "m-" + userID, TeamID: teamID, UserID: userID, Role: role}
}

func TestCreateTeamRequiresActor(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo, &auditRecorder{})

	_, err := uc.CreateTeam(context.Background(), entities.Actor{}, entities.TeamDraft{Name: "Acme"})
	require.ErrorIs(t, err, entities.ErrNotAuthenticated)
	repo.AssertNotCalled(t, "CreateTeam", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateTeamValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo, &auditRecorder{})

	_, err := uc.CreateTeam(context.Background(), alice, entities.TeamDraft{})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}

func TestCreateTeamInsertsOwnerMembership(t *testing.T) {
	repo := &repoMock{}
	audit := &auditRecorder{}
	uc := newUsecase(repo, audit)

	repo.On("UpsertProfile", mock.Anything, entities.Profile{ID: alice.ID, Email: alice.Email}).Return(nil)
	repo.On("CreateTeam", mock.Anything,
		mock.MatchedBy(func(team entities.Team) bool {
			return team.Name == "Acme" && team.OwnerID == alice.ID &&
				team.Settings.DefaultProjectVisibility == entities.VisibilityTeam
		}),
		mock.MatchedBy(func(owner entities.TeamMember) bool {
			return owner.UserID == alice.ID && owner.Role == entities.RoleOwner
		}),
	).Return(&entities.Team{ID: "t1", Name: "Acme", OwnerID: alice.ID}, nil)

	team, err := uc.CreateTeam(context.Background(), alice, entities.TeamDraft{Name: "Acme"})
	require.NoError(t, err)
	require.Equal(t, "Acme", team.Name)
	require.Equal(t, []string{entities.ActionTeamCreated}, audit.actions())
	repo.AssertExpectations(t)
}

func TestCreateTeamMergesSettings(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo, &auditRecorder{})

	open := true
	repo.On("UpsertProfile", mock.Anything, mock.Anything).Return(nil)
	repo.On("CreateTeam", mock.Anything,
		mock.MatchedBy(func(team entities.Team) bool {
			return team.Settings.AllowMemberInvites &&
				!team.Settings.IsPublic &&
				team.Settings.DefaultProjectVisibility == entities.VisibilityTeam
		}),
		mock.Anything,
	).Return(&entities.Team{ID: "t1"}, nil)

	_, err := uc.CreateTeam(context.Background(), alice, entities.TeamDraft{
		Name:     "Acme",
		Settings: &entities.TeamSettingsPatch{AllowMemberInvites: &open},
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestTeamHiddenFromNonMembers(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo, &auditRecorder{})

	repo.On("GetMember", mock.Anything, "t1", bob.ID).Return(nil, entities.ErrMemberNotFound)

	_, err := uc.Team(context.Background(), bob, "t1")
	require.ErrorIs(t, err, entities.ErrTeamNotFound)
	repo.AssertNotCalled(t, "GetTeam", mock.Anything, mock.Anything)
}

func TestUpdateTeamDeniedForViewer(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo, &auditRecorder{})

	repo.On("GetMember", mock.Anything, "t1", alice.ID).Return(memberWithRole("t1", alice.ID, entities.RoleViewer), nil)

	name := "Renamed"
	_, err := uc.UpdateTeam(context.Background(), alice, "t1", entities.TeamPatch{Name: &name})
	require.ErrorIs(t, err, entities.ErrPermissionDenied)
	repo.AssertNotCalled(t, "UpdateTeam", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteTeamOwnerOnly(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo, &auditRecorder{})

	repo.On("GetMember", mock.Anything, "t1", alice.ID).Return(memberWithRole("t1", alice.ID, entities.RoleAdmin), nil)

	err := uc.DeleteTeam(context.Background(), alice, "t1")
	require.ErrorIs(t, err, entities.ErrPermissionDenied)
	repo.AssertNotCalled(t, "DeleteTeam", mock.Anything, mock.Anything)
}

func TestOwnerAddsMemberDirectly(t *testing.T) {
	repo := &repoMock{}
	audit := &auditRecorder{}
	uc := newUsecase(repo, audit)

	repo.On("GetMember", mock.Anything, "t1", alice.ID).Return(memberWithRole("t1", alice.ID, entities.RoleOwner), nil)
	repo.On("GetProfile", mock.Anything, bob.ID).Return(&entities.Profile{ID: bob.ID, Email: bob.Email}, nil)
	repo.On("AddMember", mock.Anything, mock.MatchedBy(func(m entities.TeamMember) bool {
		return m.TeamID == "t1" && m.UserID == bob.ID && m.Role == entities.RoleMember &&
			m.InvitedBy != nil && *m.InvitedBy == alice.ID
	})).Return(&entities.TeamMember{ID: "m1", TeamID: "t1", UserID: bob.ID, Role: entities.RoleMember}, nil)

	member, err := uc.AddMember(context.Background(), alice, "t1", bob.ID, entities.RoleMember)
	require.NoError(t, err)
	require.Equal(t, entities.RoleMember, member.Role)
	require.Equal(t, []string{entities.ActionMemberAdded}, audit.actions())
	repo.AssertExpectations(t)
}

func TestAddMemberUnknownUserRejected(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo, &auditRecorder{})

	repo.On("GetMember", mock.Anything, "t1", alice.ID).Return(memberWithRole("t1", alice.ID, entities.RoleOwner), nil)
	repo.On("GetProfile", mock.Anything, "ghost").Return(nil, entities.ErrProfileNotFound)

	_, err := uc.AddMember(context.Background(), alice, "t1", "ghost", entities.RoleMember)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "AddMember", mock.Anything, mock.Anything)
}

func TestAdminCannotDemoteOwner(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo, &auditRecorder{})

	repo.On("GetMember", mock.Anything, "t1", alice.ID).Return(memberWithRole("t1", alice.ID, entities.RoleAdmin), nil)
	repo.On("GetMember", mock.Anything, "t1", bob.ID).Return(memberWithRole("t1", bob.ID, entities.RoleOwner), nil)

	_, err := uc.UpdateMemberRole(context.Background(), alice, "t1", bob.ID, entities.RoleAdmin)
	require.ErrorIs(t, err, entities.ErrPermissionDenied)
	repo.AssertNotCalled(t, "UpdateMemberRole", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPromoteToOwnerRejected(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo, &auditRecorder{})

	// Owner is not an assignable role. A second owner row would let the
	// recorded team owner be demoted past the sole-owner guard.
	_, err := uc.UpdateMemberRole(context.Background(), alice, "t1", bob.ID, entities.RoleOwner)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "UpdateMemberRole", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRemoveSoleOwnerRejected(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo, &auditRecorder{})

	repo.On("GetMember", mock.Anything, "t1", alice.ID).Return(memberWithRole("t1", alice.ID, entities.RoleOwner), nil)
	repo.On("CountMembersWithRole", mock.Anything, "t1", entities.RoleOwner).Return(int64(1), nil)

	err := uc.RemoveMember(context.Background(), alice, "t1", alice.ID)
	require.ErrorIs(t, err, entities.ErrLastOwner)
	repo.AssertNotCalled(t, "RemoveMember", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminRemovesMember(t *testing.T) {
	repo := &repoMock{}
	audit := &auditRecorder{}
	uc := newUsecase(repo, audit)

	repo.On("GetMember", mock.Anything, "t1", alice.ID).Return(memberWithRole("t1", alice.ID, entities.RoleAdmin), nil)
	repo.On("GetMember", mock.Anything, "t1", bob.ID).Return(memberWithRole("t1", bob.ID, entities.RoleMember), nil)
	repo.On("RemoveMember", mock.Anything, "t1", bob.ID).Return(nil)

	err := uc.RemoveMember(context.Background(), alice, "t1", bob.ID)
	require.NoError(t, err)
	require.Equal(t, []string{entities.ActionMemberRemoved}, audit.actions())
	repo.AssertExpectations(t)
}

func TestInviteDeniedForViewer(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo, &auditRecorder{})

	repo.On("GetMember", mock.Anything, "t1", alice.ID).Return(memberWithRole("t1", alice.ID, entities.RoleViewer), nil)
	repo.On("GetTeam", mock.Anything, "t1").Return(&entities.Team{ID: "t1", Settings: entities.TeamSettings{AllowMemberInvites: true}}, nil)

	_, err := uc.Invite(context.Background(), alice, "t1", "new@acme.test", entities.RoleMember)
	require.ErrorIs(t, err, entities.ErrPermissionDenied)
}

func TestInviteByMemberHonorsTeamSetting(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo, &auditRecorder{})

	repo.On("GetMember", mock.Anything, "t1", alice.ID).Return(memberWithRole("t1", alice.ID, entities.RoleMember), nil)
	repo.On("GetTeam", mock.Anything, "t1").Return(&entities.Team{ID: "t1", Settings: entities.TeamSettings{AllowMemberInvites: false}}, nil)

	_, err := uc.Invite(context.Background(), alice, "t1", "new@acme.test", entities.RoleMember)
	require.ErrorIs(t, err, entities.ErrPermissionDenied)
	repo.AssertNotCalled(t, "CreateInvitation", mock.Anything, mock.Anything)
}

func TestInviteStampsWeekExpiry(t *testing.T) {
	repo := &repoMock{}
	audit := &auditRecorder{}
	uc := newUsecase(repo, audit)

	repo.On("GetMember", mock.Anything, "t1", alice.ID).Return(memberWithRole("t1", alice.ID, entities.RoleOwner), nil)
	repo.On("GetTeam", mock.Anything, "t1").Return(&entities.Team{ID: "t1"}, nil)
	repo.On("GetMemberByEmail", mock.Anything, "t1", "new@acme.test").Return(nil, entities.ErrMemberNotFound)
	repo.On("CreateInvitation", mock.Anything, mock.MatchedBy(func(inv entities.TeamInvitation) bool {
		return inv.Email == "new@acme.test" && inv.Role == entities.RoleMember &&
			inv.InvitedBy == alice.ID && inv.AcceptedAt == nil
	})).Return(&entities.TeamInvitation{ID: "i1", TeamID: "t1", Email: "new@acme.test", Role: entities.RoleMember}, nil)

	before := time.Now()
	_, err := uc.Invite(context.Background(), alice, "t1", "New@Acme.Test", entities.RoleMember)
	require.NoError(t, err)
	require.Equal(t, []string{entities.ActionMemberInvited}, audit.actions())

	var stamped entities.TeamInvitation
	for _, c := range repo.Calls {
		if c.Method == "CreateInvitation" {
			stamped = c.Arguments.Get(1).(entities.TeamInvitation)
		}
	}
	require.Equal(t, stamped.CreatedAt.Add(weekTTL), stamped.ExpiresAt)
	require.WithinDuration(t, before.Add(weekTTL), stamped.ExpiresAt, time.Minute)
}

func TestInviteExistingMemberRejected(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo, &auditRecorder{})

	repo.On("GetMember", mock.Anything, "t1", alice.ID).Return(memberWithRole("t1", alice.ID, entities.RoleOwner), nil)
	repo.On("GetTeam", mock.Anything, "t1").Return(&entities.Team{ID: "t1"}, nil)
	repo.On("GetMemberByEmail", mock.Anything, "t1", "bob@acme.test").Return(memberWithRole("t1", bob.ID, entities.RoleMember), nil)

	_, err := uc.Invite(context.Background(), alice, "t1", "bob@acme.test", entities.RoleMember)
	require.ErrorIs(t, err, entities.ErrAlreadyMember)
	repo.AssertNotCalled(t, "CreateInvitation", mock.Anything, mock.Anything)
}

func TestInviteOwnerRoleRejected(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo, &auditRecorder{})

	_, err := uc.Invite(context.Background(), alice, "t1", "new@acme.test", entities.RoleOwner)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}

func TestAcceptCreatesMembershipAtInvitedRole(t *testing.T) {
	repo := &repoMock{}
	audit := &auditRecorder{}
	uc := newUsecase(repo, audit)

	inv := &entities.TeamInvitation{
		ID: "i1", TeamID: "t1", Email: bob.Email, Role: entities.RoleMember,
		InvitedBy: alice.ID, ExpiresAt: time.Now().Add(time.Hour),
	}
	repo.On("GetInvitation", mock.Anything, "i1").Return(inv, nil)
	repo.On("UpsertProfile", mock.Anything, entities.Profile{ID: bob.ID, Email: bob.Email}).Return(nil)
	repo.On("AcceptInvitation", mock.Anything, "i1",
		mock.MatchedBy(func(m entities.TeamMember) bool {
			return m.TeamID == "t1" && m.UserID == bob.ID && m.Role == entities.RoleMember &&
				m.InvitedBy != nil && *m.InvitedBy == alice.ID
		}),
		mock.Anything,
	).Return(&entities.TeamMember{ID: "m1", TeamID: "t1", UserID: bob.ID, Role: entities.RoleMember}, nil)

	member, err := uc.Accept(context.Background(), bob, "i1")
	require.NoError(t, err)
	require.Equal(t, entities.RoleMember, member.Role)
	require.Equal(t, []string{entities.ActionInvitationAccepted}, audit.actions())
	repo.AssertExpectations(t)
}

func TestAcceptTwiceRejectedWithoutSecondInsert(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo, &auditRecorder{})

	accepted := time.Now().Add(-time.Minute)
	inv := &entities.TeamInvitation{
		ID: "i1", TeamID: "t1", Email: bob.Email, Role: entities.RoleMember,
		ExpiresAt: time.Now().Add(time.Hour), AcceptedAt: &accepted,
	}
	repo.On("GetInvitation", mock.Anything, "i1").Return(inv, nil)

	_, err := uc.Accept(context.Background(), bob, "i1")
	require.ErrorIs(t, err, entities.ErrInvitationAccepted)
	repo.AssertNotCalled(t, "AcceptInvitation", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAcceptExpiredRejected(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo, &auditRecorder{})

	inv := &entities.TeamInvitation{
		ID: "i1", TeamID: "t1", Email: bob.Email, Role: entities.RoleMember,
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	repo.On("GetInvitation", mock.Anything, "i1").Return(inv, nil)

	_, err := uc.Accept(context.Background(), bob, "i1")
	require.ErrorIs(t, err, entities.ErrInvitationExpired)
	repo.AssertNotCalled(t, "AcceptInvitation", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDeclineDeletesAndRecords(t *testing.T) {
	repo := &repoMock{}
	audit := &auditRecorder{}
	uc := newUsecase(repo, audit)

	inv := &entities.TeamInvitation{ID: "i1", TeamID: "t1", Email: bob.Email, Role: entities.RoleMember}
	repo.On("GetInvitation", mock.Anything, "i1").Return(inv, nil)
	repo.On("DeleteInvitation", mock.Anything, "i1").Return(nil)

	err := uc.Decline(context.Background(), bob, "i1")
	require.NoError(t, err)
	require.Equal(t, []string{entities.ActionInvitationDeclined}, audit.actions())
}

func TestActivityLimitDefaultsAndCaps(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo, &auditRecorder{})

	repo.On("GetMember", mock.Anything, "t1", alice.ID).Return(memberWithRole("t1", alice.ID, entities.RoleViewer), nil)
	repo.On("ListActivityForTeam", mock.Anything, "t1", 50).Return([]entities.ActivityEntry{}, nil).Once()
	repo.On("ListActivityForTeam", mock.Anything, "t1", 200).Return([]entities.ActivityEntry{}, nil).Once()

	_, err := uc.ActivityForTeam(context.Background(), alice, "t1", 0)
	require.NoError(t, err)
	_, err = uc.ActivityForTeam(context.Background(), alice, "t1", 1000)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestTeamsForUserRequiresActor(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo, &auditRecorder{})

	_, err := uc.TeamsForUser(context.Background(), entities.Actor{})
	require.ErrorIs(t, err, entities.ErrNotAuthenticated)
}
