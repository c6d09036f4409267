package domain

import (
	"context"
	"errors"
	"time"

	"team-membership-service/internal/entities"
	"team-membership-service/internal/repository"

	"go.uber.org/zap"
)

// Auditor records audit entries without blocking the caller.
type Auditor interface {
	Record(entry entities.ActivityLog)
}

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx           context.Context
	log           *zap.SugaredLogger
	repo          repository.Repository
	audit         Auditor
	timeout       time.Duration
	invitationTTL time.Duration
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	audit Auditor,
	timeout time.Duration,
	invitationTTL time.Duration,
) *Usecase {
	return &Usecase{
		ctx:           ctx,
		log:           log,
		repo:          repo,
		audit:         audit,
		timeout:       timeout,
		invitationTTL: invitationTTL,
	}
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

// memberForView resolves the actor's membership for read access. Non-members
// receive ErrTeamNotFound so team existence does not leak.
func (u *Usecase) memberForView(ctx context.Context, actor entities.Actor, teamID string) (*entities.TeamMember, error) {
	m, err := u.repo.GetMember(ctx, teamID, actor.ID)
	if err != nil {
		if errors.Is(err, entities.ErrMemberNotFound) {
			return nil, entities.ErrTeamNotFound
		}
		return nil, err
	}
	return m, nil
}

// memberForMutation resolves the actor's membership for a mutating call.
// Non-members are denied outright.
func (u *Usecase) memberForMutation(ctx context.Context, actor entities.Actor, teamID string) (*entities.TeamMember, error) {
	m, err := u.repo.GetMember(ctx, teamID, actor.ID)
	if err != nil {
		if errors.Is(err, entities.ErrMemberNotFound) {
			return nil, entities.ErrPermissionDenied
		}
		return nil, err
	}
	return m, nil
}
