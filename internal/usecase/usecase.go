package usecase

import (
	"context"
	"time"

	"team-membership-service/internal/repository"
	"team-membership-service/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	MembershipInterface
	InvitationInterface
	ActivityInterface
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	audit domain.Auditor,
	timeout time.Duration,
	invitationTTL time.Duration,
) InterfaceUsecase {
	return domain.New(log, ctx, repo, audit, timeout, invitationTTL)
}
