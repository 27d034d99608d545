package services

import (
	"context"

	"designmeta/internal/repositories"

	"github.com/google/uuid"
)

// CapabilityService answers allow-list capability checks for the current
// caller. Anything privileged in the admin surface goes through UserCan.
type CapabilityService interface {
	UserCan(ctx context.Context, userID uuid.UUID, capability string) (bool, error)
}

type capabilityService struct {
	capabilityRepo repositories.CapabilityRepository
}

func NewCapabilityService(capabilityRepo repositories.CapabilityRepository) CapabilityService {
	return &capabilityService{
		capabilityRepo: capabilityRepo,
	}
}

func (s *capabilityService) UserCan(ctx context.Context, userID uuid.UUID, capability string) (bool, error) {
	return s.capabilityRepo.UserHasCapability(ctx, userID, capability)
}
