package repositories

import (
	"context"

	"github.com/google/uuid"
)

// CapabilityRepository backs the allow-list capability model: a user either
// holds a named capability or does not.
type CapabilityRepository interface {
	UserHasCapability(ctx context.Context, userID uuid.UUID, capability string) (bool, error)
}

type capabilityRepo struct {
	db DB
}

func NewCapabilityRepository(db DB) CapabilityRepository {
	return &capabilityRepo{db: db}
}

func (r *capabilityRepo) UserHasCapability(ctx context.Context, userID uuid.UUID, capability string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM user_capabilities
			WHERE user_id = $1 AND capability = $2
		)
	`
	var has bool
	err := r.db.QueryRow(ctx, query, userID, capability).Scan(&has)
	if err != nil {
		return false, err
	}
	return has, nil
}
