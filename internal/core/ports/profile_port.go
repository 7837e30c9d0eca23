package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/testbuddy/marketplace_service/internal/core/domain"
)

// ProfileRepository returns domain.ErrProfileNotFound when nothing is stored.
type ProfileRepository interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*domain.LearnerProfile, error)
	UpsertProfile(ctx context.Context, profile *domain.LearnerProfile) (*domain.LearnerProfile, error)
}
