package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/testbuddy/marketplace_service/internal/core/domain"
	"github.com/testbuddy/marketplace_service/internal/core/ports"
	"github.com/testbuddy/marketplace_service/internal/core/pricing"
)

type ProfileService struct {
	profileRepo ports.ProfileRepository
	logger      ports.LoggerPort
	validate    *validator.Validate
	policy      domain.PricingPolicy
}

func NewProfileService(
	profileRepo ports.ProfileRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
	policy domain.PricingPolicy,
) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		logger:      logger,
		validate:    validate,
		policy:      policy,
	}
}

// GetProfile keeps "not found" distinct from a stored profile that happens
// to hold default values.
func (s *ProfileService) GetProfile(ctx context.Context, userID string) (*domain.LearnerProfile, error) {
	const op = "ProfileService.GetProfile"

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		s.logger.Error("Invalid UUID format", map[string]interface{}{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, domain.NewValidationError(op, fmt.Errorf("invalid user ID: %w", err))
	}

	profile, err := s.profileRepo.GetProfile(ctx, userUUID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			s.logger.Info("Profile not found", map[string]interface{}{
				"user_id": userID,
			})
			return nil, domain.NewNotFoundError(op, err)
		}
		s.logger.Error("Failed to get profile", map[string]interface{}{
			"error":   err.Error(),
			"user_id": userID,
		})
		return nil, err
	}

	return profile, nil
}

func (s *ProfileService) UpsertProfile(ctx context.Context, profile *domain.LearnerProfile) (*domain.LearnerProfile, error) {
	const op = "ProfileService.UpsertProfile"

	if err := s.validate.Struct(profile); err != nil {
		s.logger.Error("Profile validation failed", map[string]interface{}{
			"error":   err.Error(),
			"user_id": profile.UserID,
		})
		return nil, domain.NewValidationError(op, err)
	}

	risk, err := pricing.Normalize(profile.Risk, s.policy)
	if err != nil {
		s.logger.Warn("Profile rejected by pricing policy", map[string]interface{}{
			"error":   err.Error(),
			"user_id": profile.UserID,
			"policy":  s.policy,
		})
		return nil, err
	}

	normalized := *profile
	normalized.Risk = risk

	saved, err := s.profileRepo.UpsertProfile(ctx, &normalized)
	if err != nil {
		s.logger.Error("Failed to save profile", map[string]interface{}{
			"error":   err.Error(),
			"user_id": profile.UserID,
		})
		return nil, err
	}

	s.logger.Info("Profile saved successfully", map[string]interface{}{
		"user_id": saved.UserID,
	})

	return saved, nil
}
