package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/testbuddy/marketplace_service/internal/core/domain"
)

type ProfileRepository struct {
	db *sql.DB
}

func NewProfileRepository(db *sql.DB) *ProfileRepository {
	return &ProfileRepository{
		db,
	}
}

func (r *ProfileRepository) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.LearnerProfile, error) {
	query := `SELECT user_id, name, age, years_of_experience, annual_mileage, no_claims_years,
	              vehicle_type, estimated_value, registration, created_at, updated_at
              FROM learner_profiles WHERE user_id = $1`

	profile := &domain.LearnerProfile{}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&profile.UserID,
		&profile.Name,
		&profile.Risk.Age,
		&profile.Risk.YearsOfExperience,
		&profile.Risk.AnnualMileage,
		&profile.Risk.NoClaimsYears,
		&profile.Risk.Vehicle.Type,
		&profile.Risk.Vehicle.EstimatedValue,
		&profile.Risk.Vehicle.Registration,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return profile, nil
}

func (r *ProfileRepository) UpsertProfile(ctx context.Context, profile *domain.LearnerProfile) (*domain.LearnerProfile, error) {
	query := `INSERT INTO learner_profiles (user_id, name, age, years_of_experience, annual_mileage,
		no_claims_years, vehicle_type, estimated_value, registration)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	ON CONFLICT (user_id) DO UPDATE SET
		name = EXCLUDED.name,
		age = EXCLUDED.age,
		years_of_experience = EXCLUDED.years_of_experience,
		annual_mileage = EXCLUDED.annual_mileage,
		no_claims_years = EXCLUDED.no_claims_years,
		vehicle_type = EXCLUDED.vehicle_type,
		estimated_value = EXCLUDED.estimated_value,
		registration = EXCLUDED.registration,
		updated_at = CURRENT_TIMESTAMP
	RETURNING created_at, updated_at`

	saved := *profile
	err := r.db.QueryRowContext(ctx, query,
		profile.UserID,
		profile.Name,
		profile.Risk.Age,
		profile.Risk.YearsOfExperience,
		profile.Risk.AnnualMileage,
		profile.Risk.NoClaimsYears,
		profile.Risk.Vehicle.Type,
		profile.Risk.Vehicle.EstimatedValue,
		profile.Risk.Vehicle.Registration,
	).Scan(
		&saved.CreatedAt,
		&saved.UpdatedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Code {
			case "23502":
				return nil, domain.NewValidationError("ProfileRepository.UpsertProfile", fmt.Errorf("required field is missing"))
			case "23514":
				return nil, domain.NewValidationError("ProfileRepository.UpsertProfile", fmt.Errorf("value out of range: %s", pqErr.Constraint))
			default:
				return nil, err
			}
		}
		return nil, fmt.Errorf("error saving profile: %w", err)
	}

	return &saved, nil
}
