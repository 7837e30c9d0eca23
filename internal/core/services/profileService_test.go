package services

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/testbuddy/marketplace_service/internal/core/domain"
	"github.com/testbuddy/marketplace_service/internal/core/pricing"
)

func sampleLearner(userID uuid.UUID) *domain.LearnerProfile {
	return &domain.LearnerProfile{
		UserID: userID,
		Name:   "Sarah Murphy",
		Risk: domain.RiskProfile{
			Age:               32,
			YearsOfExperience: 5,
			AnnualMileage:     10000,
			NoClaimsYears:     3,
			Vehicle: domain.Vehicle{
				Type:           domain.Standard,
				EstimatedValue: decimal.NewFromInt(24000),
			},
		},
	}
}

func newProfileService(policy domain.PricingPolicy) (*ProfileService, *memProfiles) {
	repo := newMemProfiles()
	return NewProfileService(repo, nopLogger{}, validator.New(), policy), repo
}

func TestProfileService_GetProfile(t *testing.T) {
	svc, repo := newProfileService(domain.PolicyLenient)
	ctx := context.Background()

	if _, err := svc.GetProfile(ctx, "not-a-uuid"); !domain.IsKind(err, domain.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	id := uuid.New()
	if _, err := svc.GetProfile(ctx, id.String()); !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}

	repo.profiles[id] = *sampleLearner(id)
	got, err := svc.GetProfile(ctx, id.String())
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if got.Name != "Sarah Murphy" {
		t.Errorf("unexpected profile %+v", got)
	}
}

func TestProfileService_UpsertProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("saves a valid profile", func(t *testing.T) {
		svc, repo := newProfileService(domain.PolicyLenient)
		id := uuid.New()
		if _, err := svc.UpsertProfile(ctx, sampleLearner(id)); err != nil {
			t.Fatalf("UpsertProfile: %v", err)
		}
		if _, ok := repo.profiles[id]; !ok {
			t.Fatal("profile was not stored")
		}
	})

	t.Run("name is required", func(t *testing.T) {
		svc, _ := newProfileService(domain.PolicyLenient)
		p := sampleLearner(uuid.New())
		p.Name = ""
		if _, err := svc.UpsertProfile(ctx, p); !domain.IsKind(err, domain.KindValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("lenient policy stores normalised values", func(t *testing.T) {
		svc, repo := newProfileService(domain.PolicyLenient)
		p := sampleLearner(uuid.New())
		p.Risk.AnnualMileage = -5
		p.Risk.Vehicle.Type = "Hovercraft"
		p.Risk.Vehicle.EstimatedValue = decimal.Zero
		saved, err := svc.UpsertProfile(ctx, p)
		if err != nil {
			t.Fatalf("lenient policy rejected profile: %v", err)
		}
		stored := repo.profiles[p.UserID].Risk
		if stored.AnnualMileage != 0 || stored.Vehicle.Type != domain.Standard || !stored.Vehicle.EstimatedValue.Equal(pricing.BaseCarValue) {
			t.Errorf("stored risk = %+v, want normalised", stored)
		}
		if saved.Risk.AnnualMileage != 0 {
			t.Errorf("returned mileage = %d, want 0", saved.Risk.AnnualMileage)
		}
	})

	t.Run("strict policy rejects out-of-range values", func(t *testing.T) {
		svc, repo := newProfileService(domain.PolicyStrict)
		p := sampleLearner(uuid.New())
		p.Risk.YearsOfExperience = pricing.MaxExperienceYears + 1
		if _, err := svc.UpsertProfile(ctx, p); !domain.IsKind(err, domain.KindValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
		if len(repo.profiles) != 0 {
			t.Error("rejected profile was stored")
		}
	})
}
