package services

import (
	"context"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/testbuddy/marketplace_service/internal/core/domain"
	"github.com/testbuddy/marketplace_service/internal/core/ports"
	"github.com/testbuddy/marketplace_service/internal/core/pricing"
)

type QuoteService struct {
	profiles *ProfileService
	renderer ports.CertificateRenderer
	logger   ports.LoggerPort
	policy   domain.PricingPolicy
	now      func() time.Time
}

func NewQuoteService(
	profiles *ProfileService,
	renderer ports.CertificateRenderer,
	logger ports.LoggerPort,
	policy domain.PricingPolicy,
) *QuoteService {
	return &QuoteService{
		profiles: profiles,
		renderer: renderer,
		logger:   logger,
		policy:   policy,
		now:      time.Now,
	}
}

type QuoteResult struct {
	Profile domain.RiskProfile `json:"profile"`
	Factors pricing.Breakdown  `json:"factors"`
	Quotes  []domain.Quote     `json:"quotes"`
}

func (s *QuoteService) Policy() domain.PricingPolicy {
	return s.policy
}

// Quote prices an ad-hoc risk profile under the configured policy.
func (s *QuoteService) Quote(ctx context.Context, profile domain.RiskProfile) (*QuoteResult, error) {
	normalized, err := pricing.Normalize(profile, s.policy)
	if err != nil {
		s.logger.Warn("Risk profile rejected", map[string]interface{}{
			"error":  err.Error(),
			"policy": s.policy,
		})
		return nil, err
	}

	return &QuoteResult{
		Profile: normalized,
		Factors: pricing.Factors(normalized),
		Quotes:  pricing.GenerateQuotes(normalized),
	}, nil
}

// QuotesForUser prices the stored profile of userID.
func (s *QuoteService) QuotesForUser(ctx context.Context, userID string) (*domain.LearnerProfile, *QuoteResult, error) {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	result, err := s.Quote(ctx, profile.Risk)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info("Quotes generated for user", map[string]interface{}{
		"user_id":      userID,
		"quotes_count": len(result.Quotes),
	})

	return profile, result, nil
}

// Certificate renders the export document for the user's quote from provider.
func (s *QuoteService) Certificate(ctx context.Context, userID, provider string) (*domain.Certificate, []byte, error) {
	const op = "QuoteService.Certificate"

	profile, result, err := s.QuotesForUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	var chosen *domain.Quote
	for i := range result.Quotes {
		if result.Quotes[i].ProviderName == provider {
			chosen = &result.Quotes[i]
			break
		}
	}
	if chosen == nil {
		s.logger.Warn("Unknown provider for certificate", map[string]interface{}{
			"user_id":  userID,
			"provider": provider,
		})
		return nil, nil, domain.NewValidationError(op, fmt.Errorf("unknown provider %q", provider))
	}

	cert := domain.Certificate{
		Serial:          ulid.Make().String(),
		HolderName:      profile.Name,
		Age:             result.Profile.Age,
		ExperienceLevel: domain.ExperienceLevelFor(result.Profile.YearsOfExperience),
		Quote:           *chosen,
		IssuedAt:        s.now(),
	}

	doc, err := s.renderer.RenderCertificate(cert)
	if err != nil {
		s.logger.Error("Failed to render certificate", map[string]interface{}{
			"error":    err.Error(),
			"user_id":  userID,
			"provider": provider,
		})
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	s.logger.Info("Certificate issued", map[string]interface{}{
		"user_id":  userID,
		"provider": provider,
		"serial":   cert.Serial,
	})

	return &cert, doc, nil
}
