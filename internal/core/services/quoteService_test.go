package services

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/testbuddy/marketplace_service/internal/core/domain"
	"github.com/testbuddy/marketplace_service/internal/core/pricing"
)

func newQuoteService(policy domain.PricingPolicy) (*QuoteService, *memProfiles, *fakeRenderer) {
	repo := newMemProfiles()
	renderer := &fakeRenderer{}
	profiles := NewProfileService(repo, nopLogger{}, validator.New(), policy)
	return NewQuoteService(profiles, renderer, nopLogger{}, policy), repo, renderer
}

func TestQuoteService_Quote(t *testing.T) {
	svc, _, _ := newQuoteService(domain.PolicyLenient)

	result, err := svc.Quote(context.Background(), sampleLearner(uuid.New()).Risk)
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if len(result.Quotes) != len(pricing.Providers) {
		t.Fatalf("expected %d quotes, got %d", len(pricing.Providers), len(result.Quotes))
	}
	if got := result.Quotes[0].Amount.String(); got != "850" {
		t.Errorf("first quote = %s, want 850", got)
	}
	if got := result.Factors.NCD.String(); got != "0.85" {
		t.Errorf("ncd factor = %s, want 0.85", got)
	}
}

func TestQuoteService_QuoteStrictRejects(t *testing.T) {
	svc, _, _ := newQuoteService(domain.PolicyStrict)

	risk := sampleLearner(uuid.New()).Risk
	risk.Age = -1
	if _, err := svc.Quote(context.Background(), risk); !domain.IsKind(err, domain.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestQuoteService_QuotesForUser(t *testing.T) {
	svc, repo, _ := newQuoteService(domain.PolicyLenient)
	ctx := context.Background()

	id := uuid.New()
	if _, _, err := svc.QuotesForUser(ctx, id.String()); !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}

	repo.profiles[id] = *sampleLearner(id)
	profile, result, err := svc.QuotesForUser(ctx, id.String())
	if err != nil {
		t.Fatalf("QuotesForUser: %v", err)
	}
	if profile.UserID != id || len(result.Quotes) != len(pricing.Providers) {
		t.Errorf("unexpected result: %+v %+v", profile, result)
	}
}

func TestQuoteService_Certificate(t *testing.T) {
	svc, repo, renderer := newQuoteService(domain.PolicyLenient)
	ctx := context.Background()

	id := uuid.New()
	repo.profiles[id] = *sampleLearner(id)

	if _, _, err := svc.Certificate(ctx, id.String(), "Nobody Mutual"); !domain.IsKind(err, domain.KindValidation) {
		t.Fatalf("expected validation error for unknown provider, got %v", err)
	}

	cert, doc, err := svc.Certificate(ctx, id.String(), pricing.Providers[2])
	if err != nil {
		t.Fatalf("Certificate: %v", err)
	}
	if _, err := ulid.ParseStrict(cert.Serial); err != nil {
		t.Errorf("serial %q is not a ULID: %v", cert.Serial, err)
	}
	if cert.ExperienceLevel != domain.Intermediate || cert.Grade() != "A" {
		t.Errorf("expected Intermediate/A, got %s/%s", cert.ExperienceLevel, cert.Grade())
	}
	if cert.Quote.ProviderName != pricing.Providers[2] || cert.Quote.Amount.String() != "901" {
		t.Errorf("unexpected quote %+v", cert.Quote)
	}
	if renderer.last.Serial != cert.Serial || len(doc) == 0 {
		t.Error("certificate was not rendered")
	}
}
