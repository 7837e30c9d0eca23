// Package pricing turns a learner's risk profile into priced insurance
// quotes. Everything here is pure: no clock, no randomness, no I/O.
package pricing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/testbuddy/marketplace_service/internal/core/domain"
)

// Breakdown holds every factor applied to the base amount for one profile.
type Breakdown struct {
	Age        decimal.Decimal `json:"age_factor"`
	Experience decimal.Decimal `json:"experience_factor"`
	Type       decimal.Decimal `json:"type_factor"`
	Value      decimal.Decimal `json:"value_factor"`
	Mileage    decimal.Decimal `json:"mileage_factor"`
	NCD        decimal.Decimal `json:"ncd_factor"`
}

// Product is the unrounded per-provider base before the company modifier.
func (b Breakdown) Product() decimal.Decimal {
	return BaseQuoteAmount.
		Mul(b.Age).
		Mul(b.Experience).
		Mul(b.Type).
		Mul(b.Value).
		Mul(b.Mileage).
		Mul(b.NCD)
}

func Factors(profile domain.RiskProfile) Breakdown {
	return Breakdown{
		Age:        AgeFactor(profile.Age),
		Experience: ExperienceFactor(profile.YearsOfExperience),
		Type:       TypeFactor(profile.Vehicle.Type),
		Value:      ValueFactor(profile.Vehicle.EstimatedValue),
		Mileage:    MileageFactor(profile.AnnualMileage),
		NCD:        NCDFactor(profile.NoClaimsYears),
	}
}

// GenerateQuotes returns one quote per provider, in provider order.
// Missing values are coerced the lenient way; callers wanting the strict
// policy run Normalize first.
func GenerateQuotes(profile domain.RiskProfile) []domain.Quote {
	profile, _ = Normalize(profile, domain.PolicyLenient)
	base := Factors(profile).Product()

	quotes := make([]domain.Quote, len(Providers))
	for i, provider := range Providers {
		quotes[i] = domain.Quote{
			ProviderName: provider,
			Amount:       base.Mul(CompanyModifier(i)).Round(2),
		}
	}
	return quotes
}

// Normalize applies the pricing policy to a profile. The lenient policy
// never fails; strict rejects what lenient would silently coerce.
func Normalize(profile domain.RiskProfile, policy domain.PricingPolicy) (domain.RiskProfile, error) {
	const op = "pricing.Normalize"
	strict := policy == domain.PolicyStrict

	var errs []error
	nonNegative := func(name string, v *int) {
		if *v >= 0 {
			return
		}
		if strict {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %d", name, *v))
			return
		}
		*v = 0
	}
	nonNegative("age", &profile.Age)
	nonNegative("years_of_experience", &profile.YearsOfExperience)
	nonNegative("annual_mileage", &profile.AnnualMileage)
	nonNegative("no_claims_years", &profile.NoClaimsYears)

	if profile.YearsOfExperience > MaxExperienceYears {
		if strict {
			errs = append(errs, fmt.Errorf("years_of_experience must be at most %d, got %d",
				MaxExperienceYears, profile.YearsOfExperience))
		} else {
			profile.YearsOfExperience = MaxExperienceYears
		}
	}

	switch {
	case profile.Vehicle.Type == "":
		profile.Vehicle.Type = domain.Standard
	case !profile.Vehicle.Type.Known():
		if strict {
			errs = append(errs, fmt.Errorf("unknown vehicle type %q", profile.Vehicle.Type))
		} else {
			profile.Vehicle.Type = domain.Standard
		}
	}

	if !profile.Vehicle.EstimatedValue.IsPositive() {
		profile.Vehicle.EstimatedValue = BaseCarValue
	}

	if len(errs) > 0 {
		return profile, domain.NewValidationError(op, errors.Join(errs...))
	}
	return profile, nil
}
