package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type VehicleType string

const (
	Sports   VehicleType = "Sports"
	SUV      VehicleType = "SUV"
	Electric VehicleType = "Electric"
	Standard VehicleType = "Standard"
)

func (t VehicleType) Known() bool {
	switch t {
	case Sports, SUV, Electric, Standard:
		return true
	}
	return false
}

type Vehicle struct {
	Type           VehicleType     `json:"type"`
	EstimatedValue decimal.Decimal `json:"estimated_value"`
	Registration   string          `json:"registration,omitempty" validate:"max=16"`
}

// RiskProfile is the pricing input. Range checks live in pricing.Normalize
// because the outcome depends on the configured policy.
type RiskProfile struct {
	Age               int     `json:"age"`
	YearsOfExperience int     `json:"years_of_experience"`
	AnnualMileage     int     `json:"annual_mileage"`
	NoClaimsYears     int     `json:"no_claims_years"`
	Vehicle           Vehicle `json:"vehicle"`
}

// LearnerProfile is the stored profile of a user, keyed by UserID.
type LearnerProfile struct {
	UserID    uuid.UUID   `json:"user_id"`
	Name      string      `json:"name" validate:"required,max=200"`
	Risk      RiskProfile `json:"risk"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

type ExperienceLevel string

const (
	Beginner     ExperienceLevel = "Beginner"
	Intermediate ExperienceLevel = "Intermediate"
	Expert       ExperienceLevel = "Expert"
)

func ExperienceLevelFor(years int) ExperienceLevel {
	switch {
	case years <= 1:
		return Beginner
	case years <= 9:
		return Intermediate
	default:
		return Expert
	}
}

// Grade maps an experience level to the certificate grade.
func (l ExperienceLevel) Grade() string {
	switch l {
	case Beginner:
		return "B"
	case Intermediate:
		return "A"
	case Expert:
		return "A+"
	default:
		return "C"
	}
}
