package pricing

import (
	"github.com/shopspring/decimal"
	"github.com/testbuddy/marketplace_service/internal/core/domain"
)

var (
	BaseQuoteAmount = decimal.NewFromInt(500)
	BaseCarValue    = decimal.NewFromInt(30000)
)

// Providers is the fixed provider order; index drives the company modifier.
var Providers = []string{
	"AquaSure Insurance",
	"DiveSafe Co.",
	"OceanGuard Ltd.",
	"BlueBubble Assurance",
	"Neptune Risk Solutions",
}

// MaxExperienceYears is the upper bound of the last experience band.
const MaxExperienceYears = 99

type experienceBand struct {
	upTo   int
	factor decimal.Decimal
}

// ascending thresholds, first match wins
var experienceBands = []experienceBand{
	{upTo: 1, factor: decimal.RequireFromString("1.5")},
	{upTo: 4, factor: decimal.RequireFromString("1.3")},
	{upTo: 9, factor: decimal.RequireFromString("1.0")},
	{upTo: MaxExperienceYears, factor: decimal.RequireFromString("0.8")},
}

var typeFactors = map[domain.VehicleType]decimal.Decimal{
	domain.Sports:   decimal.RequireFromString("1.6"),
	domain.SUV:      decimal.RequireFromString("1.3"),
	domain.Electric: decimal.RequireFromString("0.9"),
	domain.Standard: decimal.RequireFromString("1.0"),
}

var (
	valueMultiplier   = decimal.RequireFromString("2.5")
	seniorAgeFactor   = decimal.RequireFromString("1.1")
	youngAgeFactor    = decimal.RequireFromString("1.3")
	highMileageFactor = decimal.RequireFromString("1.15")
	lowMileageFactor  = decimal.RequireFromString("0.9")
	ncdStep           = decimal.RequireFromString("0.05")
	ncdFloor          = decimal.RequireFromString("0.7")
	companyStep       = decimal.RequireFromString("0.03")
	depreciationStep  = decimal.RequireFromString("0.05")
	depreciationCap   = decimal.RequireFromString("0.8")
)

// ExperienceFactor scans the bands in ascending order. Years beyond the last
// band resolve to the last band.
func ExperienceFactor(years int) decimal.Decimal {
	for _, band := range experienceBands {
		if years <= band.upTo {
			return band.factor
		}
	}
	return experienceBands[len(experienceBands)-1].factor
}

// TypeFactor falls back to Standard for unknown types.
func TypeFactor(t domain.VehicleType) decimal.Decimal {
	if f, ok := typeFactors[t]; ok {
		return f
	}
	return typeFactors[domain.Standard]
}

func AgeFactor(age int) decimal.Decimal {
	switch {
	case age > 40:
		return seniorAgeFactor
	case age < 25:
		return youngAgeFactor
	default:
		return decimal.NewFromInt(1)
	}
}

func MileageFactor(annualMileage int) decimal.Decimal {
	switch {
	case annualMileage > 15000:
		return highMileageFactor
	case annualMileage < 5000:
		return lowMileageFactor
	default:
		return decimal.NewFromInt(1)
	}
}

// NCDFactor never drops below 0.7.
func NCDFactor(noClaimsYears int) decimal.Decimal {
	f := decimal.NewFromInt(1).Sub(decimal.NewFromInt(int64(noClaimsYears)).Mul(ncdStep))
	return decimal.Max(f, ncdFloor)
}

func ValueFactor(estimatedValue decimal.Decimal) decimal.Decimal {
	if !estimatedValue.IsPositive() {
		estimatedValue = BaseCarValue
	}
	return estimatedValue.Mul(valueMultiplier).Div(BaseCarValue)
}

func CompanyModifier(index int) decimal.Decimal {
	return decimal.NewFromInt(1).Add(decimal.NewFromInt(int64(index)).Mul(companyStep))
}
