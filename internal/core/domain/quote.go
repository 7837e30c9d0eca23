package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// swagger:model domain.Quote
type Quote struct {
	ProviderName string          `json:"provider_name"`
	Amount       decimal.Decimal `json:"amount"`
}

type PricingPolicy string

const (
	PolicyLenient PricingPolicy = "lenient"
	PolicyStrict  PricingPolicy = "strict"
)

// Certificate is the printable export of a chosen quote.
type Certificate struct {
	Serial          string
	HolderName      string
	Age             int
	ExperienceLevel ExperienceLevel
	Quote           Quote
	IssuedAt        time.Time
}

func (c Certificate) Grade() string {
	return c.ExperienceLevel.Grade()
}
