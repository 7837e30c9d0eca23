package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// VehicleRecord is what the registry knows about a registration, plus our
// value estimate.
type VehicleRecord struct {
	Registration   string          `json:"registration"`
	Make           string          `json:"make"`
	Model          string          `json:"model"`
	Year           int             `json:"year"`
	Type           VehicleType     `json:"type"`
	EstimatedValue decimal.Decimal `json:"estimated_value"`
	FetchedAt      time.Time       `json:"fetched_at"`
}
