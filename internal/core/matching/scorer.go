// Package matching scores how well one swap listing's offered slot satisfies
// another listing's search.
package matching

import (
	"math"
	"strings"
	"time"

	"github.com/testbuddy/marketplace_service/internal/core/domain"
)

const (
	DefaultCentreWeight   = 60
	DefaultDateWindowDays = 14

	anySuffix = "(any)"
)

type Scorer struct {
	centreWeight float64
	dateWeight   float64
	windowDays   float64
	regions      map[string]string
}

// NewScorer builds a scorer whose centre weight is out of 100; the rest goes
// to date overlap. Out-of-range values fall back to the defaults.
func NewScorer(centreWeight, dateWindowDays int) *Scorer {
	if centreWeight < 0 || centreWeight > 100 {
		centreWeight = DefaultCentreWeight
	}
	if dateWindowDays <= 0 {
		dateWindowDays = DefaultDateWindowDays
	}
	regions := make(map[string]string, len(domain.Centres))
	for _, c := range domain.Centres {
		regions[normalize(c.Name)] = normalize(c.Region)
	}
	return &Scorer{
		centreWeight: float64(centreWeight),
		dateWeight:   float64(100 - centreWeight),
		windowDays:   float64(dateWindowDays),
		regions:      regions,
	}
}

var defaultScorer = NewScorer(DefaultCentreWeight, DefaultDateWindowDays)

// Score rates a's offering against b's seeking, 0..100.
func Score(a, b *domain.SwapListing) int {
	return defaultScorer.Score(a, b)
}

func (s *Scorer) Score(a, b *domain.SwapListing) int {
	if a == nil || b == nil {
		return 0
	}
	raw := s.centreWeight*s.centreMatch(a.Offering.Centre, b.Seeking.Centres) +
		s.dateWeight*s.dateOverlap(a.Offering, b.Seeking)
	return clamp(int(math.Round(raw)))
}

// MutualScore averages both directions.
func (s *Scorer) MutualScore(a, b *domain.SwapListing) int {
	return clamp(int(math.Round(float64(s.Score(a, b)+s.Score(b, a)) / 2)))
}

// SlotScore rates a bare slot against a listing's seeking, as used when a
// proposer has no listing of their own.
func (s *Scorer) SlotScore(slot domain.TestSlot, b *domain.SwapListing) int {
	return s.Score(&domain.SwapListing{Offering: slot}, b)
}

func Tier(score int) domain.MatchTier {
	switch {
	case score >= 80:
		return domain.TierStrong
	case score >= 60:
		return domain.TierFair
	default:
		return domain.TierWeak
	}
}

func (s *Scorer) centreMatch(offered string, sought []string) float64 {
	centre := normalize(offered)
	if centre == "" {
		return 0
	}
	region := s.regions[centre]
	for _, want := range sought {
		w := normalize(want)
		if strings.HasSuffix(w, anySuffix) {
			// "<Region> (any)" matches every centre in that region.
			if r := normalize(strings.TrimSuffix(w, anySuffix)); r != "" && r == region {
				return 1
			}
			continue
		}
		if w != "" && w == centre {
			return 1
		}
	}
	return 0
}

func (s *Scorer) dateOverlap(offer domain.TestSlot, seeking domain.Seeking) float64 {
	date := dayOf(time.Time(offer.Date))
	start := dayOf(time.Time(seeking.DateRangeStart))
	end := dayOf(time.Time(seeking.DateRangeEnd))
	if date.IsZero() || start.IsZero() || end.IsZero() {
		return 0
	}
	if end.Before(start) {
		start, end = end, start
	}

	var distance float64
	switch {
	case date.Before(start):
		distance = start.Sub(date).Hours() / 24
	case date.After(end):
		distance = date.Sub(end).Hours() / 24
	default:
		return 1
	}
	return math.Max(0, 1-distance/s.windowDays)
}

func dayOf(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func clamp(score int) int {
	switch {
	case score < 0:
		return 0
	case score > 100:
		return 100
	default:
		return score
	}
}
