package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/testbuddy/marketplace_service/internal/core/domain"
	"github.com/testbuddy/marketplace_service/internal/core/ports"
)

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}

type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
	ttls map[string]time.Duration
}

func newMemCache() *memCache {
	return &memCache{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (c *memCache) Get(key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	if !ok {
		return nil, ports.ErrCacheMiss
	}
	return v, nil
}

func (c *memCache) Set(key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	c.ttls[key] = ttl
	return nil
}

func (c *memCache) Delete(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

type countingMetrics struct {
	hits, misses int
}

func (m *countingMetrics) RecordMetrics(*gin.Context, time.Time) {}
func (m *countingMetrics) RecordQuotes(string, int)              {}

func (m *countingMetrics) RecordCacheLookup(_ string, hit bool) {
	if hit {
		m.hits++
	} else {
		m.misses++
	}
}

type fakeRegistry struct {
	records map[string]domain.VehicleRecord
	err     error
	calls   int
}

func (r *fakeRegistry) Lookup(_ context.Context, registration string) (*domain.VehicleRecord, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	rec, ok := r.records[registration]
	if !ok {
		return nil, fmt.Errorf("registry: %w", domain.ErrLookupNotFound)
	}
	return &rec, nil
}

type memProfiles struct {
	profiles map[uuid.UUID]domain.LearnerProfile
}

func newMemProfiles() *memProfiles {
	return &memProfiles{profiles: map[uuid.UUID]domain.LearnerProfile{}}
}

func (r *memProfiles) GetProfile(_ context.Context, userID uuid.UUID) (*domain.LearnerProfile, error) {
	p, ok := r.profiles[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return &p, nil
}

func (r *memProfiles) UpsertProfile(_ context.Context, profile *domain.LearnerProfile) (*domain.LearnerProfile, error) {
	saved := *profile
	saved.UpdatedAt = time.Now()
	if old, ok := r.profiles[profile.UserID]; ok {
		saved.CreatedAt = old.CreatedAt
	} else {
		saved.CreatedAt = saved.UpdatedAt
	}
	r.profiles[profile.UserID] = saved
	return &saved, nil
}

type fakeRenderer struct {
	last domain.Certificate
}

func (r *fakeRenderer) RenderCertificate(cert domain.Certificate) ([]byte, error) {
	r.last = cert
	return []byte("%PDF-fake " + cert.Serial), nil
}

type memSwaps struct {
	mu       sync.Mutex
	listings map[uuid.UUID]domain.SwapListing
	requests map[uuid.UUID]domain.SwapRequest
	clock    time.Time
	// listingErr fails every listing status write.
	listingErr error
}

func newMemSwaps() *memSwaps {
	return &memSwaps{
		listings: map[uuid.UUID]domain.SwapListing{},
		requests: map[uuid.UUID]domain.SwapRequest{},
		clock:    time.Date(2025, 11, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (r *memSwaps) tick() time.Time {
	r.clock = r.clock.Add(time.Minute)
	return r.clock
}

func (r *memSwaps) CreateListing(_ context.Context, listing *domain.SwapListing) (*domain.SwapListing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	saved := *listing
	saved.PostedAt = r.tick()
	saved.UpdatedAt = saved.PostedAt
	r.listings[saved.ID] = saved
	return &saved, nil
}

func (r *memSwaps) GetListingByID(_ context.Context, id uuid.UUID) (*domain.SwapListing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.listings[id]
	if !ok {
		return nil, domain.ErrListingNotFound
	}
	return &l, nil
}

func (r *memSwaps) GetListingsByOwner(_ context.Context, ownerID uuid.UUID) ([]*domain.SwapListing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.SwapListing
	for _, l := range r.listings {
		if l.OwnerID == ownerID {
			l := l
			out = append(out, &l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PostedAt.After(out[j].PostedAt) })
	return out, nil
}

func (r *memSwaps) GetActiveListings(_ context.Context, excludeOwner uuid.UUID, centres []string, notBefore time.Time) ([]*domain.SwapListing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.SwapListing
	for _, l := range r.listings {
		if l.Status != domain.ListingActive || l.OwnerID == excludeOwner {
			continue
		}
		if time.Time(l.Offering.Date).Before(notBefore) {
			continue
		}
		if len(centres) > 0 && !containsFold(centres, l.Offering.Centre) {
			continue
		}
		l := l
		out = append(out, &l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PostedAt.After(out[j].PostedAt) })
	return out, nil
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}

func (r *memSwaps) UpdateListingStatus(_ context.Context, id uuid.UUID, from, to domain.ListingStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listingErr != nil {
		return r.listingErr
	}
	l, ok := r.listings[id]
	if !ok {
		return domain.ErrListingNotFound
	}
	if l.Status != from {
		return domain.NewConflictError("memSwaps.UpdateListingStatus", errors.New("listing status changed"))
	}
	l.Status = to
	l.UpdatedAt = r.tick()
	r.listings[id] = l
	return nil
}

func (r *memSwaps) CreateRequest(_ context.Context, request *domain.SwapRequest) (*domain.SwapRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	saved := *request
	saved.RequestedAt = r.tick()
	saved.UpdatedAt = saved.RequestedAt
	r.requests[saved.ID] = saved
	return &saved, nil
}

func (r *memSwaps) GetRequestByID(_ context.Context, id uuid.UUID) (*domain.SwapRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.requests[id]
	if !ok {
		return nil, domain.ErrRequestNotFound
	}
	return &req, nil
}

func (r *memSwaps) GetRequestsByUser(_ context.Context, userID uuid.UUID) ([]*domain.SwapRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.SwapRequest
	for _, req := range r.requests {
		if req.ProposerID == userID || req.OwnerID == userID {
			req := req
			out = append(out, &req)
		}
	}
	return out, nil
}

func (r *memSwaps) UpdateRequestStatus(_ context.Context, id uuid.UUID, from, to domain.RequestStatus) (*domain.SwapRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.requests[id]
	if !ok {
		return nil, domain.ErrRequestNotFound
	}
	if req.Status != from {
		return nil, domain.NewConflictError("memSwaps.UpdateRequestStatus", errors.New("status changed"))
	}
	req.Status = to
	req.UpdatedAt = r.tick()
	r.requests[id] = req
	return &req, nil
}

// CompleteRequest checks both rows before touching either, like the
// transaction in the postgres repository.
func (r *memSwaps) CompleteRequest(_ context.Context, requestID, listingID uuid.UUID) (*domain.SwapRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.requests[requestID]
	if !ok || req.ListingID != listingID || req.Status != domain.RequestAccepted {
		return nil, domain.NewConflictError("memSwaps.CompleteRequest", errors.New("request is no longer accepted"))
	}
	l, ok := r.listings[listingID]
	if !ok || l.Status != domain.ListingActive {
		return nil, domain.NewConflictError("memSwaps.CompleteRequest", errors.New("listing is no longer active"))
	}
	if r.listingErr != nil {
		return nil, r.listingErr
	}
	now := r.tick()
	req.Status, req.UpdatedAt = domain.RequestCompleted, now
	l.Status, l.UpdatedAt = domain.ListingSwapped, now
	r.requests[requestID] = req
	r.listings[listingID] = l
	return &req, nil
}

type recordingPublisher struct {
	events []domain.SwapEvent
	err    error
}

func (p *recordingPublisher) PublishSwapEvent(_ context.Context, event domain.SwapEvent) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}
