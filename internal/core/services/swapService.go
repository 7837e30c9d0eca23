package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/testbuddy/marketplace_service/internal/core/domain"
	"github.com/testbuddy/marketplace_service/internal/core/matching"
	"github.com/testbuddy/marketplace_service/internal/core/ports"
)

type SwapService struct {
	swapRepo  ports.SwapRepository
	publisher ports.EventPublisher
	scorer    *matching.Scorer
	logger    ports.LoggerPort
	validate  *validator.Validate
	now       func() time.Time
}

func NewSwapService(
	swapRepo ports.SwapRepository,
	publisher ports.EventPublisher,
	scorer *matching.Scorer,
	logger ports.LoggerPort,
	validate *validator.Validate,
) *SwapService {
	return &SwapService{
		swapRepo:  swapRepo,
		publisher: publisher,
		scorer:    scorer,
		logger:    logger,
		validate:  validate,
		now:       time.Now,
	}
}

// Proposal is the proposer's side of a swap request.
type Proposal struct {
	MyTest      domain.TestSlot
	Message     string
	AgreeEscrow bool
}

func (s *SwapService) today() time.Time {
	y, m, d := s.now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s *SwapService) parseID(op, name, id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		s.logger.Error("Invalid UUID format", map[string]interface{}{
			name:    id,
			"error": err.Error(),
		})
		return uuid.Nil, domain.NewValidationError(op, fmt.Errorf("invalid %s: %w", name, err))
	}
	return parsed, nil
}

func (s *SwapService) checkSlot(op string, slot domain.TestSlot) error {
	date := time.Time(slot.Date)
	if date.IsZero() {
		return domain.NewValidationError(op, errors.New("test date is required"))
	}
	if date.Before(s.today()) {
		return domain.NewValidationError(op, errors.New("test date is in the past"))
	}
	return nil
}

func (s *SwapService) CreateListing(ctx context.Context, ownerID string, listing *domain.SwapListing) (*domain.SwapListing, error) {
	const op = "SwapService.CreateListing"

	ownerUUID, err := s.parseID(op, "user_id", ownerID)
	if err != nil {
		return nil, err
	}

	if err := s.validate.Struct(listing); err != nil {
		s.logger.Error("Listing validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, domain.NewValidationError(op, err)
	}
	if err := s.checkSlot(op, listing.Offering); err != nil {
		return nil, err
	}
	start, end := time.Time(listing.Seeking.DateRangeStart), time.Time(listing.Seeking.DateRangeEnd)
	if start.IsZero() || end.IsZero() {
		return nil, domain.NewValidationError(op, errors.New("seeking date range is required"))
	}
	if end.Before(start) {
		return nil, domain.NewValidationError(op, errors.New("seeking date range ends before it starts"))
	}

	listing.ID = uuid.New()
	listing.OwnerID = ownerUUID
	listing.Status = domain.ListingActive

	created, err := s.swapRepo.CreateListing(ctx, listing)
	if err != nil {
		s.logger.Error("Failed to create listing", map[string]interface{}{
			"error":   err.Error(),
			"user_id": ownerID,
		})
		return nil, err
	}

	s.logger.Info("Listing created successfully", map[string]interface{}{
		"listing_id": created.ID,
		"user_id":    ownerID,
		"centre":     created.Offering.Centre,
	})

	return created, nil
}

func (s *SwapService) GetListing(ctx context.Context, listingID string) (*domain.SwapListing, error) {
	const op = "SwapService.GetListing"

	listingUUID, err := s.parseID(op, "listing_id", listingID)
	if err != nil {
		return nil, err
	}

	listing, err := s.swapRepo.GetListingByID(ctx, listingUUID)
	if err != nil {
		s.logger.Error("Failed to get listing", map[string]interface{}{
			"error":      err.Error(),
			"listing_id": listingID,
		})
		if errors.Is(err, domain.ErrListingNotFound) {
			return nil, domain.NewNotFoundError(op, err)
		}
		return nil, err
	}
	return listing, nil
}

func (s *SwapService) ListMyListings(ctx context.Context, userID string) ([]*domain.SwapListing, error) {
	const op = "SwapService.ListMyListings"

	userUUID, err := s.parseID(op, "user_id", userID)
	if err != nil {
		return nil, err
	}

	listings, err := s.swapRepo.GetListingsByOwner(ctx, userUUID)
	if err != nil {
		s.logger.Error("Failed to get listings", map[string]interface{}{
			"error":   err.Error(),
			"user_id": userID,
		})
		return nil, err
	}

	s.logger.Info("Retrieved listings for user", map[string]interface{}{
		"user_id":        userID,
		"listings_count": len(listings),
	})
	return listings, nil
}

func (s *SwapService) WithdrawListing(ctx context.Context, userID, listingID string) error {
	const op = "SwapService.WithdrawListing"

	userUUID, err := s.parseID(op, "user_id", userID)
	if err != nil {
		return err
	}

	listing, err := s.GetListing(ctx, listingID)
	if err != nil {
		return err
	}
	if listing.OwnerID != userUUID {
		s.logger.Warn("Access denied to withdraw listing", map[string]interface{}{
			"requester_id": userID,
			"owner_id":     listing.OwnerID.String(),
			"listing_id":   listingID,
		})
		return domain.NewForbiddenError(op, domain.ErrForbidden)
	}
	if listing.Status != domain.ListingActive {
		return domain.NewConflictError(op, fmt.Errorf("listing is %s", listing.Status))
	}

	if err := s.swapRepo.UpdateListingStatus(ctx, listing.ID, domain.ListingActive, domain.ListingWithdrawn); err != nil {
		s.logger.Error("Failed to withdraw listing", map[string]interface{}{
			"error":      err.Error(),
			"listing_id": listingID,
		})
		return err
	}

	s.logger.Info("Listing withdrawn", map[string]interface{}{
		"listing_id": listingID,
	})
	return nil
}

// BrowseListings returns other users' active listings, scored against the
// caller's newest active listing when there is one.
func (s *SwapService) BrowseListings(ctx context.Context, userID string, filter domain.ListingFilter) ([]domain.ScoredListing, error) {
	const op = "SwapService.BrowseListings"

	userUUID, err := s.parseID(op, "user_id", userID)
	if err != nil {
		return nil, err
	}

	mine, err := s.swapRepo.GetListingsByOwner(ctx, userUUID)
	if err != nil {
		s.logger.Warn("Failed to get own listings for scoring", map[string]interface{}{
			"error":   err.Error(),
			"user_id": userID,
		})
		mine = nil
	}
	var reference *domain.SwapListing
	for _, l := range mine {
		if l.Status != domain.ListingActive {
			continue
		}
		if reference == nil || l.PostedAt.After(reference.PostedAt) {
			reference = l
		}
	}

	candidates, err := s.swapRepo.GetActiveListings(ctx, userUUID, filter.Centres, s.today())
	if err != nil {
		s.logger.Error("Failed to get active listings", map[string]interface{}{
			"error":   err.Error(),
			"user_id": userID,
		})
		return nil, err
	}

	results := make([]domain.ScoredListing, len(candidates))
	for i, c := range candidates {
		score := 0
		if reference != nil {
			score = s.scorer.MutualScore(reference, c)
		}
		results[i] = domain.ScoredListing{
			Listing: c,
			Score:   score,
			Tier:    matching.Tier(score),
		}
	}

	sortBy := filter.Sort
	if sortBy == domain.SortMatch && reference == nil {
		sortBy = domain.SortDate
	}
	sortListings(results, sortBy)

	s.logger.Info("Browsed listings", map[string]interface{}{
		"user_id":        userID,
		"listings_count": len(results),
		"sort":           sortBy,
		"scored":         reference != nil,
	})
	return results, nil
}

func offeredDate(l *domain.SwapListing) time.Time {
	return time.Time(l.Offering.Date)
}

func sortListings(results []domain.ScoredListing, by domain.ListingSort) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i].Listing, results[j].Listing
		switch by {
		case domain.SortPosted:
			return a.PostedAt.After(b.PostedAt)
		case domain.SortDate:
			return offeredDate(a).Before(offeredDate(b))
		case domain.SortLocation:
			ca, cb := strings.ToLower(a.Offering.Centre), strings.ToLower(b.Offering.Centre)
			if ca != cb {
				return ca < cb
			}
			return offeredDate(a).Before(offeredDate(b))
		default:
			if results[i].Score != results[j].Score {
				return results[i].Score > results[j].Score
			}
			return offeredDate(a).Before(offeredDate(b))
		}
	})
}

func (s *SwapService) ProposeSwap(ctx context.Context, userID, listingID string, proposal Proposal) (*domain.SwapRequest, error) {
	const op = "SwapService.ProposeSwap"

	proposerUUID, err := s.parseID(op, "user_id", userID)
	if err != nil {
		return nil, err
	}

	if err := s.validate.Struct(proposal.MyTest); err != nil {
		s.logger.Error("Proposal validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, domain.NewValidationError(op, fmt.Errorf("please fill in all your test details: %w", err))
	}
	if err := s.checkSlot(op, proposal.MyTest); err != nil {
		return nil, err
	}
	if !proposal.AgreeEscrow {
		return nil, domain.NewValidationError(op, errors.New("please agree to the escrow terms"))
	}

	listing, err := s.GetListing(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if listing.OwnerID == proposerUUID {
		return nil, domain.NewValidationError(op, errors.New("cannot propose a swap on your own listing"))
	}
	if listing.Status != domain.ListingActive {
		return nil, domain.NewConflictError(op, fmt.Errorf("listing is %s", listing.Status))
	}

	request := &domain.SwapRequest{
		ID:          uuid.New(),
		ListingID:   listing.ID,
		ProposerID:  proposerUUID,
		OwnerID:     listing.OwnerID,
		TheirTest:   listing.Offering,
		MyTest:      proposal.MyTest,
		Message:     proposal.Message,
		AgreeEscrow: proposal.AgreeEscrow,
		Status:      domain.RequestPending,
	}
	if err := s.validate.Struct(request); err != nil {
		return nil, domain.NewValidationError(op, err)
	}

	created, err := s.swapRepo.CreateRequest(ctx, request)
	if err != nil {
		s.logger.Error("Failed to create swap request", map[string]interface{}{
			"error":      err.Error(),
			"listing_id": listingID,
			"user_id":    userID,
		})
		return nil, err
	}

	s.logger.Info("Swap proposed", map[string]interface{}{
		"request_id": created.ID,
		"listing_id": listingID,
		"user_id":    userID,
		"score":      s.scorer.SlotScore(created.MyTest, listing),
	})
	s.publish(ctx, "swap.proposed", created)

	return created, nil
}

func (s *SwapService) RespondToRequest(ctx context.Context, userID, requestID string, action domain.RequestAction) (*domain.SwapRequest, error) {
	const op = "SwapService.RespondToRequest"

	userUUID, err := s.parseID(op, "user_id", userID)
	if err != nil {
		return nil, err
	}
	requestUUID, err := s.parseID(op, "request_id", requestID)
	if err != nil {
		return nil, err
	}

	request, err := s.swapRepo.GetRequestByID(ctx, requestUUID)
	if err != nil {
		s.logger.Error("Failed to get swap request", map[string]interface{}{
			"error":      err.Error(),
			"request_id": requestID,
		})
		if errors.Is(err, domain.ErrRequestNotFound) {
			return nil, domain.NewNotFoundError(op, err)
		}
		return nil, err
	}

	isOwner, isProposer := request.OwnerID == userUUID, request.ProposerID == userUUID
	allowed := false
	switch action {
	case domain.ActionAccept, domain.ActionDecline:
		allowed = isOwner
	case domain.ActionCancel, domain.ActionComplete:
		allowed = isOwner || isProposer
	default:
		return nil, domain.NewValidationError(op, fmt.Errorf("unknown action %q", action))
	}
	if !allowed {
		s.logger.Warn("Access denied to swap request", map[string]interface{}{
			"requester_id": userID,
			"request_id":   requestID,
			"action":       action,
		})
		return nil, domain.NewForbiddenError(op, domain.ErrForbidden)
	}

	next, ok := request.Status.Next(action)
	if !ok {
		return nil, domain.NewConflictError(op, fmt.Errorf("cannot %s a %s request", action, request.Status))
	}

	// A listing's slot can only be given away once.
	if action == domain.ActionAccept || action == domain.ActionComplete {
		listing, err := s.swapRepo.GetListingByID(ctx, request.ListingID)
		if err != nil {
			return nil, err
		}
		if listing.Status != domain.ListingActive {
			return nil, domain.NewConflictError(op, fmt.Errorf("listing is %s", listing.Status))
		}
	}

	var updated *domain.SwapRequest
	if next == domain.RequestCompleted {
		updated, err = s.swapRepo.CompleteRequest(ctx, request.ID, request.ListingID)
	} else {
		updated, err = s.swapRepo.UpdateRequestStatus(ctx, request.ID, request.Status, next)
	}
	if err != nil {
		s.logger.Error("Failed to update swap request", map[string]interface{}{
			"error":      err.Error(),
			"request_id": requestID,
			"listing_id": request.ListingID,
			"action":     action,
		})
		return nil, err
	}

	s.logger.Info("Swap request updated", map[string]interface{}{
		"request_id": requestID,
		"status":     next,
	})
	s.publish(ctx, "swap."+string(next), updated)

	return updated, nil
}

func (s *SwapService) ListMyRequests(ctx context.Context, userID string) ([]*domain.SwapRequest, error) {
	const op = "SwapService.ListMyRequests"

	userUUID, err := s.parseID(op, "user_id", userID)
	if err != nil {
		return nil, err
	}

	requests, err := s.swapRepo.GetRequestsByUser(ctx, userUUID)
	if err != nil {
		s.logger.Error("Failed to get swap requests", map[string]interface{}{
			"error":   err.Error(),
			"user_id": userID,
		})
		return nil, err
	}
	return requests, nil
}

// publish is best effort: a broker outage must not undo a committed change.
func (s *SwapService) publish(ctx context.Context, eventType string, request *domain.SwapRequest) {
	event := domain.SwapEvent{
		Type:       eventType,
		RequestID:  request.ID,
		ListingID:  request.ListingID,
		ProposerID: request.ProposerID,
		OwnerID:    request.OwnerID,
		Status:     request.Status,
		OccurredAt: s.now().UTC(),
	}
	if err := s.publisher.PublishSwapEvent(ctx, event); err != nil {
		s.logger.Warn("Failed to publish swap event", map[string]interface{}{
			"error":      err.Error(),
			"event":      eventType,
			"request_id": request.ID,
		})
	}
}
