package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/testbuddy/marketplace_service/internal/core/domain"
)

type SwapRepository interface {
	CreateListing(ctx context.Context, listing *domain.SwapListing) (*domain.SwapListing, error)
	GetListingByID(ctx context.Context, listingID uuid.UUID) (*domain.SwapListing, error)
	GetListingsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.SwapListing, error)
	// GetActiveListings excludes the given owner and listings whose offered
	// date is before the given date.
	GetActiveListings(ctx context.Context, excludeOwner uuid.UUID, centres []string, notBefore time.Time) ([]*domain.SwapListing, error)
	// UpdateListingStatus only applies while the listing is still in from.
	UpdateListingStatus(ctx context.Context, listingID uuid.UUID, from, to domain.ListingStatus) error

	CreateRequest(ctx context.Context, request *domain.SwapRequest) (*domain.SwapRequest, error)
	GetRequestByID(ctx context.Context, requestID uuid.UUID) (*domain.SwapRequest, error)
	GetRequestsByUser(ctx context.Context, userID uuid.UUID) ([]*domain.SwapRequest, error)
	UpdateRequestStatus(ctx context.Context, requestID uuid.UUID, from, to domain.RequestStatus) (*domain.SwapRequest, error)
	// CompleteRequest moves an accepted request to completed and its active
	// listing to swapped together, or changes neither.
	CompleteRequest(ctx context.Context, requestID, listingID uuid.UUID) (*domain.SwapRequest, error)
}

type EventPublisher interface {
	PublishSwapEvent(ctx context.Context, event domain.SwapEvent) error
}
