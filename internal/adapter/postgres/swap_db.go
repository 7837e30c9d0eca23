package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/testbuddy/marketplace_service/internal/core/domain"
)

type SwapRepository struct {
	db *sql.DB
}

func NewSwapRepository(db *sql.DB) *SwapRepository {
	return &SwapRepository{db: db}
}

const listingColumns = `id, owner_id, offering_centre, offering_date, offering_time,
	seeking_centres, seeking_start, seeking_end, flexibility, reason, status, posted_at, updated_at`

const requestColumns = `id, listing_id, proposer_id, owner_id, their_centre, their_date, their_time,
	my_centre, my_date, my_time, message, agree_escrow, status, requested_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanListing(row rowScanner) (*domain.SwapListing, error) {
	l := &domain.SwapListing{}
	err := row.Scan(
		&l.ID,
		&l.OwnerID,
		&l.Offering.Centre,
		&l.Offering.Date,
		&l.Offering.Time,
		pq.Array(&l.Seeking.Centres),
		&l.Seeking.DateRangeStart,
		&l.Seeking.DateRangeEnd,
		&l.Seeking.Flexibility,
		&l.Reason,
		&l.Status,
		&l.PostedAt,
		&l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return l, nil
}

func scanRequest(row rowScanner) (*domain.SwapRequest, error) {
	r := &domain.SwapRequest{}
	err := row.Scan(
		&r.ID,
		&r.ListingID,
		&r.ProposerID,
		&r.OwnerID,
		&r.TheirTest.Centre,
		&r.TheirTest.Date,
		&r.TheirTest.Time,
		&r.MyTest.Centre,
		&r.MyTest.Date,
		&r.MyTest.Time,
		&r.Message,
		&r.AgreeEscrow,
		&r.Status,
		&r.RequestedAt,
		&r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (r *SwapRepository) CreateListing(ctx context.Context, listing *domain.SwapListing) (*domain.SwapListing, error) {
	query := `INSERT INTO swap_listings (id, owner_id, offering_centre, offering_date, offering_time,
		seeking_centres, seeking_start, seeking_end, flexibility, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING posted_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		listing.ID,
		listing.OwnerID,
		listing.Offering.Centre,
		listing.Offering.Date,
		listing.Offering.Time,
		pq.Array(listing.Seeking.Centres),
		listing.Seeking.DateRangeStart,
		listing.Seeking.DateRangeEnd,
		listing.Seeking.Flexibility,
		listing.Reason,
		listing.Status,
	).Scan(
		&listing.PostedAt,
		&listing.UpdatedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Code {
			case "23502":
				return nil, domain.NewValidationError("SwapRepository.CreateListing", fmt.Errorf("required field is missing"))
			case "23514":
				return nil, domain.NewValidationError("SwapRepository.CreateListing", fmt.Errorf("invalid date range"))
			default:
				return nil, err
			}
		}
		return nil, err
	}
	return listing, nil
}

func (r *SwapRepository) GetListingByID(ctx context.Context, listingID uuid.UUID) (*domain.SwapListing, error) {
	query := `SELECT ` + listingColumns + ` FROM swap_listings WHERE id = $1`

	listing, err := scanListing(r.db.QueryRowContext(ctx, query, listingID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrListingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}
	return listing, nil
}

func (r *SwapRepository) GetListingsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.SwapListing, error) {
	query := `SELECT ` + listingColumns + ` FROM swap_listings WHERE owner_id = $1
		ORDER BY posted_at DESC`

	return r.queryListings(ctx, query, ownerID)
}

func (r *SwapRepository) GetActiveListings(ctx context.Context, excludeOwner uuid.UUID, centres []string, notBefore time.Time) ([]*domain.SwapListing, error) {
	query := `SELECT ` + listingColumns + ` FROM swap_listings
		WHERE status = 'active'
		  AND owner_id <> $1
		  AND offering_date >= $2
		  AND (cardinality($3::text[]) = 0 OR lower(offering_centre) = ANY($3::text[]))
		ORDER BY posted_at DESC`

	lowered := make([]string, 0, len(centres))
	for _, c := range centres {
		if c = strings.ToLower(strings.TrimSpace(c)); c != "" {
			lowered = append(lowered, c)
		}
	}

	return r.queryListings(ctx, query, excludeOwner, notBefore.Format("2006-01-02"), pq.Array(lowered))
}

func (r *SwapRepository) queryListings(ctx context.Context, query string, args ...any) ([]*domain.SwapListing, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []*domain.SwapListing
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		listings = append(listings, listing)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *SwapRepository) UpdateListingStatus(ctx context.Context, listingID uuid.UUID, from, to domain.ListingStatus) error {
	query := `UPDATE swap_listings SET status = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2 AND status = $3`

	result, err := r.db.ExecContext(ctx, query, to, listingID, from)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		if _, getErr := r.GetListingByID(ctx, listingID); getErr != nil {
			return getErr
		}
		return domain.NewConflictError("SwapRepository.UpdateListingStatus", fmt.Errorf("listing is no longer %s", from))
	}
	return nil
}

func (r *SwapRepository) CreateRequest(ctx context.Context, request *domain.SwapRequest) (*domain.SwapRequest, error) {
	query := `INSERT INTO swap_requests (id, listing_id, proposer_id, owner_id, their_centre, their_date,
		their_time, my_centre, my_date, my_time, message, agree_escrow, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING requested_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		request.ID,
		request.ListingID,
		request.ProposerID,
		request.OwnerID,
		request.TheirTest.Centre,
		request.TheirTest.Date,
		request.TheirTest.Time,
		request.MyTest.Centre,
		request.MyTest.Date,
		request.MyTest.Time,
		request.Message,
		request.AgreeEscrow,
		request.Status,
	).Scan(
		&request.RequestedAt,
		&request.UpdatedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Code {
			case "23503":
				return nil, domain.ErrListingNotFound
			case "23514":
				return nil, domain.NewValidationError("SwapRepository.CreateRequest", fmt.Errorf("cannot propose a swap on your own listing"))
			default:
				return nil, err
			}
		}
		return nil, err
	}
	return request, nil
}

func (r *SwapRepository) GetRequestByID(ctx context.Context, requestID uuid.UUID) (*domain.SwapRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM swap_requests WHERE id = $1`

	request, err := scanRequest(r.db.QueryRowContext(ctx, query, requestID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get swap request: %w", err)
	}
	return request, nil
}

func (r *SwapRepository) GetRequestsByUser(ctx context.Context, userID uuid.UUID) ([]*domain.SwapRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM swap_requests
		WHERE proposer_id = $1 OR owner_id = $1
		ORDER BY requested_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []*domain.SwapRequest
	for rows.Next() {
		request, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return requests, nil
}

// UpdateRequestStatus only applies when the stored status still equals from,
// so two parties racing on the same request cannot both win.
func (r *SwapRepository) UpdateRequestStatus(ctx context.Context, requestID uuid.UUID, from, to domain.RequestStatus) (*domain.SwapRequest, error) {
	query := `UPDATE swap_requests SET status = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2 AND status = $3
		RETURNING ` + requestColumns

	request, err := scanRequest(r.db.QueryRowContext(ctx, query, to, requestID, from))
	if errors.Is(err, sql.ErrNoRows) {
		if _, getErr := r.GetRequestByID(ctx, requestID); getErr != nil {
			return nil, getErr
		}
		return nil, domain.NewConflictError("SwapRepository.UpdateRequestStatus", fmt.Errorf("request is no longer %s", from))
	}
	if err != nil {
		return nil, fmt.Errorf("error updating swap request: %w", err)
	}
	return request, nil
}

func (r *SwapRepository) CompleteRequest(ctx context.Context, requestID, listingID uuid.UUID) (*domain.SwapRequest, error) {
	const op = "SwapRepository.CompleteRequest"

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	requestQuery := `UPDATE swap_requests SET status = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2 AND listing_id = $3 AND status = $4
		RETURNING ` + requestColumns

	request, err := scanRequest(tx.QueryRowContext(ctx, requestQuery,
		domain.RequestCompleted, requestID, listingID, domain.RequestAccepted))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewConflictError(op, fmt.Errorf("request is no longer %s", domain.RequestAccepted))
	}
	if err != nil {
		return nil, fmt.Errorf("error completing swap request: %w", err)
	}

	listingQuery := `UPDATE swap_listings SET status = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2 AND status = $3`

	result, err := tx.ExecContext(ctx, listingQuery, domain.ListingSwapped, listingID, domain.ListingActive)
	if err != nil {
		return nil, fmt.Errorf("error marking listing swapped: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rowsAffected == 0 {
		return nil, domain.NewConflictError(op, fmt.Errorf("listing is no longer %s", domain.ListingActive))
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("error committing swap completion: %w", err)
	}
	return request, nil
}
