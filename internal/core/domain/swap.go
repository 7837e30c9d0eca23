package domain

import (
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
)

type ListingStatus string

const (
	ListingActive    ListingStatus = "active"
	ListingWithdrawn ListingStatus = "withdrawn"
	ListingSwapped   ListingStatus = "swapped"
)

// TestSlot is a booked driving-test appointment.
type TestSlot struct {
	Centre string      `json:"centre" validate:"required,max=100"`
	Date   strfmt.Date `json:"date"`
	Time   string      `json:"time" validate:"required,datetime=15:04"`
}

type Seeking struct {
	Centres        []string    `json:"centres" validate:"required,min=1,dive,required,max=100"`
	DateRangeStart strfmt.Date `json:"date_range_start"`
	DateRangeEnd   strfmt.Date `json:"date_range_end"`
	Flexibility    string      `json:"flexibility,omitempty" validate:"max=200"`
}

// swagger:model domain.SwapListing
type SwapListing struct {
	ID        uuid.UUID     `json:"id"`
	OwnerID   uuid.UUID     `json:"owner_id"`
	Offering  TestSlot      `json:"offering"`
	Seeking   Seeking       `json:"seeking"`
	Reason    string        `json:"reason,omitempty" validate:"max=500"`
	Status    ListingStatus `json:"status"`
	PostedAt  time.Time     `json:"posted_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

type RequestStatus string

const (
	RequestPending   RequestStatus = "pending"
	RequestAccepted  RequestStatus = "accepted"
	RequestDeclined  RequestStatus = "declined"
	RequestCancelled RequestStatus = "cancelled"
	RequestCompleted RequestStatus = "completed"
)

type RequestAction string

const (
	ActionAccept   RequestAction = "accept"
	ActionDecline  RequestAction = "decline"
	ActionCancel   RequestAction = "cancel"
	ActionComplete RequestAction = "complete"
)

var requestTransitions = map[RequestStatus]map[RequestAction]RequestStatus{
	RequestPending: {
		ActionAccept:  RequestAccepted,
		ActionDecline: RequestDeclined,
		ActionCancel:  RequestCancelled,
	},
	RequestAccepted: {
		ActionComplete: RequestCompleted,
		ActionCancel:   RequestCancelled,
	},
}

// Next returns the status reached by applying action, or false when the
// transition is not allowed.
func (s RequestStatus) Next(action RequestAction) (RequestStatus, bool) {
	next, ok := requestTransitions[s][action]
	return next, ok
}

// SwapRequest is a proposal to trade the proposer's slot for a listing's slot.
type SwapRequest struct {
	ID          uuid.UUID     `json:"id"`
	ListingID   uuid.UUID     `json:"listing_id"`
	ProposerID  uuid.UUID     `json:"proposer_id"`
	OwnerID     uuid.UUID     `json:"owner_id"`
	TheirTest   TestSlot      `json:"their_test"`
	MyTest      TestSlot      `json:"my_test"`
	Message     string        `json:"message,omitempty" validate:"max=1000"`
	AgreeEscrow bool          `json:"agree_escrow"`
	Status      RequestStatus `json:"status"`
	RequestedAt time.Time     `json:"requested_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

type ListingSort string

const (
	SortMatch    ListingSort = "match"
	SortPosted   ListingSort = "posted"
	SortDate     ListingSort = "date"
	SortLocation ListingSort = "location"
)

type ListingFilter struct {
	Centres []string
	Sort    ListingSort
}

// ScoredListing is a listing as seen by a browsing user.
type ScoredListing struct {
	Listing *SwapListing `json:"listing"`
	Score   int          `json:"match_score"`
	Tier    MatchTier    `json:"match_tier"`
}

type MatchTier string

const (
	TierStrong MatchTier = "strong"
	TierFair   MatchTier = "fair"
	TierWeak   MatchTier = "weak"
)

// SwapEvent is published whenever a swap request changes state.
type SwapEvent struct {
	Type       string        `json:"type"`
	RequestID  uuid.UUID     `json:"request_id"`
	ListingID  uuid.UUID     `json:"listing_id"`
	ProposerID uuid.UUID     `json:"proposer_id"`
	OwnerID    uuid.UUID     `json:"owner_id"`
	Status     RequestStatus `json:"status"`
	OccurredAt time.Time     `json:"occurred_at"`
}

// Centre is a driving test centre and the region it belongs to.
type Centre struct {
	Name   string `json:"name"`
	Region string `json:"region"`
}

var Centres = []Centre{
	{Name: "Tallaght", Region: "Dublin"},
	{Name: "Rathgar", Region: "Dublin"},
	{Name: "Finglas", Region: "Dublin"},
	{Name: "Cork", Region: "Cork"},
	{Name: "Wilton", Region: "Cork"},
	{Name: "Galway", Region: "Galway"},
	{Name: "Limerick", Region: "Limerick"},
	{Name: "Waterford", Region: "Waterford"},
	{Name: "Cavan", Region: "Cavan"},
	{Name: "Kilkenny", Region: "Kilkenny"},
	{Name: "Ennis", Region: "Clare"},
}
