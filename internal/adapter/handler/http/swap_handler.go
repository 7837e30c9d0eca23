package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-openapi/strfmt"
	"github.com/testbuddy/marketplace_service/internal/core/domain"
	"github.com/testbuddy/marketplace_service/internal/core/ports"
	"github.com/testbuddy/marketplace_service/internal/core/services"
)

type SwapHandler struct {
	swapService *services.SwapService
	logger      ports.LoggerPort
	metrics     ports.MetricsPort
}

type TestSlotRequest struct {
	Centre string      `json:"centre" binding:"required" example:"Tallaght"`
	Date   strfmt.Date `json:"date" swaggertype:"string" format:"date" example:"2025-12-04"`
	Time   string      `json:"time" binding:"required" example:"10:30"`
}

func (r TestSlotRequest) toDomain() domain.TestSlot {
	return domain.TestSlot{
		Centre: strings.TrimSpace(r.Centre),
		Date:   r.Date,
		Time:   strings.TrimSpace(r.Time),
	}
}

type SeekingRequest struct {
	Centres        []string    `json:"centres" binding:"required" example:"Cork,Wilton"`
	DateRangeStart strfmt.Date `json:"date_range_start" swaggertype:"string" format:"date" example:"2025-11-20"`
	DateRangeEnd   strfmt.Date `json:"date_range_end" swaggertype:"string" format:"date" example:"2025-12-20"`
	Flexibility    string      `json:"flexibility,omitempty" example:"Any weekday morning"`
}

type ListingRequest struct {
	Offering TestSlotRequest `json:"offering"`
	Seeking  SeekingRequest  `json:"seeking"`
	Reason   string          `json:"reason,omitempty" example:"Moving to Cork for work"`
}

type ProposalRequest struct {
	MyTest      TestSlotRequest `json:"my_test"`
	Message     string          `json:"message,omitempty" example:"My test is on a Monday morning"`
	AgreeEscrow bool            `json:"agree_escrow" example:"true"`
}

type ListingsResponse struct {
	Listings []*domain.SwapListing `json:"listings"`
	Count    int                   `json:"count"`
}

type BrowseResponse struct {
	Listings []domain.ScoredListing `json:"listings"`
	Count    int                    `json:"count"`
	Sort     string                 `json:"sort"`
}

type RequestsResponse struct {
	Requests []*domain.SwapRequest `json:"requests"`
	Count    int                   `json:"count"`
}

type CentresResponse struct {
	Centres []domain.Centre `json:"centres"`
	Count   int             `json:"count"`
}

func NewSwapHandler(
	swapService *services.SwapService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *SwapHandler {
	return &SwapHandler{
		swapService: swapService,
		logger:      logger,
		metrics:     metrics,
	}
}

// @Summary List test centres
// @Tags swaps
// @Produce json
// @Success 200 {object} CentresResponse "Centres"
// @Router /centres [get]
func (h *SwapHandler) GetCentres(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	c.JSON(http.StatusOK, CentresResponse{
		Centres: domain.Centres,
		Count:   len(domain.Centres),
	})
}

// @Summary Post a swap listing
// @Description Offers the caller's booked test in exchange for one matching their search
// @Tags swaps
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body ListingRequest true "Listing"
// @Success 201 {object} domain.SwapListing "Listing created"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Router /swaps/listings [post]
func (h *SwapHandler) CreateListing(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		h.logger.Warn("Unauthorized access attempt to CreateListing", map[string]interface{}{
			"ip": c.ClientIP(),
		})
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req ListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in create listing", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	centres := make([]string, 0, len(req.Seeking.Centres))
	for _, centre := range req.Seeking.Centres {
		if centre = strings.TrimSpace(centre); centre != "" {
			centres = append(centres, centre)
		}
	}

	listing, err := h.swapService.CreateListing(c.Request.Context(), payload.UserID.String(), &domain.SwapListing{
		Offering: req.Offering.toDomain(),
		Seeking: domain.Seeking{
			Centres:        centres,
			DateRangeStart: req.Seeking.DateRangeStart,
			DateRangeEnd:   req.Seeking.DateRangeEnd,
			Flexibility:    strings.TrimSpace(req.Seeking.Flexibility),
		},
		Reason: strings.TrimSpace(req.Reason),
	})
	if err != nil {
		handleServiceError(c, err, "Failed to create listing")
		return
	}

	c.JSON(http.StatusCreated, listing)
}

// @Summary Browse swap listings
// @Description Active listings of other users, scored against the caller's newest listing
// @Tags swaps
// @Security BearerAuth
// @Produce json
// @Param centre query []string false "Filter by offered centre" collectionFormat(multi)
// @Param sort query string false "match, posted, date or location" default(match)
// @Success 200 {object} BrowseResponse "Listings"
// @Failure 400 {object} errorResponse "Invalid sort"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Router /swaps/listings [get]
func (h *SwapHandler) BrowseListings(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		h.logger.Warn("Unauthorized access attempt to BrowseListings", map[string]interface{}{
			"ip": c.ClientIP(),
		})
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	sortBy := domain.ListingSort(strings.ToLower(c.DefaultQuery("sort", string(domain.SortMatch))))
	switch sortBy {
	case domain.SortMatch, domain.SortPosted, domain.SortDate, domain.SortLocation:
	default:
		newErrorResponse(c, http.StatusBadRequest, "sort must be one of match, posted, date, location")
		return
	}

	var centres []string
	for _, v := range c.QueryArray("centre") {
		for _, centre := range strings.Split(v, ",") {
			if centre = strings.TrimSpace(centre); centre != "" {
				centres = append(centres, centre)
			}
		}
	}

	listings, err := h.swapService.BrowseListings(c.Request.Context(), payload.UserID.String(), domain.ListingFilter{
		Centres: centres,
		Sort:    sortBy,
	})
	if err != nil {
		handleServiceError(c, err, "Failed to browse listings")
		return
	}
	if listings == nil {
		listings = []domain.ScoredListing{}
	}

	c.JSON(http.StatusOK, BrowseResponse{
		Listings: listings,
		Count:    len(listings),
		Sort:     string(sortBy),
	})
}

// @Summary Get my swap listings
// @Tags swaps
// @Security BearerAuth
// @Produce json
// @Success 200 {object} ListingsResponse "Listings"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Router /swaps/listings/my [get]
func (h *SwapHandler) GetMyListings(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		h.logger.Warn("Unauthorized access attempt to GetMyListings", map[string]interface{}{
			"ip": c.ClientIP(),
		})
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	listings, err := h.swapService.ListMyListings(c.Request.Context(), payload.UserID.String())
	if err != nil {
		handleServiceError(c, err, "Failed to get listings")
		return
	}
	if listings == nil {
		listings = []*domain.SwapListing{}
	}

	c.JSON(http.StatusOK, ListingsResponse{
		Listings: listings,
		Count:    len(listings),
	})
}

// @Summary Get a swap listing
// @Tags swaps
// @Security BearerAuth
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} domain.SwapListing "Listing"
// @Failure 400 {object} errorResponse "Invalid ID"
// @Failure 404 {object} errorResponse "Listing not found"
// @Router /swaps/listings/{id} [get]
func (h *SwapHandler) GetListing(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	listing, err := h.swapService.GetListing(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "Failed to get listing")
		return
	}

	c.JSON(http.StatusOK, listing)
}

// @Summary Withdraw a swap listing
// @Tags swaps
// @Security BearerAuth
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} successResponse "Listing withdrawn"
// @Failure 403 {object} errorResponse "Access denied"
// @Failure 404 {object} errorResponse "Listing not found"
// @Failure 409 {object} errorResponse "Listing no longer active"
// @Router /swaps/listings/{id} [delete]
func (h *SwapHandler) WithdrawListing(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	listingID := c.Param("id")

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		h.logger.Warn("Unauthorized access attempt to WithdrawListing", map[string]interface{}{
			"listing_id": listingID,
			"ip":         c.ClientIP(),
		})
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.swapService.WithdrawListing(c.Request.Context(), payload.UserID.String(), listingID); err != nil {
		handleServiceError(c, err, "Failed to withdraw listing")
		return
	}

	newSuccessResponse(c, http.StatusOK, "Listing withdrawn", nil)
}

// @Summary Propose a swap
// @Description Offers the caller's test for the listing's test. Escrow terms must be accepted.
// @Tags swaps
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Listing ID"
// @Param request body ProposalRequest true "Proposal"
// @Success 201 {object} domain.SwapRequest "Request created"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 404 {object} errorResponse "Listing not found"
// @Failure 409 {object} errorResponse "Listing no longer active"
// @Router /swaps/listings/{id}/proposals [post]
func (h *SwapHandler) ProposeSwap(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	listingID := c.Param("id")

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		h.logger.Warn("Unauthorized access attempt to ProposeSwap", map[string]interface{}{
			"listing_id": listingID,
			"ip":         c.ClientIP(),
		})
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req ProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in propose swap", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	request, err := h.swapService.ProposeSwap(c.Request.Context(), payload.UserID.String(), listingID, services.Proposal{
		MyTest:      req.MyTest.toDomain(),
		Message:     strings.TrimSpace(req.Message),
		AgreeEscrow: req.AgreeEscrow,
	})
	if err != nil {
		handleServiceError(c, err, "Failed to propose swap")
		return
	}

	c.JSON(http.StatusCreated, request)
}

// @Summary Get my swap requests
// @Description Requests the caller has made or received
// @Tags swaps
// @Security BearerAuth
// @Produce json
// @Success 200 {object} RequestsResponse "Requests"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Router /swaps/requests/my [get]
func (h *SwapHandler) GetMyRequests(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		h.logger.Warn("Unauthorized access attempt to GetMyRequests", map[string]interface{}{
			"ip": c.ClientIP(),
		})
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	requests, err := h.swapService.ListMyRequests(c.Request.Context(), payload.UserID.String())
	if err != nil {
		handleServiceError(c, err, "Failed to get swap requests")
		return
	}
	if requests == nil {
		requests = []*domain.SwapRequest{}
	}

	c.JSON(http.StatusOK, RequestsResponse{
		Requests: requests,
		Count:    len(requests),
	})
}

// @Summary Respond to a swap request
// @Description accept and decline are for the listing owner; cancel and complete for either party
// @Tags swaps
// @Security BearerAuth
// @Produce json
// @Param id path string true "Request ID"
// @Param action path string true "accept, decline, cancel or complete"
// @Success 200 {object} domain.SwapRequest "Updated request"
// @Failure 400 {object} errorResponse "Unknown action"
// @Failure 403 {object} errorResponse "Access denied"
// @Failure 404 {object} errorResponse "Request not found"
// @Failure 409 {object} errorResponse "Transition not allowed"
// @Router /swaps/requests/{id}/{action} [post]
func (h *SwapHandler) RespondToRequest(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	requestID := c.Param("id")

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		h.logger.Warn("Unauthorized access attempt to RespondToRequest", map[string]interface{}{
			"request_id": requestID,
			"ip":         c.ClientIP(),
		})
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	action := domain.RequestAction(strings.ToLower(c.Param("action")))

	request, err := h.swapService.RespondToRequest(c.Request.Context(), payload.UserID.String(), requestID, action)
	if err != nil {
		handleServiceError(c, err, "Failed to update swap request")
		return
	}

	c.JSON(http.StatusOK, request)
}
