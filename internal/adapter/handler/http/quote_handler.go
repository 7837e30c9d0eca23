package http

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/testbuddy/marketplace_service/internal/core/domain"
	"github.com/testbuddy/marketplace_service/internal/core/ports"
	"github.com/testbuddy/marketplace_service/internal/core/services"
)

type QuoteHandler struct {
	quoteService *services.QuoteService
	logger       ports.LoggerPort
	metrics      ports.MetricsPort
}

type QuoteInfo struct {
	Provider string `json:"provider" example:"AquaSure Insurance"`
	Amount   string `json:"amount" example:"850.00"`
	Currency string `json:"currency" example:"EUR"`
}

type FactorsInfo struct {
	Age        string `json:"age"`
	Experience string `json:"experience"`
	Type       string `json:"type"`
	Value      string `json:"value"`
	Mileage    string `json:"mileage"`
	NCD        string `json:"ncd"`
}

type QuotesResponse struct {
	Policy          string             `json:"policy" example:"lenient"`
	ExperienceLevel string             `json:"experience_level" example:"Intermediate"`
	Profile         domain.RiskProfile `json:"profile"`
	Factors         FactorsInfo        `json:"factors"`
	Quotes          []QuoteInfo        `json:"quotes"`
	Count           int                `json:"count"`
}

func NewQuoteHandler(
	quoteService *services.QuoteService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *QuoteHandler {
	return &QuoteHandler{
		quoteService: quoteService,
		logger:       logger,
		metrics:      metrics,
	}
}

func (h *QuoteHandler) newQuotesResponse(result *services.QuoteResult) QuotesResponse {
	quotes := make([]QuoteInfo, len(result.Quotes))
	for i, q := range result.Quotes {
		quotes[i] = QuoteInfo{
			Provider: q.ProviderName,
			Amount:   q.Amount.StringFixed(2),
			Currency: "EUR",
		}
	}
	f := result.Factors
	return QuotesResponse{
		Policy:          string(h.quoteService.Policy()),
		ExperienceLevel: string(domain.ExperienceLevelFor(result.Profile.YearsOfExperience)),
		Profile:         result.Profile,
		Factors: FactorsInfo{
			Age:        f.Age.String(),
			Experience: f.Experience.String(),
			Type:       f.Type.String(),
			Value:      f.Value.String(),
			Mileage:    f.Mileage.String(),
			NCD:        f.NCD.String(),
		},
		Quotes: quotes,
		Count:  len(quotes),
	}
}

// @Summary Estimate quotes
// @Description Prices an ad-hoc risk profile with every provider
// @Tags quotes
// @Accept json
// @Produce json
// @Param request body RiskProfileRequest true "Risk profile"
// @Success 200 {object} QuotesResponse "Quotes"
// @Failure 400 {object} errorResponse "Invalid request"
// @Router /quotes/estimate [post]
func (h *QuoteHandler) Estimate(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req RiskProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in estimate quotes", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	result, err := h.quoteService.Quote(c.Request.Context(), req.toDomain())
	if err != nil {
		handleServiceError(c, err, "Failed to generate quotes")
		return
	}
	h.metrics.RecordQuotes(string(h.quoteService.Policy()), len(result.Quotes))

	c.JSON(http.StatusOK, h.newQuotesResponse(result))
}

// @Summary Get my quotes
// @Description Prices the stored profile of the authenticated user
// @Tags quotes
// @Security BearerAuth
// @Produce json
// @Success 200 {object} QuotesResponse "Quotes"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 404 {object} errorResponse "Profile not found"
// @Router /quotes/my [get]
func (h *QuoteHandler) GetMyQuotes(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		h.logger.Warn("Unauthorized access attempt to GetMyQuotes", map[string]interface{}{
			"ip": c.ClientIP(),
		})
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	_, result, err := h.quoteService.QuotesForUser(c.Request.Context(), payload.UserID.String())
	if err != nil {
		handleServiceError(c, err, "Failed to generate quotes")
		return
	}
	h.metrics.RecordQuotes(string(h.quoteService.Policy()), len(result.Quotes))

	c.JSON(http.StatusOK, h.newQuotesResponse(result))
}

// @Summary Download quote certificate
// @Description Renders a PDF certificate for the chosen provider's quote
// @Tags quotes
// @Security BearerAuth
// @Produce application/pdf
// @Param provider query string true "Provider name" example:"AquaSure Insurance"
// @Success 200 {file} binary "Certificate"
// @Failure 400 {object} errorResponse "Unknown provider"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 404 {object} errorResponse "Profile not found"
// @Router /quotes/my/certificate [get]
func (h *QuoteHandler) GetCertificate(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		h.logger.Warn("Unauthorized access attempt to GetCertificate", map[string]interface{}{
			"ip": c.ClientIP(),
		})
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	provider := strings.TrimSpace(c.Query("provider"))
	if provider == "" {
		newErrorResponse(c, http.StatusBadRequest, "provider is required")
		return
	}

	cert, doc, err := h.quoteService.Certificate(c.Request.Context(), payload.UserID.String(), provider)
	if err != nil {
		handleServiceError(c, err, "Failed to render certificate")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="certificate-%s.pdf"`, cert.Serial))
	c.Data(http.StatusOK, "application/pdf", doc)
}
