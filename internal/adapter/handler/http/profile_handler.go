package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/testbuddy/marketplace_service/internal/core/domain"
	"github.com/testbuddy/marketplace_service/internal/core/ports"
	"github.com/testbuddy/marketplace_service/internal/core/services"
)

type ProfileHandler struct {
	profileService *services.ProfileService
	logger         ports.LoggerPort
	metrics        ports.MetricsPort
}

type VehicleRequest struct {
	Type           string          `json:"type" example:"SUV"`
	EstimatedValue decimal.Decimal `json:"estimated_value" swaggertype:"number" example:"24000"`
	Registration   string          `json:"registration,omitempty" example:"191-D-12345"`
}

type RiskProfileRequest struct {
	Age               int            `json:"age" example:"24"`
	YearsOfExperience int            `json:"years_of_experience" example:"3"`
	AnnualMileage     int            `json:"annual_mileage" example:"12000"`
	NoClaimsYears     int            `json:"no_claims_years" example:"1"`
	Vehicle           VehicleRequest `json:"vehicle"`
}

func (r RiskProfileRequest) toDomain() domain.RiskProfile {
	return domain.RiskProfile{
		Age:               r.Age,
		YearsOfExperience: r.YearsOfExperience,
		AnnualMileage:     r.AnnualMileage,
		NoClaimsYears:     r.NoClaimsYears,
		Vehicle: domain.Vehicle{
			Type:           domain.VehicleType(r.Vehicle.Type),
			EstimatedValue: r.Vehicle.EstimatedValue,
			Registration:   services.NormalizeRegistration(r.Vehicle.Registration),
		},
	}
}

type ProfileRequest struct {
	Name string             `json:"name" binding:"required" example:"Sarah Murphy"`
	Risk RiskProfileRequest `json:"risk"`
}

type ProfileResponse struct {
	UserID            string    `json:"user_id"`
	Name              string    `json:"name"`
	Age               int       `json:"age"`
	YearsOfExperience int       `json:"years_of_experience"`
	ExperienceLevel   string    `json:"experience_level"`
	AnnualMileage     int       `json:"annual_mileage"`
	NoClaimsYears     int       `json:"no_claims_years"`
	VehicleType       string    `json:"vehicle_type"`
	EstimatedValue    string    `json:"estimated_value"`
	Registration      string    `json:"registration,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func newProfileResponse(p *domain.LearnerProfile) ProfileResponse {
	return ProfileResponse{
		UserID:            p.UserID.String(),
		Name:              p.Name,
		Age:               p.Risk.Age,
		YearsOfExperience: p.Risk.YearsOfExperience,
		ExperienceLevel:   string(domain.ExperienceLevelFor(p.Risk.YearsOfExperience)),
		AnnualMileage:     p.Risk.AnnualMileage,
		NoClaimsYears:     p.Risk.NoClaimsYears,
		VehicleType:       string(p.Risk.Vehicle.Type),
		EstimatedValue:    p.Risk.Vehicle.EstimatedValue.StringFixed(2),
		Registration:      p.Risk.Vehicle.Registration,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func NewProfileHandler(
	profileService *services.ProfileService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		logger:         logger,
		metrics:        metrics,
	}
}

// @Summary Get my profile
// @Description Returns the learner profile of the authenticated user
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} ProfileResponse "Profile"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 404 {object} errorResponse "Profile not found"
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		h.logger.Warn("Unauthorized access attempt to GetProfile", map[string]interface{}{
			"ip": c.ClientIP(),
		})
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), payload.UserID.String())
	if err != nil {
		handleServiceError(c, err, "Failed to get profile")
		return
	}

	c.JSON(http.StatusOK, newProfileResponse(profile))
}

// @Summary Save my profile
// @Description Creates or replaces the learner profile of the authenticated user
// @Tags profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body ProfileRequest true "Profile data"
// @Success 200 {object} ProfileResponse "Profile saved"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Router /profile [put]
func (h *ProfileHandler) UpsertProfile(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		h.logger.Warn("Unauthorized access attempt to UpsertProfile", map[string]interface{}{
			"ip": c.ClientIP(),
		})
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in upsert profile", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	saved, err := h.profileService.UpsertProfile(c.Request.Context(), &domain.LearnerProfile{
		UserID: payload.UserID,
		Name:   req.Name,
		Risk:   req.Risk.toDomain(),
	})
	if err != nil {
		handleServiceError(c, err, "Failed to save profile")
		return
	}

	c.JSON(http.StatusOK, newProfileResponse(saved))
}
