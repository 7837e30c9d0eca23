package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/testbuddy/marketplace_service/internal/core/domain"
	"github.com/testbuddy/marketplace_service/internal/core/ports"
	"github.com/testbuddy/marketplace_service/internal/core/services"
)

type VehicleHandler struct {
	vehicleService *services.VehicleService
	logger         ports.LoggerPort
	metrics        ports.MetricsPort
}

type VehicleResponse struct {
	Registration   string    `json:"registration" example:"191-D-12345"`
	Make           string    `json:"make" example:"Toyota"`
	Model          string    `json:"model" example:"Corolla"`
	Year           int       `json:"year" example:"2019"`
	Type           string    `json:"type" example:"Standard"`
	EstimatedValue string    `json:"estimated_value" example:"19500.00"`
	FetchedAt      time.Time `json:"fetched_at"`
}

type ValueResponse struct {
	Year           int    `json:"year" example:"2019"`
	EstimatedValue string `json:"estimated_value" example:"19500.00"`
}

func NewVehicleHandler(
	vehicleService *services.VehicleService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *VehicleHandler {
	return &VehicleHandler{
		vehicleService: vehicleService,
		logger:         logger,
		metrics:        metrics,
	}
}

func newVehicleResponse(v *domain.VehicleRecord) VehicleResponse {
	return VehicleResponse{
		Registration:   v.Registration,
		Make:           v.Make,
		Model:          v.Model,
		Year:           v.Year,
		Type:           string(v.Type),
		EstimatedValue: v.EstimatedValue.StringFixed(2),
		FetchedAt:      v.FetchedAt,
	}
}

// @Summary Look up a vehicle
// @Description Registry lookup with an estimated market value
// @Tags vehicles
// @Security BearerAuth
// @Produce json
// @Param registration path string true "Registration" example:"191-D-12345"
// @Success 200 {object} VehicleResponse "Vehicle"
// @Failure 400 {object} errorResponse "Invalid registration"
// @Failure 404 {object} errorResponse "Vehicle not found"
// @Failure 502 {object} errorResponse "Registry unavailable"
// @Router /vehicles/{registration} [get]
func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	registration := c.Param("registration")

	vehicle, err := h.vehicleService.Lookup(c.Request.Context(), registration)
	if err != nil {
		handleServiceError(c, err, "Failed to look up vehicle")
		return
	}

	c.JSON(http.StatusOK, newVehicleResponse(vehicle))
}

// @Summary Invalidate a cached lookup
// @Tags vehicles
// @Security BearerAuth
// @Produce json
// @Param registration path string true "Registration" example:"191-D-12345"
// @Success 200 {object} successResponse "Cache entry removed"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Router /vehicles/{registration}/cache [delete]
func (h *VehicleHandler) InvalidateVehicle(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	registration := c.Param("registration")

	if err := h.vehicleService.InvalidateCache(c.Request.Context(), registration); err != nil {
		newErrorResponse(c, http.StatusInternalServerError, "Failed to invalidate cache")
		return
	}

	newSuccessResponse(c, http.StatusOK, "Cache entry removed", nil)
}

// @Summary Estimate vehicle value
// @Description Straight-line depreciation estimate from the manufacture year
// @Tags vehicles
// @Produce json
// @Param year query int true "Manufacture year" example:"2019"
// @Success 200 {object} ValueResponse "Estimate"
// @Failure 400 {object} errorResponse "Invalid year"
// @Router /vehicles/value [get]
func (h *VehicleHandler) EstimateValue(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 1886 {
		newErrorResponse(c, http.StatusBadRequest, "year must be a valid manufacture year")
		return
	}

	c.JSON(http.StatusOK, ValueResponse{
		Year:           year,
		EstimatedValue: h.vehicleService.EstimateValue(year).StringFixed(2),
	})
}
