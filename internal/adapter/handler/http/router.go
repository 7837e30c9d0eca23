package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/testbuddy/marketplace_service/internal/config"
	"github.com/testbuddy/marketplace_service/internal/core/ports"
)

type Router struct {
	router *gin.Engine
	server *http.Server
}

func NewRouter(
	cfg *config.HTTP,
	tokenService ports.TokenService,
	profileHandler *ProfileHandler,
	quoteHandler *QuoteHandler,
	vehicleHandler *VehicleHandler,
	swapHandler *SwapHandler,
) (*Router, error) {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins(cfg.AllowedOrigins),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := AuthMiddleware(tokenService)

	router.GET("/centres", swapHandler.GetCentres)

	// Profile routes
	profile := router.Group("/profile")
	profile.Use(auth)
	{
		profile.GET("", profileHandler.GetProfile)
		profile.PUT("", profileHandler.UpsertProfile)
	}

	// Quote routes
	quotes := router.Group("/quotes")
	{
		quotes.POST("/estimate", quoteHandler.Estimate)
		quotes.GET("/my", auth, quoteHandler.GetMyQuotes)
		quotes.GET("/my/certificate", auth, quoteHandler.GetCertificate)
	}

	// Vehicle routes
	vehicles := router.Group("/vehicles")
	{
		vehicles.GET("/value", vehicleHandler.EstimateValue)
		vehicles.GET("/:registration", auth, vehicleHandler.GetVehicle)
		vehicles.DELETE("/:registration/cache", auth, vehicleHandler.InvalidateVehicle)
	}

	// Swap routes
	swaps := router.Group("/swaps")
	swaps.Use(auth)
	{
		swaps.POST("/listings", swapHandler.CreateListing)
		swaps.GET("/listings", swapHandler.BrowseListings)
		swaps.GET("/listings/my", swapHandler.GetMyListings)
		swaps.GET("/listings/:id", swapHandler.GetListing)
		swaps.DELETE("/listings/:id", swapHandler.WithdrawListing)
		swaps.POST("/listings/:id/proposals", swapHandler.ProposeSwap)
		swaps.GET("/requests/my", swapHandler.GetMyRequests)
		swaps.POST("/requests/:id/:action", swapHandler.RespondToRequest)
	}
	return &Router{
		router: router,
		server: &http.Server{
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

func allowedOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"http://localhost:3000"}
	}
	return origins
}

// Serve blocks until the server stops. A Shutdown is not reported as an error.
func (r *Router) Serve(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	if err := r.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (r *Router) Shutdown(ctx context.Context) error {
	return r.server.Shutdown(ctx)
}

func (r *Router) Engine() *gin.Engine {
	return r.router
}
