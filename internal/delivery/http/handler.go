package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nutrigate/backend/internal/domain"
	"github.com/nutrigate/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	foodService *usecase.FoodService
}

// NewHandler creates a new HTTP handler
func NewHandler(foodService *usecase.FoodService) *Handler {
	return &Handler{foodService: foodService}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "nutrigate-backend",
		"version": "1.0.0",
	})
}

// Overview handles the free capability-overview endpoint.
func (h *Handler) Overview(c *gin.Context) {
	resp, err := h.foodService.Overview(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ProductByBarcode handles product lookup by barcode.
func (h *Handler) ProductByBarcode(c *gin.Context) {
	resp, err := h.foodService.ProductByBarcode(c.Request.Context(), c.Param("barcode"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Search handles full-text product search.
func (h *Handler) Search(c *gin.Context) {
	limit, err := parseLimit(c)
	if err != nil {
		respondError(c, err)
		return
	}

	resp, err := h.foodService.Search(c.Request.Context(), c.Query("query"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Category handles category listings.
func (h *Handler) Category(c *gin.Context) {
	limit, err := parseLimit(c)
	if err != nil {
		respondError(c, err)
		return
	}

	resp, err := h.foodService.Category(c.Request.Context(), c.Param("category"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Brand handles brand listings.
func (h *Handler) Brand(c *gin.Context) {
	limit, err := parseLimit(c)
	if err != nil {
		respondError(c, err)
		return
	}

	resp, err := h.foodService.Brand(c.Request.Context(), c.Param("brand"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Nutrition handles the extended nutrition-analysis endpoint.
func (h *Handler) Nutrition(c *gin.Context) {
	resp, err := h.foodService.Nutrition(c.Request.Context(), c.Param("barcode"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// parseLimit reads the optional limit query parameter, defaulting when
// absent. Bounds checking happens in the usecase before any upstream
// call.
func parseLimit(c *gin.Context) (int, error) {
	raw := c.Query("limit")
	if raw == "" {
		return usecase.DefaultLimit, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: limit must be an integer", domain.ErrInvalidRequest)
	}
	return limit, nil
}

// respondError maps service errors onto HTTP responses: invalid input is
// the caller's fault, upstream failures are a bad gateway, anything else
// is internal. A missing product is not an error and never reaches here.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrUpstreamFailure):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
