package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/partscout/backend/internal/domain"
)

// noResultsMessage is the explicit empty-result signal rendered instead
// of a blank table.
const noResultsMessage = "Nenhum resultado encontrado. Tente termos mais específicos (ex.: incluir marca/modelo)."

// PricingRunner is the slice of the pricing service the handler needs.
type PricingRunner interface {
	Compare(ctx context.Context, profile domain.BuildProfile, limit int) (*domain.Comparison, error)
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	pricing PricingRunner
}

// NewHandler creates a new HTTP handler
func NewHandler(pricing PricingRunner) *Handler {
	return &Handler{pricing: pricing}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "partscout-backend",
		"version": "1.0.0",
	})
}

// ListProfiles returns the preset build profiles in catalog order.
func (h *Handler) ListProfiles(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"profiles": domain.BuildProfiles,
	})
}

// compareRequest is the body of POST /api/v1/pricing/compare. Parts
// overrides the desired product per category of the chosen profile.
type compareRequest struct {
	Profile string            `json:"profile" binding:"required"`
	Parts   map[string]string `json:"parts,omitempty"`
	Limit   int               `json:"limit,omitempty"`
}

// ComparePrices runs one pricing pass for a build profile and renders
// the full sorted table plus the best-of-category table.
func (h *Handler) ComparePrices(c *gin.Context) {
	if h.pricing == nil {
		c.JSON(http.StatusNotImplemented, gin.H{
			"error": "pricing service not configured",
		})
		return
	}

	var req compareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid request body: " + err.Error(),
		})
		return
	}

	profile, ok := domain.ProfileByName(req.Profile)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": domain.ErrUnknownProfile.Error() + ": " + req.Profile,
		})
		return
	}
	profile = profile.WithOverrides(req.Parts)

	report, err := h.pricing.Compare(c.Request.Context(), profile, req.Limit)
	switch {
	case errors.Is(err, domain.ErrNoResults):
		// The run completed but produced no data; surface the warnings
		// collected along the way rather than an empty table.
		response := gin.H{
			"noResults": true,
			"message":   noResultsMessage,
		}
		if report != nil && len(report.Warnings) > 0 {
			response["warnings"] = report.Warnings
		}
		c.JSON(http.StatusOK, response)
	case errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case err != nil:
		c.JSON(http.StatusBadGateway, gin.H{"error": "price comparison failed"})
	default:
		c.JSON(http.StatusOK, report)
	}
}
