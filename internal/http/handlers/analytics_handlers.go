package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/you/clinicsvc/domain"
)

// AnalyticsHandlers serves dashboard analytics
type AnalyticsHandlers struct {
	analyticsSvc domain.AnalyticsService
}

// NewAnalyticsHandlers creates new analytics handlers
func NewAnalyticsHandlers(analyticsSvc domain.AnalyticsService) *AnalyticsHandlers {
	return &AnalyticsHandlers{analyticsSvc: analyticsSvc}
}

// Dashboard summarises the caller's patients
func (h *AnalyticsHandlers) Dashboard(c *gin.Context) {
	analytics, err := h.analyticsSvc.Dashboard(c.Request.Context(), bearer(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, analytics)
}
