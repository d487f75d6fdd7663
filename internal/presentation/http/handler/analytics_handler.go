package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/trendora/trendora-api/internal/application/service"
	"github.com/trendora/trendora-api/internal/presentation/http/dto/response"
)

// AnalyticsHandler handles the admin analytics endpoints
type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// GetReport returns summary, revenue trend and top products in one payload
func (h *AnalyticsHandler) GetReport(c *gin.Context) {
	report, err := h.analyticsService.GetReport(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Analytics retrieved successfully", report)
}

// GetSummary returns the headline counters
func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
	summary, err := h.analyticsService.GetSummary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Summary retrieved successfully", summary)
}

// GetRevenueTrend returns daily revenue for the trailing window
func (h *AnalyticsHandler) GetRevenueTrend(c *gin.Context) {
	windowDays := 0
	if raw := c.Query("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			response.BadRequest(c, "days must be a positive integer")
			return
		}
		windowDays = n
	}

	trend, err := h.analyticsService.GetRevenueTrend(c.Request.Context(), windowDays)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Revenue trend retrieved successfully", gin.H{
		"trend": trend,
	})
}

// GetTopProducts returns the best selling products by revenue
func (h *AnalyticsHandler) GetTopProducts(c *gin.Context) {
	topN := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			response.BadRequest(c, "limit must be a positive integer")
			return
		}
		topN = n
	}

	products, err := h.analyticsService.GetTopProducts(c.Request.Context(), topN)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Top products retrieved successfully", gin.H{
		"products": products,
	})
}
