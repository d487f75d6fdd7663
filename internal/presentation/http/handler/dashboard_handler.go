package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/trendora/trendora-api/internal/application/service"
	"github.com/trendora/trendora-api/internal/presentation/http/dto/response"
)

// DashboardHandler handles back-office dashboard requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetOverview returns store totals, recent orders and most ordered products
func (h *DashboardHandler) GetOverview(c *gin.Context) {
	overview, err := h.dashboardService.GetOverview(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard retrieved successfully", overview)
}
