package handlers

import (
	"mnp-portal/internal/core/services"
	"mnp-portal/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler handles dashboard endpoints
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetStats handles dashboard statistics
// @Summary Dashboard statistics
// @Description Totals, today's port counts and complaint status breakdown
// @Tags Dashboard
// @Produce json
// @Success 200 {object} services.Stats
// @Security BearerAuth
// @Router /dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.dashboardService.GetStats(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to compute statistics")
	}
	return response.OK(c, stats)
}

// GetReasonAnalysis handles the grouped-by-reason complaint tally
// @Summary Complaint reason analysis
// @Tags Dashboard
// @Produce json
// @Success 200 {array} repositories.ReasonCount
// @Security BearerAuth
// @Router /dashboard/reasons/analysis [get]
func (h *DashboardHandler) GetReasonAnalysis(c *fiber.Ctx) error {
	analysis, err := h.dashboardService.GetReasonBreakdown(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to compute reason analysis")
	}
	return response.OK(c, analysis)
}
