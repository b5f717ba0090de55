package handlers

import (
	"mnp-portal/internal/core/services"
	"mnp-portal/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ExportHandler serves raw JSON dumps of the port collections.
// Not a file export; the frontend shapes these into downloads.
type ExportHandler struct {
	portService *services.PortService
}

// NewExportHandler creates a new export handler
func NewExportHandler(portService *services.PortService) *ExportHandler {
	return &ExportHandler{portService: portService}
}

// ExportPortIn dumps all port-in records
// @Summary Export port-in records
// @Tags Export
// @Produce json
// @Success 200 {array} models.PortIn
// @Security BearerAuth
// @Router /export/port-in [get]
func (h *ExportHandler) ExportPortIn(c *fiber.Ctx) error {
	data, err := h.portService.ListPortIn(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to export port-in records")
	}
	return response.OK(c, data)
}

// ExportPortOut dumps all port-out records
// @Summary Export port-out records
// @Tags Export
// @Produce json
// @Success 200 {array} models.PortOut
// @Security BearerAuth
// @Router /export/port-out [get]
func (h *ExportHandler) ExportPortOut(c *fiber.Ctx) error {
	data, err := h.portService.ListPortOut(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to export port-out records")
	}
	return response.OK(c, data)
}

// ExportSnapback dumps all snapback records
// @Summary Export snapback records
// @Tags Export
// @Produce json
// @Success 200 {array} models.Snapback
// @Security BearerAuth
// @Router /export/snapback [get]
func (h *ExportHandler) ExportSnapback(c *fiber.Ctx) error {
	data, err := h.portService.ListSnapback(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to export snapback records")
	}
	return response.OK(c, data)
}
