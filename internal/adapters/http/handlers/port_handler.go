package handlers

import (
	"time"

	"mnp-portal/internal/core/services"
	"mnp-portal/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// PortHandler handles port-in, port-out and snapback endpoints
type PortHandler struct {
	portService *services.PortService
}

// NewPortHandler creates a new port handler
func NewPortHandler(portService *services.PortService) *PortHandler {
	return &PortHandler{portService: portService}
}

// CreatePortInRequest represents port-in submission body
type CreatePortInRequest struct {
	Number   string `json:"number"`
	Operator string `json:"operator"`
	Circle   string `json:"circle"`
	Date     string `json:"date"`
}

// ListPortIn handles listing all port-in records
// @Summary List port-in records
// @Tags Ports
// @Produce json
// @Success 200 {array} models.PortIn
// @Security BearerAuth
// @Router /port-in [get]
func (h *PortHandler) ListPortIn(c *fiber.Ctx) error {
	records, err := h.portService.ListPortIn(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch port-in records")
	}
	return response.OK(c, records)
}

// CreatePortIn handles port-in submission
// @Summary Create port-in record
// @Tags Ports
// @Accept json
// @Produce json
// @Param body body CreatePortInRequest true "Port-in data"
// @Success 201 {object} models.PortIn
// @Failure 400 {object} response.Message
// @Security BearerAuth
// @Router /port-in [post]
func (h *PortHandler) CreatePortIn(c *fiber.Ctx) error {
	var req CreatePortInRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Number == "" {
		return response.BadRequest(c, "Number is required")
	}
	if req.Operator == "" {
		return response.BadRequest(c, "Operator is required")
	}
	if req.Circle == "" {
		return response.BadRequest(c, "Circle is required")
	}
	if req.Date == "" {
		return response.BadRequest(c, "Date is required")
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return response.BadRequest(c, "Invalid date")
	}

	input := &services.CreatePortInInput{
		Number:   req.Number,
		Operator: req.Operator,
		Circle:   req.Circle,
		Date:     date,
	}

	record, err := h.portService.CreatePortIn(c.Context(), input)
	if err != nil {
		return response.InternalServerError(c, "Failed to create port-in record")
	}

	return response.Created(c, record)
}

// ListPortOut handles listing all port-out records
// @Summary List port-out records
// @Tags Ports
// @Produce json
// @Success 200 {array} models.PortOut
// @Security BearerAuth
// @Router /port-out [get]
func (h *PortHandler) ListPortOut(c *fiber.Ctx) error {
	records, err := h.portService.ListPortOut(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch port-out records")
	}
	return response.OK(c, records)
}

// ListSnapback handles listing all snapback records
// @Summary List snapback records
// @Tags Ports
// @Produce json
// @Success 200 {array} models.Snapback
// @Security BearerAuth
// @Router /snapback [get]
func (h *PortHandler) ListSnapback(c *fiber.Ctx) error {
	records, err := h.portService.ListSnapback(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch snapback records")
	}
	return response.OK(c, records)
}

// parseDate accepts the date-only form the frontend sends, with
// RFC3339 as fallback
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
