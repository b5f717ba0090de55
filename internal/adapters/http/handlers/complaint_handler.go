package handlers

import (
	"errors"
	"strconv"

	"mnp-portal/internal/adapters/http/middleware"
	"mnp-portal/internal/core/domain"
	"mnp-portal/internal/core/services"
	"mnp-portal/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ComplaintHandler handles complaint endpoints
type ComplaintHandler struct {
	complaintService *services.ComplaintService
}

// NewComplaintHandler creates a new complaint handler
func NewComplaintHandler(complaintService *services.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{complaintService: complaintService}
}

// SubmitComplaintRequest represents complaint submission body.
// Owner is never taken from the payload.
type SubmitComplaintRequest struct {
	Reason string `json:"reason"`
}

// UpdateStatusRequest represents complaint status update body
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Submit handles complaint submission
// @Summary Submit a complaint
// @Description Creates a complaint owned by the authenticated caller
// @Tags Complaints
// @Accept json
// @Produce json
// @Param body body SubmitComplaintRequest true "Complaint data"
// @Success 201 {object} models.Complaint
// @Failure 400 {object} response.Message
// @Security BearerAuth
// @Router /complaints [post]
func (h *ComplaintHandler) Submit(c *fiber.Ctx) error {
	var req SubmitComplaintRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Reason == "" {
		return response.BadRequest(c, "Reason is required")
	}

	userID := c.Locals(middleware.LocalsUserID).(uint)

	complaint, err := h.complaintService.Submit(c.Context(), userID, req.Reason)
	if err != nil {
		return response.InternalServerError(c, "Failed to submit complaint")
	}

	return response.Created(c, complaint)
}

// List handles listing the caller's complaints
// @Summary List my complaints
// @Tags Complaints
// @Produce json
// @Success 200 {array} models.Complaint
// @Security BearerAuth
// @Router /complaints [get]
func (h *ComplaintHandler) List(c *fiber.Ctx) error {
	userID := c.Locals(middleware.LocalsUserID).(uint)

	complaints, err := h.complaintService.List(c.Context(), userID)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch complaints")
	}

	return response.OK(c, complaints)
}

// UpdateStatus handles complaint status updates. Any authenticated
// user may update any complaint; ownership is not checked here.
// @Summary Update complaint status
// @Tags Complaints
// @Accept json
// @Produce json
// @Param id path int true "Complaint ID"
// @Param body body UpdateStatusRequest true "New status"
// @Success 200 {object} models.Complaint
// @Failure 400 {object} response.Message
// @Failure 404 {object} response.Message
// @Security BearerAuth
// @Router /complaints/{id} [put]
func (h *ComplaintHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid complaint id")
	}

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Status == "" {
		return response.BadRequest(c, "Status is required")
	}

	complaint, err := h.complaintService.UpdateStatus(c.Context(), uint(id), req.Status)
	if err != nil {
		if errors.Is(err, domain.ErrComplaintNotFound) {
			return response.NotFound(c, "Complaint not found")
		}
		return response.InternalServerError(c, "Failed to update complaint")
	}

	return response.OK(c, complaint)
}
