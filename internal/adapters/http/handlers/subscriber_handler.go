package handlers

import (
	"mnp-portal/internal/adapters/persistence/models"
	"mnp-portal/internal/core/services"
	"mnp-portal/internal/pkg/filters"
	"mnp-portal/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// SubscriberHandler handles subscriber endpoints
type SubscriberHandler struct {
	subscriberService *services.SubscriberService
}

// NewSubscriberHandler creates a new subscriber handler
func NewSubscriberHandler(subscriberService *services.SubscriberService) *SubscriberHandler {
	return &SubscriberHandler{subscriberService: subscriberService}
}

// List handles listing all subscribers.
// Exposed via POST; the shipped frontend calls it that way.
// @Summary List subscribers
// @Tags Subscribers
// @Produce json
// @Success 200 {array} models.Subscriber
// @Security BearerAuth
// @Router /subscribers [post]
func (h *SubscriberHandler) List(c *fiber.Ctx) error {
	subscribers, err := h.subscriberService.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch subscribers")
	}
	return response.OK(c, subscribers)
}

// Create handles subscriber creation
// @Summary Create subscriber
// @Tags Subscribers
// @Accept json
// @Produce json
// @Param body body models.Subscriber true "Subscriber record"
// @Success 201 {object} models.Subscriber
// @Failure 400 {object} response.Message
// @Security BearerAuth
// @Router /subscribers/create [post]
func (h *SubscriberHandler) Create(c *fiber.Ctx) error {
	var subscriber models.Subscriber
	if err := c.BodyParser(&subscriber); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	created, err := h.subscriberService.Create(c.Context(), &subscriber)
	if err != nil {
		return response.InternalServerError(c, "Failed to create subscriber")
	}

	return response.Created(c, created)
}

// Search handles filtered, paginated subscriber listing
// @Summary Search subscribers
// @Description Optional msisdn/zone/lsa/status equality filters and an inclusive port-date range; page defaults to 1, limit to 10
// @Tags Subscribers
// @Produce json
// @Param msisdn query string false "MSISDN"
// @Param zone query string false "Zone"
// @Param lsa query string false "Licensed service area"
// @Param status query string false "Status"
// @Param dateFrom query string false "Port date lower bound (YYYY-MM-DD)"
// @Param dateTo query string false "Port date upper bound (YYYY-MM-DD)"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 10)"
// @Success 200 {array} models.Subscriber
// @Security BearerAuth
// @Router /subscribers/search [get]
func (h *SubscriberHandler) Search(c *fiber.Ctx) error {
	params := filters.FromQuery(c)

	subscribers, err := h.subscriberService.Search(c.Context(), params)
	if err != nil {
		return response.InternalServerError(c, "Failed to search subscribers")
	}

	return response.OK(c, subscribers)
}
