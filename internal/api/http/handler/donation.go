package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/auxillium/auxillium_backend/internal/service/donation"
)

type DonationHandler struct {
	svc donation.Service
}

func NewDonationHandler(svc donation.Service) *DonationHandler {
	return &DonationHandler{svc: svc}
}

func mapDonationError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, donation.ErrInitiativeNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, donation.ErrInitiativeClosed):
		return conflict(c, err.Error())
	case errors.Is(err, donation.ErrInvalidAmount):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

func (h *DonationHandler) ListInitiatives(c fiber.Ctx) error {
	var q struct {
		Category   *string `query:"category"`
		ActiveOnly bool    `query:"active_only"`
		Page       int     `query:"page"`
		PerPage    int     `query:"per_page"`
	}
	if err := c.Bind().Query(&q); err != nil {
		return badRequest(c, "invalid query parameters")
	}

	initiatives, err := h.svc.ListInitiatives(c.Context(), donation.ListInitiativesRequest{
		Category:   q.Category,
		ActiveOnly: q.ActiveOnly,
		Page:       q.Page,
		PerPage:    q.PerPage,
	})
	if err != nil {
		return mapDonationError(c, err)
	}

	return ok(c, initiatives)
}

func (h *DonationHandler) GetInitiative(c fiber.Ctx) error {
	initiativeID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid initiative id")
	}

	initiative, err := h.svc.GetInitiative(c.Context(), initiativeID)
	if err != nil {
		return mapDonationError(c, err)
	}

	return ok(c, initiative)
}

func (h *DonationHandler) CreateInitiative(c fiber.Ctx) error {
	userID, okc := currentUserID(c)
	if !okc {
		return unauthorized(c, "authentication required")
	}

	var body struct {
		Title       string     `json:"title"`
		Description string     `json:"description"`
		Category    string     `json:"category"`
		GoalAmount  int64      `json:"goal_amount"`
		EndsAt      *time.Time `json:"ends_at"`
		ImageURL    *string    `json:"image_url"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Title == "" || body.GoalAmount <= 0 {
		return badRequest(c, "title and a positive goal_amount are required")
	}

	initiative, err := h.svc.CreateInitiative(c.Context(), userID, donation.CreateInitiativeRequest{
		Title:       body.Title,
		Description: body.Description,
		Category:    body.Category,
		GoalAmount:  body.GoalAmount,
		EndsAt:      body.EndsAt,
		ImageURL:    body.ImageURL,
	})
	if err != nil {
		return mapDonationError(c, err)
	}

	return created(c, initiative)
}

func (h *DonationHandler) Donate(c fiber.Ctx) error {
	userID, okc := currentUserID(c)
	if !okc {
		return unauthorized(c, "authentication required")
	}

	var body struct {
		InitiativeID string  `json:"initiative_id"`
		Amount       int64   `json:"amount"`
		Anonymous    bool    `json:"anonymous"`
		Message      *string `json:"message"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	initiativeID, err := uuid.Parse(body.InitiativeID)
	if err != nil {
		return badRequest(c, "invalid initiative_id")
	}

	d, err := h.svc.Donate(c.Context(), userID, donation.DonateRequest{
		InitiativeID: initiativeID,
		Amount:       body.Amount,
		Anonymous:    body.Anonymous,
		Message:      body.Message,
	})
	if err != nil {
		return mapDonationError(c, err)
	}

	return created(c, d)
}

func (h *DonationHandler) ListMine(c fiber.Ctx) error {
	userID, okc := currentUserID(c)
	if !okc {
		return unauthorized(c, "authentication required")
	}

	donations, err := h.svc.ListByDonor(c.Context(), userID)
	if err != nil {
		return mapDonationError(c, err)
	}

	return ok(c, donations)
}
