package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/auxillium/auxillium_backend/internal/service/workshop"
)

type WorkshopHandler struct {
	svc workshop.Service
}

func NewWorkshopHandler(svc workshop.Service) *WorkshopHandler {
	return &WorkshopHandler{svc: svc}
}

func mapWorkshopError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, workshop.ErrNotFound),
		errors.Is(err, workshop.ErrNotEnrolled):
		return notFound(c, err.Error())
	case errors.Is(err, workshop.ErrNotOpen),
		errors.Is(err, workshop.ErrFull),
		errors.Is(err, workshop.ErrAlreadyEnrolled):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

func (h *WorkshopHandler) List(c fiber.Ctx) error {
	var q struct {
		Topic        *string `query:"topic"`
		UpcomingOnly bool    `query:"upcoming_only"`
		Page         int     `query:"page"`
		PerPage      int     `query:"per_page"`
	}
	if err := c.Bind().Query(&q); err != nil {
		return badRequest(c, "invalid query parameters")
	}

	workshops, err := h.svc.List(c.Context(), workshop.ListRequest{
		Topic:        q.Topic,
		UpcomingOnly: q.UpcomingOnly,
		Page:         q.Page,
		PerPage:      q.PerPage,
	})
	if err != nil {
		return mapWorkshopError(c, err)
	}

	return ok(c, workshops)
}

func (h *WorkshopHandler) Get(c fiber.Ctx) error {
	workshopID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid workshop id")
	}

	w, err := h.svc.GetByID(c.Context(), workshopID)
	if err != nil {
		return mapWorkshopError(c, err)
	}

	return ok(c, w)
}

func (h *WorkshopHandler) Create(c fiber.Ctx) error {
	userID, okc := currentUserID(c)
	if !okc {
		return unauthorized(c, "authentication required")
	}

	var body struct {
		Title           string    `json:"title"`
		Description     string    `json:"description"`
		Topic           string    `json:"topic"`
		StartsAt        time.Time `json:"starts_at"`
		DurationMinutes int       `json:"duration_minutes"`
		Capacity        int       `json:"capacity"`
		Online          bool      `json:"online"`
		Location        *string   `json:"location"`
		MeetingURL      *string   `json:"meeting_url"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Title == "" || body.StartsAt.IsZero() {
		return badRequest(c, "title and starts_at are required")
	}

	w, err := h.svc.Create(c.Context(), userID, workshop.CreateRequest{
		Title:           body.Title,
		Description:     body.Description,
		Topic:           body.Topic,
		StartsAt:        body.StartsAt,
		DurationMinutes: body.DurationMinutes,
		Capacity:        body.Capacity,
		Online:          body.Online,
		Location:        body.Location,
		MeetingURL:      body.MeetingURL,
	})
	if err != nil {
		return mapWorkshopError(c, err)
	}

	return created(c, w)
}

func (h *WorkshopHandler) Enroll(c fiber.Ctx) error {
	userID, okc := currentUserID(c)
	if !okc {
		return unauthorized(c, "authentication required")
	}
	workshopID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid workshop id")
	}

	enrollment, err := h.svc.Enroll(c.Context(), userID, workshopID)
	if err != nil {
		return mapWorkshopError(c, err)
	}

	return created(c, enrollment)
}

func (h *WorkshopHandler) CancelEnrollment(c fiber.Ctx) error {
	userID, okc := currentUserID(c)
	if !okc {
		return unauthorized(c, "authentication required")
	}
	workshopID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid workshop id")
	}

	if err := h.svc.CancelEnrollment(c.Context(), userID, workshopID); err != nil {
		return mapWorkshopError(c, err)
	}

	return noContent(c)
}

func (h *WorkshopHandler) ListEnrollments(c fiber.Ctx) error {
	userID, okc := currentUserID(c)
	if !okc {
		return unauthorized(c, "authentication required")
	}

	enrollments, err := h.svc.ListEnrollments(c.Context(), userID)
	if err != nil {
		return mapWorkshopError(c, err)
	}

	return ok(c, enrollments)
}
