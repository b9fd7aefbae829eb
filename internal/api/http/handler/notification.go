package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/auxillium/auxillium_backend/internal/service/notification"
)

type NotificationHandler struct {
	svc notification.Service
}

func NewNotificationHandler(svc notification.Service) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

func mapNotificationError(c fiber.Ctx, err error) error {
	if errors.Is(err, notification.ErrNotFound) {
		return notFound(c, err.Error())
	}
	return internalError(c)
}

func (h *NotificationHandler) List(c fiber.Ctx) error {
	userID, okc := currentUserID(c)
	if !okc {
		return unauthorized(c, "authentication required")
	}

	var q struct {
		UnreadOnly bool `query:"unread_only"`
		Page       int  `query:"page"`
		PerPage    int  `query:"per_page"`
	}
	if err := c.Bind().Query(&q); err != nil {
		return badRequest(c, "invalid query parameters")
	}

	notifications, err := h.svc.List(c.Context(), userID, notification.ListRequest{
		UnreadOnly: q.UnreadOnly,
		Page:       q.Page,
		PerPage:    q.PerPage,
	})
	if err != nil {
		return mapNotificationError(c, err)
	}

	return ok(c, notifications)
}

func (h *NotificationHandler) UnreadCount(c fiber.Ctx) error {
	userID, okc := currentUserID(c)
	if !okc {
		return unauthorized(c, "authentication required")
	}

	count, err := h.svc.UnreadCount(c.Context(), userID)
	if err != nil {
		return mapNotificationError(c, err)
	}

	return ok(c, fiber.Map{"unread": count})
}

func (h *NotificationHandler) MarkRead(c fiber.Ctx) error {
	userID, okc := currentUserID(c)
	if !okc {
		return unauthorized(c, "authentication required")
	}
	notificationID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid notification id")
	}

	if err := h.svc.MarkRead(c.Context(), userID, notificationID); err != nil {
		return mapNotificationError(c, err)
	}

	return noContent(c)
}

func (h *NotificationHandler) MarkAllRead(c fiber.Ctx) error {
	userID, okc := currentUserID(c)
	if !okc {
		return unauthorized(c, "authentication required")
	}

	updated, err := h.svc.MarkAllRead(c.Context(), userID)
	if err != nil {
		return mapNotificationError(c, err)
	}

	return ok(c, fiber.Map{"updated": updated})
}
