package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/auxillium/auxillium_backend/internal/api/http/handler"
	"github.com/auxillium/auxillium_backend/pkg/authorize"
)

func (r *Router) registerNotificationRoutes(
	api fiber.Router,
	nh *handler.NotificationHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	notifications := api.Group("/notifications", authRequired)

	notifications.Get("/", requirePerm(authorize.ResourceNotification, authorize.ActionList), nh.List)
	notifications.Get("/unread-count", requirePerm(authorize.ResourceNotification, authorize.ActionRead), nh.UnreadCount)
	notifications.Patch("/:id/read", requirePerm(authorize.ResourceNotification, authorize.ActionUpdate), nh.MarkRead)
	notifications.Patch("/read-all", requirePerm(authorize.ResourceNotification, authorize.ActionUpdate), nh.MarkAllRead)
}
