package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/auxillium/auxillium_backend/internal/api/http/handler"
)

func (r *Router) registerAssistantRoutes(
	api fiber.Router,
	ah *handler.AssistantHandler,
	authRequired fiber.Handler,
) {
	api.Post("/assistant/chat", authRequired, ah.Chat)
}
