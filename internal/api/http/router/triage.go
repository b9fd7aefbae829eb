package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/auxillium/auxillium_backend/internal/api/http/handler"
)

func (r *Router) registerTriageRoutes(api fiber.Router, th *handler.TriageHandler) {
	// Open endpoint; someone with chest pain should not hit a login wall.
	api.Post("/triage/check", th.Check)
}
