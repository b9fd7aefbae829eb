package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/auxillium/auxillium_backend/internal/api/http/handler"
	"github.com/auxillium/auxillium_backend/pkg/authorize"
)

func (r *Router) registerProfileRoutes(
	api fiber.Router,
	ph *handler.ProfileHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	me := api.Group("/me", authRequired)

	me.Get("/", requirePerm(authorize.ResourceProfile, authorize.ActionRead), ph.Me)
	me.Patch("/", requirePerm(authorize.ResourceProfile, authorize.ActionUpdate), ph.UpdateMe)
}
