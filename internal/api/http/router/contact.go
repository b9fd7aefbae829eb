package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/auxillium/auxillium_backend/internal/api/http/handler"
	"github.com/auxillium/auxillium_backend/pkg/authorize"
)

func (r *Router) registerContactRoutes(
	api fiber.Router,
	ch *handler.ContactHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	contacts := api.Group("/emergency-contacts", authRequired)

	contacts.Get("/", requirePerm(authorize.ResourceEmergencyContact, authorize.ActionList), ch.List)
	contacts.Post("/", requirePerm(authorize.ResourceEmergencyContact, authorize.ActionCreate), ch.Create)

	c := contacts.Group("/:id")
	c.Patch("/", requirePerm(authorize.ResourceEmergencyContact, authorize.ActionUpdate), ch.Update)
	c.Patch("/primary", requirePerm(authorize.ResourceEmergencyContact, authorize.ActionUpdate), ch.SetPrimary)
	c.Delete("/", requirePerm(authorize.ResourceEmergencyContact, authorize.ActionDelete), ch.Delete)
}
