package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/auxillium/auxillium_backend/internal/api/http/handler"
	"github.com/auxillium/auxillium_backend/pkg/authorize"
)

func (r *Router) registerFamilyRoutes(
	api fiber.Router,
	fh *handler.FamilyHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	members := api.Group("/family-members", authRequired)

	members.Get("/", requirePerm(authorize.ResourceFamilyMember, authorize.ActionList), fh.List)
	members.Post("/", requirePerm(authorize.ResourceFamilyMember, authorize.ActionCreate), fh.Create)

	m := members.Group("/:id")
	m.Get("/", requirePerm(authorize.ResourceFamilyMember, authorize.ActionRead), fh.Get)
	m.Patch("/", requirePerm(authorize.ResourceFamilyMember, authorize.ActionUpdate), fh.Update)
	m.Patch("/insurance", requirePerm(authorize.ResourceFamilyMember, authorize.ActionUpdate), fh.UpdateInsurance)
	m.Patch("/smartwatch", requirePerm(authorize.ResourceFamilyMember, authorize.ActionUpdate), fh.UpdateDevice)
	m.Delete("/", requirePerm(authorize.ResourceFamilyMember, authorize.ActionDelete), fh.Delete)
}
