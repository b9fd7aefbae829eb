package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/auxillium/auxillium_backend/internal/api/http/handler"
	"github.com/auxillium/auxillium_backend/pkg/authorize"
)

func (r *Router) registerWorkshopRoutes(
	api fiber.Router,
	wh *handler.WorkshopHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	workshops := api.Group("/workshops")

	workshops.Get("/", wh.List)
	workshops.Get("/:id", wh.Get)
	workshops.Post("/", authRequired, requirePerm(authorize.ResourceWorkshop, authorize.ActionCreate), wh.Create)
	workshops.Post("/:id/enroll", authRequired, requirePerm(authorize.ResourceEnrollment, authorize.ActionCreate), wh.Enroll)
	workshops.Delete("/:id/enroll", authRequired, requirePerm(authorize.ResourceEnrollment, authorize.ActionDelete), wh.CancelEnrollment)

	api.Get("/enrollments", authRequired, requirePerm(authorize.ResourceEnrollment, authorize.ActionList), wh.ListEnrollments)
}
