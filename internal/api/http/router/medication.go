package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/auxillium/auxillium_backend/internal/api/http/handler"
	"github.com/auxillium/auxillium_backend/pkg/authorize"
)

func (r *Router) registerMedicationRoutes(
	api fiber.Router,
	mh *handler.MedicationHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	meds := api.Group("/medications", authRequired)

	meds.Get("/", requirePerm(authorize.ResourceMedication, authorize.ActionList), mh.List)
	meds.Post("/", requirePerm(authorize.ResourceMedication, authorize.ActionCreate), mh.Create)

	m := meds.Group("/:id")
	m.Patch("/", requirePerm(authorize.ResourceMedication, authorize.ActionUpdate), mh.Update)
	m.Patch("/discontinue", requirePerm(authorize.ResourceMedication, authorize.ActionUpdate), mh.Discontinue)
	m.Delete("/", requirePerm(authorize.ResourceMedication, authorize.ActionDelete), mh.Delete)
}
