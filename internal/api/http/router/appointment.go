package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/auxillium/auxillium_backend/internal/api/http/handler"
	"github.com/auxillium/auxillium_backend/pkg/authorize"
)

func (r *Router) registerAppointmentRoutes(
	api fiber.Router,
	ah *handler.AppointmentHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	appts := api.Group("/appointments", authRequired)

	appts.Get("/", requirePerm(authorize.ResourceAppointment, authorize.ActionList), ah.List)
	appts.Post("/", requirePerm(authorize.ResourceAppointment, authorize.ActionBook), ah.Book)

	a := appts.Group("/:id")
	a.Get("/", requirePerm(authorize.ResourceAppointment, authorize.ActionRead), ah.Get)
	a.Patch("/confirm", requirePerm(authorize.ResourceAppointment, authorize.ActionUpdate), ah.Confirm)
	a.Patch("/cancel", requirePerm(authorize.ResourceAppointment, authorize.ActionCancel), ah.Cancel)

	// Doctor-side status changes
	a.Patch("/complete", requirePerm(authorize.ResourceAppointment, authorize.ActionExecute), ah.Complete)
	a.Patch("/no-show", requirePerm(authorize.ResourceAppointment, authorize.ActionExecute), ah.MarkNoShow)
}
