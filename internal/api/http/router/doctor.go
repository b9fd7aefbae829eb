package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/auxillium/auxillium_backend/internal/api/http/handler"
	"github.com/auxillium/auxillium_backend/pkg/authorize"
)

func (r *Router) registerDoctorRoutes(
	api fiber.Router,
	dh *handler.DoctorHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	// Browsing the directory does not require an account.
	doctors := api.Group("/doctors")

	doctors.Get("/", dh.Search)

	d := doctors.Group("/:id")
	d.Get("/", dh.Get)
	d.Get("/availability", dh.Availability)
	d.Get("/slots", dh.Slots)

	// Cost estimation reads the caller's insurance, so it needs auth.
	d.Get("/cost", authRequired, requirePerm(authorize.ResourceDoctor, authorize.ActionRead), dh.Cost)
}
