package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/auxillium/auxillium_backend/internal/api/http/handler"
	"github.com/auxillium/auxillium_backend/pkg/authorize"
)

func (r *Router) registerDonationRoutes(
	api fiber.Router,
	dh *handler.DonationHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	initiatives := api.Group("/donation-initiatives")

	initiatives.Get("/", dh.ListInitiatives)
	initiatives.Get("/:id", dh.GetInitiative)
	initiatives.Post("/", authRequired, requirePerm(authorize.ResourceInitiative, authorize.ActionCreate), dh.CreateInitiative)

	donations := api.Group("/donations", authRequired)
	donations.Get("/", requirePerm(authorize.ResourceDonation, authorize.ActionList), dh.ListMine)
	donations.Post("/", requirePerm(authorize.ResourceDonation, authorize.ActionCreate), dh.Donate)
}
