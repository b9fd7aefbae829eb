package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/auxillium/auxillium_backend/internal/api/http/handler"
	"github.com/auxillium/auxillium_backend/pkg/authorize"
)

func (r *Router) registerBloodRoutes(
	api fiber.Router,
	bh *handler.BloodHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	bloodGroup := api.Group("/blood")

	requests := bloodGroup.Group("/requests")
	requests.Get("/", bh.ListRequests)
	requests.Get("/:id", bh.GetRequest)
	requests.Post("/", authRequired, requirePerm(authorize.ResourceBloodRequest, authorize.ActionCreate), bh.CreateRequest)
	requests.Patch("/:id/fulfill", authRequired, requirePerm(authorize.ResourceBloodRequest, authorize.ActionFulfill), bh.FulfillRequest)
	requests.Patch("/:id/cancel", authRequired, requirePerm(authorize.ResourceBloodRequest, authorize.ActionCancel), bh.CancelRequest)

	donations := bloodGroup.Group("/donations", authRequired)
	donations.Get("/", requirePerm(authorize.ResourceBloodDonation, authorize.ActionList), bh.ListDonations)
	donations.Post("/", requirePerm(authorize.ResourceBloodDonation, authorize.ActionCreate), bh.RecordDonation)
}
