package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/auxillium/auxillium_backend/internal/api/http/handler"
	"github.com/auxillium/auxillium_backend/pkg/authorize"
)

func (r *Router) registerPharmacyRoutes(
	api fiber.Router,
	ph *handler.PharmacyHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	pharmacies := api.Group("/pharmacies")

	pharmacies.Get("/", ph.List)
	pharmacies.Get("/medicines", ph.Medicines)

	// Quotes apply the caller's insurance co-pay, so they need auth.
	pharmacies.Get("/quotes", authRequired, requirePerm(authorize.ResourceMedicineQuote, authorize.ActionList), ph.Quotes)
}
