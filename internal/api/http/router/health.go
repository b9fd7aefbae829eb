package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/auxillium/auxillium_backend/internal/api/http/handler"
	"github.com/auxillium/auxillium_backend/pkg/authorize"
)

func (r *Router) registerHealthMetricRoutes(
	api fiber.Router,
	hh *handler.HealthMetricHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	metrics := api.Group("/health-metrics", authRequired)

	metrics.Get("/", requirePerm(authorize.ResourceHealthMetric, authorize.ActionList), hh.List)
	metrics.Post("/", requirePerm(authorize.ResourceHealthMetric, authorize.ActionCreate), hh.Record)
	metrics.Get("/summary", requirePerm(authorize.ResourceHealthMetric, authorize.ActionRead), hh.Summary)
}
