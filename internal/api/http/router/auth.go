package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/auxillium/auxillium_backend/internal/api/http/handler"
)

func (r *Router) registerAuthRoutes(
	api fiber.Router,
	ah *handler.AuthHandler,
	authRequired fiber.Handler,
	otpLimiter fiber.Handler,
) {
	auth := api.Group("/auth")

	auth.Post("/signup", ah.Register)
	auth.Post("/login", ah.Login)
	auth.Post("/otp/request", otpLimiter, ah.RequestOTP)
	auth.Post("/otp/verify", otpLimiter, ah.VerifyOTP)
	auth.Post("/refresh", ah.Refresh)
	auth.Post("/logout", authRequired, ah.Logout)
}
