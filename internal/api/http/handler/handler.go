package handler

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	jwttoken "github.com/auxillium/auxillium_backend/pkg/token"
)

// currentUserID extracts the authenticated user from the claims set by
// the auth middleware. Routes behind AuthRequired always have them.
func currentUserID(c fiber.Ctx) (uuid.UUID, bool) {
	claims, ok := jwttoken.ClaimsFromFiber(c)
	if !ok || claims.UserID == uuid.Nil {
		return uuid.Nil, false
	}
	return claims.UserID, true
}

func parseUUIDParam(c fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(name))
}
