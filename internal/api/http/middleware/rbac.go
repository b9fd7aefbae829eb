package middleware

import (
	"github.com/gofiber/fiber/v3"

	"github.com/auxillium/auxillium_backend/pkg/authorize"
	jwttoken "github.com/auxillium/auxillium_backend/pkg/token"
)

// RequirePermission checks that the authenticated user holds the permission
// in their own user domain (or sys for platform staff).
func RequirePermission(auth authorize.IAuthorization, resource authorize.Resource, action authorize.Action) fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, ok := jwttoken.ClaimsFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		domain := authorize.UserDomain(claims.UserID.String())
		subject := authorize.GroupSubject(claims.UserID.String())

		if err := auth.MustEnforce(c.Context(), subject, domain, resource, action); err != nil {
			if err == authorize.ErrForbidden {
				return fiber.ErrForbidden
			}
			return err
		}

		return c.Next()
	}
}

// RequireSysPermission checks a permission in the sys domain, used for
// platform administration endpoints.
func RequireSysPermission(auth authorize.IAuthorization, resource authorize.Resource, action authorize.Action) fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, ok := jwttoken.ClaimsFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		subject := authorize.GroupSubject(claims.UserID.String())
		if err := auth.MustEnforce(c.Context(), subject, authorize.DomainSys, resource, action); err != nil {
			if err == authorize.ErrForbidden {
				return fiber.ErrForbidden
			}
			return err
		}

		return c.Next()
	}
}
