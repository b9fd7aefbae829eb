package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/redis/go-redis/v9"

	jwttoken "github.com/auxillium/auxillium_backend/pkg/token"
)

// AuthRequired validates a Bearer access token and checks the session in
// Redis. On success, stores *jwttoken.Claims in c.Locals(jwttoken.CtxKeyClaims).
func AuthRequired(mgr *jwttoken.Manager, rdb *redis.Client) fiber.Handler {
	return func(c fiber.Ctx) error {
		h := c.Get("Authorization")
		if h == "" {
			return fiber.ErrUnauthorized
		}

		parts := strings.SplitN(h, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fiber.ErrUnauthorized
		}

		claims, err := mgr.Verify(strings.TrimSpace(parts[1]))
		if err != nil {
			return fiber.ErrUnauthorized
		}

		// Only access tokens are accepted on protected routes
		if claims.Type != jwttoken.TokenTypeAccess {
			return fiber.ErrUnauthorized
		}

		// A token outliving its logged-out session is worthless.
		if claims.SessionID != nil {
			key := "session:" + claims.SessionID.String()
			if err := rdb.Get(c.Context(), key).Err(); err != nil {
				return fiber.ErrUnauthorized
			}
		}

		c.Locals(jwttoken.CtxKeyClaims, claims)
		return c.Next()
	}
}
