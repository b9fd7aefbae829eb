package jwttoken

import (
	"encoding/hex"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/auxillium/auxillium_backend/config"
)

const CtxKeyClaims = "auth.claims"

func FiberAuth(m *Manager) fiber.Handler {
	return func(c fiber.Ctx) error {
		h := c.Get("Authorization")
		if h == "" {
			return fiber.ErrUnauthorized
		}
		parts := strings.SplitN(h, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fiber.ErrUnauthorized
		}

		claims, err := m.Verify(strings.TrimSpace(parts[1]))
		if err != nil {
			return fiber.ErrUnauthorized
		}

		c.Locals(CtxKeyClaims, claims)
		return c.Next()
	}
}

func ClaimsFromFiber(c fiber.Ctx) (*Claims, bool) {
	v := c.Locals(CtxKeyClaims)
	if v == nil {
		return nil, false
	}
	cl, ok := v.(*Claims)
	return cl, ok
}

// NewTokenManager creates a new token manager from config.
// Returns an error if the configuration is invalid.
func NewTokenManager(cfg *config.Config) (*Manager, error) {
	t := cfg.Authentication.Tokens

	key, err := hex.DecodeString(strings.TrimSpace(t.SigningKeyHex))
	if err != nil {
		return nil, ErrConfig{Msg: "invalid signing key hex: " + err.Error()}
	}

	mgr, err := New(Config{
		Issuer:     t.Issuer,
		Audience:   t.Audience,
		AccessTTL:  time.Duration(t.AccessTTLMinutes) * time.Minute,
		RefreshTTL: time.Duration(t.RefreshTTLDays) * 24 * time.Hour,
	}, key)
	if err != nil {
		return nil, err
	}

	return mgr, nil
}
