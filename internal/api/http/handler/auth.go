package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/auxillium/auxillium_backend/internal/service/auth"
	jwttoken "github.com/auxillium/auxillium_backend/pkg/token"
)

type AuthHandler struct {
	svc auth.Service
}

func NewAuthHandler(svc auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type tokensResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

func newTokensResponse(t *auth.AuthTokens) tokensResponse {
	return tokensResponse{
		AccessToken:  t.AccessToken,
		RefreshToken: t.RefreshToken,
		ExpiresIn:    t.ExpiresIn,
	}
}

func mapAuthError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, auth.ErrInvalidPhone),
		errors.Is(err, auth.ErrPasswordTooShort):
		return badRequest(c, err.Error())
	case errors.Is(err, auth.ErrPhoneAlreadyExists):
		return conflict(c, err.Error())
	case errors.Is(err, auth.ErrOTPExpired),
		errors.Is(err, auth.ErrOTPInvalid),
		errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrPhoneNotVerified),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrSessionNotFound):
		return unauthorized(c, err.Error())
	case errors.Is(err, auth.ErrOTPMaxAttempts):
		return tooManyRequests(c, err.Error())
	case errors.Is(err, auth.ErrAccountLocked),
		errors.Is(err, auth.ErrAccountDisabled):
		return locked(c, err.Error())
	default:
		return internalError(c)
	}
}

// Register creates an unverified account and sends the first OTP.
func (h *AuthHandler) Register(c fiber.Ctx) error {
	var body struct {
		Phone    string `json:"phone"`
		Password string `json:"password"`
		FullName string `json:"full_name"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	err := h.svc.Register(c.Context(), auth.RegisterRequest{
		Phone:    body.Phone,
		Password: body.Password,
		FullName: body.FullName,
	})
	if err != nil {
		return mapAuthError(c, err)
	}

	return created(c, fiber.Map{"message": "verification code sent"})
}

// RequestOTP always answers 200 so callers cannot probe which phone
// numbers are registered.
func (h *AuthHandler) RequestOTP(c fiber.Ctx) error {
	var body struct {
		Phone string `json:"phone"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := h.svc.RequestOTP(c.Context(), body.Phone); err != nil {
		if errors.Is(err, auth.ErrInvalidPhone) {
			return badRequest(c, err.Error())
		}
		return internalError(c)
	}

	return ok(c, fiber.Map{"message": "verification code sent if the number is registered"})
}

func (h *AuthHandler) VerifyOTP(c fiber.Ctx) error {
	var body struct {
		Phone string `json:"phone"`
		Code  string `json:"code"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	tokens, err := h.svc.VerifyOTP(c.Context(), auth.VerifyOTPRequest{Phone: body.Phone, Code: body.Code})
	if err != nil {
		return mapAuthError(c, err)
	}

	return ok(c, newTokensResponse(tokens))
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var body struct {
		Phone    string `json:"phone"`
		Password string `json:"password"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	tokens, err := h.svc.Login(c.Context(), auth.LoginRequest{Phone: body.Phone, Password: body.Password})
	if err != nil {
		return mapAuthError(c, err)
	}

	return ok(c, newTokensResponse(tokens))
}

func (h *AuthHandler) Refresh(c fiber.Ctx) error {
	var body struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	tokens, err := h.svc.RefreshTokens(c.Context(), body.RefreshToken)
	if err != nil {
		return mapAuthError(c, err)
	}

	return ok(c, newTokensResponse(tokens))
}

func (h *AuthHandler) Logout(c fiber.Ctx) error {
	claims, okc := jwttoken.ClaimsFromFiber(c)
	if !okc || claims.SessionID == nil {
		return unauthorized(c, "no active session")
	}

	if err := h.svc.Logout(c.Context(), *claims.SessionID); err != nil {
		return mapAuthError(c, err)
	}

	return noContent(c)
}
