package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/auxillium/auxillium_backend/internal/repo"
	"github.com/auxillium/auxillium_backend/internal/service/profile"
)

type ProfileHandler struct {
	svc profile.Service
}

func NewProfileHandler(svc profile.Service) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

type profileResponse struct {
	*repo.Profile
	InsurancePolicyNumber string `json:"insurance_policy_number,omitempty"`
}

func newProfileResponse(v *profile.View) profileResponse {
	return profileResponse{Profile: v.Profile, InsurancePolicyNumber: v.InsurancePolicyNumber}
}

func mapProfileError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, profile.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, profile.ErrInvalidBloodType):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

func (h *ProfileHandler) Me(c fiber.Ctx) error {
	userID, okc := currentUserID(c)
	if !okc {
		return unauthorized(c, "authentication required")
	}

	view, err := h.svc.Get(c.Context(), userID)
	if err != nil {
		return mapProfileError(c, err)
	}

	return ok(c, newProfileResponse(view))
}

func (h *ProfileHandler) UpdateMe(c fiber.Ctx) error {
	userID, okc := currentUserID(c)
	if !okc {
		return unauthorized(c, "authentication required")
	}

	var body struct {
		FullName              *string    `json:"full_name"`
		Email                 *string    `json:"email"`
		DateOfBirth           *time.Time `json:"date_of_birth"`
		Gender                *string    `json:"gender"`
		BloodType             *string    `json:"blood_type"`
		City                  *string    `json:"city"`
		AvatarURL             *string    `json:"avatar_url"`
		BloodDonor            *bool      `json:"blood_donor"`
		InsuranceProvider     *string    `json:"insurance_provider"`
		InsurancePolicyNumber *string    `json:"insurance_policy_number"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	view, err := h.svc.Update(c.Context(), userID, profile.UpdateRequest{
		FullName:              body.FullName,
		Email:                 body.Email,
		DateOfBirth:           body.DateOfBirth,
		Gender:                body.Gender,
		BloodType:             body.BloodType,
		City:                  body.City,
		AvatarURL:             body.AvatarURL,
		BloodDonor:            body.BloodDonor,
		InsuranceProvider:     body.InsuranceProvider,
		InsurancePolicyNumber: body.InsurancePolicyNumber,
	})
	if err != nil {
		return mapProfileError(c, err)
	}

	return ok(c, newProfileResponse(view))
}
