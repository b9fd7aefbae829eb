package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/auxillium/auxillium_backend/internal/service/family"
)

type FamilyHandler struct {
	svc family.Service
}

func NewFamilyHandler(svc family.Service) *FamilyHandler {
	return &FamilyHandler{svc: svc}
}

func mapFamilyError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, family.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, family.ErrSelfImmutable):
		return conflict(c, err.Error())
	case errors.Is(err, family.ErrInvalidBloodType):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

func (h *FamilyHandler) List(c fiber.Ctx) error {
	userID, okc := currentUserID(c)
	if !okc {
		return unauthorized(c, "authentication required")
	}

	members, err := h.svc.List(c.Context(), userID)
	if err != nil {
		return mapFamilyError(c, err)
	}

	return ok(c, members)
}

func (h *FamilyHandler) Get(c fiber.Ctx) error {
	userID, okc := currentUserID(c)
	if !okc {
		return unauthorized(c, "authentication required")
	}
	memberID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid member id")
	}

	member, err := h.svc.GetByID(c.Context(), userID, memberID)
	if err != nil {
		return mapFamilyError(c, err)
	}

	return ok(c, member)
}

func (h *FamilyHandler) Create(c fiber.Ctx) error {
	userID, okc := currentUserID(c)
	if !okc {
		return unauthorized(c, "authentication required")
	}

	var body struct {
		FullName              string     `json:"full_name"`
		Relationship          string     `json:"relationship"`
		DateOfBirth           *time.Time `json:"date_of_birth"`
		Gender                *string    `json:"gender"`
		BloodType             *string    `json:"blood_type"`
		Allergies             []string   `json:"allergies"`
		Conditions            []string   `json:"conditions"`
		InsuranceProvider     *string    `json:"insurance_provider"`
		InsurancePolicyNumber *string    `json:"insurance_policy_number"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.FullName == "" || body.Relationship == "" {
		return badRequest(c, "full_name and relationship are required")
	}

	member, err := h.svc.Create(c.Context(), userID, family.CreateRequest{
		FullName:              body.FullName,
		Relationship:          body.Relationship,
		DateOfBirth:           body.DateOfBirth,
		Gender:                body.Gender,
		BloodType:             body.BloodType,
		Allergies:             body.Allergies,
		Conditions:            body.Conditions,
		InsuranceProvider:     body.InsuranceProvider,
		InsurancePolicyNumber: body.InsurancePolicyNumber,
	})
	if err != nil {
		return mapFamilyError(c, err)
	}

	return created(c, member)
}

func (h *FamilyHandler) Update(c fiber.Ctx) error {
	userID, okc := currentUserID(c)
	if !okc {
		return unauthorized(c, "authentication required")
	}
	memberID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid member id")
	}

	var body struct {
		FullName              *string    `json:"full_name"`
		DateOfBirth           *time.Time `json:"date_of_birth"`
		Gender                *string    `json:"gender"`
		BloodType             *string    `json:"blood_type"`
		Allergies             []string   `json:"allergies"`
		Conditions            []string   `json:"conditions"`
		InsuranceProvider     *string    `json:"insurance_provider"`
		InsurancePolicyNumber *string    `json:"insurance_policy_number"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	member, err := h.svc.Update(c.Context(), userID, memberID, family.UpdateRequest{
		FullName:              body.FullName,
		DateOfBirth:           body.DateOfBirth,
		Gender:                body.Gender,
		BloodType:             body.BloodType,
		Allergies:             body.Allergies,
		Conditions:            body.Conditions,
		InsuranceProvider:     body.InsuranceProvider,
		InsurancePolicyNumber: body.InsurancePolicyNumber,
	})
	if err != nil {
		return mapFamilyError(c, err)
	}

	return ok(c, member)
}

func (h *FamilyHandler) UpdateInsurance(c fiber.Ctx) error {
	userID, okc := currentUserID(c)
	if !okc {
		return unauthorized(c, "authentication required")
	}
	memberID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid member id")
	}

	var body struct {
		Provider       string     `json:"provider"`
		PolicyNumber   string     `json:"policy_number"`
		ValidUntil     *time.Time `json:"valid_until"`
		CoverageAmount *int64     `json:"coverage_amount"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Provider == "" {
		return badRequest(c, "provider is required")
	}

	member, err := h.svc.UpdateInsurance(c.Context(), userID, memberID, family.InsuranceRequest{
		Provider:       body.Provider,
		PolicyNumber:   body.PolicyNumber,
		ValidUntil:     body.ValidUntil,
		CoverageAmount: body.CoverageAmount,
	})
	if err != nil {
		return mapFamilyError(c, err)
	}

	return ok(c, member)
}

func (h *FamilyHandler) UpdateDevice(c fiber.Ctx) error {
	userID, okc := currentUserID(c)
	if !okc {
		return unauthorized(c, "authentication required")
	}
	memberID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid member id")
	}

	var body struct {
		DeviceName *string `json:"device_name"`
		Connected  *bool   `json:"connected"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	member, err := h.svc.UpdateDevice(c.Context(), userID, memberID, family.DeviceRequest{
		DeviceName: body.DeviceName,
		Connected:  body.Connected,
	})
	if err != nil {
		return mapFamilyError(c, err)
	}

	return ok(c, member)
}

func (h *FamilyHandler) Delete(c fiber.Ctx) error {
	userID, okc := currentUserID(c)
	if !okc {
		return unauthorized(c, "authentication required")
	}
	memberID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid member id")
	}

	if err := h.svc.Delete(c.Context(), userID, memberID); err != nil {
		return mapFamilyError(c, err)
	}

	return noContent(c)
}
