package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/auxillium/auxillium_backend/internal/service/contact"
)

type ContactHandler struct {
	svc contact.Service
}

func NewContactHandler(svc contact.Service) *ContactHandler {
	return &ContactHandler{svc: svc}
}

func mapContactError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, contact.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, contact.ErrInvalidPhone):
		return badRequest(c, err.Error())
	case errors.Is(err, contact.ErrTooMany):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

func (h *ContactHandler) List(c fiber.Ctx) error {
	userID, okc := currentUserID(c)
	if !okc {
		return unauthorized(c, "authentication required")
	}

	contacts, err := h.svc.List(c.Context(), userID)
	if err != nil {
		return mapContactError(c, err)
	}

	return ok(c, contacts)
}

func (h *ContactHandler) Create(c fiber.Ctx) error {
	userID, okc := currentUserID(c)
	if !okc {
		return unauthorized(c, "authentication required")
	}

	var body struct {
		FullName     string `json:"full_name"`
		Phone        string `json:"phone"`
		Relationship string `json:"relationship"`
		IsPrimary    bool   `json:"is_primary"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.FullName == "" || body.Phone == "" {
		return badRequest(c, "full_name and phone are required")
	}

	ec, err := h.svc.Create(c.Context(), userID, contact.CreateRequest{
		FullName:     body.FullName,
		Phone:        body.Phone,
		Relationship: body.Relationship,
		IsPrimary:    body.IsPrimary,
	})
	if err != nil {
		return mapContactError(c, err)
	}

	return created(c, ec)
}

func (h *ContactHandler) Update(c fiber.Ctx) error {
	userID, okc := currentUserID(c)
	if !okc {
		return unauthorized(c, "authentication required")
	}
	contactID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid contact id")
	}

	var body struct {
		FullName     *string `json:"full_name"`
		Phone        *string `json:"phone"`
		Relationship *string `json:"relationship"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	ec, err := h.svc.Update(c.Context(), userID, contactID, contact.UpdateRequest{
		FullName:     body.FullName,
		Phone:        body.Phone,
		Relationship: body.Relationship,
	})
	if err != nil {
		return mapContactError(c, err)
	}

	return ok(c, ec)
}

func (h *ContactHandler) SetPrimary(c fiber.Ctx) error {
	userID, okc := currentUserID(c)
	if !okc {
		return unauthorized(c, "authentication required")
	}
	contactID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid contact id")
	}

	if err := h.svc.SetPrimary(c.Context(), userID, contactID); err != nil {
		return mapContactError(c, err)
	}

	return noContent(c)
}

func (h *ContactHandler) Delete(c fiber.Ctx) error {
	userID, okc := currentUserID(c)
	if !okc {
		return unauthorized(c, "authentication required")
	}
	contactID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid contact id")
	}

	if err := h.svc.Delete(c.Context(), userID, contactID); err != nil {
		return mapContactError(c, err)
	}

	return noContent(c)
}
