package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/auxillium/auxillium_backend/internal/service/blood"
)

type BloodHandler struct {
	svc blood.Service
}

func NewBloodHandler(svc blood.Service) *BloodHandler {
	return &BloodHandler{svc: svc}
}

func mapBloodError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, blood.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, blood.ErrInvalidBloodType):
		return badRequest(c, err.Error())
	case errors.Is(err, blood.ErrRequestClosed):
		return conflict(c, err.Error())
	case errors.Is(err, blood.ErrNotRequester):
		return forbidden(c, err.Error())
	default:
		return internalError(c)
	}
}

func (h *BloodHandler) CreateRequest(c fiber.Ctx) error {
	userID, okc := currentUserID(c)
	if !okc {
		return unauthorized(c, "authentication required")
	}

	var body struct {
		PatientName  string     `json:"patient_name"`
		BloodType    string     `json:"blood_type"`
		Units        int        `json:"units"`
		Hospital     string     `json:"hospital"`
		City         string     `json:"city"`
		Urgency      string     `json:"urgency"`
		ContactPhone string     `json:"contact_phone"`
		NeededBy     *time.Time `json:"needed_by"`
		Notes        *string    `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.PatientName == "" || body.City == "" {
		return badRequest(c, "patient_name and city are required")
	}

	req, err := h.svc.CreateRequest(c.Context(), userID, blood.CreateRequestInput{
		PatientName:  body.PatientName,
		BloodType:    body.BloodType,
		Units:        body.Units,
		Hospital:     body.Hospital,
		City:         body.City,
		Urgency:      body.Urgency,
		ContactPhone: body.ContactPhone,
		NeededBy:     body.NeededBy,
		Notes:        body.Notes,
	})
	if err != nil {
		return mapBloodError(c, err)
	}

	return created(c, req)
}

func (h *BloodHandler) ListRequests(c fiber.Ctx) error {
	var q struct {
		City      *string `query:"city"`
		BloodType *string `query:"blood_type"`
		OpenOnly  bool    `query:"open_only"`
		Page      int     `query:"page"`
		PerPage   int     `query:"per_page"`
	}
	if err := c.Bind().Query(&q); err != nil {
		return badRequest(c, "invalid query parameters")
	}

	requests, err := h.svc.ListRequests(c.Context(), blood.ListRequestsInput{
		City:      q.City,
		BloodType: q.BloodType,
		OpenOnly:  q.OpenOnly,
		Page:      q.Page,
		PerPage:   q.PerPage,
	})
	if err != nil {
		return mapBloodError(c, err)
	}

	return ok(c, requests)
}

func (h *BloodHandler) GetRequest(c fiber.Ctx) error {
	requestID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid request id")
	}

	req, err := h.svc.GetRequest(c.Context(), requestID)
	if err != nil {
		return mapBloodError(c, err)
	}

	return ok(c, req)
}

func (h *BloodHandler) FulfillRequest(c fiber.Ctx) error {
	userID, okc := currentUserID(c)
	if !okc {
		return unauthorized(c, "authentication required")
	}
	requestID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid request id")
	}

	if err := h.svc.FulfillRequest(c.Context(), userID, requestID); err != nil {
		return mapBloodError(c, err)
	}

	return noContent(c)
}

func (h *BloodHandler) CancelRequest(c fiber.Ctx) error {
	userID, okc := currentUserID(c)
	if !okc {
		return unauthorized(c, "authentication required")
	}
	requestID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid request id")
	}

	if err := h.svc.CancelRequest(c.Context(), userID, requestID); err != nil {
		return mapBloodError(c, err)
	}

	return noContent(c)
}

func (h *BloodHandler) RecordDonation(c fiber.Ctx) error {
	userID, okc := currentUserID(c)
	if !okc {
		return unauthorized(c, "authentication required")
	}

	var body struct {
		RequestID *string   `json:"request_id"`
		BloodType string    `json:"blood_type"`
		Units     int       `json:"units"`
		DonatedAt time.Time `json:"donated_at"`
		Location  string    `json:"location"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	in := blood.RecordDonationInput{
		BloodType: body.BloodType,
		Units:     body.Units,
		DonatedAt: body.DonatedAt,
		Location:  body.Location,
	}
	if body.RequestID != nil {
		id, err := uuid.Parse(*body.RequestID)
		if err != nil {
			return badRequest(c, "invalid request_id")
		}
		in.RequestID = &id
	}

	donation, err := h.svc.RecordDonation(c.Context(), userID, in)
	if err != nil {
		return mapBloodError(c, err)
	}

	return created(c, donation)
}

func (h *BloodHandler) ListDonations(c fiber.Ctx) error {
	userID, okc := currentUserID(c)
	if !okc {
		return unauthorized(c, "authentication required")
	}

	donations, err := h.svc.ListDonations(c.Context(), userID)
	if err != nil {
		return mapBloodError(c, err)
	}

	return ok(c, donations)
}
