package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/auxillium/auxillium_backend/internal/service/medication"
)

type MedicationHandler struct {
	svc medication.Service
}

func NewMedicationHandler(svc medication.Service) *MedicationHandler {
	return &MedicationHandler{svc: svc}
}

func mapMedicationError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, medication.ErrNotFound),
		errors.Is(err, medication.ErrMemberNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, medication.ErrInvalidSchedule),
		errors.Is(err, medication.ErrInvalidDates):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

func (h *MedicationHandler) List(c fiber.Ctx) error {
	userID, okc := currentUserID(c)
	if !okc {
		return unauthorized(c, "authentication required")
	}

	var q struct {
		MemberID   string `query:"member_id"`
		ActiveOnly bool   `query:"active_only"`
	}
	if err := c.Bind().Query(&q); err != nil {
		return badRequest(c, "invalid query parameters")
	}

	memberID, err := uuid.Parse(q.MemberID)
	if err != nil {
		return badRequest(c, "invalid member_id")
	}

	meds, err := h.svc.List(c.Context(), userID, memberID, q.ActiveOnly)
	if err != nil {
		return mapMedicationError(c, err)
	}

	return ok(c, meds)
}

func (h *MedicationHandler) Create(c fiber.Ctx) error {
	userID, okc := currentUserID(c)
	if !okc {
		return unauthorized(c, "authentication required")
	}

	var body struct {
		MemberID      string     `json:"member_id"`
		Name          string     `json:"name"`
		Dosage        string     `json:"dosage"`
		Frequency     string     `json:"frequency"`
		ReminderTimes []string   `json:"reminder_times"`
		StartDate     time.Time  `json:"start_date"`
		EndDate       *time.Time `json:"end_date"`
		Instructions  *string    `json:"instructions"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Name == "" || body.Frequency == "" {
		return badRequest(c, "name and frequency are required")
	}

	memberID, err := uuid.Parse(body.MemberID)
	if err != nil {
		return badRequest(c, "invalid member_id")
	}

	med, err := h.svc.Create(c.Context(), userID, medication.CreateRequest{
		MemberID:      memberID,
		Name:          body.Name,
		Dosage:        body.Dosage,
		Frequency:     body.Frequency,
		ReminderTimes: body.ReminderTimes,
		StartDate:     body.StartDate,
		EndDate:       body.EndDate,
		Instructions:  body.Instructions,
	})
	if err != nil {
		return mapMedicationError(c, err)
	}

	return created(c, med)
}

func (h *MedicationHandler) Update(c fiber.Ctx) error {
	userID, okc := currentUserID(c)
	if !okc {
		return unauthorized(c, "authentication required")
	}
	medID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid medication id")
	}

	var body struct {
		Dosage        *string    `json:"dosage"`
		Frequency     *string    `json:"frequency"`
		ReminderTimes []string   `json:"reminder_times"`
		EndDate       *time.Time `json:"end_date"`
		Instructions  *string    `json:"instructions"`
		Active        *bool      `json:"active"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	med, err := h.svc.Update(c.Context(), userID, medID, medication.UpdateRequest{
		Dosage:        body.Dosage,
		Frequency:     body.Frequency,
		ReminderTimes: body.ReminderTimes,
		EndDate:       body.EndDate,
		Instructions:  body.Instructions,
		Active:        body.Active,
	})
	if err != nil {
		return mapMedicationError(c, err)
	}

	return ok(c, med)
}

func (h *MedicationHandler) Discontinue(c fiber.Ctx) error {
	userID, okc := currentUserID(c)
	if !okc {
		return unauthorized(c, "authentication required")
	}
	medID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid medication id")
	}

	if err := h.svc.Discontinue(c.Context(), userID, medID); err != nil {
		return mapMedicationError(c, err)
	}

	return noContent(c)
}

func (h *MedicationHandler) Delete(c fiber.Ctx) error {
	userID, okc := currentUserID(c)
	if !okc {
		return unauthorized(c, "authentication required")
	}
	medID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid medication id")
	}

	if err := h.svc.Delete(c.Context(), userID, medID); err != nil {
		return mapMedicationError(c, err)
	}

	return noContent(c)
}
