package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/auxillium/auxillium_backend/internal/service/appointment"
)

type AppointmentHandler struct {
	svc appointment.Service
}

func NewAppointmentHandler(svc appointment.Service) *AppointmentHandler {
	return &AppointmentHandler{svc: svc}
}

func mapAppointmentError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, appointment.ErrNotFound),
		errors.Is(err, appointment.ErrDoctorNotFound),
		errors.Is(err, appointment.ErrMemberNotFound),
		errors.Is(err, appointment.ErrSlotNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, appointment.ErrSlotNotAvailable),
		errors.Is(err, appointment.ErrInvalidTransition):
		return conflict(c, err.Error())
	case errors.Is(err, appointment.ErrInvalidDate):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

func (h *AppointmentHandler) List(c fiber.Ctx) error {
	userID, okc := currentUserID(c)
	if !okc {
		return unauthorized(c, "authentication required")
	}

	var q struct {
		Status   *string    `query:"status"`
		DoctorID *string    `query:"doctor_id"`
		From     *time.Time `query:"from"`
		To       *time.Time `query:"to"`
		Page     int        `query:"page"`
		PerPage  int        `query:"per_page"`
	}
	if err := c.Bind().Query(&q); err != nil {
		return badRequest(c, "invalid query parameters")
	}

	req := appointment.ListRequest{
		Status:  q.Status,
		From:    q.From,
		To:      q.To,
		Page:    q.Page,
		PerPage: q.PerPage,
	}
	if q.DoctorID != nil {
		id, err := uuid.Parse(*q.DoctorID)
		if err != nil {
			return badRequest(c, "invalid doctor_id")
		}
		req.DoctorID = &id
	}

	appts, err := h.svc.List(c.Context(), userID, req)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, appts)
}

func (h *AppointmentHandler) Get(c fiber.Ctx) error {
	userID, okc := currentUserID(c)
	if !okc {
		return unauthorized(c, "authentication required")
	}
	apptID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	appt, err := h.svc.GetByID(c.Context(), userID, apptID)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, appt)
}

func (h *AppointmentHandler) Book(c fiber.Ctx) error {
	userID, okc := currentUserID(c)
	if !okc {
		return unauthorized(c, "authentication required")
	}

	var body struct {
		DoctorID   string  `json:"doctor_id"`
		MemberID   string  `json:"member_id"`
		TimeSlotID string  `json:"time_slot_id"`
		VisitType  string  `json:"visit_type"`
		Symptoms   *string `json:"symptoms"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	doctorID, err := uuid.Parse(body.DoctorID)
	if err != nil {
		return badRequest(c, "invalid doctor_id")
	}
	memberID, err := uuid.Parse(body.MemberID)
	if err != nil {
		return badRequest(c, "invalid member_id")
	}
	slotID, err := uuid.Parse(body.TimeSlotID)
	if err != nil {
		return badRequest(c, "invalid time_slot_id")
	}

	appt, err := h.svc.Book(c.Context(), userID, appointment.BookRequest{
		DoctorID:   doctorID,
		MemberID:   memberID,
		TimeSlotID: slotID,
		VisitType:  body.VisitType,
		Symptoms:   body.Symptoms,
	})
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return created(c, appt)
}

func (h *AppointmentHandler) Confirm(c fiber.Ctx) error {
	userID, okc := currentUserID(c)
	if !okc {
		return unauthorized(c, "authentication required")
	}
	apptID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	if err := h.svc.Confirm(c.Context(), userID, apptID); err != nil {
		return mapAppointmentError(c, err)
	}

	return noContent(c)
}

func (h *AppointmentHandler) Cancel(c fiber.Ctx) error {
	userID, okc := currentUserID(c)
	if !okc {
		return unauthorized(c, "authentication required")
	}
	apptID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		Reason *string `json:"reason"`
	}
	// body is optional on cancellation
	_ = c.Bind().JSON(&body)

	if err := h.svc.Cancel(c.Context(), userID, apptID, appointment.CancelRequest{Reason: body.Reason}); err != nil {
		return mapAppointmentError(c, err)
	}

	return noContent(c)
}

// Complete is a staff action; the route guards it with a doctor permission.
func (h *AppointmentHandler) Complete(c fiber.Ctx) error {
	apptID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	if err := h.svc.Complete(c.Context(), apptID); err != nil {
		return mapAppointmentError(c, err)
	}

	return noContent(c)
}

func (h *AppointmentHandler) MarkNoShow(c fiber.Ctx) error {
	apptID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	if err := h.svc.MarkNoShow(c.Context(), apptID); err != nil {
		return mapAppointmentError(c, err)
	}

	return noContent(c)
}
