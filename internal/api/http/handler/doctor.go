package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/auxillium/auxillium_backend/internal/service/doctor"
)

type DoctorHandler struct {
	svc doctor.Service
}

func NewDoctorHandler(svc doctor.Service) *DoctorHandler {
	return &DoctorHandler{svc: svc}
}

func mapDoctorError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, doctor.ErrNotFound), errors.Is(err, doctor.ErrMemberNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, doctor.ErrInvalidInterval):
		return badRequest(c, err.Error())
	case errors.Is(err, doctor.ErrNoFee):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

func (h *DoctorHandler) Search(c fiber.Ctx) error {
	var q struct {
		Specialty *string `query:"specialty"`
		City      *string `query:"city"`
		Insurer   *string `query:"insurer"`
		Query     *string `query:"q"`
		Page      int     `query:"page"`
		PerPage   int     `query:"per_page"`
	}
	if err := c.Bind().Query(&q); err != nil {
		return badRequest(c, "invalid query parameters")
	}

	doctors, err := h.svc.Search(c.Context(), doctor.SearchRequest{
		Specialty: q.Specialty,
		City:      q.City,
		Insurer:   q.Insurer,
		Query:     q.Query,
		Page:      q.Page,
		PerPage:   q.PerPage,
	})
	if err != nil {
		return mapDoctorError(c, err)
	}

	return ok(c, doctors)
}

func (h *DoctorHandler) Get(c fiber.Ctx) error {
	doctorID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	d, err := h.svc.GetByID(c.Context(), doctorID)
	if err != nil {
		return mapDoctorError(c, err)
	}

	return ok(c, d)
}

// Availability reports which days of a month still have open slots.
func (h *DoctorHandler) Availability(c fiber.Ctx) error {
	doctorID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	var q struct {
		Year  int `query:"year"`
		Month int `query:"month"`
	}
	if err := c.Bind().Query(&q); err != nil {
		return badRequest(c, "invalid query parameters")
	}

	days, err := h.svc.MonthAvailability(c.Context(), doctorID, q.Year, time.Month(q.Month))
	if err != nil {
		return mapDoctorError(c, err)
	}

	available := make([]int, 0, len(days))
	for day, has := range days {
		if has {
			available = append(available, day)
		}
	}

	return ok(c, fiber.Map{
		"year":           q.Year,
		"month":          q.Month,
		"available_days": available,
		"has_any":        len(available) > 0,
	})
}

// Slots lists the open appointment times for one day.
func (h *DoctorHandler) Slots(c fiber.Ctx) error {
	doctorID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	var q struct {
		Date string `query:"date"` // YYYY-MM-DD
	}
	if err := c.Bind().Query(&q); err != nil {
		return badRequest(c, "invalid query parameters")
	}

	day, err := time.Parse("2006-01-02", q.Date)
	if err != nil {
		return badRequest(c, "date must be YYYY-MM-DD")
	}

	times, err := h.svc.AvailableTimes(c.Context(), doctorID, day.Year(), day.Month(), day.Day())
	if err != nil {
		return mapDoctorError(c, err)
	}

	return ok(c, fiber.Map{"date": q.Date, "times": times})
}

type costResponse struct {
	Fee      int64  `json:"fee"`
	Covered  int64  `json:"covered"`
	YouPay   int64  `json:"you_pay"`
	Insured  bool   `json:"insured"`
	Provider string `json:"provider,omitempty"`
}

// Cost estimates the visit price for a specific family member.
func (h *DoctorHandler) Cost(c fiber.Ctx) error {
	userID, okc := currentUserID(c)
	if !okc {
		return unauthorized(c, "authentication required")
	}
	doctorID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	var q struct {
		FamilyMemberID string `query:"family_member_id"`
	}
	if err := c.Bind().Query(&q); err != nil {
		return badRequest(c, "invalid query parameters")
	}

	memberID, err := uuid.Parse(q.FamilyMemberID)
	if err != nil {
		return badRequest(c, "invalid family_member_id")
	}

	est, err := h.svc.EstimateCost(c.Context(), doctorID, userID, memberID)
	if err != nil {
		return mapDoctorError(c, err)
	}

	return ok(c, costResponse{
		Fee:      est.Fee,
		Covered:  est.Covered,
		YouPay:   est.YouPay,
		Insured:  est.Insured,
		Provider: est.Provider,
	})
}
