package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/auxillium/auxillium_backend/internal/repo"
	"github.com/auxillium/auxillium_backend/internal/service/health"
)

type HealthMetricHandler struct {
	svc health.Service
}

func NewHealthMetricHandler(svc health.Service) *HealthMetricHandler {
	return &HealthMetricHandler{svc: svc}
}

func mapHealthError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, health.ErrMemberNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, health.ErrInvalidMetric),
		errors.Is(err, health.ErrInvalidValue),
		errors.Is(err, health.ErrMissingSecondary):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

func (h *HealthMetricHandler) Record(c fiber.Ctx) error {
	userID, okc := currentUserID(c)
	if !okc {
		return unauthorized(c, "authentication required")
	}

	var body struct {
		MemberID       string     `json:"member_id"`
		MetricType     string     `json:"metric_type"`
		Value          float64    `json:"value"`
		ValueSecondary *float64   `json:"value_secondary"`
		Unit           string     `json:"unit"`
		RecordedAt     *time.Time `json:"recorded_at"`
		Note           *string    `json:"note"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	memberID, err := uuid.Parse(body.MemberID)
	if err != nil {
		return badRequest(c, "invalid member_id")
	}

	metric, err := h.svc.Record(c.Context(), userID, health.RecordRequest{
		MemberID:       memberID,
		MetricType:     body.MetricType,
		Value:          body.Value,
		ValueSecondary: body.ValueSecondary,
		Unit:           body.Unit,
		RecordedAt:     body.RecordedAt,
		Note:           body.Note,
	})
	if err != nil {
		return mapHealthError(c, err)
	}

	return created(c, metric)
}

func (h *HealthMetricHandler) List(c fiber.Ctx) error {
	userID, okc := currentUserID(c)
	if !okc {
		return unauthorized(c, "authentication required")
	}

	var q struct {
		MemberID   string     `query:"member_id"`
		MetricType *string    `query:"metric_type"`
		From       *time.Time `query:"from"`
		To         *time.Time `query:"to"`
		Page       int        `query:"page"`
		PerPage    int        `query:"per_page"`
	}
	if err := c.Bind().Query(&q); err != nil {
		return badRequest(c, "invalid query parameters")
	}

	memberID, err := uuid.Parse(q.MemberID)
	if err != nil {
		return badRequest(c, "invalid member_id")
	}

	metrics, err := h.svc.List(c.Context(), userID, health.ListRequest{
		MemberID:   memberID,
		MetricType: q.MetricType,
		From:       q.From,
		To:         q.To,
		Page:       q.Page,
		PerPage:    q.PerPage,
	})
	if err != nil {
		return mapHealthError(c, err)
	}

	return ok(c, metrics)
}

type metricSummaryResponse struct {
	MetricType string             `json:"metric_type"`
	Count      int                `json:"count"`
	Min        float64            `json:"min"`
	Max        float64            `json:"max"`
	Avg        float64            `json:"avg"`
	Latest     *repo.HealthMetric `json:"latest,omitempty"`
}

func (h *HealthMetricHandler) Summary(c fiber.Ctx) error {
	userID, okc := currentUserID(c)
	if !okc {
		return unauthorized(c, "authentication required")
	}

	var q struct {
		MemberID   string `query:"member_id"`
		MetricType string `query:"metric_type"`
		Days       int    `query:"days"`
	}
	if err := c.Bind().Query(&q); err != nil {
		return badRequest(c, "invalid query parameters")
	}

	memberID, err := uuid.Parse(q.MemberID)
	if err != nil {
		return badRequest(c, "invalid member_id")
	}
	if q.Days <= 0 {
		q.Days = 30
	}

	since := time.Now().AddDate(0, 0, -q.Days)
	summary, err := h.svc.Summarize(c.Context(), userID, memberID, q.MetricType, since)
	if err != nil {
		return mapHealthError(c, err)
	}

	return ok(c, metricSummaryResponse{
		MetricType: summary.MetricType,
		Count:      summary.Count,
		Min:        summary.Min,
		Max:        summary.Max,
		Avg:        summary.Avg,
		Latest:     summary.Latest,
	})
}
