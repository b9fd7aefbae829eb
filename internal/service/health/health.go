package health

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/auxillium/auxillium_backend/internal/repo"
	entmember "github.com/auxillium/auxillium_backend/internal/repo/familymember"
	entmetric "github.com/auxillium/auxillium_backend/internal/repo/healthmetric"
)

// metricBounds is the accepted range for each metric type. Readings outside
// the range are rejected as entry mistakes.
var metricBounds = map[entmetric.MetricType]struct {
	min, max float64
	unit     string
}{
	entmetric.MetricTypeBloodPressure:    {min: 40, max: 300, unit: "mmHg"},
	entmetric.MetricTypeHeartRate:        {min: 20, max: 300, unit: "bpm"},
	entmetric.MetricTypeWeight:           {min: 1, max: 500, unit: "kg"},
	entmetric.MetricTypeBloodGlucose:     {min: 10, max: 1000, unit: "mg/dL"},
	entmetric.MetricTypeTemperature:      {min: 30, max: 45, unit: "°C"},
	entmetric.MetricTypeOxygenSaturation: {min: 50, max: 100, unit: "%"},
}

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type RecordRequest struct {
	MemberID       uuid.UUID
	MetricType     string
	Value          float64
	ValueSecondary *float64 // diastolic for blood pressure
	Unit           string   // optional; defaults per metric type
	RecordedAt     *time.Time
	Note           *string
}

type ListRequest struct {
	MemberID   uuid.UUID
	MetricType *string
	From       *time.Time
	To         *time.Time
	Page       int
	PerPage    int
}

// Summary aggregates one metric type over a window.
type Summary struct {
	MetricType string
	Count      int
	Min        float64
	Max        float64
	Avg        float64
	Latest     *repo.HealthMetric
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Record(ctx context.Context, userID uuid.UUID, req RecordRequest) (*repo.HealthMetric, error)
	List(ctx context.Context, userID uuid.UUID, req ListRequest) ([]*repo.HealthMetric, error)
	Summarize(ctx context.Context, userID, memberID uuid.UUID, metricType string, since time.Time) (*Summary, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type healthService struct {
	db *repo.Client
	nc *nats.Conn
}

func New(db *repo.Client, nc *nats.Conn) Service {
	return &healthService{db: db, nc: nc}
}

func (s *healthService) Record(ctx context.Context, userID uuid.UUID, req RecordRequest) (*repo.HealthMetric, error) {
	mt := entmetric.MetricType(req.MetricType)
	bounds, ok := metricBounds[mt]
	if !ok {
		return nil, ErrInvalidMetric
	}
	if req.Value < bounds.min || req.Value > bounds.max {
		return nil, ErrInvalidValue
	}
	if mt == entmetric.MetricTypeBloodPressure {
		if req.ValueSecondary == nil {
			return nil, ErrMissingSecondary
		}
		if *req.ValueSecondary < bounds.min || *req.ValueSecondary > bounds.max {
			return nil, ErrInvalidValue
		}
	}

	// The member must belong to the caller's account.
	ok, err := s.db.FamilyMember.Query().
		Where(entmember.ID(req.MemberID), entmember.UserID(userID), entmember.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check member: %w", err)
	}
	if !ok {
		return nil, ErrMemberNotFound
	}

	unit := req.Unit
	if unit == "" {
		unit = bounds.unit
	}
	recordedAt := time.Now()
	if req.RecordedAt != nil {
		recordedAt = *req.RecordedAt
	}

	c := s.db.HealthMetric.Create().
		SetUserID(userID).
		SetMemberID(req.MemberID).
		SetMetricType(mt).
		SetValue(req.Value).
		SetUnit(unit).
		SetRecordedAt(recordedAt)

	if req.ValueSecondary != nil {
		c = c.SetValueSecondary(*req.ValueSecondary)
	}
	if req.Note != nil {
		c = c.SetNillableNote(req.Note)
	}

	m, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("record metric: %w", err)
	}

	if s.nc != nil {
		subject := "auxillium.metric.recorded." + userID.String()
		_ = s.nc.Publish(subject, []byte(m.ID.String()))
	}

	return m, nil
}

func (s *healthService) List(ctx context.Context, userID uuid.UUID, req ListRequest) ([]*repo.HealthMetric, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 200 {
		req.PerPage = 50
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.HealthMetric.Query().
		Where(entmetric.UserID(userID), entmetric.MemberID(req.MemberID))

	if req.MetricType != nil {
		mt := entmetric.MetricType(*req.MetricType)
		if _, ok := metricBounds[mt]; !ok {
			return nil, ErrInvalidMetric
		}
		q = q.Where(entmetric.MetricTypeEQ(mt))
	}
	if req.From != nil {
		q = q.Where(entmetric.RecordedAtGTE(*req.From))
	}
	if req.To != nil {
		q = q.Where(entmetric.RecordedAtLT(*req.To))
	}

	metrics, err := q.
		Order(entmetric.ByRecordedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list metrics: %w", err)
	}
	return metrics, nil
}

func (s *healthService) Summarize(ctx context.Context, userID, memberID uuid.UUID, metricType string, since time.Time) (*Summary, error) {
	mt := entmetric.MetricType(metricType)
	if _, ok := metricBounds[mt]; !ok {
		return nil, ErrInvalidMetric
	}

	metrics, err := s.db.HealthMetric.Query().
		Where(
			entmetric.UserID(userID),
			entmetric.MemberID(memberID),
			entmetric.MetricTypeEQ(mt),
			entmetric.RecordedAtGTE(since),
		).
		Order(entmetric.ByRecordedAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("summarize metrics: %w", err)
	}

	out := &Summary{MetricType: metricType, Count: len(metrics)}
	if len(metrics) == 0 {
		return out, nil
	}

	out.Latest = metrics[0]
	out.Min = metrics[0].Value
	out.Max = metrics[0].Value
	var sum float64
	for _, m := range metrics {
		if m.Value < out.Min {
			out.Min = m.Value
		}
		if m.Value > out.Max {
			out.Max = m.Value
		}
		sum += m.Value
	}
	out.Avg = sum / float64(len(metrics))
	return out, nil
}
