package workshop

import (
	"context"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/auxillium/auxillium_backend/internal/repo"
	entworkshop "github.com/auxillium/auxillium_backend/internal/repo/workshop"
	entenrollment "github.com/auxillium/auxillium_backend/internal/repo/workshopenrollment"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type ListRequest struct {
	Topic        *string
	UpcomingOnly bool
	Page         int
	PerPage      int
}

type CreateRequest struct {
	Title           string
	Description     string
	Topic           string
	StartsAt        time.Time
	DurationMinutes int
	Capacity        int
	Online          bool
	Location        *string
	MeetingURL      *string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context, req ListRequest) ([]*repo.Workshop, error)
	GetByID(ctx context.Context, workshopID uuid.UUID) (*repo.Workshop, error)
	Create(ctx context.Context, organizerID uuid.UUID, req CreateRequest) (*repo.Workshop, error)

	Enroll(ctx context.Context, userID, workshopID uuid.UUID) (*repo.WorkshopEnrollment, error)
	CancelEnrollment(ctx context.Context, userID, workshopID uuid.UUID) error
	ListEnrollments(ctx context.Context, userID uuid.UUID) ([]*repo.WorkshopEnrollment, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type workshopService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &workshopService{db: db}
}

func (s *workshopService) List(ctx context.Context, req ListRequest) ([]*repo.Workshop, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Workshop.Query().
		Where(entworkshop.DeletedAtIsNil(), entworkshop.StatusEQ(entworkshop.StatusScheduled))
	if req.Topic != nil && *req.Topic != "" {
		q = q.Where(entworkshop.TopicEqualFold(*req.Topic))
	}
	if req.UpcomingOnly {
		q = q.Where(entworkshop.StartsAtGT(time.Now()))
	}

	workshops, err := q.
		Order(entworkshop.ByStartsAt(sql.OrderAsc())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list workshops: %w", err)
	}
	return workshops, nil
}

func (s *workshopService) GetByID(ctx context.Context, workshopID uuid.UUID) (*repo.Workshop, error) {
	w, err := s.db.Workshop.Query().
		Where(entworkshop.ID(workshopID), entworkshop.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get workshop: %w", err)
	}
	return w, nil
}

func (s *workshopService) Create(ctx context.Context, organizerID uuid.UUID, req CreateRequest) (*repo.Workshop, error) {
	duration := req.DurationMinutes
	if duration <= 0 {
		duration = 60
	}
	capacity := req.Capacity
	if capacity < 0 {
		capacity = 0
	}

	c := s.db.Workshop.Create().
		SetOrganizerID(organizerID).
		SetTitle(strings.TrimSpace(req.Title)).
		SetDescription(req.Description).
		SetTopic(strings.ToLower(strings.TrimSpace(req.Topic))).
		SetStartsAt(req.StartsAt).
		SetDurationMinutes(duration).
		SetCapacity(capacity).
		SetOnline(req.Online)

	if req.Location != nil {
		c = c.SetNillableLocation(req.Location)
	}
	if req.MeetingURL != nil {
		c = c.SetNillableMeetingURL(req.MeetingURL)
	}

	w, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create workshop: %w", err)
	}
	return w, nil
}

func (s *workshopService) Enroll(ctx context.Context, userID, workshopID uuid.UUID) (*repo.WorkshopEnrollment, error) {
	w, err := s.GetByID(ctx, workshopID)
	if err != nil {
		return nil, err
	}
	if w.Status != entworkshop.StatusScheduled || !w.StartsAt.After(time.Now()) {
		return nil, ErrNotOpen
	}

	existing, err := s.db.WorkshopEnrollment.Query().
		Where(entenrollment.WorkshopID(workshopID), entenrollment.UserID(userID)).
		Only(ctx)
	if err != nil && !repo.IsNotFound(err) {
		return nil, fmt.Errorf("check enrollment: %w", err)
	}
	if existing != nil && existing.Status != entenrollment.StatusCancelled {
		return nil, ErrAlreadyEnrolled
	}

	// Claim a seat with a conditional update; zero rows means the workshop
	// filled up under us.
	if w.Capacity > 0 {
		updated, err := s.db.Workshop.Update().
			Where(
				entworkshop.ID(workshopID),
				entworkshop.EnrolledCountLT(w.Capacity),
			).
			AddEnrolledCount(1).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("claim seat: %w", err)
		}
		if updated == 0 {
			return nil, ErrFull
		}
	} else {
		s.db.Workshop.UpdateOneID(workshopID).AddEnrolledCount(1).Save(ctx)
	}

	if existing != nil {
		e, err := s.db.WorkshopEnrollment.UpdateOne(existing).
			SetStatus(entenrollment.StatusEnrolled).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("re-enroll: %w", err)
		}
		return e, nil
	}

	e, err := s.db.WorkshopEnrollment.Create().
		SetWorkshopID(workshopID).
		SetUserID(userID).
		Save(ctx)
	if err != nil {
		// Release the claimed seat.
		s.db.Workshop.UpdateOneID(workshopID).AddEnrolledCount(-1).Save(ctx)
		return nil, fmt.Errorf("create enrollment: %w", err)
	}
	return e, nil
}

func (s *workshopService) CancelEnrollment(ctx context.Context, userID, workshopID uuid.UUID) error {
	e, err := s.db.WorkshopEnrollment.Query().
		Where(
			entenrollment.WorkshopID(workshopID),
			entenrollment.UserID(userID),
			entenrollment.StatusEQ(entenrollment.StatusEnrolled),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrNotEnrolled
		}
		return fmt.Errorf("get enrollment: %w", err)
	}

	if err := s.db.WorkshopEnrollment.UpdateOne(e).
		SetStatus(entenrollment.StatusCancelled).
		Exec(ctx); err != nil {
		return fmt.Errorf("cancel enrollment: %w", err)
	}

	s.db.Workshop.UpdateOneID(workshopID).AddEnrolledCount(-1).Save(ctx)
	return nil
}

func (s *workshopService) ListEnrollments(ctx context.Context, userID uuid.UUID) ([]*repo.WorkshopEnrollment, error) {
	enrollments, err := s.db.WorkshopEnrollment.Query().
		Where(entenrollment.UserID(userID)).
		Order(entenrollment.ByCreatedAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	return enrollments, nil
}
