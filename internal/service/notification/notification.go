package notification

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/auxillium/auxillium_backend/internal/repo"
	entnotification "github.com/auxillium/auxillium_backend/internal/repo/notification"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	UserID uuid.UUID
	Kind   string
	Title  string
	Body   string
	Data   map[string]string
}

type ListRequest struct {
	UnreadOnly bool
	Page       int
	PerPage    int
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*repo.Notification, error)
	List(ctx context.Context, userID uuid.UUID, req ListRequest) ([]*repo.Notification, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int, error)
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type notificationService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &notificationService{db: db}
}

func (s *notificationService) Create(ctx context.Context, req CreateRequest) (*repo.Notification, error) {
	kind := entnotification.Kind(req.Kind)
	if err := entnotification.KindValidator(kind); err != nil {
		kind = entnotification.KindSystem
	}

	c := s.db.Notification.Create().
		SetUserID(req.UserID).
		SetKind(kind).
		SetTitle(req.Title).
		SetBody(req.Body)
	if len(req.Data) > 0 {
		c = c.SetData(req.Data)
	}

	n, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create notification: %w", err)
	}
	return n, nil
}

func (s *notificationService) List(ctx context.Context, userID uuid.UUID, req ListRequest) ([]*repo.Notification, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Notification.Query().
		Where(entnotification.UserID(userID))
	if req.UnreadOnly {
		q = q.Where(entnotification.Read(false))
	}

	notifications, err := q.
		Order(entnotification.ByCreatedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return notifications, nil
}

func (s *notificationService) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	count, err := s.db.Notification.Query().
		Where(entnotification.UserID(userID), entnotification.Read(false)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count unread: %w", err)
	}
	return count, nil
}

func (s *notificationService) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	now := time.Now()
	updated, err := s.db.Notification.Update().
		Where(
			entnotification.ID(notificationID),
			entnotification.UserID(userID),
			entnotification.Read(false),
		).
		SetRead(true).
		SetReadAt(now).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("mark read: %w", err)
	}
	if updated == 0 {
		// Either missing or already read; check which.
		exists, err := s.db.Notification.Query().
			Where(entnotification.ID(notificationID), entnotification.UserID(userID)).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("check notification: %w", err)
		}
		if !exists {
			return ErrNotFound
		}
	}
	return nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error) {
	now := time.Now()
	updated, err := s.db.Notification.Update().
		Where(entnotification.UserID(userID), entnotification.Read(false)).
		SetRead(true).
		SetReadAt(now).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("mark all read: %w", err)
	}
	return updated, nil
}
