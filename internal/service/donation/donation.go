package donation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/auxillium/auxillium_backend/internal/repo"
	entdonation "github.com/auxillium/auxillium_backend/internal/repo/donation"
	entinitiative "github.com/auxillium/auxillium_backend/internal/repo/donationinitiative"
	"github.com/auxillium/auxillium_backend/pkg/util/codes"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type ListInitiativesRequest struct {
	Category   *string
	ActiveOnly bool
	Page       int
	PerPage    int
}

type DonateRequest struct {
	InitiativeID uuid.UUID
	Amount       int64
	Anonymous    bool
	Message      *string
}

type CreateInitiativeRequest struct {
	Title       string
	Description string
	Category    string
	GoalAmount  int64
	EndsAt      *time.Time
	ImageURL    *string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	ListInitiatives(ctx context.Context, req ListInitiativesRequest) ([]*repo.DonationInitiative, error)
	GetInitiative(ctx context.Context, initiativeID uuid.UUID) (*repo.DonationInitiative, error)
	CreateInitiative(ctx context.Context, organizerID uuid.UUID, req CreateInitiativeRequest) (*repo.DonationInitiative, error)

	Donate(ctx context.Context, donorID uuid.UUID, req DonateRequest) (*repo.Donation, error)
	ListByDonor(ctx context.Context, donorID uuid.UUID) ([]*repo.Donation, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type donationService struct {
	db *repo.Client
	nc *nats.Conn
}

func New(db *repo.Client, nc *nats.Conn) Service {
	return &donationService{db: db, nc: nc}
}

func (s *donationService) ListInitiatives(ctx context.Context, req ListInitiativesRequest) ([]*repo.DonationInitiative, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.DonationInitiative.Query().
		Where(entinitiative.DeletedAtIsNil())
	if req.ActiveOnly {
		q = q.Where(entinitiative.StatusEQ(entinitiative.StatusActive))
	}
	if req.Category != nil && *req.Category != "" {
		q = q.Where(entinitiative.CategoryEQ(entinitiative.Category(*req.Category)))
	}

	initiatives, err := q.
		Order(entinitiative.ByCreatedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list initiatives: %w", err)
	}
	return initiatives, nil
}

func (s *donationService) GetInitiative(ctx context.Context, initiativeID uuid.UUID) (*repo.DonationInitiative, error) {
	ini, err := s.db.DonationInitiative.Query().
		Where(entinitiative.ID(initiativeID), entinitiative.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrInitiativeNotFound
		}
		return nil, fmt.Errorf("get initiative: %w", err)
	}
	return ini, nil
}

func (s *donationService) CreateInitiative(ctx context.Context, organizerID uuid.UUID, req CreateInitiativeRequest) (*repo.DonationInitiative, error) {
	if req.GoalAmount <= 0 {
		return nil, ErrInvalidAmount
	}
	category := entinitiative.Category(req.Category)
	if err := entinitiative.CategoryValidator(category); err != nil {
		category = entinitiative.CategoryCommunity
	}

	c := s.db.DonationInitiative.Create().
		SetOrganizerID(organizerID).
		SetTitle(strings.TrimSpace(req.Title)).
		SetDescription(req.Description).
		SetCategory(category).
		SetGoalAmount(req.GoalAmount)

	if req.EndsAt != nil {
		c = c.SetEndsAt(*req.EndsAt)
	}
	if req.ImageURL != nil {
		c = c.SetNillableImageURL(req.ImageURL)
	}

	ini, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create initiative: %w", err)
	}
	return ini, nil
}

func (s *donationService) Donate(ctx context.Context, donorID uuid.UUID, req DonateRequest) (*repo.Donation, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	ini, err := s.GetInitiative(ctx, req.InitiativeID)
	if err != nil {
		return nil, err
	}
	if ini.Status != entinitiative.StatusActive {
		return nil, ErrInitiativeClosed
	}
	if ini.EndsAt != nil && time.Now().After(*ini.EndsAt) {
		return nil, ErrInitiativeClosed
	}

	receipt, err := codes.GenerateReceiptReference()
	if err != nil {
		return nil, fmt.Errorf("generate receipt: %w", err)
	}

	c := s.db.Donation.Create().
		SetInitiativeID(ini.ID).
		SetDonorID(donorID).
		SetAmount(req.Amount).
		SetAnonymous(req.Anonymous).
		SetReceiptReference(receipt)
	if req.Message != nil {
		c = c.SetNillableMessage(req.Message)
	}

	d, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create donation: %w", err)
	}

	// Tally atomically in SQL rather than read-modify-write.
	err = s.db.DonationInitiative.UpdateOneID(ini.ID).
		AddRaisedAmount(req.Amount).
		AddDonorCount(1).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("update raised amount: %w", err)
	}

	// Goal reached closes the initiative.
	if ini.RaisedAmount+req.Amount >= ini.GoalAmount {
		s.db.DonationInitiative.UpdateOneID(ini.ID).
			SetStatus(entinitiative.StatusCompleted).
			Save(ctx)
	}

	if s.nc != nil {
		_ = s.nc.Publish("auxillium.donation.received."+d.ID.String(), []byte(d.ID.String()))
	}
	return d, nil
}

func (s *donationService) ListByDonor(ctx context.Context, donorID uuid.UUID) ([]*repo.Donation, error) {
	donations, err := s.db.Donation.Query().
		Where(entdonation.DonorID(donorID)).
		Order(entdonation.ByCreatedAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list donations: %w", err)
	}
	return donations, nil
}
