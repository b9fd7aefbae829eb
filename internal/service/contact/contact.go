package contact

import (
	"context"
	"fmt"
	"strings"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nyaruka/phonenumbers"

	"github.com/auxillium/auxillium_backend/internal/repo"
	entcontact "github.com/auxillium/auxillium_backend/internal/repo/emergencycontact"
)

const maxContactsPerUser = 10

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	FullName     string
	Phone        string
	Relationship string
	IsPrimary    bool
}

type UpdateRequest struct {
	FullName     *string
	Phone        *string
	Relationship *string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context, userID uuid.UUID) ([]*repo.EmergencyContact, error)
	Create(ctx context.Context, userID uuid.UUID, req CreateRequest) (*repo.EmergencyContact, error)
	Update(ctx context.Context, userID, contactID uuid.UUID, req UpdateRequest) (*repo.EmergencyContact, error)
	SetPrimary(ctx context.Context, userID, contactID uuid.UUID) error
	Delete(ctx context.Context, userID, contactID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type contactService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &contactService{db: db}
}

func normalizePhone(raw string) (string, error) {
	num, err := phonenumbers.Parse(strings.TrimSpace(raw), "IR")
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return "", ErrInvalidPhone
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}

func (s *contactService) List(ctx context.Context, userID uuid.UUID) ([]*repo.EmergencyContact, error) {
	contacts, err := s.db.EmergencyContact.Query().
		Where(entcontact.UserID(userID)).
		Order(entcontact.ByIsPrimary(sql.OrderDesc()), entcontact.ByCreatedAt(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list emergency contacts: %w", err)
	}
	return contacts, nil
}

func (s *contactService) Create(ctx context.Context, userID uuid.UUID, req CreateRequest) (*repo.EmergencyContact, error) {
	phone, err := normalizePhone(req.Phone)
	if err != nil {
		return nil, err
	}

	count, err := s.db.EmergencyContact.Query().
		Where(entcontact.UserID(userID)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count emergency contacts: %w", err)
	}
	if count >= maxContactsPerUser {
		return nil, ErrTooMany
	}

	// First contact is always primary.
	isPrimary := req.IsPrimary || count == 0
	if isPrimary && count > 0 {
		if err := s.clearPrimary(ctx, userID); err != nil {
			return nil, err
		}
	}

	c, err := s.db.EmergencyContact.Create().
		SetUserID(userID).
		SetFullName(strings.TrimSpace(req.FullName)).
		SetPhone(phone).
		SetRelationship(strings.TrimSpace(req.Relationship)).
		SetIsPrimary(isPrimary).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create emergency contact: %w", err)
	}
	return c, nil
}

func (s *contactService) Update(ctx context.Context, userID, contactID uuid.UUID, req UpdateRequest) (*repo.EmergencyContact, error) {
	c, err := s.getOwned(ctx, userID, contactID)
	if err != nil {
		return nil, err
	}

	upd := s.db.EmergencyContact.UpdateOne(c)
	if req.FullName != nil {
		upd = upd.SetFullName(strings.TrimSpace(*req.FullName))
	}
	if req.Phone != nil {
		phone, err := normalizePhone(*req.Phone)
		if err != nil {
			return nil, err
		}
		upd = upd.SetPhone(phone)
	}
	if req.Relationship != nil {
		upd = upd.SetRelationship(strings.TrimSpace(*req.Relationship))
	}

	c, err = upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update emergency contact: %w", err)
	}
	return c, nil
}

// SetPrimary marks one contact primary and clears the flag on the rest.
func (s *contactService) SetPrimary(ctx context.Context, userID, contactID uuid.UUID) error {
	c, err := s.getOwned(ctx, userID, contactID)
	if err != nil {
		return err
	}
	if c.IsPrimary {
		return nil
	}

	if err := s.clearPrimary(ctx, userID); err != nil {
		return err
	}
	if err := s.db.EmergencyContact.UpdateOne(c).SetIsPrimary(true).Exec(ctx); err != nil {
		return fmt.Errorf("set primary contact: %w", err)
	}
	return nil
}

func (s *contactService) Delete(ctx context.Context, userID, contactID uuid.UUID) error {
	c, err := s.getOwned(ctx, userID, contactID)
	if err != nil {
		return err
	}
	wasPrimary := c.IsPrimary

	if err := s.db.EmergencyContact.DeleteOne(c).Exec(ctx); err != nil {
		return fmt.Errorf("delete emergency contact: %w", err)
	}

	// Promote the oldest remaining contact so a primary always exists.
	if wasPrimary {
		next, err := s.db.EmergencyContact.Query().
			Where(entcontact.UserID(userID)).
			Order(entcontact.ByCreatedAt(sql.OrderAsc())).
			First(ctx)
		if err != nil {
			if repo.IsNotFound(err) {
				return nil
			}
			return fmt.Errorf("find next contact: %w", err)
		}
		if err := s.db.EmergencyContact.UpdateOne(next).SetIsPrimary(true).Exec(ctx); err != nil {
			return fmt.Errorf("promote contact: %w", err)
		}
	}
	return nil
}

func (s *contactService) getOwned(ctx context.Context, userID, contactID uuid.UUID) (*repo.EmergencyContact, error) {
	c, err := s.db.EmergencyContact.Query().
		Where(entcontact.ID(contactID), entcontact.UserID(userID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get emergency contact: %w", err)
	}
	return c, nil
}

func (s *contactService) clearPrimary(ctx context.Context, userID uuid.UUID) error {
	_, err := s.db.EmergencyContact.Update().
		Where(entcontact.UserID(userID), entcontact.IsPrimary(true)).
		SetIsPrimary(false).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("clear primary contact: %w", err)
	}
	return nil
}
