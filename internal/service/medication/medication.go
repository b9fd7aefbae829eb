package medication

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/auxillium/auxillium_backend/internal/repo"
	entmember "github.com/auxillium/auxillium_backend/internal/repo/familymember"
	entmed "github.com/auxillium/auxillium_backend/internal/repo/medication"
)

var reReminderTime = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	MemberID      uuid.UUID
	Name          string
	Dosage        string
	Frequency     string
	ReminderTimes []string // HH:MM
	StartDate     time.Time
	EndDate       *time.Time
	Instructions  *string
}

type UpdateRequest struct {
	Dosage        *string
	Frequency     *string
	ReminderTimes []string
	EndDate       *time.Time
	Instructions  *string
	Active        *bool
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context, userID, memberID uuid.UUID, activeOnly bool) ([]*repo.Medication, error)
	Create(ctx context.Context, userID uuid.UUID, req CreateRequest) (*repo.Medication, error)
	Update(ctx context.Context, userID, medID uuid.UUID, req UpdateRequest) (*repo.Medication, error)
	Discontinue(ctx context.Context, userID, medID uuid.UUID) error
	Delete(ctx context.Context, userID, medID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type medicationService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &medicationService{db: db}
}

func validateReminderTimes(times []string) error {
	for _, t := range times {
		if !reReminderTime.MatchString(t) {
			return ErrInvalidSchedule
		}
	}
	return nil
}

func (s *medicationService) List(ctx context.Context, userID, memberID uuid.UUID, activeOnly bool) ([]*repo.Medication, error) {
	q := s.db.Medication.Query().
		Where(
			entmed.UserID(userID),
			entmed.MemberID(memberID),
			entmed.DeletedAtIsNil(),
		)
	if activeOnly {
		q = q.Where(entmed.Active(true))
	}

	meds, err := q.Order(entmed.ByStartDate(sql.OrderDesc())).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list medications: %w", err)
	}
	return meds, nil
}

func (s *medicationService) Create(ctx context.Context, userID uuid.UUID, req CreateRequest) (*repo.Medication, error) {
	if err := validateReminderTimes(req.ReminderTimes); err != nil {
		return nil, err
	}
	if req.EndDate != nil && req.EndDate.Before(req.StartDate) {
		return nil, ErrInvalidDates
	}

	ok, err := s.db.FamilyMember.Query().
		Where(entmember.ID(req.MemberID), entmember.UserID(userID), entmember.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check member: %w", err)
	}
	if !ok {
		return nil, ErrMemberNotFound
	}

	freq := entmed.Frequency(req.Frequency)
	if err := entmed.FrequencyValidator(freq); err != nil {
		freq = entmed.FrequencyOnceDaily
	}

	c := s.db.Medication.Create().
		SetUserID(userID).
		SetMemberID(req.MemberID).
		SetName(strings.TrimSpace(req.Name)).
		SetDosage(strings.TrimSpace(req.Dosage)).
		SetFrequency(freq).
		SetStartDate(req.StartDate).
		SetActive(true)

	if len(req.ReminderTimes) > 0 {
		c = c.SetReminderTimes(req.ReminderTimes)
	}
	if req.EndDate != nil {
		c = c.SetEndDate(*req.EndDate)
	}
	if req.Instructions != nil {
		c = c.SetNillableInstructions(req.Instructions)
	}

	m, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create medication: %w", err)
	}
	return m, nil
}

func (s *medicationService) Update(ctx context.Context, userID, medID uuid.UUID, req UpdateRequest) (*repo.Medication, error) {
	m, err := s.getOwned(ctx, userID, medID)
	if err != nil {
		return nil, err
	}

	if req.ReminderTimes != nil {
		if err := validateReminderTimes(req.ReminderTimes); err != nil {
			return nil, err
		}
	}
	if req.EndDate != nil && req.EndDate.Before(m.StartDate) {
		return nil, ErrInvalidDates
	}

	upd := s.db.Medication.UpdateOne(m)
	if req.Dosage != nil {
		upd = upd.SetDosage(strings.TrimSpace(*req.Dosage))
	}
	if req.Frequency != nil {
		freq := entmed.Frequency(*req.Frequency)
		if err := entmed.FrequencyValidator(freq); err == nil {
			upd = upd.SetFrequency(freq)
		}
	}
	if req.ReminderTimes != nil {
		upd = upd.SetReminderTimes(req.ReminderTimes)
	}
	if req.EndDate != nil {
		upd = upd.SetEndDate(*req.EndDate)
	}
	if req.Instructions != nil {
		upd = upd.SetNillableInstructions(req.Instructions)
	}
	if req.Active != nil {
		upd = upd.SetActive(*req.Active)
	}

	m, err = upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update medication: %w", err)
	}
	return m, nil
}

func (s *medicationService) Discontinue(ctx context.Context, userID, medID uuid.UUID) error {
	m, err := s.getOwned(ctx, userID, medID)
	if err != nil {
		return err
	}

	now := time.Now()
	if err := s.db.Medication.UpdateOne(m).
		SetActive(false).
		SetEndDate(now).
		Exec(ctx); err != nil {
		return fmt.Errorf("discontinue medication: %w", err)
	}
	return nil
}

func (s *medicationService) Delete(ctx context.Context, userID, medID uuid.UUID) error {
	m, err := s.getOwned(ctx, userID, medID)
	if err != nil {
		return err
	}

	now := time.Now()
	if err := s.db.Medication.UpdateOne(m).SetDeletedAt(now).Exec(ctx); err != nil {
		return fmt.Errorf("delete medication: %w", err)
	}
	return nil
}

func (s *medicationService) getOwned(ctx context.Context, userID, medID uuid.UUID) (*repo.Medication, error) {
	m, err := s.db.Medication.Query().
		Where(entmed.ID(medID), entmed.UserID(userID), entmed.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get medication: %w", err)
	}
	return m, nil
}
