package blood

import (
	"context"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/auxillium/auxillium_backend/internal/repo"
	entdonation "github.com/auxillium/auxillium_backend/internal/repo/blooddonation"
	entrequest "github.com/auxillium/auxillium_backend/internal/repo/bloodrequest"
	entnotification "github.com/auxillium/auxillium_backend/internal/repo/notification"
	entprofile "github.com/auxillium/auxillium_backend/internal/repo/profile"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequestInput struct {
	PatientName  string
	BloodType    string
	Units        int
	Hospital     string
	City         string
	Urgency      string
	ContactPhone string
	NeededBy     *time.Time
	Notes        *string
}

type ListRequestsInput struct {
	City      *string
	BloodType *string
	OpenOnly  bool
	Page      int
	PerPage   int
}

type RecordDonationInput struct {
	RequestID *uuid.UUID
	BloodType string
	Units     int
	DonatedAt time.Time
	Location  string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	CreateRequest(ctx context.Context, requesterID uuid.UUID, in CreateRequestInput) (*repo.BloodRequest, error)
	ListRequests(ctx context.Context, in ListRequestsInput) ([]*repo.BloodRequest, error)
	GetRequest(ctx context.Context, requestID uuid.UUID) (*repo.BloodRequest, error)
	FulfillRequest(ctx context.Context, requesterID, requestID uuid.UUID) error
	CancelRequest(ctx context.Context, requesterID, requestID uuid.UUID) error

	RecordDonation(ctx context.Context, donorID uuid.UUID, in RecordDonationInput) (*repo.BloodDonation, error)
	ListDonations(ctx context.Context, donorID uuid.UUID) ([]*repo.BloodDonation, error)

	NotifyCompatibleDonors(ctx context.Context, requestID uuid.UUID) (int, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type bloodService struct {
	db *repo.Client
	nc *nats.Conn
}

func New(db *repo.Client, nc *nats.Conn) Service {
	return &bloodService{db: db, nc: nc}
}

func (s *bloodService) CreateRequest(ctx context.Context, requesterID uuid.UUID, in CreateRequestInput) (*repo.BloodRequest, error) {
	bt := entrequest.BloodType(in.BloodType)
	if err := entrequest.BloodTypeValidator(bt); err != nil {
		return nil, ErrInvalidBloodType
	}

	urgency := entrequest.Urgency(in.Urgency)
	if err := entrequest.UrgencyValidator(urgency); err != nil {
		urgency = entrequest.UrgencyRoutine
	}
	units := in.Units
	if units < 1 {
		units = 1
	}

	c := s.db.BloodRequest.Create().
		SetRequesterID(requesterID).
		SetPatientName(strings.TrimSpace(in.PatientName)).
		SetBloodType(bt).
		SetUnitsNeeded(units).
		SetHospital(strings.TrimSpace(in.Hospital)).
		SetCity(strings.TrimSpace(in.City)).
		SetUrgency(urgency).
		SetContactPhone(strings.TrimSpace(in.ContactPhone))

	if in.NeededBy != nil {
		c = c.SetNeededBy(*in.NeededBy)
	}
	if in.Notes != nil {
		c = c.SetNillableNotes(in.Notes)
	}

	req, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create blood request: %w", err)
	}

	if s.nc != nil {
		_ = s.nc.Publish("auxillium.blood.request.created."+req.ID.String(), []byte(req.ID.String()))
	}
	return req, nil
}

func (s *bloodService) ListRequests(ctx context.Context, in ListRequestsInput) ([]*repo.BloodRequest, error) {
	if in.Page < 1 {
		in.Page = 1
	}
	if in.PerPage < 1 || in.PerPage > 100 {
		in.PerPage = 20
	}
	offset := (in.Page - 1) * in.PerPage

	q := s.db.BloodRequest.Query()
	if in.OpenOnly {
		q = q.Where(entrequest.StatusEQ(entrequest.StatusOpen))
	}
	if in.City != nil && *in.City != "" {
		q = q.Where(entrequest.CityEqualFold(*in.City))
	}
	if in.BloodType != nil && *in.BloodType != "" {
		q = q.Where(entrequest.BloodTypeEQ(entrequest.BloodType(*in.BloodType)))
	}

	reqs, err := q.
		Order(entrequest.ByUrgency(sql.OrderDesc()), entrequest.ByCreatedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(in.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list blood requests: %w", err)
	}
	return reqs, nil
}

func (s *bloodService) GetRequest(ctx context.Context, requestID uuid.UUID) (*repo.BloodRequest, error) {
	req, err := s.db.BloodRequest.Get(ctx, requestID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get blood request: %w", err)
	}
	return req, nil
}

func (s *bloodService) FulfillRequest(ctx context.Context, requesterID, requestID uuid.UUID) error {
	return s.closeRequest(ctx, requesterID, requestID, entrequest.StatusFulfilled)
}

func (s *bloodService) CancelRequest(ctx context.Context, requesterID, requestID uuid.UUID) error {
	return s.closeRequest(ctx, requesterID, requestID, entrequest.StatusCancelled)
}

func (s *bloodService) closeRequest(ctx context.Context, requesterID, requestID uuid.UUID, to entrequest.Status) error {
	req, err := s.GetRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if req.RequesterID != requesterID {
		return ErrNotRequester
	}
	if req.Status != entrequest.StatusOpen && req.Status != entrequest.StatusMatched {
		return ErrRequestClosed
	}

	if err := s.db.BloodRequest.UpdateOne(req).SetStatus(to).Exec(ctx); err != nil {
		return fmt.Errorf("close blood request: %w", err)
	}
	return nil
}

func (s *bloodService) RecordDonation(ctx context.Context, donorID uuid.UUID, in RecordDonationInput) (*repo.BloodDonation, error) {
	bt := entdonation.BloodType(in.BloodType)
	if err := entdonation.BloodTypeValidator(bt); err != nil {
		return nil, ErrInvalidBloodType
	}
	units := in.Units
	if units < 1 {
		units = 1
	}
	donatedAt := in.DonatedAt
	if donatedAt.IsZero() {
		donatedAt = time.Now()
	}

	c := s.db.BloodDonation.Create().
		SetDonorID(donorID).
		SetBloodType(bt).
		SetUnits(units).
		SetDonatedAt(donatedAt).
		SetLocation(strings.TrimSpace(in.Location))

	if in.RequestID != nil {
		c = c.SetRequestID(*in.RequestID)
	}

	d, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("record donation: %w", err)
	}

	// A donation against a request moves it along: fulfilled once the
	// needed units are in, matched otherwise.
	if in.RequestID != nil {
		req, err := s.GetRequest(ctx, *in.RequestID)
		if err == nil && (req.Status == entrequest.StatusOpen || req.Status == entrequest.StatusMatched) {
			fulfilled := req.UnitsFulfilled + units
			status := entrequest.StatusMatched
			if fulfilled >= req.UnitsNeeded {
				status = entrequest.StatusFulfilled
			}
			s.db.BloodRequest.UpdateOne(req).
				SetUnitsFulfilled(fulfilled).
				SetStatus(status).
				Save(ctx)
		}
	}

	return d, nil
}

func (s *bloodService) ListDonations(ctx context.Context, donorID uuid.UUID) ([]*repo.BloodDonation, error) {
	donations, err := s.db.BloodDonation.Query().
		Where(entdonation.DonorID(donorID)).
		Order(entdonation.ByDonatedAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list donations: %w", err)
	}
	return donations, nil
}

// NotifyCompatibleDonors drops an inbox notification for every opted-in
// donor in the request's city whose blood type can donate to the patient.
// Returns how many were notified.
func (s *bloodService) NotifyCompatibleDonors(ctx context.Context, requestID uuid.UUID) (int, error) {
	req, err := s.GetRequest(ctx, requestID)
	if err != nil {
		return 0, err
	}

	compatible := CompatibleDonors(string(req.BloodType))
	if len(compatible) == 0 {
		return 0, nil
	}
	types := make([]entprofile.BloodType, 0, len(compatible))
	for _, bt := range compatible {
		types = append(types, entprofile.BloodType(bt))
	}

	donors, err := s.db.Profile.Query().
		Where(
			entprofile.BloodDonor(true),
			entprofile.PhoneVerified(true),
			entprofile.CityEqualFold(req.City),
			entprofile.BloodTypeIn(types...),
			entprofile.DeletedAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("find donors: %w", err)
	}

	notified := 0
	for _, donor := range donors {
		if donor.ID == req.RequesterID {
			continue
		}
		_, err := s.db.Notification.Create().
			SetUserID(donor.ID).
			SetKind(entnotification.KindBlood).
			SetTitle(fmt.Sprintf("%s blood needed in %s", req.BloodType, req.City)).
			SetBody(fmt.Sprintf("%s at %s needs %s blood. Open the app to respond.",
				req.PatientName, req.Hospital, req.BloodType)).
			SetData(map[string]string{"blood_request_id": req.ID.String()}).
			Save(ctx)
		if err == nil {
			notified++
		}
	}
	return notified, nil
}
